package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/trendchat/pkg/cli/config"
	"github.com/secmon-lab/trendchat/pkg/domain/model"
	"github.com/secmon-lab/trendchat/pkg/domain/types"
	"github.com/secmon-lab/trendchat/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func chatCommand() *cli.Command {
	var (
		sessionID string
		userID    string
		message   string

		github   config.GitHub
		llm      config.LLM
		memory   config.Memory
		bigQuery config.BigQuery
	)
	chatFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "session-id",
			Usage:       "Session ID to continue a conversation (generated when empty)",
			Sources:     cli.EnvVars("TRENDCHAT_SESSION_ID"),
			Destination: &sessionID,
		},
		&cli.StringFlag{
			Name:        "user-id",
			Usage:       "User ID that owns saved memories",
			Sources:     cli.EnvVars("TRENDCHAT_USER_ID"),
			Destination: &userID,
		},
		&cli.StringFlag{
			Name:        "message",
			Usage:       "Send one message and exit instead of starting an interactive session",
			Aliases:     []string{"m"},
			Destination: &message,
		},
	}

	return &cli.Command{
		Name:    "chat",
		Aliases: []string{"c"},
		Usage:   "Chat with the assistant from the terminal",
		Flags: slice.Flatten(
			chatFlags,
			github.Flags(),
			llm.Flags(),
			memory.Flags(),
			bigQuery.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			clients, err := buildClients(ctx, &github, &llm, &memory, &bigQuery)
			if err != nil {
				return err
			}
			uc := usecase.New(clients)

			session := types.SessionID(sessionID)

			if message != "" {
				_, err := runChatTurn(ctx, uc, session, types.UserID(userID), message)
				return err
			}

			return runChatREPL(ctx, uc, session, types.UserID(userID))
		},
	}
}

func runChatTurn(ctx context.Context, uc *usecase.UseCase, sessionID types.SessionID, userID types.UserID, message string) (types.SessionID, error) {
	out, err := uc.Chat(ctx, &model.ChatInput{
		SessionID: sessionID,
		UserID:    userID,
		Message:   message,
	})
	if err != nil {
		return sessionID, err
	}

	fmt.Println(out.Reply)
	return out.SessionID, nil
}

func runChatREPL(ctx context.Context, uc *usecase.UseCase, sessionID types.SessionID, userID types.UserID) error {
	fmt.Println("trendchat interactive session. Type 'exit' or Ctrl-D to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		newSession, err := runChatTurn(ctx, uc, sessionID, userID, line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		sessionID = newSession
	}

	if err := scanner.Err(); err != nil {
		return goerr.Wrap(err, "failed to read input")
	}
	return nil
}
