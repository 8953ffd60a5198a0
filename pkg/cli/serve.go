package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/trendchat/pkg/cli/config"
	"github.com/secmon-lab/trendchat/pkg/controller/server"
	"github.com/secmon-lab/trendchat/pkg/infra"
	"github.com/secmon-lab/trendchat/pkg/infra/trending"
	"github.com/secmon-lab/trendchat/pkg/usecase"
	"github.com/secmon-lab/trendchat/pkg/utils/logging"

	"github.com/urfave/cli/v3"

	_ "github.com/lib/pq"
)

func serveCommand() *cli.Command {
	var (
		addr string

		github   config.GitHub
		llm      config.LLM
		memory   config.Memory
		bigQuery config.BigQuery
		sentry   config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("TRENDCHAT_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			github.Flags(),
			llm.Flags(),
			memory.Flags(),
			bigQuery.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("GitHub", github),
				slog.Any("LLM", llm),
				slog.Any("Memory", memory),
				slog.Any("BigQuery", bigQuery),
				slog.Any("Sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			clients, err := buildClients(ctx, &github, &llm, &memory, &bigQuery)
			if err != nil {
				return err
			}

			uc := usecase.New(clients)
			s := server.New(uc)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      60 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}

func buildClients(ctx context.Context, github *config.GitHub, llm *config.LLM, memory *config.Memory, bigQuery *config.BigQuery) (*infra.Clients, error) {
	ghClient, err := github.New()
	if err != nil {
		return nil, err
	}

	llmClient, err := llm.New()
	if err != nil {
		return nil, err
	}

	memoryRepo, err := memory.NewRepository(ctx)
	if err != nil {
		return nil, err
	}

	infraOptions := []infra.Option{
		infra.WithGitHubSearch(ghClient),
		infra.WithTrending(trending.New()),
		infra.WithLLM(llmClient),
		infra.WithMemoryRepo(memoryRepo),
	}

	if bqClient, err := bigQuery.NewClient(ctx); err != nil {
		return nil, err
	} else if bqClient != nil {
		infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
	}

	return infra.New(infraOptions...), nil
}
