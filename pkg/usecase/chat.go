package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trendchat/pkg/domain/interfaces"
	"github.com/secmon-lab/trendchat/pkg/domain/model"
	"github.com/secmon-lab/trendchat/pkg/domain/types"
	"github.com/secmon-lab/trendchat/pkg/utils/errutil"
	"github.com/secmon-lab/trendchat/pkg/utils/logging"
)

const (
	chatHistoryLimit = 20

	// maxToolRounds bounds the tool loop. The final round runs without
	// tools so the model must produce a text answer.
	maxToolRounds = 8

	defaultUserID = types.UserID("anonymous")
)

const systemPrompt = `You are a GitHub trends assistant. You help users discover
trending, popular and newly hot repositories on GitHub.

Use the provided tools to answer questions about repositories; never invent
repository names, star counts or URLs. When you list repositories, include the
full name, star count, language when known, and the URL.

When the user shares a durable preference, such as a favorite language or a
topic they care about, save it with save_memory. Use recall_memories when
earlier preferences would improve the answer. Keep answers concise.`

// Chat runs one turn of the conversation: the model may call repository and
// memory tools any number of times before producing the final answer.
func (x *UseCase) Chat(ctx context.Context, input *model.ChatInput) (*model.ChatOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = types.NewSessionID()
	}
	userID := input.UserID
	if userID == "" {
		userID = defaultUserID
	}

	repo := x.clients.MemoryRepo()

	memories, err := repo.ListMemories(ctx, userID, memoryRecallLimit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load memories", goerr.V("userID", userID))
	}
	history, err := repo.GetHistory(ctx, sessionID, chatHistoryLimit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load history", goerr.V("sessionID", sessionID))
	}

	messages := []model.LLMMessage{
		{Role: model.RoleSystem, Content: buildSystemPrompt(memories)},
	}
	for _, msg := range history {
		messages = append(messages, model.LLMMessage{Role: msg.Role, Content: msg.Content})
	}
	messages = append(messages, model.LLMMessage{Role: model.RoleUser, Content: input.Message})

	reply, toolLogs, err := x.runAgentLoop(ctx, userID, messages)
	if err != nil {
		return nil, err
	}

	now := logging.CtxTime(ctx).UTC()
	turn := []*model.ChatMessage{
		{Role: model.RoleUser, Content: input.Message, CreatedAt: now},
		{Role: model.RoleAssistant, Content: reply, CreatedAt: now},
	}
	if err := repo.AppendHistory(ctx, sessionID, turn); err != nil {
		return nil, goerr.Wrap(err, "failed to append history", goerr.V("sessionID", sessionID))
	}

	x.exportChatRecord(ctx, &model.ChatRecord{
		SessionID: string(sessionID),
		UserID:    string(userID),
		Message:   input.Message,
		Reply:     reply,
		ToolCalls: toolLogs,
		Timestamp: now.UnixMicro(),
	})

	return &model.ChatOutput{
		SessionID: sessionID,
		Reply:     reply,
		ToolCalls: toolLogs,
	}, nil
}

func (x *UseCase) runAgentLoop(ctx context.Context, userID types.UserID, messages []model.LLMMessage) (string, []model.ToolCallLog, error) {
	var toolLogs []model.ToolCallLog
	tools := toolSpecs()

	for round := 0; ; round++ {
		reqTools := tools
		if round >= maxToolRounds {
			reqTools = nil
		}

		resp, err := x.clients.LLM().Complete(ctx, messages, reqTools)
		if err != nil {
			return "", nil, goerr.Wrap(err, "chat completion failed")
		}

		if len(resp.ToolCalls) == 0 || reqTools == nil {
			if resp.Content == "" {
				return "", nil, goerr.Wrap(types.ErrNoLLMResponse, "model produced no answer")
			}
			return resp.Content, toolLogs, nil
		}

		messages = append(messages, model.LLMMessage{
			Role:      model.RoleAssistant,
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		})
		for _, call := range resp.ToolCalls {
			result := x.callTool(ctx, userID, call)
			toolLogs = append(toolLogs, model.ToolCallLog{
				Name:      call.Name,
				Arguments: call.Arguments,
				Result:    result,
			})
			messages = append(messages, model.LLMMessage{
				Role:       model.RoleTool,
				Name:       call.Name,
				ToolCallID: call.ID,
				Content:    result,
			})
		}
	}
}

func buildSystemPrompt(memories []*model.MemoryEntry) string {
	if len(memories) == 0 {
		return systemPrompt
	}

	var sb strings.Builder
	sb.WriteString(systemPrompt)
	sb.WriteString("\n\nKnown facts about the user:\n")
	for _, m := range memories {
		fmt.Fprintf(&sb, "- %s\n", m.Content)
	}
	return sb.String()
}

// exportChatRecord appends the turn to BigQuery. Export failure must not
// fail the turn; it is reported and the answer is returned anyway.
func (x *UseCase) exportChatRecord(ctx context.Context, record *model.ChatRecord) {
	if x.clients.BigQuery() == nil {
		return
	}

	if err := insertChatRecord(ctx, x.clients.BigQuery(), record); err != nil {
		errutil.HandleError(ctx, "failed to export chat record to BigQuery", err)
		return
	}

	logging.From(ctx).Debug("exported chat record",
		slog.String("session_id", record.SessionID),
	)
}

func insertChatRecord(ctx context.Context, bq interfaces.BigQuery, record *model.ChatRecord) error {
	schema, err := createOrUpdateChatTable(ctx, bq, record)
	if err != nil {
		return err
	}

	if err := bq.Insert(ctx, schema, record); err != nil {
		return goerr.Wrap(err, "failed to insert chat record")
	}
	return nil
}

func createOrUpdateChatTable(ctx context.Context, bq interfaces.BigQuery, record *model.ChatRecord) (bigquery.Schema, error) {
	schema, err := bqs.Infer(record)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer chat record schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get chat table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create chat table")
		}
		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge chat table schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update chat table schema")
	}

	return mergedSchema, nil
}
