package llm

import (
	"context"
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	openai "github.com/sashabaranov/go-openai"
	"github.com/secmon-lab/trendchat/pkg/domain/interfaces"
	"github.com/secmon-lab/trendchat/pkg/domain/model"
	"github.com/secmon-lab/trendchat/pkg/domain/types"
	"github.com/secmon-lab/trendchat/pkg/utils/logging"
)

const DefaultModel = "gpt-4o"

// Client wraps an OpenAI-compatible chat completion endpoint with function
// tools. Any server speaking the protocol works via WithBaseURL.
type Client struct {
	client *openai.Client
	model  string
}

var _ interfaces.LLM = (*Client)(nil)

type config struct {
	baseURL string
	model   string
}

type Option func(*config)

func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

func WithModel(m string) Option {
	return func(c *config) {
		c.model = m
	}
}

func New(apiKey types.LLMAPIKey, options ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "LLM API key is empty")
	}

	cfg := &config{model: DefaultModel}
	for _, opt := range options {
		opt(cfg)
	}

	apiCfg := openai.DefaultConfig(string(apiKey))
	if cfg.baseURL != "" {
		apiCfg.BaseURL = strings.TrimSuffix(cfg.baseURL, "/")
	}

	return &Client{
		client: openai.NewClientWithConfig(apiCfg),
		model:  cfg.model,
	}, nil
}

// Complete sends one chat completion request. Tool call requests come back in
// the reply; executing them and continuing the exchange is the caller's loop.
func (x *Client) Complete(ctx context.Context, history []model.LLMMessage, tools []model.ToolSpec) (*model.LLMReply, error) {
	req := openai.ChatCompletionRequest{
		Model:    x.model,
		Messages: toAPIMessages(history),
		Tools:    toAPITools(tools),
	}

	logging.From(ctx).Debug("sending chat completion",
		slog.String("model", x.model),
		slog.Int("messages", len(req.Messages)),
		slog.Int("tools", len(req.Tools)),
	)

	resp, err := x.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, goerr.Wrap(err, "chat completion failed", goerr.V("model", x.model))
	}
	if len(resp.Choices) == 0 {
		return nil, goerr.Wrap(types.ErrNoLLMResponse, "empty choices", goerr.V("model", x.model))
	}

	msg := resp.Choices[0].Message
	reply := &model.LLMReply{
		Content: msg.Content,
	}
	for _, call := range msg.ToolCalls {
		reply.ToolCalls = append(reply.ToolCalls, model.LLMToolCall{
			ID:        call.ID,
			Name:      call.Function.Name,
			Arguments: call.Function.Arguments,
		})
	}

	return reply, nil
}

func toAPIMessages(history []model.LLMMessage) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(history))
	for _, msg := range history {
		apiMsg := openai.ChatCompletionMessage{
			Role:       string(msg.Role),
			Content:    msg.Content,
			Name:       msg.Name,
			ToolCallID: msg.ToolCallID,
		}
		for _, call := range msg.ToolCalls {
			apiMsg.ToolCalls = append(apiMsg.ToolCalls, openai.ToolCall{
				ID:   call.ID,
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      call.Name,
					Arguments: call.Arguments,
				},
			})
		}
		messages = append(messages, apiMsg)
	}
	return messages
}

func toAPITools(tools []model.ToolSpec) []openai.Tool {
	apiTools := make([]openai.Tool, 0, len(tools))
	for _, tool := range tools {
		apiTools = append(apiTools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  tool.Parameters,
			},
		})
	}
	return apiTools
}
