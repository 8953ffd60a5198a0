package config

import (
	"log/slog"

	"github.com/secmon-lab/trendchat/pkg/domain/types"
	"github.com/secmon-lab/trendchat/pkg/infra/llm"
	"github.com/urfave/cli/v3"
)

type LLM struct {
	apiKey  string `masq:"secret"`
	baseURL string
	model   string
}

func (x *LLM) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "llm-api-key",
			Usage:       "API key of the chat completion endpoint",
			Category:    "LLM",
			Sources:     cli.EnvVars("TRENDCHAT_LLM_API_KEY"),
			Destination: &x.apiKey,
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "llm-base-url",
			Usage:       "Base URL of an OpenAI-compatible endpoint (optional)",
			Category:    "LLM",
			Sources:     cli.EnvVars("TRENDCHAT_LLM_BASE_URL"),
			Destination: &x.baseURL,
		},
		&cli.StringFlag{
			Name:        "llm-model",
			Usage:       "Chat completion model name",
			Category:    "LLM",
			Sources:     cli.EnvVars("TRENDCHAT_LLM_MODEL"),
			Value:       llm.DefaultModel,
			Destination: &x.model,
		},
	}
}

func (x *LLM) New() (*llm.Client, error) {
	var options []llm.Option
	if x.baseURL != "" {
		options = append(options, llm.WithBaseURL(x.baseURL))
	}
	if x.model != "" {
		options = append(options, llm.WithModel(x.model))
	}
	return llm.New(types.LLMAPIKey(x.apiKey), options...)
}

func (x *LLM) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("apiKey.len", len(x.apiKey)),
		slog.Any("baseURL", x.baseURL),
		slog.Any("model", x.model),
	)
}
