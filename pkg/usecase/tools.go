package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trendchat/pkg/domain/model"
	"github.com/secmon-lab/trendchat/pkg/domain/types"
	"github.com/secmon-lab/trendchat/pkg/utils/logging"
)

const (
	toolGetTrendingRepos = "get_trending_repos"
	toolSearchRepos      = "search_repos"
	toolGetHotRepos      = "get_hot_repos"
	toolSaveMemory       = "save_memory"
	toolRecallMemories   = "recall_memories"
)

func toolSpecs() []model.ToolSpec {
	return []model.ToolSpec{
		{
			Name:        toolGetTrendingRepos,
			Description: "Get repositories currently listed on the GitHub trending page.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"language": map[string]any{
						"type":        "string",
						"description": "Programming language filter, e.g. 'go' or 'python'. Empty means all languages.",
					},
					"window": map[string]any{
						"type":        "string",
						"enum":        []string{"daily", "weekly", "monthly"},
						"description": "Trending time window. Defaults to daily.",
					},
				},
			},
		},
		{
			Name:        toolSearchRepos,
			Description: "Search GitHub repositories by keyword, sorted by star count.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "Search keywords, e.g. 'vector database'.",
					},
					"max_results": map[string]any{
						"type":        "integer",
						"description": "Number of results, between 1 and 10. Defaults to 5.",
					},
				},
				"required": []string{"query"},
			},
		},
		{
			Name:        toolGetHotRepos,
			Description: "Get recently created repositories that gathered the most stars.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"language": map[string]any{
						"type":        "string",
						"description": "Programming language filter. Empty means all languages.",
					},
					"days": map[string]any{
						"type":        "integer",
						"description": "Look-back window in days, between 1 and 30. Defaults to 7.",
					},
				},
			},
		},
		{
			Name:        toolSaveMemory,
			Description: "Save a fact about the user, such as a preferred language or topic of interest.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"content": map[string]any{
						"type":        "string",
						"description": "The fact to remember, as one short sentence.",
					},
				},
				"required": []string{"content"},
			},
		},
		{
			Name:        toolRecallMemories,
			Description: "Recall saved facts about the user, optionally filtered by keyword.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"keyword": map[string]any{
						"type":        "string",
						"description": "Keyword to filter memories. Empty returns the most recent ones.",
					},
				},
			},
		},
	}
}

// callTool runs one tool invocation and renders the result as text for the
// model. Tool failures do not fail the turn; they come back as a diagnostic
// message so the model can explain or retry.
func (x *UseCase) callTool(ctx context.Context, userID types.UserID, call model.LLMToolCall) string {
	logging.From(ctx).Info("calling tool",
		slog.String("name", call.Name),
		slog.String("arguments", call.Arguments),
	)

	result, err := x.dispatchTool(ctx, userID, call)
	if err != nil {
		logging.From(ctx).Warn("tool failed",
			slog.String("name", call.Name),
			slog.String("error", err.Error()),
		)
		return toolErrorMessage(err)
	}
	return result
}

func (x *UseCase) dispatchTool(ctx context.Context, userID types.UserID, call model.LLMToolCall) (string, error) {
	switch call.Name {
	case toolGetTrendingRepos:
		var args struct {
			Language string `json:"language"`
			Window   string `json:"window"`
		}
		if err := parseToolArgs(call.Arguments, &args); err != nil {
			return "", err
		}
		repos, err := x.GetTrendingRepos(ctx, &model.TrendingQuery{
			Language: args.Language,
			Window:   types.TimeWindow(args.Window),
		})
		if err != nil {
			return "", err
		}
		return formatRepos(repos), nil

	case toolSearchRepos:
		var args struct {
			Query      string `json:"query"`
			MaxResults *int   `json:"max_results"`
		}
		if err := parseToolArgs(call.Arguments, &args); err != nil {
			return "", err
		}
		repos, err := x.SearchRepos(ctx, &model.SearchQuery{
			Query:      args.Query,
			MaxResults: intOrDefault(args.MaxResults, model.DefaultSearchResults),
		})
		if err != nil {
			return "", err
		}
		return formatRepos(repos), nil

	case toolGetHotRepos:
		var args struct {
			Language string `json:"language"`
			Days     *int   `json:"days"`
		}
		if err := parseToolArgs(call.Arguments, &args); err != nil {
			return "", err
		}
		repos, err := x.GetHotRepos(ctx, &model.HotReposQuery{
			Language: args.Language,
			Days:     intOrDefault(args.Days, model.DefaultHotRepoDays),
		})
		if err != nil {
			return "", err
		}
		return formatRepos(repos), nil

	case toolSaveMemory:
		var args struct {
			Content string `json:"content"`
		}
		if err := parseToolArgs(call.Arguments, &args); err != nil {
			return "", err
		}
		if err := x.saveMemory(ctx, userID, args.Content); err != nil {
			return "", err
		}
		return "Saved.", nil

	case toolRecallMemories:
		var args struct {
			Keyword string `json:"keyword"`
		}
		if err := parseToolArgs(call.Arguments, &args); err != nil {
			return "", err
		}
		memories, err := x.recallMemories(ctx, userID, args.Keyword)
		if err != nil {
			return "", err
		}
		return formatMemories(memories), nil

	default:
		return "", goerr.Wrap(types.ErrInvalidParameter, "unknown tool", goerr.V("name", call.Name))
	}
}

func intOrDefault(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func parseToolArgs(raw string, dst any) error {
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return goerr.Wrap(types.ErrInvalidParameter, "invalid tool arguments", goerr.V("raw", raw))
	}
	return nil
}

func toolErrorMessage(err error) string {
	switch {
	case errors.Is(err, types.ErrRateLimited):
		return "GitHub API rate limit exceeded. Configure a GitHub access token or wait before retrying."
	case errors.Is(err, types.ErrBadResponse):
		return "The GitHub trending page could not be read. It may be temporarily unavailable."
	case errors.Is(err, types.ErrInvalidParameter):
		return "Invalid tool arguments: " + err.Error()
	default:
		return "The tool failed: " + err.Error()
	}
}

func formatRepos(repos []*model.Repository) string {
	if len(repos) == 0 {
		return "No repositories found."
	}

	var sb strings.Builder
	for i, repo := range repos {
		fmt.Fprintf(&sb, "%d. %s", i+1, repo.FullName)
		if repo.Language != "" {
			fmt.Fprintf(&sb, " [%s]", repo.Language)
		}
		fmt.Fprintf(&sb, " (%d stars", repo.Stars)
		if repo.PeriodStars > 0 {
			fmt.Fprintf(&sb, ", +%d recently", repo.PeriodStars)
		}
		sb.WriteString(")\n")
		if repo.Description != "" {
			fmt.Fprintf(&sb, "   %s\n", repo.Description)
		}
		fmt.Fprintf(&sb, "   %s\n", repo.URL)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func formatMemories(memories []*model.MemoryEntry) string {
	if len(memories) == 0 {
		return "No memories found."
	}

	var sb strings.Builder
	for _, m := range memories {
		fmt.Fprintf(&sb, "- %s\n", m.Content)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
