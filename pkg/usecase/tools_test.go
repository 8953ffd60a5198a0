package usecase_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trendchat/pkg/domain/model"
	"github.com/secmon-lab/trendchat/pkg/domain/types"
	"github.com/secmon-lab/trendchat/pkg/usecase"
)

func TestFormatRepos(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		gt.V(t, usecase.FormatReposForTest(nil)).Equal("No repositories found.")
	})

	t.Run("full entry", func(t *testing.T) {
		out := usecase.FormatReposForTest([]*model.Repository{
			{
				FullName:    "langgenius/dify",
				URL:         "https://github.com/langgenius/dify",
				Description: "LLM app development platform",
				Language:    "Python",
				Stars:       54321,
				PeriodStars: 1024,
			},
		})

		gt.True(t, strings.Contains(out, "1. langgenius/dify [Python] (54321 stars, +1024 recently)"))
		gt.True(t, strings.Contains(out, "LLM app development platform"))
		gt.True(t, strings.Contains(out, "https://github.com/langgenius/dify"))
	})

	t.Run("sparse entry", func(t *testing.T) {
		out := usecase.FormatReposForTest([]*model.Repository{
			{FullName: "o/r", URL: "https://github.com/o/r", Stars: 10},
		})
		gt.V(t, out).Equal("1. o/r (10 stars)\n   https://github.com/o/r")
	})
}

func TestToolErrorMessage(t *testing.T) {
	t.Run("rate limit mentions token", func(t *testing.T) {
		msg := usecase.ToolErrorMessageForTest(goerr.Wrap(types.ErrRateLimited, "oops"))
		gt.True(t, strings.Contains(msg, "rate limit"))
		gt.True(t, strings.Contains(msg, "token"))
	})

	t.Run("bad trending page", func(t *testing.T) {
		msg := usecase.ToolErrorMessageForTest(goerr.Wrap(types.ErrBadResponse, "oops"))
		gt.True(t, strings.Contains(msg, "trending page"))
	})

	t.Run("generic error", func(t *testing.T) {
		msg := usecase.ToolErrorMessageForTest(goerr.New("boom"))
		gt.True(t, strings.Contains(msg, "boom"))
	})
}

func TestBuildSystemPrompt(t *testing.T) {
	t.Run("without memories", func(t *testing.T) {
		prompt := usecase.BuildSystemPromptForTest(nil)
		gt.True(t, !strings.Contains(prompt, "Known facts"))
	})

	t.Run("with memories", func(t *testing.T) {
		prompt := usecase.BuildSystemPromptForTest([]*model.MemoryEntry{
			{Content: "The user prefers Go."},
			{Content: "The user works on observability tooling."},
		})
		gt.True(t, strings.Contains(prompt, "Known facts about the user:"))
		gt.True(t, strings.Contains(prompt, "- The user prefers Go."))
		gt.True(t, strings.Contains(prompt, "- The user works on observability tooling."))
	})
}
