package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/trendchat/pkg/domain/interfaces"
	"github.com/secmon-lab/trendchat/pkg/domain/mock"
	"github.com/secmon-lab/trendchat/pkg/domain/model"
	"github.com/secmon-lab/trendchat/pkg/domain/types"
	"github.com/secmon-lab/trendchat/pkg/infra"
	"github.com/secmon-lab/trendchat/pkg/usecase"
	"github.com/secmon-lab/trendchat/pkg/utils/logging"
)

func testRepos(n int) []*model.Repository {
	repos := make([]*model.Repository, 0, n)
	for i := 0; i < n; i++ {
		repos = append(repos, &model.Repository{
			Owner:    "owner",
			Name:     "repo",
			FullName: "owner/repo",
			URL:      "https://github.com/owner/repo",
			Stars:    1000 - i,
			Rank:     i + 1,
		})
	}
	return repos
}

func TestGetTrendingRepos(t *testing.T) {
	trendingMock := &mock.TrendingSourceMock{
		FetchTrendingFunc: func(ctx context.Context, language string, window types.TimeWindow) ([]*model.Repository, error) {
			return testRepos(3), nil
		},
	}
	uc := usecase.New(infra.New(infra.WithTrending(trendingMock)))

	t.Run("empty window falls back to daily", func(t *testing.T) {
		repos := gt.R1(uc.GetTrendingRepos(context.Background(), &model.TrendingQuery{
			Language: "go",
		})).NoError(t)
		gt.A(t, repos).Length(3)

		calls := trendingMock.FetchTrendingCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].Language).Equal("go")
		gt.V(t, calls[0].Window).Equal(types.TimeWindowDaily)
	})

	t.Run("invalid window is rejected", func(t *testing.T) {
		_, err := uc.GetTrendingRepos(context.Background(), &model.TrendingQuery{
			Window: "hourly",
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidParameter))
	})
}

func TestSearchRepos(t *testing.T) {
	searchMock := &mock.GitHubSearchMock{
		SearchRepositoriesFunc: func(ctx context.Context, query string, opts *interfaces.SearchOptions) ([]*model.Repository, error) {
			return testRepos(opts.PerPage), nil
		},
	}
	uc := usecase.New(infra.New(infra.WithGitHubSearch(searchMock)))

	t.Run("max results is clamped", func(t *testing.T) {
		repos := gt.R1(uc.SearchRepos(context.Background(), &model.SearchQuery{
			Query:      "vector database",
			MaxResults: 50,
		})).NoError(t)
		gt.A(t, repos).Length(model.MaxSearchResults)

		calls := searchMock.SearchRepositoriesCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].Query).Equal("vector database")
		gt.V(t, calls[0].Opts.Sort).Equal("stars")
		gt.V(t, calls[0].Opts.Order).Equal("desc")
		gt.V(t, calls[0].Opts.PerPage).Equal(model.MaxSearchResults)
	})

	t.Run("empty query is rejected", func(t *testing.T) {
		_, err := uc.SearchRepos(context.Background(), &model.SearchQuery{})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidParameter))
	})
}

func TestGetHotRepos(t *testing.T) {
	searchMock := &mock.GitHubSearchMock{
		SearchRepositoriesFunc: func(ctx context.Context, query string, opts *interfaces.SearchOptions) ([]*model.Repository, error) {
			return testRepos(5), nil
		},
	}
	uc := usecase.New(infra.New(infra.WithGitHubSearch(searchMock)))

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	ctx := logging.CtxWithTime(context.Background(), func() time.Time { return now })

	repos := gt.R1(uc.GetHotRepos(ctx, &model.HotReposQuery{
		Language: "rust",
		Days:     100,
	})).NoError(t)
	gt.A(t, repos).Length(5)

	calls := searchMock.SearchRepositoriesCalls()
	gt.A(t, calls).Length(1)

	// Days clamped to the maximum look-back window
	gt.V(t, calls[0].Query).Equal("created:>=2025-05-16 language:rust")
	gt.V(t, calls[0].Opts.Sort).Equal("stars")
	gt.V(t, calls[0].Opts.PerPage).Equal(model.MaxSearchResults)
}

func TestBuildHotReposQuery(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("with language", func(t *testing.T) {
		q := &model.HotReposQuery{Language: "go", Days: 7}
		gt.V(t, usecase.BuildHotReposQueryForTest(q, now)).Equal("created:>=2025-06-08 language:go")
	})

	t.Run("without language", func(t *testing.T) {
		q := &model.HotReposQuery{Days: 30}
		gt.V(t, usecase.BuildHotReposQueryForTest(q, now)).Equal("created:>=2025-05-16")
	})
}
