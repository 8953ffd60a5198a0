package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trendchat/pkg/domain/interfaces"
	"github.com/secmon-lab/trendchat/pkg/domain/model"
	"github.com/secmon-lab/trendchat/pkg/utils/logging"
)

// GetTrendingRepos lists repositories from the trending page in page order.
func (x *UseCase) GetTrendingRepos(ctx context.Context, q *model.TrendingQuery) ([]*model.Repository, error) {
	q.Normalize()
	if err := q.Validate(); err != nil {
		return nil, err
	}

	repos, err := x.clients.Trending().FetchTrending(ctx, q.Language, q.Window)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch trending repositories",
			goerr.V("language", q.Language),
			goerr.V("window", q.Window),
		)
	}

	logging.From(ctx).Info("fetched trending repositories",
		slog.String("language", q.Language),
		slog.String("window", q.Window.String()),
		slog.Int("count", len(repos)),
	)
	return repos, nil
}

// SearchRepos searches repositories by keyword, sorted by star count.
func (x *UseCase) SearchRepos(ctx context.Context, q *model.SearchQuery) ([]*model.Repository, error) {
	q.Clamp()
	if err := q.Validate(); err != nil {
		return nil, err
	}

	repos, err := x.clients.GitHubSearch().SearchRepositories(ctx, q.Query, &interfaces.SearchOptions{
		Sort:    "stars",
		Order:   "desc",
		PerPage: q.MaxResults,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to search repositories", goerr.V("query", q.Query))
	}

	logging.From(ctx).Info("searched repositories",
		slog.String("query", q.Query),
		slog.Int("count", len(repos)),
	)
	return repos, nil
}

// GetHotRepos lists recently created repositories that gathered the most
// stars within the look-back window.
func (x *UseCase) GetHotRepos(ctx context.Context, q *model.HotReposQuery) ([]*model.Repository, error) {
	q.Clamp()

	query := buildHotReposQuery(q, logging.CtxTime(ctx).UTC())
	repos, err := x.clients.GitHubSearch().SearchRepositories(ctx, query, &interfaces.SearchOptions{
		Sort:    "stars",
		Order:   "desc",
		PerPage: model.MaxSearchResults,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to search hot repositories", goerr.V("query", query))
	}

	logging.From(ctx).Info("fetched hot repositories",
		slog.String("query", query),
		slog.Int("count", len(repos)),
	)
	return repos, nil
}

func buildHotReposQuery(q *model.HotReposQuery, now time.Time) string {
	since := now.AddDate(0, 0, -q.Days).Format("2006-01-02")

	parts := []string{fmt.Sprintf("created:>=%s", since)}
	if q.Language != "" {
		parts = append(parts, "language:"+q.Language)
	}
	return strings.Join(parts, " ")
}
