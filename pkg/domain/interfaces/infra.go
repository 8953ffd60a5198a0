package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHubSearch TrendingSource LLM BigQuery

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/secmon-lab/trendchat/pkg/domain/model"
	"github.com/secmon-lab/trendchat/pkg/domain/types"
)

// SearchOptions controls the repository search request. PerPage must be
// clamped by the caller before the request is issued.
type SearchOptions struct {
	Sort    string
	Order   string
	PerPage int
}

// GitHubSearch is the REST search endpoint of GitHub.
type GitHubSearch interface {
	SearchRepositories(ctx context.Context, query string, opts *SearchOptions) ([]*model.Repository, error)
}

// TrendingSource lists repositories from the GitHub trending page. The page
// structure is undocumented and may break on markup changes; implementations
// return types.ErrBadResponse in that case.
type TrendingSource interface {
	FetchTrending(ctx context.Context, language string, window types.TimeWindow) ([]*model.Repository, error)
}

// LLM is a chat completion model with tool calling.
type LLM interface {
	Complete(ctx context.Context, history []model.LLMMessage, tools []model.ToolSpec) (*model.LLMReply, error)
}

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}
