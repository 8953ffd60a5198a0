package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/secmon-lab/trendchat/pkg/domain/model"
)

type UseCase interface {
	GetTrendingRepos(ctx context.Context, q *model.TrendingQuery) ([]*model.Repository, error)
	SearchRepos(ctx context.Context, q *model.SearchQuery) ([]*model.Repository, error)
	GetHotRepos(ctx context.Context, q *model.HotReposQuery) ([]*model.Repository, error)
	Chat(ctx context.Context, input *model.ChatInput) (*model.ChatOutput, error)
}
