package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trendchat/pkg/domain/model"
	"github.com/secmon-lab/trendchat/pkg/domain/types"
	"github.com/secmon-lab/trendchat/pkg/utils/logging"
)

const memoryRecallLimit = 20

func (x *UseCase) saveMemory(ctx context.Context, userID types.UserID, content string) error {
	entry := &model.MemoryEntry{
		ID:        types.NewMemoryID(),
		UserID:    userID,
		Content:   content,
		CreatedAt: logging.CtxTime(ctx).UTC(),
	}
	if err := entry.Validate(); err != nil {
		return err
	}

	if err := x.clients.MemoryRepo().PutMemory(ctx, entry); err != nil {
		return goerr.Wrap(err, "failed to save memory", goerr.V("userID", userID))
	}
	return nil
}

func (x *UseCase) recallMemories(ctx context.Context, userID types.UserID, keyword string) ([]*model.MemoryEntry, error) {
	repo := x.clients.MemoryRepo()

	if keyword == "" {
		memories, err := repo.ListMemories(ctx, userID, memoryRecallLimit)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list memories", goerr.V("userID", userID))
		}
		return memories, nil
	}

	memories, err := repo.SearchMemories(ctx, userID, keyword, memoryRecallLimit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to search memories", goerr.V("userID", userID), goerr.V("keyword", keyword))
	}
	return memories, nil
}
