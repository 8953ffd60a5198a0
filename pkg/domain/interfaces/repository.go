package interfaces

import (
	"context"

	"github.com/secmon-lab/trendchat/pkg/domain/model"
	"github.com/secmon-lab/trendchat/pkg/domain/types"
)

//go:generate moq -out ../mock/memory_repository_mock.go -pkg mock . MemoryRepository

// MemoryRepository stores long-term user memories and per-session
// conversation history.
type MemoryRepository interface {
	// Memory operations
	PutMemory(ctx context.Context, entry *model.MemoryEntry) error
	ListMemories(ctx context.Context, userID types.UserID, limit int) ([]*model.MemoryEntry, error)
	SearchMemories(ctx context.Context, userID types.UserID, keyword string, limit int) ([]*model.MemoryEntry, error)
	DeleteMemory(ctx context.Context, userID types.UserID, memoryID types.MemoryID) error

	// History operations
	AppendHistory(ctx context.Context, sessionID types.SessionID, messages []*model.ChatMessage) error
	GetHistory(ctx context.Context, sessionID types.SessionID, limit int) ([]*model.ChatMessage, error)
}
