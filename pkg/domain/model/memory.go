package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trendchat/pkg/domain/types"
)

// MemoryEntry is a free-form note about a user: stated preferences,
// interests, past requests. Written and read by the agent via tools.
type MemoryEntry struct {
	ID        types.MemoryID `json:"id" firestore:"id"`
	UserID    types.UserID   `json:"user_id" firestore:"user_id"`
	Content   string         `json:"content" firestore:"content"`
	CreatedAt time.Time      `json:"created_at" firestore:"created_at"`
}

func (x *MemoryEntry) Validate() error {
	if x.ID == "" {
		return goerr.Wrap(types.ErrInvalidParameter, "memory ID is required")
	}
	if x.UserID == "" {
		return goerr.Wrap(types.ErrInvalidParameter, "user ID is required")
	}
	if x.Content == "" {
		return goerr.Wrap(types.ErrInvalidParameter, "memory content is empty")
	}
	return nil
}
