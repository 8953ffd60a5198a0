package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/trendchat/pkg/domain/interfaces"
	"github.com/secmon-lab/trendchat/pkg/domain/model"
	"github.com/secmon-lab/trendchat/pkg/domain/types"
	"github.com/secmon-lab/trendchat/pkg/repository"
)

// TestAll runs all test cases for MemoryRepository. This is the main entry
// point for testing any MemoryRepository implementation.
func TestAll(t *testing.T, repo interfaces.MemoryRepository) {
	t.Run("MemoryCRUD", func(t *testing.T) {
		TestMemoryCRUD(t, repo)
	})
	t.Run("MemorySearch", func(t *testing.T) {
		TestMemorySearch(t, repo)
	})
	t.Run("MemoryIsolationBetweenUsers", func(t *testing.T) {
		TestMemoryIsolationBetweenUsers(t, repo)
	})
	t.Run("HistoryAppendAndGet", func(t *testing.T) {
		TestHistoryAppendAndGet(t, repo)
	})
	t.Run("HistoryLimit", func(t *testing.T) {
		TestHistoryLimit(t, repo)
	})
}

func newUserID() types.UserID {
	return types.UserID(fmt.Sprintf("user-%s", uuid.New().String()[:8]))
}

func newEntry(userID types.UserID, content string, at time.Time) *model.MemoryEntry {
	return &model.MemoryEntry{
		ID:        types.NewMemoryID(),
		UserID:    userID,
		Content:   content,
		CreatedAt: at,
	}
}

// TestMemoryCRUD tests put, list, update and delete of memory entries.
func TestMemoryCRUD(t *testing.T, repo interfaces.MemoryRepository) {
	ctx := context.Background()
	userID := newUserID()
	now := time.Now().UTC().Truncate(time.Millisecond)

	entry := newEntry(userID, "prefers Rust and systems programming", now)
	gt.NoError(t, repo.PutMemory(ctx, entry))

	listed := gt.R1(repo.ListMemories(ctx, userID, 0)).NoError(t)
	gt.A(t, listed).Length(1)
	gt.V(t, listed[0].ID).Equal(entry.ID)
	gt.V(t, listed[0].Content).Equal(entry.Content)

	// Update in place via same ID
	entry.Content = "prefers Rust, Go and systems programming"
	gt.NoError(t, repo.PutMemory(ctx, entry))

	listed = gt.R1(repo.ListMemories(ctx, userID, 0)).NoError(t)
	gt.A(t, listed).Length(1)
	gt.V(t, listed[0].Content).Equal("prefers Rust, Go and systems programming")

	gt.NoError(t, repo.DeleteMemory(ctx, userID, entry.ID))

	listed = gt.R1(repo.ListMemories(ctx, userID, 0)).NoError(t)
	gt.A(t, listed).Length(0)

	err := repo.DeleteMemory(ctx, userID, entry.ID)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestMemorySearch tests keyword search over memory entries.
func TestMemorySearch(t *testing.T, repo interfaces.MemoryRepository) {
	ctx := context.Background()
	userID := newUserID()
	base := time.Now().UTC().Truncate(time.Millisecond)

	gt.NoError(t, repo.PutMemory(ctx, newEntry(userID, "interested in machine learning frameworks", base.Add(-2*time.Hour))))
	gt.NoError(t, repo.PutMemory(ctx, newEntry(userID, "asked about Machine Learning in Python before", base.Add(-time.Hour))))
	gt.NoError(t, repo.PutMemory(ctx, newEntry(userID, "dislikes JavaScript tooling churn", base)))

	found := gt.R1(repo.SearchMemories(ctx, userID, "machine learning", 0)).NoError(t)
	gt.A(t, found).Length(2)
	// Newest first
	gt.V(t, found[0].CreatedAt.After(found[1].CreatedAt)).Equal(true)

	found = gt.R1(repo.SearchMemories(ctx, userID, "machine learning", 1)).NoError(t)
	gt.A(t, found).Length(1)

	found = gt.R1(repo.SearchMemories(ctx, userID, "haskell", 0)).NoError(t)
	gt.A(t, found).Length(0)
}

// TestMemoryIsolationBetweenUsers verifies entries are keyed per user.
func TestMemoryIsolationBetweenUsers(t *testing.T, repo interfaces.MemoryRepository) {
	ctx := context.Background()
	alice := newUserID()
	bob := newUserID()
	now := time.Now().UTC()

	gt.NoError(t, repo.PutMemory(ctx, newEntry(alice, "alice likes Go", now)))
	gt.NoError(t, repo.PutMemory(ctx, newEntry(bob, "bob likes Python", now)))

	aliceEntries := gt.R1(repo.ListMemories(ctx, alice, 0)).NoError(t)
	gt.A(t, aliceEntries).Length(1)
	gt.V(t, aliceEntries[0].Content).Equal("alice likes Go")

	bobEntries := gt.R1(repo.ListMemories(ctx, bob, 0)).NoError(t)
	gt.A(t, bobEntries).Length(1)
	gt.V(t, bobEntries[0].Content).Equal("bob likes Python")
}

// TestHistoryAppendAndGet tests conversation history persistence.
func TestHistoryAppendAndGet(t *testing.T, repo interfaces.MemoryRepository) {
	ctx := context.Background()
	sessionID := types.NewSessionID()
	now := time.Now().UTC().Truncate(time.Millisecond)

	gt.NoError(t, repo.AppendHistory(ctx, sessionID, []*model.ChatMessage{
		{Role: model.RoleUser, Content: "what is trending in rust?", CreatedAt: now},
		{Role: model.RoleAssistant, Content: "here are the trending Rust repositories", CreatedAt: now.Add(time.Second)},
	}))

	history := gt.R1(repo.GetHistory(ctx, sessionID, 0)).NoError(t)
	gt.A(t, history).Length(2)
	gt.V(t, history[0].Role).Equal(model.RoleUser)
	gt.V(t, history[1].Role).Equal(model.RoleAssistant)

	// Unknown session yields empty history, not an error
	empty := gt.R1(repo.GetHistory(ctx, types.NewSessionID(), 0)).NoError(t)
	gt.A(t, empty).Length(0)
}

// TestHistoryLimit verifies the most recent N messages are returned.
func TestHistoryLimit(t *testing.T, repo interfaces.MemoryRepository) {
	ctx := context.Background()
	sessionID := types.NewSessionID()
	base := time.Now().UTC().Truncate(time.Millisecond)

	for i := 0; i < 5; i++ {
		gt.NoError(t, repo.AppendHistory(ctx, sessionID, []*model.ChatMessage{
			{Role: model.RoleUser, Content: fmt.Sprintf("message %d", i), CreatedAt: base.Add(time.Duration(i) * time.Second)},
		}))
	}

	history := gt.R1(repo.GetHistory(ctx, sessionID, 2)).NoError(t)
	gt.A(t, history).Length(2)
	gt.V(t, history[0].Content).Equal("message 3")
	gt.V(t, history[1].Content).Equal("message 4")
}
