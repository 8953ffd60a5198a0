package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trendchat/pkg/domain/types"
)

// ChatRole is the author of a conversation message.
type ChatRole string

const (
	RoleSystem    ChatRole = "system"
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
	RoleTool      ChatRole = "tool"
)

// ChatMessage is one turn of the conversation kept in the memory store.
type ChatMessage struct {
	Role      ChatRole  `json:"role" firestore:"role"`
	Content   string    `json:"content" firestore:"content"`
	CreatedAt time.Time `json:"created_at" firestore:"created_at"`
}

// ChatInput is a single user utterance handed to the agent.
type ChatInput struct {
	SessionID types.SessionID
	UserID    types.UserID
	Message   string
}

func (x *ChatInput) Validate() error {
	if x.Message == "" {
		return goerr.Wrap(types.ErrInvalidParameter, "message is empty")
	}
	return nil
}

// ToolCallLog records one tool invocation made while answering a turn.
type ToolCallLog struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
	Result    string `json:"result"`
}

// ChatOutput is the agent's answer for one turn.
type ChatOutput struct {
	SessionID types.SessionID `json:"session_id"`
	Reply     string          `json:"reply"`
	ToolCalls []ToolCallLog   `json:"tool_calls,omitempty"`
}

// ChatRecord is the BigQuery export row for one completed turn. Timestamp
// is microseconds of epoch time for the Storage Write API.
type ChatRecord struct {
	SessionID string        `json:"session_id"`
	UserID    string        `json:"user_id"`
	Message   string        `json:"message"`
	Reply     string        `json:"reply"`
	ToolCalls []ToolCallLog `json:"tool_calls,omitempty"`
	Timestamp int64         `json:"timestamp"`
}
