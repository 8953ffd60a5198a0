package model

// LLMMessage is one message of an LLM exchange. It mirrors the chat
// completion message shape without depending on a vendor SDK.
type LLMMessage struct {
	Role       ChatRole
	Content    string
	Name       string
	ToolCallID string
	ToolCalls  []LLMToolCall
}

// LLMToolCall is a tool invocation requested by the model.
type LLMToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// LLMReply is the model output for one completion call.
type LLMReply struct {
	Content   string
	ToolCalls []LLMToolCall
}

// ToolSpec declares one callable tool to the model. Parameters is a JSON
// schema object.
type ToolSpec struct {
	Name        string
	Description string
	Parameters  map[string]any
}
