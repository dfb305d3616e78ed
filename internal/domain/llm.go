package domain

import "context"

// LLMChatRole identifies the author of a chat message.
type LLMChatRole string

const (
	LLMChatRole_System    LLMChatRole = "system"
	LLMChatRole_User      LLMChatRole = "user"
	LLMChatRole_Assistant LLMChatRole = "assistant"
)

// LLMChatMessage is a single message in a chat completion request.
type LLMChatMessage struct {
	Role    LLMChatRole
	Content string
}

// LLMChatRequest is a chat completion request to the language model.
type LLMChatRequest struct {
	Model       string
	Messages    []LLMChatMessage
	Temperature float64
	MaxTokens   int
	JSONMode    bool
}

// EmbedResponse represents the response from an embedding request to the LLM API.
type EmbedResponse struct {
	Embedding   []float64
	TotalTokens int
}

// LLMClient defines the interface for interacting with an LLM API.
type LLMClient interface {
	// Chat sends a chat request to the LLM and returns the assistant content.
	Chat(ctx context.Context, req LLMChatRequest) (string, error)
	// Embed creates an embedding for the given input string using the model.
	Embed(ctx context.Context, model, input string) (EmbedResponse, error)
}
