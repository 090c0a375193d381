package ports

import "context"

// ChatTurn is one message of a model conversation.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AIClient talks to the language model backend.
type AIClient interface {
	// Generate runs a single system+user exchange and returns the
	// model's text.
	Generate(ctx context.Context, system, user string, maxTokens int) (string, error)
	// Chat runs a multi-turn conversation and returns the reply text
	// and the total tokens consumed.
	Chat(ctx context.Context, turns []ChatTurn, maxTokens int) (string, int, error)
}
