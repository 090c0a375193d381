package domain

import (
	"time"

	"github.com/google/uuid"
)

// Chat message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn in a stage specialist conversation.
type ChatMessage struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Stage     Stage
	Role      string
	Content   string
	CreatedAt time.Time
	Metadata  map[string]any
}

// NewChatMessage creates a chat message for a project stage.
func NewChatMessage(projectID uuid.UUID, stage Stage, role, content string, metadata map[string]any) *ChatMessage {
	if metadata == nil {
		metadata = map[string]any{}
	}
	return &ChatMessage{
		ID:        uuid.New(),
		ProjectID: projectID,
		Stage:     stage,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
		Metadata:  metadata,
	}
}
