package dto

import (
	"time"

	"github.com/google/uuid"

	"sdlc-studio-service/internal/core/domain"
)

type ChatSendRequest struct {
	ProjectID uuid.UUID `json:"project_id" binding:"required"`
	Stage     string    `json:"stage" binding:"required"`
	Message   string    `json:"message" binding:"required"`
	UserID    string    `json:"user_id"`
}

type ChatSendResponse struct {
	Reply      string `json:"reply"`
	Stage      string `json:"stage"`
	TokensUsed int    `json:"tokens_used"`
}

type ChatMessageResponse struct {
	ID        uuid.UUID      `json:"id"`
	ProjectID uuid.UUID      `json:"project_id"`
	Stage     string         `json:"stage"`
	Role      string         `json:"role"`
	Content   string         `json:"content"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt string         `json:"created_at"`
}

func ToChatMessageResponse(m *domain.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		Stage:     string(m.Stage),
		Role:      m.Role,
		Content:   m.Content,
		Metadata:  m.Metadata,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}

type ChatHistoryResponse struct {
	Messages []ChatMessageResponse `json:"messages"`
	Total    int                   `json:"total"`
}

type ChatClearResponse struct {
	Deleted int `json:"deleted"`
}
