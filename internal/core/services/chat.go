package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"sdlc-studio-service/internal/core/domain"
	ports "sdlc-studio-service/internal/core/ports/output"
	"sdlc-studio-service/internal/core/prompts"
)

// chatHistoryWindow bounds how many prior turns feed the model.
const chatHistoryWindow = 20

type ChatService struct {
	chats    ports.ChatRepository
	projects ports.ProjectRepository
	ai       ports.AIClient
}

func NewChatService(chats ports.ChatRepository, projects ports.ProjectRepository, ai ports.AIClient) *ChatService {
	return &ChatService{chats: chats, projects: projects, ai: ai}
}

// ChatReply is the assistant's answer to one Send call.
type ChatReply struct {
	Reply      string
	Stage      domain.Stage
	TokensUsed int
}

// Send routes a message to the stage specialist, persists both sides
// of the exchange, and returns the reply.
func (s *ChatService) Send(ctx context.Context, projectID uuid.UUID, stageName, message, userID string) (*ChatReply, error) {
	stage, err := domain.ParseStage(stageName)
	if err != nil {
		return nil, err
	}
	persona, ok := prompts.PersonaForStage(stage)
	if !ok {
		return nil, domain.ErrInvalidStage
	}
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	history, err := s.chats.ListByStage(ctx, projectID, stage, chatHistoryWindow)
	if err != nil {
		return nil, err
	}

	turns := make([]ports.ChatTurn, 0, len(history)+2)
	turns = append(turns, ports.ChatTurn{
		Role:    "system",
		Content: fmt.Sprintf("%s\n\nProject context:\n%s", persona, projectHeader(project)),
	})
	for _, m := range history {
		turns = append(turns, ports.ChatTurn{Role: m.Role, Content: m.Content})
	}
	turns = append(turns, ports.ChatTurn{Role: domain.RoleUser, Content: message})

	reply, tokens, err := s.ai.Chat(ctx, turns, 2000)
	if err != nil {
		return nil, err
	}

	userMsg := domain.NewChatMessage(projectID, stage, domain.RoleUser, message, map[string]any{"user_id": userID})
	if err := s.chats.Create(ctx, userMsg); err != nil {
		return nil, err
	}
	assistantMsg := domain.NewChatMessage(projectID, stage, domain.RoleAssistant, reply, map[string]any{"tokens_used": tokens})
	if err := s.chats.Create(ctx, assistantMsg); err != nil {
		return nil, err
	}

	return &ChatReply{Reply: reply, Stage: stage, TokensUsed: tokens}, nil
}

// History returns the stage conversation oldest-first. An unknown
// stage yields an empty history rather than an error.
func (s *ChatService) History(ctx context.Context, projectID uuid.UUID, stageName string, limit int) ([]*domain.ChatMessage, error) {
	stage, err := domain.ParseStage(stageName)
	if err != nil {
		return []*domain.ChatMessage{}, nil
	}
	if limit <= 0 {
		limit = 100
	}
	return s.chats.ListByStage(ctx, projectID, stage, limit)
}

// Clear deletes the stage conversation and returns how many messages
// were removed. An unknown stage clears nothing.
func (s *ChatService) Clear(ctx context.Context, projectID uuid.UUID, stageName string) (int, error) {
	stage, err := domain.ParseStage(stageName)
	if err != nil {
		return 0, nil
	}
	return s.chats.DeleteByStage(ctx, projectID, stage)
}
