package dto

import (
	"time"

	"github.com/google/uuid"

	"sdlc-studio-service/internal/core/domain"
)

type RegenerateArtifactRequest struct {
	ArtifactID uuid.UUID `json:"artifact_id" binding:"required"`
	Feedback   string    `json:"feedback" binding:"required"`
	UserID     string    `json:"user_id"`
}

type ArtifactResponse struct {
	ID        uuid.UUID      `json:"id"`
	ProjectID uuid.UUID      `json:"project_id"`
	Stage     string         `json:"stage"`
	Type      string         `json:"type"`
	Name      string         `json:"name"`
	Content   string         `json:"content"`
	Version   int            `json:"version"`
	CreatedBy string         `json:"created_by"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt string         `json:"created_at"`
	UpdatedAt string         `json:"updated_at"`
}

func ToArtifactResponse(a *domain.Artifact) ArtifactResponse {
	return ArtifactResponse{
		ID:        a.ID,
		ProjectID: a.ProjectID,
		Stage:     string(a.Stage),
		Type:      string(a.Type),
		Name:      a.Name,
		Content:   a.Content,
		Version:   a.Version,
		CreatedBy: a.CreatedBy,
		Metadata:  a.Metadata,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
	}
}

func ToArtifactResponses(artifacts []*domain.Artifact) []ArtifactResponse {
	items := make([]ArtifactResponse, 0, len(artifacts))
	for _, a := range artifacts {
		items = append(items, ToArtifactResponse(a))
	}
	return items
}
