package dto

import (
	"time"

	"github.com/google/uuid"

	"sdlc-studio-service/internal/core/domain"
)

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description"`
	CreatedBy   string `json:"created_by"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type SetStageRequest struct {
	Stage  string `json:"stage" binding:"required"`
	UserID string `json:"user_id"`
}

type SetStagesConfigRequest struct {
	StagesConfig map[string]any `json:"stages_config" binding:"required"`
}

type ProjectResponse struct {
	ID           uuid.UUID      `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	CreatedBy    string         `json:"created_by"`
	CurrentStage string         `json:"current_stage"`
	StagesConfig map[string]any `json:"stages_config"`
	CreatedAt    string         `json:"created_at"`
	UpdatedAt    string         `json:"updated_at"`
}

func ToProjectResponse(p *domain.Project) ProjectResponse {
	// The github block carries the encrypted token; responses expose
	// only a configured flag.
	config := make(map[string]any, len(p.StagesConfig))
	for k, v := range p.StagesConfig {
		if k == "github" {
			cfg, _ := p.GitHubConfig()
			config[k] = map[string]any{
				"repo":           cfg.Repo,
				"default_branch": cfg.DefaultBranch,
				"configured_at":  cfg.ConfiguredAt,
				"is_configured":  true,
			}
			continue
		}
		config[k] = v
	}
	return ProjectResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		CreatedBy:    p.CreatedBy,
		CurrentStage: string(p.CurrentStage),
		StagesConfig: config,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    p.UpdatedAt.Format(time.RFC3339),
	}
}

type CommitResponse struct {
	ID        uuid.UUID        `json:"id"`
	ProjectID uuid.UUID        `json:"project_id"`
	Stage     string           `json:"stage"`
	AuthorID  string           `json:"author_id"`
	Message   string           `json:"message"`
	Changes   domain.ChangeSet `json:"changes"`
	CreatedAt string           `json:"created_at"`
}

func ToCommitResponse(c *domain.Commit) CommitResponse {
	return CommitResponse{
		ID:        c.ID,
		ProjectID: c.ProjectID,
		Stage:     string(c.Stage),
		AuthorID:  c.AuthorID,
		Message:   c.Message,
		Changes:   c.Changes,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

type ActivityResponse struct {
	ID        uuid.UUID      `json:"id"`
	ProjectID uuid.UUID      `json:"project_id"`
	UserID    string         `json:"user_id"`
	Type      string         `json:"type"`
	Data      map[string]any `json:"data"`
	CreatedAt string         `json:"created_at"`
}

func ToActivityResponse(a *domain.Activity) ActivityResponse {
	return ActivityResponse{
		ID:        a.ID,
		ProjectID: a.ProjectID,
		UserID:    a.UserID,
		Type:      a.Type,
		Data:      a.Data,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}
