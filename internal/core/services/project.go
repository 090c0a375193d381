package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sdlc-studio-service/internal/core/domain"
	ports "sdlc-studio-service/internal/core/ports/output"
)

type ProjectService struct {
	repo       ports.ProjectRepository
	commits    ports.CommitRepository
	activities ports.ActivityRepository
}

func NewProjectService(repo ports.ProjectRepository, commits ports.CommitRepository, activities ports.ActivityRepository) *ProjectService {
	return &ProjectService{repo: repo, commits: commits, activities: activities}
}

func (s *ProjectService) Create(ctx context.Context, name, description, createdBy string) (*domain.Project, error) {
	project, err := domain.NewProject(name, description, createdBy)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}

	activity := domain.NewActivity(project.ID, createdBy, "project_created", map[string]any{
		"name": project.Name,
	})
	_ = s.activities.Create(ctx, activity)

	return project, nil
}

func (s *ProjectService) Get(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ProjectService) List(ctx context.Context, limit, offset int) ([]*domain.Project, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, limit, offset)
}

func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*domain.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["name"]; ok && v != nil {
		name, ok := v.(string)
		if !ok || name == "" {
			return nil, domain.ErrInvalidProjectName
		}
		project.Name = name
	}
	if v, ok := updates["description"]; ok && v != nil {
		if description, ok := v.(string); ok {
			project.Description = description
		}
	}
	project.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// SetStage moves the project to a stage and updates the per-stage
// status map: the target becomes active, earlier stages completed,
// later stages pending.
func (s *ProjectService) SetStage(ctx context.Context, id uuid.UUID, stageName, userID string) (*domain.Project, error) {
	stage, err := domain.ParseStage(stageName)
	if err != nil {
		return nil, err
	}
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := project.CurrentStage
	project.CurrentStage = stage
	applyStageTransition(project, stage)
	project.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}

	activity := domain.NewActivity(project.ID, userID, "stage_changed", map[string]any{
		"from": string(previous),
		"to":   string(stage),
	})
	_ = s.activities.Create(ctx, activity)

	return project, nil
}

// SetStagesConfig replaces the per-stage status map. Integration
// blocks such as "github" are preserved unless the caller supplies
// replacements for them.
func (s *ProjectService) SetStagesConfig(ctx context.Context, id uuid.UUID, config map[string]any) (*domain.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if gh, ok := project.StagesConfig["github"]; ok {
		if _, supplied := config["github"]; !supplied {
			config["github"] = gh
		}
	}
	project.StagesConfig = config
	project.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) ListCommits(ctx context.Context, id uuid.UUID, stageName string, limit int) ([]*domain.Commit, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	var stage domain.Stage
	if stageName != "" {
		parsed, err := domain.ParseStage(stageName)
		if err != nil {
			return nil, err
		}
		stage = parsed
	}
	if limit <= 0 {
		limit = 50
	}
	return s.commits.ListByProject(ctx, id, stage, limit)
}

func (s *ProjectService) ListActivity(ctx context.Context, id uuid.UUID, limit int) ([]*domain.Activity, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	return s.activities.ListByProject(ctx, id, limit)
}

// applyStageTransition rewrites each stage's status relative to the
// new current stage, keeping non-stage keys (github) untouched.
func applyStageTransition(project *domain.Project, current domain.Stage) {
	if project.StagesConfig == nil {
		project.StagesConfig = domain.DefaultStagesConfig()
	}
	target := current.Order()
	for i, stage := range domain.AllStages() {
		status := "pending"
		switch {
		case i+1 < target:
			status = "completed"
		case i+1 == target:
			status = "active"
		}
		entry, _ := project.StagesConfig[string(stage)].(map[string]any)
		if entry == nil {
			entry = map[string]any{"order": i + 1}
		}
		entry["status"] = status
		project.StagesConfig[string(stage)] = entry
	}
}
