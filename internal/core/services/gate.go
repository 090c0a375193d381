package services

import (
	"context"

	"github.com/google/uuid"

	"sdlc-studio-service/internal/core/domain"
	ports "sdlc-studio-service/internal/core/ports/output"
)

// GateService records stage gate reviews.
type GateService struct {
	projects   ports.ProjectRepository
	gates      ports.GateReviewRepository
	activities ports.ActivityRepository
}

func NewGateService(projects ports.ProjectRepository, gates ports.GateReviewRepository, activities ports.ActivityRepository) *GateService {
	return &GateService{projects: projects, gates: gates, activities: activities}
}

func (s *GateService) Submit(ctx context.Context, projectID uuid.UUID, stageName, reviewerID, statusName, comment string) (*domain.GateReview, error) {
	stage, err := domain.ParseStage(stageName)
	if err != nil {
		return nil, err
	}
	status, err := domain.ParseGateStatus(statusName)
	if err != nil {
		return nil, err
	}
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	review, err := domain.NewGateReview(projectID, stage, reviewerID, status, comment)
	if err != nil {
		return nil, err
	}
	if err := s.gates.Create(ctx, review); err != nil {
		return nil, err
	}

	activity := domain.NewActivity(projectID, reviewerID, "gate_reviewed", map[string]any{
		"stage":  string(stage),
		"status": string(status),
	})
	_ = s.activities.Create(ctx, activity)

	return review, nil
}

func (s *GateService) List(ctx context.Context, projectID uuid.UUID) ([]*domain.GateReview, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.gates.ListByProject(ctx, projectID)
}
