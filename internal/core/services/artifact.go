package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sdlc-studio-service/internal/core/domain"
	ports "sdlc-studio-service/internal/core/ports/output"
	"sdlc-studio-service/internal/core/prompts"
)

type ArtifactService struct {
	artifacts ports.ArtifactRepository
	projects  ports.ProjectRepository
	ai        ports.AIClient
	recorder  generationRecorder
}

func NewArtifactService(artifacts ports.ArtifactRepository, projects ports.ProjectRepository, ai ports.AIClient, commits ports.CommitRepository, activities ports.ActivityRepository) *ArtifactService {
	return &ArtifactService{
		artifacts: artifacts,
		projects:  projects,
		ai:        ai,
		recorder:  generationRecorder{commits: commits, activities: activities},
	}
}

func (s *ArtifactService) Get(ctx context.Context, id uuid.UUID) (*domain.Artifact, error) {
	return s.artifacts.GetByID(ctx, id)
}

func (s *ArtifactService) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.Artifact, error) {
	return s.artifacts.ListByProject(ctx, projectID, ports.ArtifactFilter{})
}

func (s *ArtifactService) ListByStage(ctx context.Context, projectID uuid.UUID, stageName string) ([]*domain.Artifact, error) {
	stage, err := domain.ParseStage(stageName)
	if err != nil {
		return nil, err
	}
	return s.artifacts.ListByProject(ctx, projectID, ports.ArtifactFilter{Stage: stage})
}

// Regenerate produces a new version of an artifact by feeding the
// current content and the reviewer feedback back to the model. The
// original row is untouched; the new row carries the lineage in its
// metadata and a " vN" name suffix.
func (s *ArtifactService) Regenerate(ctx context.Context, artifactID uuid.UUID, feedback, userID string) (*domain.Artifact, error) {
	if feedback == "" {
		return nil, domain.ErrMissingFeedback
	}
	original, err := s.artifacts.GetByID(ctx, artifactID)
	if err != nil {
		return nil, err
	}
	project, err := s.projects.GetByID(ctx, original.ProjectID)
	if err != nil {
		return nil, err
	}

	user := fmt.Sprintf("%s\nDocument:\n%s\n\nFeedback:\n%s", projectHeader(project), original.Content, feedback)
	content, err := s.ai.Generate(ctx, prompts.Regenerate, user, 8000)
	if err != nil {
		return nil, err
	}

	next := domain.NewArtifact(original.ProjectID, original.Stage, original.Type,
		fmt.Sprintf("%s v%d", original.BaseName(), original.Version+1),
		content, userID, map[string]any{
			"regenerated_from":   original.ID.String(),
			"feedback":           feedback,
			"regenerated_at":     time.Now().UTC().Format(time.RFC3339),
			"regeneration_count": regenerationCount(original.Metadata) + 1,
		})
	next.Version = original.Version + 1

	if err := s.artifacts.Create(ctx, next); err != nil {
		return nil, err
	}

	s.recorder.record(ctx, project.ID, original.Stage, userID,
		fmt.Sprintf("Regenerate %s (v%d)", original.BaseName(), next.Version),
		"artifact_regenerated",
		domain.ChangeSet{Added: []string{next.Name}},
		map[string]any{
			"artifact_id": next.ID.String(),
			"source_id":   original.ID.String(),
			"version":     next.Version,
		})

	return next, nil
}

// regenerationCount reads the running count from artifact metadata.
// JSON round-trips stored it as float64, fresh metadata as int.
func regenerationCount(metadata map[string]any) int {
	switch v := metadata["regeneration_count"].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}
