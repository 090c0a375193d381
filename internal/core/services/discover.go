package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"sdlc-studio-service/internal/core/domain"
	ports "sdlc-studio-service/internal/core/ports/output"
	"sdlc-studio-service/internal/core/prompts"
)

// DiscoverService generates the Discover stage artifacts.
type DiscoverService struct {
	projects  ports.ProjectRepository
	artifacts ports.ArtifactRepository
	chats     ports.ChatRepository
	ai        ports.AIClient
	recorder  generationRecorder
}

func NewDiscoverService(projects ports.ProjectRepository, artifacts ports.ArtifactRepository, chats ports.ChatRepository, ai ports.AIClient, commits ports.CommitRepository, activities ports.ActivityRepository) *DiscoverService {
	return &DiscoverService{
		projects:  projects,
		artifacts: artifacts,
		chats:     chats,
		ai:        ai,
		recorder:  generationRecorder{commits: commits, activities: activities},
	}
}

// Generate produces the Problem Statement and Stakeholder Analysis
// from the project idea and the discover conversation, then advances
// the project to Define.
func (s *DiscoverService) Generate(ctx context.Context, projectID uuid.UUID, idea, userID string) ([]*domain.Artifact, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	history, err := s.chats.ListByStage(ctx, projectID, domain.StageDiscover, chatHistoryWindow)
	if err != nil {
		return nil, err
	}

	input := projectHeader(project)
	if idea != "" {
		input += "Idea:\n" + idea + "\n"
	}
	input += formatChatHistory(history)

	problem, err := s.ai.Generate(ctx, prompts.ProblemStatement, input, 4000)
	if err != nil {
		return nil, err
	}
	stakeholders, err := s.ai.Generate(ctx, prompts.StakeholderAnalysis, input, 4000)
	if err != nil {
		return nil, err
	}

	created := []*domain.Artifact{
		domain.NewArtifact(projectID, domain.StageDiscover, domain.ArtifactProblemStatement, "Problem Statement", problem, userID, nil),
		domain.NewArtifact(projectID, domain.StageDiscover, domain.ArtifactStakeholderAnalysis, "Stakeholder Analysis", stakeholders, userID, nil),
	}
	names := make([]string, 0, len(created))
	for _, a := range created {
		if err := s.artifacts.Create(ctx, a); err != nil {
			return nil, err
		}
		names = append(names, a.Name)
	}

	if err := advanceStage(ctx, s.projects, project, domain.StageDefine); err != nil {
		return nil, err
	}

	s.recorder.record(ctx, projectID, domain.StageDiscover, userID,
		fmt.Sprintf("Generate discover artifacts (%d documents)", len(created)),
		"discover_completed",
		domain.ChangeSet{Added: names},
		map[string]any{"artifacts": names})

	return created, nil
}
