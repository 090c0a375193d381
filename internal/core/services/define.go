package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"sdlc-studio-service/internal/core/domain"
	ports "sdlc-studio-service/internal/core/ports/output"
	"sdlc-studio-service/internal/core/prompts"
)

// DefineService generates the Define stage artifacts.
type DefineService struct {
	projects  ports.ProjectRepository
	artifacts ports.ArtifactRepository
	chats     ports.ChatRepository
	ai        ports.AIClient
	recorder  generationRecorder
}

func NewDefineService(projects ports.ProjectRepository, artifacts ports.ArtifactRepository, chats ports.ChatRepository, ai ports.AIClient, commits ports.CommitRepository, activities ports.ActivityRepository) *DefineService {
	return &DefineService{
		projects:  projects,
		artifacts: artifacts,
		chats:     chats,
		ai:        ai,
		recorder:  generationRecorder{commits: commits, activities: activities},
	}
}

// Generate produces the BRD and User Stories from the discover
// artifacts and the define conversation, then advances the project
// to Design. Discover must have run first.
func (s *DefineService) Generate(ctx context.Context, projectID uuid.UUID, userID string) ([]*domain.Artifact, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	problem, err := s.artifacts.LatestByType(ctx, projectID, domain.ArtifactProblemStatement)
	if err != nil {
		if errors.Is(err, domain.ErrArtifactNotFound) {
			return nil, domain.ErrDiscoverIncomplete
		}
		return nil, err
	}

	input := projectHeader(project)
	input += "Problem Statement:\n" + problem.Content + "\n"
	if stakeholders, err := s.artifacts.LatestByType(ctx, projectID, domain.ArtifactStakeholderAnalysis); err == nil {
		input += "Stakeholder Analysis:\n" + stakeholders.Content + "\n"
	}
	history, err := s.chats.ListByStage(ctx, projectID, domain.StageDefine, chatHistoryWindow)
	if err != nil {
		return nil, err
	}
	input += formatChatHistory(history)

	brd, err := s.ai.Generate(ctx, prompts.BRD, input, 6000)
	if err != nil {
		return nil, err
	}
	stories, err := s.ai.Generate(ctx, prompts.UserStories, input, 6000)
	if err != nil {
		return nil, err
	}

	created := []*domain.Artifact{
		domain.NewArtifact(projectID, domain.StageDefine, domain.ArtifactBRD, "Business Requirements Document", brd, userID, nil),
		domain.NewArtifact(projectID, domain.StageDefine, domain.ArtifactUserStories, "User Stories", stories, userID, nil),
	}
	names := make([]string, 0, len(created))
	for _, a := range created {
		if err := s.artifacts.Create(ctx, a); err != nil {
			return nil, err
		}
		names = append(names, a.Name)
	}

	if err := advanceStage(ctx, s.projects, project, domain.StageDesign); err != nil {
		return nil, err
	}

	s.recorder.record(ctx, projectID, domain.StageDefine, userID,
		fmt.Sprintf("Generate define artifacts (%d documents)", len(created)),
		"define_completed",
		domain.ChangeSet{Added: names},
		map[string]any{"artifacts": names})

	return created, nil
}
