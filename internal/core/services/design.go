package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"sdlc-studio-service/internal/core/domain"
	ports "sdlc-studio-service/internal/core/ports/output"
	"sdlc-studio-service/internal/core/prompts"
)

// DesignService generates architecture options and expands the
// selected one into the architecture document.
type DesignService struct {
	projects  ports.ProjectRepository
	artifacts ports.ArtifactRepository
	chats     ports.ChatRepository
	ai        ports.AIClient
	recorder  generationRecorder
}

func NewDesignService(projects ports.ProjectRepository, artifacts ports.ArtifactRepository, chats ports.ChatRepository, ai ports.AIClient, commits ports.CommitRepository, activities ports.ActivityRepository) *DesignService {
	return &DesignService{
		projects:  projects,
		artifacts: artifacts,
		chats:     chats,
		ai:        ai,
		recorder:  generationRecorder{commits: commits, activities: activities},
	}
}

// solutionOptions mirrors the JSON schema the model is asked for.
type solutionOptions struct {
	Options []struct {
		ID int `json:"id"`
	} `json:"options"`
	Recommendation map[string]any `json:"recommendation"`
}

// GenerateOptions produces the Solution Options artifact: three
// candidate architectures as JSON. Define must have run first.
func (s *DesignService) GenerateOptions(ctx context.Context, projectID uuid.UUID, constraints, userID string) (*domain.Artifact, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	input, err := s.requirementsContext(ctx, project)
	if err != nil {
		return nil, err
	}
	if constraints != "" {
		input += "Constraints:\n" + constraints + "\n"
	}
	history, err := s.chats.ListByStage(ctx, projectID, domain.StageDesign, chatHistoryWindow)
	if err != nil {
		return nil, err
	}
	input += formatChatHistory(history)

	raw, err := s.ai.Generate(ctx, prompts.SolutionOptions, input, 6000)
	if err != nil {
		return nil, err
	}
	var parsed solutionOptions
	if err := decodeAIJSON(raw, &parsed); err != nil {
		return nil, err
	}
	content := stripJSONFences(raw)

	artifact := domain.NewArtifact(projectID, domain.StageDesign, domain.ArtifactSolutionOptions, "Solution Options", content, userID, map[string]any{
		"option_count": len(parsed.Options),
	})
	if err := s.artifacts.Create(ctx, artifact); err != nil {
		return nil, err
	}

	s.recorder.record(ctx, projectID, domain.StageDesign, userID,
		"Generate solution options",
		"design_options_generated",
		domain.ChangeSet{Added: []string{artifact.Name}},
		map[string]any{"artifact_id": artifact.ID.String(), "option_count": len(parsed.Options)})

	return artifact, nil
}

// SelectOption expands the chosen option into the Architecture
// Document and advances the project to Develop.
func (s *DesignService) SelectOption(ctx context.Context, projectID uuid.UUID, optionID int, userID string) (*domain.Artifact, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	options, err := s.artifacts.LatestByType(ctx, projectID, domain.ArtifactSolutionOptions)
	if err != nil {
		if errors.Is(err, domain.ErrArtifactNotFound) {
			return nil, domain.ErrInvalidArchitectureOption
		}
		return nil, err
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(options.Content), &parsed); err != nil {
		return nil, domain.ErrAIResponseNotJSON
	}
	selected, ok := findOption(parsed, optionID)
	if !ok {
		return nil, domain.ErrInvalidArchitectureOption
	}
	selectedJSON, _ := json.Marshal(selected)

	input, err := s.requirementsContext(ctx, project)
	if err != nil {
		return nil, err
	}
	input += "Selected architecture option:\n" + string(selectedJSON) + "\n"

	content, err := s.ai.Generate(ctx, prompts.Architecture, input, 8000)
	if err != nil {
		return nil, err
	}

	artifact := domain.NewArtifact(projectID, domain.StageDesign, domain.ArtifactArchitecture, "Architecture Document", content, userID, map[string]any{
		"selected_option": optionID,
	})
	if err := s.artifacts.Create(ctx, artifact); err != nil {
		return nil, err
	}

	if err := advanceStage(ctx, s.projects, project, domain.StageDevelop); err != nil {
		return nil, err
	}

	s.recorder.record(ctx, projectID, domain.StageDesign, userID,
		fmt.Sprintf("Select architecture option %d", optionID),
		"design_completed",
		domain.ChangeSet{Added: []string{artifact.Name}},
		map[string]any{"artifact_id": artifact.ID.String(), "selected_option": optionID})

	return artifact, nil
}

// requirementsContext assembles the define-stage material every design
// prompt starts from. Missing requirements mean Define has not run.
func (s *DesignService) requirementsContext(ctx context.Context, project *domain.Project) (string, error) {
	brd, err := s.artifacts.LatestByType(ctx, project.ID, domain.ArtifactBRD)
	if err != nil {
		if errors.Is(err, domain.ErrArtifactNotFound) {
			return "", domain.ErrDefineIncomplete
		}
		return "", err
	}
	input := projectHeader(project)
	input += "Business Requirements:\n" + brd.Content + "\n"
	if stories, err := s.artifacts.LatestByType(ctx, project.ID, domain.ArtifactUserStories); err == nil {
		input += "User Stories:\n" + stories.Content + "\n"
	}
	return input, nil
}

func findOption(parsed map[string]any, optionID int) (map[string]any, bool) {
	options, _ := parsed["options"].([]any)
	for _, raw := range options {
		option, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if id, ok := option["id"].(float64); ok && int(id) == optionID {
			return option, true
		}
	}
	return nil, false
}
