package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sdlc-studio-service/internal/core/domain"
	"sdlc-studio-service/internal/testutil"
)

func newDefineService() (*DefineService, *testutil.MockProjectRepo, *testutil.MockArtifactRepo, *testutil.MockChatRepo, *testutil.MockAIClient) {
	projects := new(testutil.MockProjectRepo)
	artifacts := new(testutil.MockArtifactRepo)
	chats := new(testutil.MockChatRepo)
	ai := new(testutil.MockAIClient)
	commits := new(testutil.MockCommitRepo)
	activities := new(testutil.MockActivityRepo)
	commits.On("Create", mock.Anything, mock.AnythingOfType("*domain.Commit")).Return(nil).Maybe()
	activities.On("Create", mock.Anything, mock.AnythingOfType("*domain.Activity")).Return(nil).Maybe()
	return NewDefineService(projects, artifacts, chats, ai, commits, activities), projects, artifacts, chats, ai
}

func TestDefineService_Generate(t *testing.T) {
	svc, projects, artifacts, chats, ai := newDefineService()

	project, _ := domain.NewProject("p", "d", "user-1")
	problem := domain.NewArtifact(project.ID, domain.StageDiscover, domain.ArtifactProblemStatement, "Problem Statement", "the problem", "user-1", nil)

	projects.On("GetByID", mock.Anything, project.ID).Return(project, nil)
	projects.On("Update", mock.Anything, project).Return(nil)
	artifacts.On("LatestByType", mock.Anything, project.ID, domain.ArtifactProblemStatement).Return(problem, nil)
	artifacts.On("LatestByType", mock.Anything, project.ID, domain.ArtifactStakeholderAnalysis).Return(nil, domain.ErrArtifactNotFound)
	chats.On("ListByStage", mock.Anything, project.ID, domain.StageDefine, chatHistoryWindow).
		Return([]*domain.ChatMessage{}, nil)
	ai.On("Generate", mock.Anything, mock.Anything, mock.Anything, 6000).Return("doc", nil).Twice()
	artifacts.On("Create", mock.Anything, mock.AnythingOfType("*domain.Artifact")).Return(nil).Twice()

	created, err := svc.Generate(context.Background(), project.ID, "user-1")
	assert.NoError(t, err)
	assert.Len(t, created, 2)
	assert.Equal(t, domain.ArtifactBRD, created[0].Type)
	assert.Equal(t, domain.ArtifactUserStories, created[1].Type)
	assert.Equal(t, domain.StageDesign, project.CurrentStage)
}

func TestDefineService_Generate_DiscoverIncomplete(t *testing.T) {
	svc, projects, artifacts, _, _ := newDefineService()

	project, _ := domain.NewProject("p", "d", "user-1")
	projects.On("GetByID", mock.Anything, project.ID).Return(project, nil)
	artifacts.On("LatestByType", mock.Anything, project.ID, domain.ArtifactProblemStatement).
		Return(nil, domain.ErrArtifactNotFound)

	_, err := svc.Generate(context.Background(), project.ID, "user-1")
	assert.ErrorIs(t, err, domain.ErrDiscoverIncomplete)
}
