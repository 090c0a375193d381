package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sdlc-studio-service/internal/core/domain"
	"sdlc-studio-service/internal/testutil"
)

func newArtifactService() (*ArtifactService, *testutil.MockArtifactRepo, *testutil.MockProjectRepo, *testutil.MockAIClient) {
	artifacts := new(testutil.MockArtifactRepo)
	projects := new(testutil.MockProjectRepo)
	ai := new(testutil.MockAIClient)
	commits := new(testutil.MockCommitRepo)
	activities := new(testutil.MockActivityRepo)
	commits.On("Create", mock.Anything, mock.AnythingOfType("*domain.Commit")).Return(nil).Maybe()
	activities.On("Create", mock.Anything, mock.AnythingOfType("*domain.Activity")).Return(nil).Maybe()
	return NewArtifactService(artifacts, projects, ai, commits, activities), artifacts, projects, ai
}

func TestArtifactService_Regenerate(t *testing.T) {
	svc, artifacts, projects, ai := newArtifactService()

	project, _ := domain.NewProject("p", "d", "user-1")
	original := domain.NewArtifact(project.ID, domain.StageDiscover, domain.ArtifactProblemStatement, "Problem Statement", "old content", "user-1", nil)

	artifacts.On("GetByID", mock.Anything, original.ID).Return(original, nil)
	projects.On("GetByID", mock.Anything, project.ID).Return(project, nil)
	ai.On("Generate", mock.Anything, mock.Anything, mock.Anything, 8000).Return("revised content", nil)
	artifacts.On("Create", mock.Anything, mock.AnythingOfType("*domain.Artifact")).Return(nil)

	next, err := svc.Regenerate(context.Background(), original.ID, "tighten the success criteria", "user-1")
	assert.NoError(t, err)
	assert.Equal(t, 2, next.Version)
	assert.Equal(t, "Problem Statement v2", next.Name)
	assert.Equal(t, "revised content", next.Content)
	assert.Equal(t, original.ID.String(), next.Metadata["regenerated_from"])
	assert.Equal(t, 1, next.Metadata["regeneration_count"])
	artifacts.AssertExpectations(t)
}

func TestArtifactService_Regenerate_KeepsBaseName(t *testing.T) {
	svc, artifacts, projects, ai := newArtifactService()

	project, _ := domain.NewProject("p", "d", "user-1")
	v2 := domain.NewArtifact(project.ID, domain.StageDefine, domain.ArtifactBRD, "Business Requirements Document v2", "content", "user-1",
		map[string]any{"regeneration_count": float64(1)})
	v2.Version = 2

	artifacts.On("GetByID", mock.Anything, v2.ID).Return(v2, nil)
	projects.On("GetByID", mock.Anything, project.ID).Return(project, nil)
	ai.On("Generate", mock.Anything, mock.Anything, mock.Anything, 8000).Return("v3 content", nil)
	artifacts.On("Create", mock.Anything, mock.AnythingOfType("*domain.Artifact")).Return(nil)

	next, err := svc.Regenerate(context.Background(), v2.ID, "feedback", "user-1")
	assert.NoError(t, err)
	assert.Equal(t, "Business Requirements Document v3", next.Name)
	assert.Equal(t, 3, next.Version)
	assert.Equal(t, 2, next.Metadata["regeneration_count"])
}

func TestArtifactService_Regenerate_MissingFeedback(t *testing.T) {
	svc, _, _, _ := newArtifactService()

	_, err := svc.Regenerate(context.Background(), uuid.New(), "", "user-1")
	assert.ErrorIs(t, err, domain.ErrMissingFeedback)
}

func TestArtifactService_Regenerate_NotFound(t *testing.T) {
	svc, artifacts, _, _ := newArtifactService()

	id := uuid.New()
	artifacts.On("GetByID", mock.Anything, id).Return(nil, domain.ErrArtifactNotFound)

	_, err := svc.Regenerate(context.Background(), id, "feedback", "user-1")
	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
}

func TestStripJSONFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripJSONFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripJSONFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripJSONFences(`{"a":1}`))
}

func TestDecodeAIJSON_Invalid(t *testing.T) {
	var v map[string]any
	err := decodeAIJSON("sorry, I cannot produce JSON", &v)
	assert.ErrorIs(t, err, domain.ErrAIResponseNotJSON)
}
