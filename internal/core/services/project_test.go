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

func newProjectService() (*ProjectService, *testutil.MockProjectRepo, *testutil.MockCommitRepo, *testutil.MockActivityRepo) {
	repo := new(testutil.MockProjectRepo)
	commits := new(testutil.MockCommitRepo)
	activities := new(testutil.MockActivityRepo)
	return NewProjectService(repo, commits, activities), repo, commits, activities
}

func TestProjectService_Create(t *testing.T) {
	svc, repo, _, activities := newProjectService()

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Project")).Return(nil)
	activities.On("Create", mock.Anything, mock.AnythingOfType("*domain.Activity")).Return(nil)

	project, err := svc.Create(context.Background(), "Checkout Revamp", "rebuild the checkout flow", "user-1")
	assert.NoError(t, err)
	assert.Equal(t, "Checkout Revamp", project.Name)
	assert.Equal(t, domain.StageDiscover, project.CurrentStage)
	assert.Contains(t, project.StagesConfig, "discover")
	repo.AssertExpectations(t)
}

func TestProjectService_Create_EmptyName(t *testing.T) {
	svc, _, _, _ := newProjectService()

	_, err := svc.Create(context.Background(), "", "desc", "user-1")
	assert.ErrorIs(t, err, domain.ErrInvalidProjectName)
}

func TestProjectService_Update_NonStringName(t *testing.T) {
	svc, repo, _, _ := newProjectService()

	project, _ := domain.NewProject("p", "d", "user-1")
	repo.On("GetByID", mock.Anything, project.ID).Return(project, nil)

	_, err := svc.Update(context.Background(), project.ID, map[string]interface{}{"name": 42})
	assert.ErrorIs(t, err, domain.ErrInvalidProjectName)
	assert.Equal(t, "p", project.Name)
}

func TestProjectService_SetStage(t *testing.T) {
	svc, repo, _, activities := newProjectService()

	project, _ := domain.NewProject("p", "d", "user-1")
	repo.On("GetByID", mock.Anything, project.ID).Return(project, nil)
	repo.On("Update", mock.Anything, project).Return(nil)
	activities.On("Create", mock.Anything, mock.AnythingOfType("*domain.Activity")).Return(nil)

	updated, err := svc.SetStage(context.Background(), project.ID, "design", "user-1")
	assert.NoError(t, err)
	assert.Equal(t, domain.StageDesign, updated.CurrentStage)

	discover := updated.StagesConfig["discover"].(map[string]any)
	assert.Equal(t, "completed", discover["status"])
	design := updated.StagesConfig["design"].(map[string]any)
	assert.Equal(t, "active", design["status"])
	develop := updated.StagesConfig["develop"].(map[string]any)
	assert.Equal(t, "pending", develop["status"])
}

func TestProjectService_SetStage_Invalid(t *testing.T) {
	svc, _, _, _ := newProjectService()

	_, err := svc.SetStage(context.Background(), uuid.New(), "release", "user-1")
	assert.ErrorIs(t, err, domain.ErrInvalidStage)
}

func TestProjectService_SetStagesConfig_KeepsGitHub(t *testing.T) {
	svc, repo, _, _ := newProjectService()

	project, _ := domain.NewProject("p", "d", "user-1")
	project.SetGitHubConfig(&domain.GitHubConfig{Repo: "acme/app", EncryptedToken: "sealed", DefaultBranch: "main"})
	repo.On("GetByID", mock.Anything, project.ID).Return(project, nil)
	repo.On("Update", mock.Anything, project).Return(nil)

	updated, err := svc.SetStagesConfig(context.Background(), project.ID, map[string]any{
		"discover": map[string]any{"status": "completed", "order": 1},
	})
	assert.NoError(t, err)
	assert.Contains(t, updated.StagesConfig, "github")
}

func TestProjectService_Delete_NotFound(t *testing.T) {
	svc, repo, _, _ := newProjectService()

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrProjectNotFound)

	err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestProjectService_ListCommits_StageFilter(t *testing.T) {
	svc, repo, commits, _ := newProjectService()

	project, _ := domain.NewProject("p", "d", "user-1")
	repo.On("GetByID", mock.Anything, project.ID).Return(project, nil)
	commits.On("ListByProject", mock.Anything, project.ID, domain.StageDefine, 50).
		Return([]*domain.Commit{}, nil)

	list, err := svc.ListCommits(context.Background(), project.ID, "define", 0)
	assert.NoError(t, err)
	assert.Empty(t, list)
	commits.AssertExpectations(t)
}
