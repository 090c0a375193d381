package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sdlc-studio-service/internal/core/domain"
)

func TestGenerateDiscover(t *testing.T) {
	f := setupRouter()

	project, _ := domain.NewProject("Checkout Revamp", "Rework the checkout flow", "alice")
	f.projects.On("GetByID", mock.Anything, project.ID).Return(project, nil)
	f.chats.On("ListByStage", mock.Anything, project.ID, domain.StageDiscover, 20).
		Return([]*domain.ChatMessage{}, nil)
	f.ai.On("Generate", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string"), 4000).
		Return("# Generated document", nil)
	f.artifacts.On("Create", mock.Anything, mock.AnythingOfType("*domain.Artifact")).Return(nil).Twice()
	f.projects.On("Update", mock.Anything, mock.AnythingOfType("*domain.Project")).Return(nil)
	f.commits.On("Create", mock.Anything, mock.AnythingOfType("*domain.Commit")).Return(nil)
	f.activities.On("Create", mock.Anything, mock.AnythingOfType("*domain.Activity")).Return(nil)

	body, _ := json.Marshal(map[string]interface{}{
		"project_id": project.ID,
		"idea":       "One-page checkout",
		"user_id":    "alice",
	})
	req, _ := http.NewRequest("POST", "/api/stages/discover/generate", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "discover", resp["stage"])
	assert.Len(t, resp["artifacts"], 2)
	f.artifacts.AssertExpectations(t)
}

func TestGenerateDefine_DiscoverIncomplete(t *testing.T) {
	f := setupRouter()

	project, _ := domain.NewProject("Checkout Revamp", "", "alice")
	f.projects.On("GetByID", mock.Anything, project.ID).Return(project, nil)
	f.artifacts.On("LatestByType", mock.Anything, project.ID, domain.ArtifactProblemStatement).
		Return(nil, domain.ErrArtifactNotFound)

	body, _ := json.Marshal(map[string]interface{}{"project_id": project.ID})
	req, _ := http.NewRequest("POST", "/api/stages/define/generate", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Discover")
}

func TestGetTickets_NotGenerated(t *testing.T) {
	f := setupRouter()

	projectID := uuid.New()
	f.artifacts.On("LatestByName", mock.Anything, projectID, domain.StageDevelop, "Development Tickets").
		Return(nil, domain.ErrArtifactNotFound)

	req, _ := http.NewRequest("GET", "/api/stages/develop/"+projectID.String()+"/tickets", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRunTests_NoSuites(t *testing.T) {
	f := setupRouter()

	projectID := uuid.New()
	set := domain.TestCaseSet{TestSuites: []*domain.TestSuite{}}
	payload, _ := json.Marshal(set)
	artifact := domain.NewArtifact(projectID, domain.StageTest, domain.ArtifactTestCases,
		"Test Cases", string(payload), "ai", nil)
	f.artifacts.On("LatestByName", mock.Anything, projectID, domain.StageTest, "Test Cases").
		Return(artifact, nil)

	body, _ := json.Marshal(map[string]interface{}{"project_id": projectID})
	req, _ := http.NewRequest("POST", "/api/stages/test/run", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
