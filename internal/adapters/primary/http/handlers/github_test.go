package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sdlc-studio-service/internal/core/domain"
	ports "sdlc-studio-service/internal/core/ports/output"
)

func TestValidateGitHubRepo(t *testing.T) {
	f := setupRouter()

	f.github.On("ValidateRepo", mock.Anything, "ghp_token", "acme/checkout").Return(&ports.RepoInfo{
		FullName:      "acme/checkout",
		DefaultBranch: "main",
		CanPush:       true,
	}, nil)

	body, _ := json.Marshal(map[string]string{"token": "ghp_token", "repo": "acme/checkout"})
	req, _ := http.NewRequest("POST", "/api/github/validate", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, true, resp["valid"])
	assert.Equal(t, "acme/checkout", resp["full_name"])
}

func TestValidateGitHubRepo_BadToken(t *testing.T) {
	f := setupRouter()

	f.github.On("ValidateRepo", mock.Anything, "bad", "acme/checkout").
		Return(nil, domain.ErrGitHubTokenInvalid)

	body, _ := json.Marshal(map[string]string{"token": "bad", "repo": "acme/checkout"})
	req, _ := http.NewRequest("POST", "/api/github/validate", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateGitHubRepo_NoPushAccess(t *testing.T) {
	f := setupRouter()

	f.github.On("ValidateRepo", mock.Anything, "ghp_token", "acme/readonly").Return(&ports.RepoInfo{
		FullName:      "acme/readonly",
		DefaultBranch: "main",
		CanPush:       false,
	}, nil)

	body, _ := json.Marshal(map[string]string{"token": "ghp_token", "repo": "acme/readonly"})
	req, _ := http.NewRequest("POST", "/api/github/validate", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestValidateGitHubRepo_BadFormat(t *testing.T) {
	f := setupRouter()

	body, _ := json.Marshal(map[string]string{"token": "ghp_token", "repo": "not-a-repo"})
	req, _ := http.NewRequest("POST", "/api/github/validate", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveGitHubConfig(t *testing.T) {
	f := setupRouter()

	project, _ := domain.NewProject("Checkout Revamp", "", "alice")
	f.projects.On("GetByID", mock.Anything, project.ID).Return(project, nil)
	f.github.On("ValidateRepo", mock.Anything, "ghp_token", "acme/checkout").Return(&ports.RepoInfo{
		FullName:      "acme/checkout",
		DefaultBranch: "main",
		CanPush:       true,
	}, nil)
	f.projects.On("Update", mock.Anything, mock.AnythingOfType("*domain.Project")).Return(nil)
	f.activities.On("Create", mock.Anything, mock.AnythingOfType("*domain.Activity")).Return(nil)

	body, _ := json.Marshal(map[string]string{"token": "ghp_token", "repo": "acme/checkout", "user_id": "alice"})
	req, _ := http.NewRequest("POST", "/api/github/projects/"+project.ID.String()+"/config", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "ghp_token")

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, true, resp["is_configured"])
	assert.Equal(t, "acme/checkout", resp["repo"])
}

func TestGetGitHubConfig_NotConfigured(t *testing.T) {
	f := setupRouter()

	project, _ := domain.NewProject("Checkout Revamp", "", "alice")
	f.projects.On("GetByID", mock.Anything, project.ID).Return(project, nil)

	req, _ := http.NewRequest("GET", "/api/github/projects/"+project.ID.String()+"/config", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, false, resp["is_configured"])
}

func TestDeleteGitHubConfig(t *testing.T) {
	f := setupRouter()

	project, _ := domain.NewProject("Checkout Revamp", "", "alice")
	project.SetGitHubConfig(&domain.GitHubConfig{Repo: "acme/checkout", EncryptedToken: "ct", DefaultBranch: "main"})
	f.projects.On("GetByID", mock.Anything, project.ID).Return(project, nil)
	f.projects.On("Update", mock.Anything, mock.AnythingOfType("*domain.Project")).Return(nil)
	f.activities.On("Create", mock.Anything, mock.AnythingOfType("*domain.Activity")).Return(nil)

	req, _ := http.NewRequest("DELETE", "/api/github/projects/"+project.ID.String()+"/config", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteGitHubConfig_NotConfigured(t *testing.T) {
	f := setupRouter()

	project, _ := domain.NewProject("Checkout Revamp", "", "alice")
	f.projects.On("GetByID", mock.Anything, project.ID).Return(project, nil)

	req, _ := http.NewRequest("DELETE", "/api/github/projects/"+project.ID.String()+"/config", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
