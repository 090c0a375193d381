package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sdlc-studio-service/internal/core/domain"
	ports "sdlc-studio-service/internal/core/ports/output"
)

func TestGetArtifact(t *testing.T) {
	f := setupRouter()

	artifact := domain.NewArtifact(uuid.New(), domain.StageDiscover, domain.ArtifactProblemStatement,
		"Problem Statement", "# Problem", "ai", nil)
	f.artifacts.On("GetByID", mock.Anything, artifact.ID).Return(artifact, nil)

	req, _ := http.NewRequest("GET", "/api/artifacts/"+artifact.ID.String(), nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Problem Statement", resp["name"])
	assert.Equal(t, float64(1), resp["version"])
}

func TestGetArtifact_NotFound(t *testing.T) {
	f := setupRouter()

	id := uuid.New()
	f.artifacts.On("GetByID", mock.Anything, id).Return(nil, domain.ErrArtifactNotFound)

	req, _ := http.NewRequest("GET", "/api/artifacts/"+id.String(), nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListProjectArtifacts(t *testing.T) {
	f := setupRouter()

	projectID := uuid.New()
	artifacts := []*domain.Artifact{
		domain.NewArtifact(projectID, domain.StageDefine, domain.ArtifactBRD, "Business Requirements", "# BRD", "ai", nil),
	}
	f.artifacts.On("ListByProject", mock.Anything, projectID, ports.ArtifactFilter{}).Return(artifacts, nil)

	req, _ := http.NewRequest("GET", "/api/artifacts/project/"+projectID.String(), nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Len(t, resp, 1)
}

// A malformed project id returns an empty list, not an error.
func TestListProjectArtifacts_InvalidID(t *testing.T) {
	f := setupRouter()

	req, _ := http.NewRequest("GET", "/api/artifacts/project/not-a-uuid", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestListStageArtifacts(t *testing.T) {
	f := setupRouter()

	projectID := uuid.New()
	artifacts := []*domain.Artifact{
		domain.NewArtifact(projectID, domain.StageDesign, domain.ArtifactArchitecture, "Architecture", "# Arch", "ai", nil),
	}
	f.artifacts.On("ListByProject", mock.Anything, projectID, ports.ArtifactFilter{Stage: domain.StageDesign}).
		Return(artifacts, nil)

	req, _ := http.NewRequest("GET", "/api/artifacts/project/"+projectID.String()+"/stage/design", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
