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

func TestSendChatMessage(t *testing.T) {
	f := setupRouter()

	project, _ := domain.NewProject("Checkout Revamp", "", "alice")
	f.projects.On("GetByID", mock.Anything, project.ID).Return(project, nil)
	f.chats.On("ListByStage", mock.Anything, project.ID, domain.StageDiscover, 20).
		Return([]*domain.ChatMessage{}, nil)
	f.ai.On("Chat", mock.Anything, mock.AnythingOfType("[]ports.ChatTurn"), 2000).
		Return("Consider interviewing the support team first.", 42, nil)
	f.chats.On("Create", mock.Anything, mock.AnythingOfType("*domain.ChatMessage")).Return(nil).Twice()

	body, _ := json.Marshal(map[string]interface{}{
		"project_id": project.ID,
		"stage":      "discover",
		"message":    "Who should we talk to?",
		"user_id":    "alice",
	})
	req, _ := http.NewRequest("POST", "/api/chat/send", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Consider interviewing the support team first.", resp["reply"])
	assert.Equal(t, "discover", resp["stage"])
	assert.Equal(t, float64(42), resp["tokens_used"])
	f.chats.AssertExpectations(t)
}

func TestSendChatMessage_UnknownStage(t *testing.T) {
	f := setupRouter()

	body, _ := json.Marshal(map[string]interface{}{
		"project_id": uuid.New(),
		"stage":      "brainstorm",
		"message":    "hello",
	})
	req, _ := http.NewRequest("POST", "/api/chat/send", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetChatHistory(t *testing.T) {
	f := setupRouter()

	projectID := uuid.New()
	messages := []*domain.ChatMessage{
		domain.NewChatMessage(projectID, domain.StageDesign, domain.RoleUser, "What about event sourcing?", nil),
		domain.NewChatMessage(projectID, domain.StageDesign, domain.RoleAssistant, "It fits the audit requirement.", nil),
	}
	f.chats.On("ListByStage", mock.Anything, projectID, domain.StageDesign, 100).Return(messages, nil)

	req, _ := http.NewRequest("GET", "/api/chat/"+projectID.String()+"/design/history", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, float64(2), resp["total"])
}

func TestGetChatHistory_UnknownStage(t *testing.T) {
	f := setupRouter()

	projectID := uuid.New()
	req, _ := http.NewRequest("GET", "/api/chat/"+projectID.String()+"/brainstorm/history", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, float64(0), resp["total"])
}

func TestClearChatHistory(t *testing.T) {
	f := setupRouter()

	projectID := uuid.New()
	f.chats.On("DeleteByStage", mock.Anything, projectID, domain.StageDiscover).Return(7, nil)

	req, _ := http.NewRequest("DELETE", "/api/chat/"+projectID.String()+"/discover/history", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, float64(7), resp["deleted"])
}
