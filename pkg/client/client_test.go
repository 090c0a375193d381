package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, NewClient(srv.URL, 5*time.Second)
}

func TestCreateProject(t *testing.T) {
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/projects", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req CreateProjectRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, "Checkout Revamp", req.Name)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Project{
			ID:           "3d7b9d0e-0000-0000-0000-000000000001",
			Name:         req.Name,
			CurrentStage: "discover",
		})
	})

	p, err := c.CreateProject(context.Background(), CreateProjectRequest{Name: "Checkout Revamp"})
	assert.NoError(t, err)
	assert.Equal(t, "Checkout Revamp", p.Name)
	assert.Equal(t, "discover", p.CurrentStage)
}

func TestGetProject_APIError(t *testing.T) {
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "project not found"})
	})

	_, err := c.GetProject(context.Background(), "3d7b9d0e-0000-0000-0000-000000000001")
	assert.Error(t, err)

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "project not found", apiErr.Message)
}

func TestSendChat(t *testing.T) {
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat/send", r.URL.Path)
		_ = json.NewEncoder(w).Encode(ChatReply{Reply: "Start with stakeholder interviews.", Stage: "discover", TokensUsed: 31})
	})

	reply, err := c.SendChat(context.Background(), "p1", "discover", "Where do we start?", "alice")
	assert.NoError(t, err)
	assert.Equal(t, "discover", reply.Stage)
	assert.Equal(t, 31, reply.TokensUsed)
}

func TestGetTickets(t *testing.T) {
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stages/develop/p1/tickets", r.URL.Path)
		_ = json.NewEncoder(w).Encode(TicketSet{
			ProjectKey: "CHK",
			Tickets:    []Ticket{{Key: "CHK-1", Summary: "Set up repo", Status: "todo"}},
		})
	})

	set, err := c.GetTickets(context.Background(), "p1")
	assert.NoError(t, err)
	assert.Equal(t, "CHK", set.ProjectKey)
	assert.Len(t, set.Tickets, 1)
}

func TestDeleteGitHubConfig(t *testing.T) {
	var called bool
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/api/github/projects/p1/config", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]bool{"deleted": true})
	})

	err := c.DeleteGitHubConfig(context.Background(), "p1")
	assert.NoError(t, err)
	assert.True(t, called)
}
