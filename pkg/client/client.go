// Package client is a thin Go client for the SDLC studio REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client for a service instance. baseURL is the
// server root (e.g. "http://localhost:8080"); the API prefix is added
// per call.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
	}
}

// APIError is a non-2xx response from the service.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body *bytes.Buffer
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewBuffer(payload)
	} else {
		body = bytes.NewBuffer(nil)
	}

	url := fmt.Sprintf("%s/api%s", c.baseURL, path)
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// ============================================================================
// Projects
// ============================================================================

func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	var p Project
	if err := c.do(ctx, http.MethodPost, "/projects", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var out []Project
	if err := c.do(ctx, http.MethodGet, "/projects", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProject(ctx context.Context, id string) (*Project, error) {
	var p Project
	if err := c.do(ctx, http.MethodGet, "/projects/"+id, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/projects/"+id, nil, nil)
}

func (c *Client) SetProjectStage(ctx context.Context, id, stage, userID string) (*Project, error) {
	var p Project
	req := map[string]string{"stage": stage, "user_id": userID}
	if err := c.do(ctx, http.MethodPut, "/projects/"+id+"/stage", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) ListCommits(ctx context.Context, projectID string) ([]Commit, error) {
	var out []Commit
	if err := c.do(ctx, http.MethodGet, "/projects/"+projectID+"/commits", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ============================================================================
// Artifacts
// ============================================================================

func (c *Client) GetArtifact(ctx context.Context, id string) (*Artifact, error) {
	var a Artifact
	if err := c.do(ctx, http.MethodGet, "/artifacts/"+id, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) ListProjectArtifacts(ctx context.Context, projectID string) ([]Artifact, error) {
	var out []Artifact
	if err := c.do(ctx, http.MethodGet, "/artifacts/project/"+projectID, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RegenerateArtifact(ctx context.Context, artifactID, feedback, userID string) (*Artifact, error) {
	var a Artifact
	req := map[string]string{"artifact_id": artifactID, "feedback": feedback, "user_id": userID}
	if err := c.do(ctx, http.MethodPost, "/artifacts/regenerate", req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// ============================================================================
// Stage operations
// ============================================================================

func (c *Client) GenerateDiscover(ctx context.Context, projectID, idea, userID string) (*StageGeneration, error) {
	var out StageGeneration
	req := map[string]string{"project_id": projectID, "idea": idea, "user_id": userID}
	if err := c.do(ctx, http.MethodPost, "/stages/discover/generate", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GenerateDefine(ctx context.Context, projectID, userID string) (*StageGeneration, error) {
	var out StageGeneration
	req := map[string]string{"project_id": projectID, "user_id": userID}
	if err := c.do(ctx, http.MethodPost, "/stages/define/generate", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GenerateDesignOptions(ctx context.Context, projectID, constraints, userID string) (*Artifact, error) {
	var a Artifact
	req := map[string]string{"project_id": projectID, "constraints": constraints, "user_id": userID}
	if err := c.do(ctx, http.MethodPost, "/stages/design/generate", req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) SelectDesignOption(ctx context.Context, projectID string, optionID int, userID string) (*Artifact, error) {
	var a Artifact
	req := map[string]any{"project_id": projectID, "option_id": optionID, "user_id": userID}
	if err := c.do(ctx, http.MethodPost, "/stages/design/select", req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) GenerateTickets(ctx context.Context, projectID, userID string) (*TicketGeneration, error) {
	var out TicketGeneration
	req := map[string]string{"project_id": projectID, "user_id": userID}
	if err := c.do(ctx, http.MethodPost, "/stages/develop/generate-tickets", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetTickets(ctx context.Context, projectID string) (*TicketSet, error) {
	var out TicketSet
	if err := c.do(ctx, http.MethodGet, "/stages/develop/"+projectID+"/tickets", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ImplementTicket(ctx context.Context, projectID, ticketKey, userID string) (*Implementation, error) {
	var out Implementation
	req := map[string]string{"project_id": projectID, "ticket_key": ticketKey, "user_id": userID}
	if err := c.do(ctx, http.MethodPost, "/stages/develop/implement", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GenerateTestPlan(ctx context.Context, projectID, userID string) (*Artifact, error) {
	var a Artifact
	req := map[string]string{"project_id": projectID, "user_id": userID}
	if err := c.do(ctx, http.MethodPost, "/stages/test/generate-plan", req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) RunTests(ctx context.Context, projectID, userID string) (*TestRun, error) {
	var out TestRun
	req := map[string]string{"project_id": projectID, "user_id": userID}
	if err := c.do(ctx, http.MethodPost, "/stages/test/run", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Chat
// ============================================================================

func (c *Client) SendChat(ctx context.Context, projectID, stage, message, userID string) (*ChatReply, error) {
	var out ChatReply
	req := map[string]string{"project_id": projectID, "stage": stage, "message": message, "user_id": userID}
	if err := c.do(ctx, http.MethodPost, "/chat/send", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ChatHistory(ctx context.Context, projectID, stage string) (*ChatHistory, error) {
	var out ChatHistory
	if err := c.do(ctx, http.MethodGet, "/chat/"+projectID+"/"+stage+"/history", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ClearChat(ctx context.Context, projectID, stage string) error {
	return c.do(ctx, http.MethodDelete, "/chat/"+projectID+"/"+stage+"/history", nil, nil)
}

// ============================================================================
// GitHub
// ============================================================================

func (c *Client) ValidateGitHubRepo(ctx context.Context, token, repo string) (*RepoValidation, error) {
	var out RepoValidation
	req := map[string]string{"token": token, "repo": repo}
	if err := c.do(ctx, http.MethodPost, "/github/validate", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SaveGitHubConfig(ctx context.Context, projectID, token, repo, userID string) (*GitHubConfig, error) {
	var out GitHubConfig
	req := map[string]string{"token": token, "repo": repo, "user_id": userID}
	if err := c.do(ctx, http.MethodPost, "/github/projects/"+projectID+"/config", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetGitHubConfig(ctx context.Context, projectID string) (*GitHubConfig, error) {
	var out GitHubConfig
	if err := c.do(ctx, http.MethodGet, "/github/projects/"+projectID+"/config", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteGitHubConfig(ctx context.Context, projectID string) error {
	return c.do(ctx, http.MethodDelete, "/github/projects/"+projectID+"/config", nil, nil)
}
