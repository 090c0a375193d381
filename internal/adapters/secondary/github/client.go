// Package github drives the GitHub REST API for repository
// validation, branches, issues, batch commits, and pull requests.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"sdlc-studio-service/internal/core/domain"
	ports "sdlc-studio-service/internal/core/ports/output"
)

const defaultBaseURL = "https://api.github.com"

type client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient returns a GitHub API client. baseURL overrides the public
// API host, for GitHub Enterprise or tests; "" means api.github.com.
func NewClient(baseURL string, timeout time.Duration) ports.GitHubClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

func (c *client) do(ctx context.Context, token, method, path string, payload, out any) (int, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return 0, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/vnd.github+json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("github request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		log.WithFields(log.Fields{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
		}).Debug("github API error")
		return resp.StatusCode, apiError(resp.StatusCode, raw)
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

func apiError(status int, body []byte) error {
	switch status {
	case http.StatusUnauthorized:
		return domain.ErrGitHubTokenInvalid
	case http.StatusNotFound:
		return domain.ErrGitHubRepoNotFound
	}
	var ghErr struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &ghErr)
	return fmt.Errorf("github API error (%d): %s", status, ghErr.Message)
}

// ============================================================================
// Repository validation
// ============================================================================

type repoResponse struct {
	FullName      string `json:"full_name"`
	DefaultBranch string `json:"default_branch"`
	Private       bool   `json:"private"`
	HTMLURL       string `json:"html_url"`
	Permissions   struct {
		Push bool `json:"push"`
	} `json:"permissions"`
}

func (c *client) ValidateRepo(ctx context.Context, token, repo string) (*ports.RepoInfo, error) {
	var resp repoResponse
	if _, err := c.do(ctx, token, http.MethodGet, "/repos/"+repo, nil, &resp); err != nil {
		return nil, err
	}
	return &ports.RepoInfo{
		FullName:      resp.FullName,
		DefaultBranch: resp.DefaultBranch,
		Private:       resp.Private,
		HTMLURL:       resp.HTMLURL,
		CanPush:       resp.Permissions.Push,
	}, nil
}

// ============================================================================
// Branches
// ============================================================================

func (c *client) CreateBranch(ctx context.Context, token, repo, branch, fromBranch string) error {
	var ref struct {
		Object struct {
			SHA string `json:"sha"`
		} `json:"object"`
	}
	path := fmt.Sprintf("/repos/%s/git/ref/heads/%s", repo, fromBranch)
	if _, err := c.do(ctx, token, http.MethodGet, path, nil, &ref); err != nil {
		return err
	}

	payload := map[string]string{
		"ref": "refs/heads/" + branch,
		"sha": ref.Object.SHA,
	}
	_, err := c.do(ctx, token, http.MethodPost, fmt.Sprintf("/repos/%s/git/refs", repo), payload, nil)
	return err
}

// ============================================================================
// Issues
// ============================================================================

func (c *client) CreateIssue(ctx context.Context, token, repo, title, body string, labels []string) (*ports.Issue, error) {
	payload := map[string]any{
		"title":  title,
		"body":   body,
		"labels": labels,
	}
	var issue ports.Issue
	if _, err := c.do(ctx, token, http.MethodPost, fmt.Sprintf("/repos/%s/issues", repo), payload, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

func (c *client) AddIssueComment(ctx context.Context, token, repo string, issueNumber int, body string) error {
	payload := map[string]string{"body": body}
	_, err := c.do(ctx, token, http.MethodPost, fmt.Sprintf("/repos/%s/issues/%d/comments", repo, issueNumber), payload, nil)
	return err
}

// ============================================================================
// Batch commits (git data API: blobs -> tree -> commit -> ref)
// ============================================================================

type shaResponse struct {
	SHA string `json:"sha"`
}

func (c *client) CommitFiles(ctx context.Context, token, repo, branch, message string, files map[string]string) (*ports.CommitResult, error) {
	var ref struct {
		Object struct {
			SHA string `json:"sha"`
		} `json:"object"`
	}
	refPath := fmt.Sprintf("/repos/%s/git/ref/heads/%s", repo, branch)
	if _, err := c.do(ctx, token, http.MethodGet, refPath, nil, &ref); err != nil {
		return nil, err
	}
	headSHA := ref.Object.SHA

	var head struct {
		Tree struct {
			SHA string `json:"sha"`
		} `json:"tree"`
	}
	if _, err := c.do(ctx, token, http.MethodGet, fmt.Sprintf("/repos/%s/git/commits/%s", repo, headSHA), nil, &head); err != nil {
		return nil, err
	}

	type treeEntry struct {
		Path string `json:"path"`
		Mode string `json:"mode"`
		Type string `json:"type"`
		SHA  string `json:"sha"`
	}
	entries := make([]treeEntry, 0, len(files))
	for path, content := range files {
		var blob shaResponse
		payload := map[string]string{"content": content, "encoding": "utf-8"}
		if _, err := c.do(ctx, token, http.MethodPost, fmt.Sprintf("/repos/%s/git/blobs", repo), payload, &blob); err != nil {
			return nil, err
		}
		entries = append(entries, treeEntry{Path: path, Mode: "100644", Type: "blob", SHA: blob.SHA})
	}

	var tree shaResponse
	treePayload := map[string]any{
		"base_tree": head.Tree.SHA,
		"tree":      entries,
	}
	if _, err := c.do(ctx, token, http.MethodPost, fmt.Sprintf("/repos/%s/git/trees", repo), treePayload, &tree); err != nil {
		return nil, err
	}

	var commit struct {
		SHA     string `json:"sha"`
		HTMLURL string `json:"html_url"`
	}
	commitPayload := map[string]any{
		"message": message,
		"tree":    tree.SHA,
		"parents": []string{headSHA},
	}
	if _, err := c.do(ctx, token, http.MethodPost, fmt.Sprintf("/repos/%s/git/commits", repo), commitPayload, &commit); err != nil {
		return nil, err
	}

	refUpdate := map[string]any{"sha": commit.SHA, "force": false}
	if _, err := c.do(ctx, token, http.MethodPatch, fmt.Sprintf("/repos/%s/git/refs/heads/%s", repo, branch), refUpdate, nil); err != nil {
		return nil, err
	}

	return &ports.CommitResult{SHA: commit.SHA, HTMLURL: commit.HTMLURL}, nil
}

// ============================================================================
// Pull requests
// ============================================================================

func (c *client) CreatePullRequest(ctx context.Context, token, repo, title, body, head, base string) (*ports.PullRequest, error) {
	payload := map[string]string{
		"title": title,
		"body":  body,
		"head":  head,
		"base":  base,
	}
	var pr ports.PullRequest
	if _, err := c.do(ctx, token, http.MethodPost, fmt.Sprintf("/repos/%s/pulls", repo), payload, &pr); err != nil {
		return nil, err
	}
	return &pr, nil
}
