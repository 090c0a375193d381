package ports

import "context"

// RepoInfo describes a validated GitHub repository.
type RepoInfo struct {
	FullName      string `json:"full_name"`
	DefaultBranch string `json:"default_branch"`
	Private       bool   `json:"private"`
	HTMLURL       string `json:"html_url"`
	CanPush       bool   `json:"can_push"`
}

// Issue is a created GitHub issue.
type Issue struct {
	Number  int    `json:"number"`
	HTMLURL string `json:"html_url"`
}

// PullRequest is a created GitHub pull request.
type PullRequest struct {
	Number  int    `json:"number"`
	HTMLURL string `json:"html_url"`
}

// CommitResult is the outcome of a batch commit.
type CommitResult struct {
	SHA     string `json:"sha"`
	HTMLURL string `json:"html_url"`
}

// GitHubClient drives the repository automation. Tokens are passed per
// call because each project carries its own credentials.
type GitHubClient interface {
	ValidateRepo(ctx context.Context, token, repo string) (*RepoInfo, error)
	CreateBranch(ctx context.Context, token, repo, branch, fromBranch string) error
	CreateIssue(ctx context.Context, token, repo, title, body string, labels []string) (*Issue, error)
	AddIssueComment(ctx context.Context, token, repo string, issueNumber int, body string) error
	// CommitFiles writes files (path -> content) to a branch in a
	// single commit and returns the commit SHA.
	CommitFiles(ctx context.Context, token, repo, branch, message string, files map[string]string) (*CommitResult, error)
	CreatePullRequest(ctx context.Context, token, repo, title, body, head, base string) (*PullRequest, error)
}
