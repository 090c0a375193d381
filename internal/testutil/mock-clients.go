package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	ports "sdlc-studio-service/internal/core/ports/output"
)

// MockAIClient is a mock of AIClient.
type MockAIClient struct {
	mock.Mock
}

func (m *MockAIClient) Generate(ctx context.Context, system, user string, maxTokens int) (string, error) {
	args := m.Called(ctx, system, user, maxTokens)
	return args.String(0), args.Error(1)
}

func (m *MockAIClient) Chat(ctx context.Context, turns []ports.ChatTurn, maxTokens int) (string, int, error) {
	args := m.Called(ctx, turns, maxTokens)
	return args.String(0), args.Int(1), args.Error(2)
}

// MockGitHubClient is a mock of GitHubClient.
type MockGitHubClient struct {
	mock.Mock
}

func (m *MockGitHubClient) ValidateRepo(ctx context.Context, token, repo string) (*ports.RepoInfo, error) {
	args := m.Called(ctx, token, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.RepoInfo), args.Error(1)
}

func (m *MockGitHubClient) CreateBranch(ctx context.Context, token, repo, branch, fromBranch string) error {
	args := m.Called(ctx, token, repo, branch, fromBranch)
	return args.Error(0)
}

func (m *MockGitHubClient) CreateIssue(ctx context.Context, token, repo, title, body string, labels []string) (*ports.Issue, error) {
	args := m.Called(ctx, token, repo, title, body, labels)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.Issue), args.Error(1)
}

func (m *MockGitHubClient) AddIssueComment(ctx context.Context, token, repo string, issueNumber int, body string) error {
	args := m.Called(ctx, token, repo, issueNumber, body)
	return args.Error(0)
}

func (m *MockGitHubClient) CommitFiles(ctx context.Context, token, repo, branch, message string, files map[string]string) (*ports.CommitResult, error) {
	args := m.Called(ctx, token, repo, branch, message, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.CommitResult), args.Error(1)
}

func (m *MockGitHubClient) CreatePullRequest(ctx context.Context, token, repo, title, body, head, base string) (*ports.PullRequest, error) {
	args := m.Called(ctx, token, repo, title, body, head, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.PullRequest), args.Error(1)
}
