package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"sdlc-studio-service/internal/core/crypto"
	"sdlc-studio-service/internal/core/domain"
	ports "sdlc-studio-service/internal/core/ports/output"
)

// GitHubService validates repositories and manages per-project
// GitHub configuration. Tokens are encrypted before persistence and
// never returned by reads.
type GitHubService struct {
	projects   ports.ProjectRepository
	github     ports.GitHubClient
	cipher     *crypto.TokenCipher
	activities ports.ActivityRepository
}

func NewGitHubService(projects ports.ProjectRepository, github ports.GitHubClient, cipher *crypto.TokenCipher, activities ports.ActivityRepository) *GitHubService {
	return &GitHubService{projects: projects, github: github, cipher: cipher, activities: activities}
}

// Validate checks the token against the repository and requires push
// permission.
func (s *GitHubService) Validate(ctx context.Context, token, repo string) (*ports.RepoInfo, error) {
	if token == "" {
		return nil, domain.ErrMissingGitHubToken
	}
	if !validRepoName(repo) {
		return nil, domain.ErrInvalidRepoFormat
	}
	info, err := s.github.ValidateRepo(ctx, token, repo)
	if err != nil {
		return nil, err
	}
	if !info.CanPush {
		return nil, domain.ErrMissingPushAccess
	}
	return info, nil
}

// ConfigView is what config reads expose: never the token.
type ConfigView struct {
	IsConfigured  bool   `json:"is_configured"`
	Repo          string `json:"repo,omitempty"`
	DefaultBranch string `json:"default_branch,omitempty"`
	ConfiguredAt  string `json:"configured_at,omitempty"`
}

// SaveConfig validates the pair, encrypts the token, and stores the
// GitHub block in the project's stages config.
func (s *GitHubService) SaveConfig(ctx context.Context, projectID uuid.UUID, token, repo, userID string) (*ConfigView, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	info, err := s.Validate(ctx, token, repo)
	if err != nil {
		return nil, err
	}

	encrypted, err := s.cipher.Encrypt(token)
	if err != nil {
		return nil, err
	}
	cfg := &domain.GitHubConfig{
		Repo:           info.FullName,
		EncryptedToken: encrypted,
		DefaultBranch:  info.DefaultBranch,
		ConfiguredAt:   time.Now().UTC().Format(time.RFC3339),
	}
	project.SetGitHubConfig(cfg)
	project.UpdatedAt = time.Now().UTC()
	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}

	activity := domain.NewActivity(projectID, userID, "github_configured", map[string]any{
		"repo": info.FullName,
	})
	_ = s.activities.Create(ctx, activity)

	return &ConfigView{
		IsConfigured:  true,
		Repo:          cfg.Repo,
		DefaultBranch: cfg.DefaultBranch,
		ConfiguredAt:  cfg.ConfiguredAt,
	}, nil
}

// GetConfig returns the configuration without the token.
func (s *GitHubService) GetConfig(ctx context.Context, projectID uuid.UUID) (*ConfigView, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	cfg, ok := project.GitHubConfig()
	if !ok || cfg.Repo == "" {
		return &ConfigView{IsConfigured: false}, nil
	}
	return &ConfigView{
		IsConfigured:  true,
		Repo:          cfg.Repo,
		DefaultBranch: cfg.DefaultBranch,
		ConfiguredAt:  cfg.ConfiguredAt,
	}, nil
}

// DeleteConfig removes the GitHub block.
func (s *GitHubService) DeleteConfig(ctx context.Context, projectID uuid.UUID, userID string) error {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if !project.ClearGitHubConfig() {
		return domain.ErrGitHubNotConfigured
	}
	project.UpdatedAt = time.Now().UTC()
	if err := s.projects.Update(ctx, project); err != nil {
		return err
	}

	activity := domain.NewActivity(projectID, userID, "github_removed", nil)
	_ = s.activities.Create(ctx, activity)
	return nil
}

func validRepoName(repo string) bool {
	parts := strings.Split(repo, "/")
	return len(parts) == 2 && parts[0] != "" && parts[1] != ""
}
