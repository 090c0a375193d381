package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project is a software project moving through the SDLC stages.
// StagesConfig holds the per-stage status map plus integration blocks
// (the GitHub configuration lives under the "github" key), mirroring
// the JSON column it is persisted in.
type Project struct {
	ID           uuid.UUID
	Name         string
	Description  string
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CurrentStage Stage
	StagesConfig map[string]any
}

// NewProject creates a project starting at the Discover stage with the
// default per-stage status configuration.
func NewProject(name, description, createdBy string) (*Project, error) {
	if name == "" {
		return nil, ErrInvalidProjectName
	}
	now := time.Now().UTC()
	return &Project{
		ID:           uuid.New(),
		Name:         name,
		Description:  description,
		CreatedBy:    createdBy,
		CreatedAt:    now,
		UpdatedAt:    now,
		CurrentStage: StageDiscover,
		StagesConfig: DefaultStagesConfig(),
	}, nil
}

// DefaultStagesConfig marks discover active and every later stage pending.
func DefaultStagesConfig() map[string]any {
	cfg := make(map[string]any, 7)
	for i, stage := range AllStages() {
		status := "pending"
		if i == 0 {
			status = "active"
		}
		cfg[string(stage)] = map[string]any{
			"status": status,
			"order":  i + 1,
		}
	}
	return cfg
}

// GitHubConfig is the per-project GitHub integration block. The token
// is stored encrypted and never leaves the service in responses.
type GitHubConfig struct {
	Repo           string `json:"repo"`
	EncryptedToken string `json:"encrypted_token"`
	DefaultBranch  string `json:"default_branch"`
	ConfiguredAt   string `json:"configured_at"`
}

// GitHubConfig extracts the GitHub block from the stages config.
func (p *Project) GitHubConfig() (*GitHubConfig, bool) {
	if p.StagesConfig == nil {
		return nil, false
	}
	raw, ok := p.StagesConfig["github"].(map[string]any)
	if !ok {
		return nil, false
	}
	cfg := &GitHubConfig{
		Repo:           asString(raw["repo"]),
		EncryptedToken: asString(raw["encrypted_token"]),
		DefaultBranch:  asString(raw["default_branch"]),
		ConfiguredAt:   asString(raw["configured_at"]),
	}
	if cfg.DefaultBranch == "" {
		cfg.DefaultBranch = "main"
	}
	return cfg, true
}

// SetGitHubConfig writes the GitHub block into the stages config.
func (p *Project) SetGitHubConfig(cfg *GitHubConfig) {
	if p.StagesConfig == nil {
		p.StagesConfig = DefaultStagesConfig()
	}
	p.StagesConfig["github"] = map[string]any{
		"repo":            cfg.Repo,
		"encrypted_token": cfg.EncryptedToken,
		"default_branch":  cfg.DefaultBranch,
		"configured_at":   cfg.ConfiguredAt,
	}
}

// ClearGitHubConfig removes the GitHub block and reports whether one existed.
func (p *Project) ClearGitHubConfig() bool {
	if p.StagesConfig == nil {
		return false
	}
	if _, ok := p.StagesConfig["github"]; !ok {
		return false
	}
	delete(p.StagesConfig, "github")
	return true
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
