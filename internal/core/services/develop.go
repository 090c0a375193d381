package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sdlc-studio-service/internal/core/crypto"
	"sdlc-studio-service/internal/core/domain"
	ports "sdlc-studio-service/internal/core/ports/output"
	"sdlc-studio-service/internal/core/prompts"
)

// ticketArtifactName is the fixed name of the JSON artifact the
// ticket set lives in.
const ticketArtifactName = "Development Tickets"

// DevelopService generates tickets and drives the GitHub
// implementation workflow.
type DevelopService struct {
	projects  ports.ProjectRepository
	artifacts ports.ArtifactRepository
	ai        ports.AIClient
	github    ports.GitHubClient
	cipher    *crypto.TokenCipher
	recorder  generationRecorder
}

func NewDevelopService(projects ports.ProjectRepository, artifacts ports.ArtifactRepository, ai ports.AIClient, github ports.GitHubClient, cipher *crypto.TokenCipher, commits ports.CommitRepository, activities ports.ActivityRepository) *DevelopService {
	return &DevelopService{
		projects:  projects,
		artifacts: artifacts,
		ai:        ai,
		github:    github,
		cipher:    cipher,
		recorder:  generationRecorder{commits: commits, activities: activities},
	}
}

// GenerateTickets breaks the project into development tickets. It
// requires the Design stage output and a configured GitHub repo, and
// stores the set as a JSON artifact in the Develop stage.
func (s *DevelopService) GenerateTickets(ctx context.Context, projectID uuid.UUID, userID string) (*domain.TicketSet, *domain.Artifact, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}
	if _, ok := project.GitHubConfig(); !ok {
		return nil, nil, domain.ErrGitHubNotConfigured
	}

	architecture, err := s.artifacts.LatestByType(ctx, projectID, domain.ArtifactArchitecture)
	if err != nil {
		if errors.Is(err, domain.ErrArtifactNotFound) {
			return nil, nil, domain.ErrArchitectureMissing
		}
		return nil, nil, err
	}
	brd, err := s.artifacts.LatestByType(ctx, projectID, domain.ArtifactBRD)
	if err != nil {
		if errors.Is(err, domain.ErrArtifactNotFound) {
			return nil, nil, domain.ErrDefineIncomplete
		}
		return nil, nil, err
	}

	input := projectHeader(project)
	input += "Business Requirements:\n" + brd.Content + "\n"
	if stories, err := s.artifacts.LatestByType(ctx, projectID, domain.ArtifactUserStories); err == nil {
		input += "User Stories:\n" + stories.Content + "\n"
	}
	input += "Architecture:\n" + architecture.Content + "\n"

	raw, err := s.ai.Generate(ctx, prompts.DevelopmentTickets, input, 8000)
	if err != nil {
		return nil, nil, err
	}
	var set domain.TicketSet
	if err := decodeAIJSON(raw, &set); err != nil {
		return nil, nil, err
	}
	for _, t := range set.Tickets {
		if !domain.ValidTicketStatus(t.Status) {
			t.Status = domain.TicketTodo
		}
	}

	content, err := json.Marshal(&set)
	if err != nil {
		return nil, nil, fmt.Errorf("encode ticket set: %w", err)
	}
	artifact := domain.NewArtifact(projectID, domain.StageDevelop, domain.ArtifactCode, ticketArtifactName, string(content), userID, map[string]any{
		"type":          "development_tickets",
		"project_key":   set.ProjectKey,
		"total_tickets": len(set.Tickets),
	})
	if err := s.artifacts.Create(ctx, artifact); err != nil {
		return nil, nil, err
	}

	s.recorder.record(ctx, projectID, domain.StageDevelop, userID,
		fmt.Sprintf("Generate %d development tickets", len(set.Tickets)),
		"tickets_generated",
		domain.ChangeSet{Added: []string{artifact.Name}},
		map[string]any{"artifact_id": artifact.ID.String(), "total_tickets": len(set.Tickets)})

	return &set, artifact, nil
}

// GetTickets loads the current ticket set.
func (s *DevelopService) GetTickets(ctx context.Context, projectID uuid.UUID) (*domain.TicketSet, error) {
	_, set, err := s.loadTicketSet(ctx, projectID)
	return set, err
}

// UpdateTicketStatus moves a ticket between todo, in_progress, and done.
func (s *DevelopService) UpdateTicketStatus(ctx context.Context, projectID uuid.UUID, key, status, userID string) (*domain.Ticket, error) {
	if !domain.ValidTicketStatus(status) {
		return nil, domain.ErrInvalidTicketStatus
	}
	artifact, set, err := s.loadTicketSet(ctx, projectID)
	if err != nil {
		return nil, err
	}
	ticket := set.Find(key)
	if ticket == nil {
		return nil, domain.ErrTicketNotFound
	}
	ticket.Status = status

	if err := s.saveTicketSet(ctx, artifact, set); err != nil {
		return nil, err
	}

	activity := domain.NewActivity(projectID, userID, "ticket_status_changed", map[string]any{
		"ticket": key,
		"status": status,
	})
	_ = s.recorder.activities.Create(ctx, activity)

	return ticket, nil
}

// ImplementationStart is the result of opening work on a ticket.
type ImplementationStart struct {
	Ticket      *domain.Ticket
	Branch      string
	IssueNumber int
	IssueURL    string
}

// StartImplementation creates the feature branch and tracking issue
// for a ticket and marks it in progress.
func (s *DevelopService) StartImplementation(ctx context.Context, projectID uuid.UUID, key, userID string) (*ImplementationStart, error) {
	project, token, ghCfg, err := s.githubAccess(ctx, projectID)
	if err != nil {
		return nil, err
	}
	artifact, set, err := s.loadTicketSet(ctx, projectID)
	if err != nil {
		return nil, err
	}
	ticket := set.Find(key)
	if ticket == nil {
		return nil, domain.ErrTicketNotFound
	}

	branch := fmt.Sprintf("feature/%s-%d", key, time.Now().Unix())
	if err := s.github.CreateBranch(ctx, token, ghCfg.Repo, branch, ghCfg.DefaultBranch); err != nil {
		return nil, err
	}

	issue, err := s.github.CreateIssue(ctx, token, ghCfg.Repo, fmt.Sprintf("[%s] %s", key, ticket.Summary), issueBody(ticket), []string{"sdlc-studio", ticket.Type})
	if err != nil {
		return nil, err
	}

	ticket.Status = domain.TicketInProgress
	ticket.Implementation = &domain.TicketImplementation{
		Branch:      branch,
		IssueNumber: issue.Number,
		IssueURL:    issue.HTMLURL,
	}
	if err := s.saveTicketSet(ctx, artifact, set); err != nil {
		return nil, err
	}

	activity := domain.NewActivity(project.ID, userID, "implementation_started", map[string]any{
		"ticket": key,
		"branch": branch,
		"issue":  issue.Number,
	})
	_ = s.recorder.activities.Create(ctx, activity)

	return &ImplementationStart{Ticket: ticket, Branch: branch, IssueNumber: issue.Number, IssueURL: issue.HTMLURL}, nil
}

// ImplementationResult is the outcome of the full implement workflow.
type ImplementationResult struct {
	Ticket    *domain.Ticket
	Branch    string
	IssueURL  string
	PRURL     string
	CommitSHA string
	Files     []string
	Summary   string
}

// generatedCode mirrors the JSON schema the implement prompt asks for.
type generatedCode struct {
	Files []struct {
		Path    string `json:"path"`
		Content string `json:"content"`
	} `json:"files"`
	Summary string `json:"summary"`
}

// Implement runs the full workflow for one ticket: branch, issue, AI
// code generation, batch commit, pull request, issue comment, and
// finally the implementation record on the ticket.
func (s *DevelopService) Implement(ctx context.Context, projectID uuid.UUID, key, userID string) (*ImplementationResult, error) {
	project, token, ghCfg, err := s.githubAccess(ctx, projectID)
	if err != nil {
		return nil, err
	}
	artifact, set, err := s.loadTicketSet(ctx, projectID)
	if err != nil {
		return nil, err
	}
	ticket := set.Find(key)
	if ticket == nil {
		return nil, domain.ErrTicketNotFound
	}

	branch := fmt.Sprintf("feature/%s-%d", key, time.Now().Unix())
	if err := s.github.CreateBranch(ctx, token, ghCfg.Repo, branch, ghCfg.DefaultBranch); err != nil {
		return nil, err
	}
	issue, err := s.github.CreateIssue(ctx, token, ghCfg.Repo, fmt.Sprintf("[%s] %s", key, ticket.Summary), issueBody(ticket), []string{"sdlc-studio", ticket.Type})
	if err != nil {
		return nil, err
	}

	ticketJSON, _ := json.Marshal(ticket)
	input := projectHeader(project)
	if architecture, err := s.artifacts.LatestByType(ctx, projectID, domain.ArtifactArchitecture); err == nil {
		input += "Architecture:\n" + architecture.Content + "\n"
	}
	input += "Ticket:\n" + string(ticketJSON) + "\n"

	raw, err := s.ai.Generate(ctx, prompts.ImplementTicket, input, 12000)
	if err != nil {
		return nil, err
	}
	var code generatedCode
	if err := decodeAIJSON(raw, &code); err != nil {
		return nil, err
	}

	files := make(map[string]string, len(code.Files))
	paths := make([]string, 0, len(code.Files))
	for _, f := range code.Files {
		files[f.Path] = f.Content
		paths = append(paths, f.Path)
	}

	commit, err := s.github.CommitFiles(ctx, token, ghCfg.Repo, branch, fmt.Sprintf("%s: %s", key, ticket.Summary), files)
	if err != nil {
		return nil, err
	}

	pr, err := s.github.CreatePullRequest(ctx, token, ghCfg.Repo,
		fmt.Sprintf("[%s] %s", key, ticket.Summary),
		fmt.Sprintf("%s\n\nCloses #%d", code.Summary, issue.Number),
		branch, ghCfg.DefaultBranch)
	if err != nil {
		return nil, err
	}

	comment := fmt.Sprintf("Implementation pushed to `%s` (%d files). PR: %s", branch, len(paths), pr.HTMLURL)
	_ = s.github.AddIssueComment(ctx, token, ghCfg.Repo, issue.Number, comment)

	ticket.Status = domain.TicketDone
	ticket.Implementation = &domain.TicketImplementation{
		Branch:        branch,
		IssueNumber:   issue.Number,
		IssueURL:      issue.HTMLURL,
		PRNumber:      pr.Number,
		PRURL:         pr.HTMLURL,
		CommitSHA:     commit.SHA,
		Files:         paths,
		ImplementedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.saveTicketSet(ctx, artifact, set); err != nil {
		return nil, err
	}

	s.recorder.record(ctx, projectID, domain.StageDevelop, userID,
		fmt.Sprintf("Implement %s (%d files)", key, len(paths)),
		"ticket_implemented",
		domain.ChangeSet{Added: paths},
		map[string]any{
			"ticket": key,
			"branch": branch,
			"pr":     pr.Number,
			"commit": commit.SHA,
		})

	return &ImplementationResult{
		Ticket:    ticket,
		Branch:    branch,
		IssueURL:  issue.HTMLURL,
		PRURL:     pr.HTMLURL,
		CommitSHA: commit.SHA,
		Files:     paths,
		Summary:   code.Summary,
	}, nil
}

// githubAccess loads the project and its decrypted GitHub credentials.
func (s *DevelopService) githubAccess(ctx context.Context, projectID uuid.UUID) (*domain.Project, string, *domain.GitHubConfig, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, "", nil, err
	}
	cfg, ok := project.GitHubConfig()
	if !ok || cfg.Repo == "" || cfg.EncryptedToken == "" {
		return nil, "", nil, domain.ErrGitHubNotConfigured
	}
	token, err := s.cipher.Decrypt(cfg.EncryptedToken)
	if err != nil {
		return nil, "", nil, domain.ErrGitHubNotConfigured
	}
	return project, token, cfg, nil
}

func (s *DevelopService) loadTicketSet(ctx context.Context, projectID uuid.UUID) (*domain.Artifact, *domain.TicketSet, error) {
	artifact, err := s.artifacts.LatestByName(ctx, projectID, domain.StageDevelop, ticketArtifactName)
	if err != nil {
		if errors.Is(err, domain.ErrArtifactNotFound) {
			return nil, nil, domain.ErrTicketSetNotFound
		}
		return nil, nil, err
	}
	var set domain.TicketSet
	if err := json.Unmarshal([]byte(artifact.Content), &set); err != nil {
		return nil, nil, fmt.Errorf("decode ticket set: %w", err)
	}
	return artifact, &set, nil
}

func (s *DevelopService) saveTicketSet(ctx context.Context, artifact *domain.Artifact, set *domain.TicketSet) error {
	content, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("encode ticket set: %w", err)
	}
	artifact.Content = string(content)
	artifact.UpdatedAt = time.Now().UTC()
	return s.artifacts.Update(ctx, artifact)
}

func issueBody(t *domain.Ticket) string {
	body := t.Description + "\n\n**Acceptance Criteria:**\n"
	for _, c := range t.AcceptanceCriteria {
		body += "- " + c + "\n"
	}
	body += fmt.Sprintf("\nPriority: %s | Estimate: %dh", t.Priority, t.EstimatedHours)
	return body
}
