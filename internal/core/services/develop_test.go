package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sdlc-studio-service/internal/core/crypto"
	"sdlc-studio-service/internal/core/domain"
	ports "sdlc-studio-service/internal/core/ports/output"
	"sdlc-studio-service/internal/testutil"
)

const ticketsJSON = `{
  "project_key": "BOOK",
  "summary": {"total_tickets": 2, "total_estimated_hours": 12, "epics": ["booking"]},
  "tickets": [
    {"key": "BOOK-1", "type": "feature", "summary": "Booking model", "description": "schema", "acceptance_criteria": ["persisted"], "tech_stack": ["go"], "priority": "high", "estimated_hours": 4, "status": "todo"},
    {"key": "BOOK-2", "type": "feature", "summary": "Booking API", "description": "endpoints", "acceptance_criteria": ["CRUD works"], "tech_stack": ["go"], "priority": "high", "estimated_hours": 8, "dependencies": ["BOOK-1"], "status": "todo"}
  ]
}`

type developFixture struct {
	svc       *DevelopService
	projects  *testutil.MockProjectRepo
	artifacts *testutil.MockArtifactRepo
	ai        *testutil.MockAIClient
	github    *testutil.MockGitHubClient
	cipher    *crypto.TokenCipher
	project   *domain.Project
}

func newDevelopFixture(t *testing.T) *developFixture {
	t.Helper()
	projects := new(testutil.MockProjectRepo)
	artifacts := new(testutil.MockArtifactRepo)
	ai := new(testutil.MockAIClient)
	github := new(testutil.MockGitHubClient)
	commits := new(testutil.MockCommitRepo)
	activities := new(testutil.MockActivityRepo)
	commits.On("Create", mock.Anything, mock.AnythingOfType("*domain.Commit")).Return(nil).Maybe()
	activities.On("Create", mock.Anything, mock.AnythingOfType("*domain.Activity")).Return(nil).Maybe()

	cipher := crypto.NewTokenCipher("test-key")
	project, _ := domain.NewProject("Booking App", "d", "user-1")
	sealed, err := cipher.Encrypt("ghp_token")
	assert.NoError(t, err)
	project.SetGitHubConfig(&domain.GitHubConfig{Repo: "acme/booking", EncryptedToken: sealed, DefaultBranch: "main"})

	return &developFixture{
		svc:       NewDevelopService(projects, artifacts, ai, github, cipher, commits, activities),
		projects:  projects,
		artifacts: artifacts,
		ai:        ai,
		github:    github,
		cipher:    cipher,
		project:   project,
	}
}

func (f *developFixture) withTicketArtifact() *domain.Artifact {
	artifact := domain.NewArtifact(f.project.ID, domain.StageDevelop, domain.ArtifactCode, ticketArtifactName, ticketsJSON, "user-1", nil)
	f.artifacts.On("LatestByName", mock.Anything, f.project.ID, domain.StageDevelop, ticketArtifactName).Return(artifact, nil)
	return artifact
}

func TestDevelopService_GenerateTickets(t *testing.T) {
	f := newDevelopFixture(t)

	architecture := domain.NewArtifact(f.project.ID, domain.StageDesign, domain.ArtifactArchitecture, "Architecture Document", "arch", "user-1", nil)
	brd := domain.NewArtifact(f.project.ID, domain.StageDefine, domain.ArtifactBRD, "Business Requirements Document", "reqs", "user-1", nil)

	f.projects.On("GetByID", mock.Anything, f.project.ID).Return(f.project, nil)
	f.artifacts.On("LatestByType", mock.Anything, f.project.ID, domain.ArtifactArchitecture).Return(architecture, nil)
	f.artifacts.On("LatestByType", mock.Anything, f.project.ID, domain.ArtifactBRD).Return(brd, nil)
	f.artifacts.On("LatestByType", mock.Anything, f.project.ID, domain.ArtifactUserStories).Return(nil, domain.ErrArtifactNotFound)
	f.ai.On("Generate", mock.Anything, mock.Anything, mock.Anything, 8000).Return(ticketsJSON, nil)
	f.artifacts.On("Create", mock.Anything, mock.AnythingOfType("*domain.Artifact")).Return(nil)

	set, artifact, err := f.svc.GenerateTickets(context.Background(), f.project.ID, "user-1")
	assert.NoError(t, err)
	assert.Equal(t, "BOOK", set.ProjectKey)
	assert.Len(t, set.Tickets, 2)
	assert.Equal(t, ticketArtifactName, artifact.Name)
	assert.Equal(t, "development_tickets", artifact.Metadata["type"])
}

func TestDevelopService_GenerateTickets_NoGitHub(t *testing.T) {
	f := newDevelopFixture(t)

	bare, _ := domain.NewProject("p", "d", "user-1")
	f.projects.On("GetByID", mock.Anything, bare.ID).Return(bare, nil)

	_, _, err := f.svc.GenerateTickets(context.Background(), bare.ID, "user-1")
	assert.ErrorIs(t, err, domain.ErrGitHubNotConfigured)
}

func TestDevelopService_GenerateTickets_NoArchitecture(t *testing.T) {
	f := newDevelopFixture(t)

	f.projects.On("GetByID", mock.Anything, f.project.ID).Return(f.project, nil)
	f.artifacts.On("LatestByType", mock.Anything, f.project.ID, domain.ArtifactArchitecture).
		Return(nil, domain.ErrArtifactNotFound)

	_, _, err := f.svc.GenerateTickets(context.Background(), f.project.ID, "user-1")
	assert.ErrorIs(t, err, domain.ErrArchitectureMissing)
}

func TestDevelopService_GetTickets_NotGenerated(t *testing.T) {
	f := newDevelopFixture(t)

	f.artifacts.On("LatestByName", mock.Anything, f.project.ID, domain.StageDevelop, ticketArtifactName).
		Return(nil, domain.ErrArtifactNotFound)

	_, err := f.svc.GetTickets(context.Background(), f.project.ID)
	assert.ErrorIs(t, err, domain.ErrTicketSetNotFound)
}

func TestDevelopService_GetTickets_ResolvesRegeneratedSet(t *testing.T) {
	f := newDevelopFixture(t)

	regenerated := domain.NewArtifact(f.project.ID, domain.StageDevelop, domain.ArtifactCode,
		ticketArtifactName+" v2", ticketsJSON, "user-1", nil)
	regenerated.Version = 2
	f.artifacts.On("LatestByName", mock.Anything, f.project.ID, domain.StageDevelop, ticketArtifactName).
		Return(regenerated, nil)

	set, err := f.svc.GetTickets(context.Background(), f.project.ID)
	assert.NoError(t, err)
	assert.Equal(t, "BOOK", set.ProjectKey)
	assert.Len(t, set.Tickets, 2)
}

func TestDevelopService_UpdateTicketStatus(t *testing.T) {
	f := newDevelopFixture(t)

	artifact := f.withTicketArtifact()
	f.artifacts.On("Update", mock.Anything, artifact).Return(nil)

	ticket, err := f.svc.UpdateTicketStatus(context.Background(), f.project.ID, "BOOK-1", domain.TicketInProgress, "user-1")
	assert.NoError(t, err)
	assert.Equal(t, domain.TicketInProgress, ticket.Status)

	var stored domain.TicketSet
	assert.NoError(t, json.Unmarshal([]byte(artifact.Content), &stored))
	assert.Equal(t, domain.TicketInProgress, stored.Find("BOOK-1").Status)
}

func TestDevelopService_UpdateTicketStatus_Invalid(t *testing.T) {
	f := newDevelopFixture(t)

	_, err := f.svc.UpdateTicketStatus(context.Background(), f.project.ID, "BOOK-1", "shipped", "user-1")
	assert.ErrorIs(t, err, domain.ErrInvalidTicketStatus)
}

func TestDevelopService_UpdateTicketStatus_UnknownTicket(t *testing.T) {
	f := newDevelopFixture(t)

	f.withTicketArtifact()
	_, err := f.svc.UpdateTicketStatus(context.Background(), f.project.ID, "BOOK-99", domain.TicketDone, "user-1")
	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
}

func TestDevelopService_StartImplementation(t *testing.T) {
	f := newDevelopFixture(t)

	artifact := f.withTicketArtifact()
	f.projects.On("GetByID", mock.Anything, f.project.ID).Return(f.project, nil)
	f.artifacts.On("Update", mock.Anything, artifact).Return(nil)
	f.github.On("CreateBranch", mock.Anything, "ghp_token", "acme/booking", mock.MatchedBy(func(branch string) bool {
		return strings.HasPrefix(branch, "feature/BOOK-1-")
	}), "main").Return(nil)
	f.github.On("CreateIssue", mock.Anything, "ghp_token", "acme/booking", "[BOOK-1] Booking model", mock.Anything, []string{"sdlc-studio", "feature"}).
		Return(&ports.Issue{Number: 7, HTMLURL: "https://github.com/acme/booking/issues/7"}, nil)

	start, err := f.svc.StartImplementation(context.Background(), f.project.ID, "BOOK-1", "user-1")
	assert.NoError(t, err)
	assert.Equal(t, 7, start.IssueNumber)
	assert.Equal(t, domain.TicketInProgress, start.Ticket.Status)
	assert.Equal(t, start.Branch, start.Ticket.Implementation.Branch)
	f.github.AssertExpectations(t)
}

func TestDevelopService_Implement(t *testing.T) {
	f := newDevelopFixture(t)

	codeJSON := `{"files": [{"path": "internal/booking/model.go", "content": "package booking"}], "summary": "adds the booking model"}`

	artifact := f.withTicketArtifact()
	f.projects.On("GetByID", mock.Anything, f.project.ID).Return(f.project, nil)
	f.artifacts.On("LatestByType", mock.Anything, f.project.ID, domain.ArtifactArchitecture).Return(nil, domain.ErrArtifactNotFound)
	f.artifacts.On("Update", mock.Anything, artifact).Return(nil)
	f.ai.On("Generate", mock.Anything, mock.Anything, mock.Anything, 12000).Return(codeJSON, nil)
	f.github.On("CreateBranch", mock.Anything, "ghp_token", "acme/booking", mock.Anything, "main").Return(nil)
	f.github.On("CreateIssue", mock.Anything, "ghp_token", "acme/booking", mock.Anything, mock.Anything, mock.Anything).
		Return(&ports.Issue{Number: 8, HTMLURL: "https://github.com/acme/booking/issues/8"}, nil)
	f.github.On("CommitFiles", mock.Anything, "ghp_token", "acme/booking", mock.Anything, "BOOK-1: Booking model",
		map[string]string{"internal/booking/model.go": "package booking"}).
		Return(&ports.CommitResult{SHA: "abc123"}, nil)
	f.github.On("CreatePullRequest", mock.Anything, "ghp_token", "acme/booking", mock.Anything, mock.Anything, mock.Anything, "main").
		Return(&ports.PullRequest{Number: 9, HTMLURL: "https://github.com/acme/booking/pull/9"}, nil)
	f.github.On("AddIssueComment", mock.Anything, "ghp_token", "acme/booking", 8, mock.Anything).Return(nil)

	result, err := f.svc.Implement(context.Background(), f.project.ID, "BOOK-1", "user-1")
	assert.NoError(t, err)
	assert.Equal(t, "abc123", result.CommitSHA)
	assert.Equal(t, []string{"internal/booking/model.go"}, result.Files)
	assert.Equal(t, domain.TicketDone, result.Ticket.Status)
	assert.Equal(t, 9, result.Ticket.Implementation.PRNumber)
	f.github.AssertExpectations(t)
}
