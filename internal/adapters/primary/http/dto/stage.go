package dto

import (
	"github.com/google/uuid"

	"sdlc-studio-service/internal/core/domain"
	"sdlc-studio-service/internal/core/services"
)

type DiscoverGenerateRequest struct {
	ProjectID uuid.UUID `json:"project_id" binding:"required"`
	Idea      string    `json:"idea"`
	UserID    string    `json:"user_id"`
}

type DefineGenerateRequest struct {
	ProjectID uuid.UUID `json:"project_id" binding:"required"`
	UserID    string    `json:"user_id"`
}

type DesignGenerateRequest struct {
	ProjectID   uuid.UUID `json:"project_id" binding:"required"`
	Constraints string    `json:"constraints"`
	UserID      string    `json:"user_id"`
}

type DesignSelectRequest struct {
	ProjectID uuid.UUID `json:"project_id" binding:"required"`
	OptionID  int       `json:"option_id" binding:"required"`
	UserID    string    `json:"user_id"`
}

type GenerateTicketsRequest struct {
	ProjectID uuid.UUID `json:"project_id" binding:"required"`
	UserID    string    `json:"user_id"`
}

type TicketActionRequest struct {
	ProjectID uuid.UUID `json:"project_id" binding:"required"`
	TicketKey string    `json:"ticket_key" binding:"required"`
	UserID    string    `json:"user_id"`
}

type UpdateTicketStatusRequest struct {
	Status string `json:"status" binding:"required"`
	UserID string `json:"user_id"`
}

type TestGenerateRequest struct {
	ProjectID uuid.UUID `json:"project_id" binding:"required"`
	UserID    string    `json:"user_id"`
}

type TestRunRequest struct {
	ProjectID uuid.UUID `json:"project_id" binding:"required"`
	UserID    string    `json:"user_id"`
}

type UpdateCaseStatusRequest struct {
	Status string `json:"status" binding:"required"`
	UserID string `json:"user_id"`
}

type StageGenerateResponse struct {
	Stage     string             `json:"stage"`
	Artifacts []ArtifactResponse `json:"artifacts"`
}

type TicketSetResponse struct {
	ProjectKey string           `json:"project_key"`
	Summary    map[string]any   `json:"summary"`
	Tickets    []*domain.Ticket `json:"tickets"`
}

func ToTicketSetResponse(set *domain.TicketSet) TicketSetResponse {
	return TicketSetResponse{
		ProjectKey: set.ProjectKey,
		Summary:    set.Summary,
		Tickets:    set.Tickets,
	}
}

type ImplementationStartResponse struct {
	Ticket      *domain.Ticket `json:"ticket"`
	Branch      string         `json:"branch"`
	IssueNumber int            `json:"issue_number"`
	IssueURL    string         `json:"issue_url"`
}

func ToImplementationStartResponse(s *services.ImplementationStart) ImplementationStartResponse {
	return ImplementationStartResponse{
		Ticket:      s.Ticket,
		Branch:      s.Branch,
		IssueNumber: s.IssueNumber,
		IssueURL:    s.IssueURL,
	}
}

type ImplementationResponse struct {
	Ticket    *domain.Ticket `json:"ticket"`
	Branch    string         `json:"branch"`
	IssueURL  string         `json:"issue_url"`
	PRURL     string         `json:"pr_url"`
	CommitSHA string         `json:"commit_sha"`
	Files     []string       `json:"files"`
	Summary   string         `json:"summary"`
}

func ToImplementationResponse(r *services.ImplementationResult) ImplementationResponse {
	return ImplementationResponse{
		Ticket:    r.Ticket,
		Branch:    r.Branch,
		IssueURL:  r.IssueURL,
		PRURL:     r.PRURL,
		CommitSHA: r.CommitSHA,
		Files:     r.Files,
		Summary:   r.Summary,
	}
}
