package dto

import (
	"time"

	"github.com/google/uuid"

	"sdlc-studio-service/internal/core/domain"
)

type SubmitGateReviewRequest struct {
	Stage      string `json:"stage" binding:"required"`
	ReviewerID string `json:"reviewer_id" binding:"required"`
	Status     string `json:"status" binding:"required"`
	Comment    string `json:"comment"`
}

type GateReviewResponse struct {
	ID         uuid.UUID `json:"id"`
	ProjectID  uuid.UUID `json:"project_id"`
	Stage      string    `json:"stage"`
	ReviewerID string    `json:"reviewer_id"`
	Status     string    `json:"status"`
	Comment    string    `json:"comment"`
	CreatedAt  string    `json:"created_at"`
}

func ToGateReviewResponse(g *domain.GateReview) GateReviewResponse {
	return GateReviewResponse{
		ID:         g.ID,
		ProjectID:  g.ProjectID,
		Stage:      string(g.Stage),
		ReviewerID: g.ReviewerID,
		Status:     string(g.Status),
		Comment:    g.Comment,
		CreatedAt:  g.CreatedAt.Format(time.RFC3339),
	}
}
