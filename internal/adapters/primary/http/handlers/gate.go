package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"sdlc-studio-service/internal/adapters/primary/http/dto"
)

func (h *Handler) SubmitGateReview(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	var req dto.SubmitGateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.gateSvc.Submit(c.Request.Context(), projectID, req.Stage, req.ReviewerID, req.Status, req.Comment)
	if err != nil {
		log.WithError(err).Warn("gate review submission failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToGateReviewResponse(review))
}

func (h *Handler) ListGateReviews(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	reviews, err := h.gateSvc.List(c.Request.Context(), projectID)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	out := make([]dto.GateReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, dto.ToGateReviewResponse(r))
	}
	c.JSON(http.StatusOK, out)
}
