package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"sdlc-studio-service/internal/adapters/primary/http/dto"
)

func (h *Handler) GetArtifact(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid artifact id"})
		return
	}

	artifact, err := h.artifactSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToArtifactResponse(artifact))
}

// ListProjectArtifacts returns every artifact of a project. A
// malformed project id yields an empty list rather than an error.
func (h *Handler) ListProjectArtifacts(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusOK, []dto.ArtifactResponse{})
		return
	}

	artifacts, err := h.artifactSvc.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		log.WithError(err).Error("list artifacts failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToArtifactResponses(artifacts))
}

func (h *Handler) ListStageArtifacts(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	artifacts, err := h.artifactSvc.ListByStage(c.Request.Context(), projectID, c.Param("stage"))
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToArtifactResponses(artifacts))
}

func (h *Handler) RegenerateArtifact(c *gin.Context) {
	var req dto.RegenerateArtifactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	artifact, err := h.artifactSvc.Regenerate(c.Request.Context(), req.ArtifactID, req.Feedback, req.UserID)
	if err != nil {
		log.WithError(err).Error("regenerate artifact failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToArtifactResponse(artifact))
}
