package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"sdlc-studio-service/internal/adapters/primary/http/dto"
)

func (h *Handler) ValidateGitHubRepo(c *gin.Context) {
	var req dto.ValidateRepoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info, err := h.githubSvc.Validate(c.Request.Context(), req.Token, req.Repo)
	if err != nil {
		log.WithError(err).Warn("github validation failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToValidateRepoResponse(info))
}

func (h *Handler) SaveGitHubConfig(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	var req dto.SaveGitHubConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.githubSvc.SaveConfig(c.Request.Context(), projectID, req.Token, req.Repo, req.UserID)
	if err != nil {
		log.WithError(err).Error("save github config failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *Handler) GetGitHubConfig(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	view, err := h.githubSvc.GetConfig(c.Request.Context(), projectID)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) DeleteGitHubConfig(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	if err := h.githubSvc.DeleteConfig(c.Request.Context(), projectID, c.Query("user_id")); err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
