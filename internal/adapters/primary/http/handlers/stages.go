package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"sdlc-studio-service/internal/adapters/primary/http/dto"
)

func (h *Handler) GenerateDiscover(c *gin.Context) {
	var req dto.DiscoverGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	artifacts, err := h.discoverSvc.Generate(c.Request.Context(), req.ProjectID, req.Idea, req.UserID)
	if err != nil {
		log.WithError(err).Error("discover generation failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.StageGenerateResponse{
		Stage:     "discover",
		Artifacts: dto.ToArtifactResponses(artifacts),
	})
}

func (h *Handler) GenerateDefine(c *gin.Context) {
	var req dto.DefineGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	artifacts, err := h.defineSvc.Generate(c.Request.Context(), req.ProjectID, req.UserID)
	if err != nil {
		log.WithError(err).Error("define generation failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.StageGenerateResponse{
		Stage:     "define",
		Artifacts: dto.ToArtifactResponses(artifacts),
	})
}

func (h *Handler) GenerateDesignOptions(c *gin.Context) {
	var req dto.DesignGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	artifact, err := h.designSvc.GenerateOptions(c.Request.Context(), req.ProjectID, req.Constraints, req.UserID)
	if err != nil {
		log.WithError(err).Error("design option generation failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToArtifactResponse(artifact))
}

func (h *Handler) SelectDesignOption(c *gin.Context) {
	var req dto.DesignSelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	artifact, err := h.designSvc.SelectOption(c.Request.Context(), req.ProjectID, req.OptionID, req.UserID)
	if err != nil {
		log.WithError(err).Error("design option selection failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToArtifactResponse(artifact))
}
