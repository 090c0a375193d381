package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"sdlc-studio-service/internal/adapters/primary/http/dto"
)

func (h *Handler) GenerateTestPlan(c *gin.Context) {
	var req dto.TestGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	artifact, err := h.testSvc.GeneratePlan(c.Request.Context(), req.ProjectID, req.UserID)
	if err != nil {
		log.WithError(err).Error("test plan generation failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToArtifactResponse(artifact))
}

func (h *Handler) GetTestPlan(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	artifact, err := h.testSvc.GetPlan(c.Request.Context(), projectID)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToArtifactResponse(artifact))
}

func (h *Handler) GenerateTestCases(c *gin.Context) {
	var req dto.TestGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	set, artifact, err := h.testSvc.GenerateCases(c.Request.Context(), req.ProjectID, req.UserID)
	if err != nil {
		log.WithError(err).Error("test case generation failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"artifact_id": artifact.ID,
		"cases":       set,
	})
}

func (h *Handler) GetTestCases(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	set, err := h.testSvc.GetCases(c.Request.Context(), projectID)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, set)
}

func (h *Handler) RunTests(c *gin.Context) {
	var req dto.TestRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	run, err := h.testSvc.Run(c.Request.Context(), req.ProjectID, req.UserID)
	if err != nil {
		log.WithError(err).Error("test run failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}

func (h *Handler) GetTestDashboard(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	dashboard, err := h.testSvc.GetDashboard(c.Request.Context(), projectID)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (h *Handler) UpdateTestCaseStatus(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	var req dto.UpdateCaseStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tc, err := h.testSvc.UpdateCaseStatus(c.Request.Context(), projectID, c.Param("caseId"), req.Status, req.UserID)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, tc)
}
