package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"sdlc-studio-service/internal/adapters/primary/http/dto"
)

func (h *Handler) GenerateTickets(c *gin.Context) {
	var req dto.GenerateTicketsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	set, artifact, err := h.developSvc.GenerateTickets(c.Request.Context(), req.ProjectID, req.UserID)
	if err != nil {
		log.WithError(err).Error("ticket generation failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"artifact_id": artifact.ID,
		"tickets":     dto.ToTicketSetResponse(set),
	})
}

func (h *Handler) GetTickets(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	set, err := h.developSvc.GetTickets(c.Request.Context(), projectID)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTicketSetResponse(set))
}

func (h *Handler) UpdateTicketStatus(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	var req dto.UpdateTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.developSvc.UpdateTicketStatus(c.Request.Context(), projectID, c.Param("key"), req.Status, req.UserID)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

func (h *Handler) StartImplementation(c *gin.Context) {
	var req dto.TicketActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := h.developSvc.StartImplementation(c.Request.Context(), req.ProjectID, req.TicketKey, req.UserID)
	if err != nil {
		log.WithError(err).Error("start implementation failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToImplementationStartResponse(start))
}

func (h *Handler) ImplementTicket(c *gin.Context) {
	var req dto.TicketActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.developSvc.Implement(c.Request.Context(), req.ProjectID, req.TicketKey, req.UserID)
	if err != nil {
		log.WithError(err).Error("implement ticket failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToImplementationResponse(result))
}
