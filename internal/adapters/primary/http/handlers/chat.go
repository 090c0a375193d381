package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"sdlc-studio-service/internal/adapters/primary/http/dto"
)

func (h *Handler) SendChatMessage(c *gin.Context) {
	var req dto.ChatSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.chatSvc.Send(c.Request.Context(), req.ProjectID, req.Stage, req.Message, req.UserID)
	if err != nil {
		log.WithError(err).Error("chat send failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ChatSendResponse{
		Reply:      reply.Reply,
		Stage:      string(reply.Stage),
		TokensUsed: reply.TokensUsed,
	})
}

func (h *Handler) GetChatHistory(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	messages, err := h.chatSvc.History(c.Request.Context(), projectID, c.Param("stage"), limit)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		items = append(items, dto.ToChatMessageResponse(m))
	}
	c.JSON(http.StatusOK, dto.ChatHistoryResponse{Messages: items, Total: len(items)})
}

func (h *Handler) ClearChatHistory(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	deleted, err := h.chatSvc.Clear(c.Request.Context(), projectID, c.Param("stage"))
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ChatClearResponse{Deleted: deleted})
}
