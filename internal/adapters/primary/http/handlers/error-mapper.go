package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sdlc-studio-service/internal/core/domain"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrArtifactNotFound),
		errors.Is(err, domain.ErrTicketNotFound),
		errors.Is(err, domain.ErrTestCaseNotFound),
		errors.Is(err, domain.ErrGitHubRepoNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrInvalidProjectName),
		errors.Is(err, domain.ErrInvalidStage),
		errors.Is(err, domain.ErrMissingFeedback),
		errors.Is(err, domain.ErrDiscoverIncomplete),
		errors.Is(err, domain.ErrDefineIncomplete),
		errors.Is(err, domain.ErrArchitectureMissing),
		errors.Is(err, domain.ErrInvalidArchitectureOption),
		errors.Is(err, domain.ErrTicketSetNotFound),
		errors.Is(err, domain.ErrInvalidTicketStatus),
		errors.Is(err, domain.ErrTestCasesNotFound),
		errors.Is(err, domain.ErrNoTestSuites),
		errors.Is(err, domain.ErrInvalidTestCaseStatus),
		errors.Is(err, domain.ErrInvalidGateStatus),
		errors.Is(err, domain.ErrInvalidReviewer),
		errors.Is(err, domain.ErrGitHubNotConfigured),
		errors.Is(err, domain.ErrInvalidRepoFormat),
		errors.Is(err, domain.ErrMissingGitHubToken),
		errors.Is(err, domain.ErrMissingGitHubRepo):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Auth errors from GitHub
	case errors.Is(err, domain.ErrGitHubTokenInvalid):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrMissingPushAccess):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})

	// Backend unavailable
	case errors.Is(err, domain.ErrAIUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrAIResponseNotJSON):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
