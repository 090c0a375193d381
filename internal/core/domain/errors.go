package domain

import "errors"

// ============================================================================
// Project Errors
// ============================================================================

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrInvalidProjectName = errors.New("project name is required")
	ErrInvalidStage       = errors.New("invalid stage")
)

// ============================================================================
// Artifact Errors
// ============================================================================

var (
	ErrArtifactNotFound = errors.New("artifact not found")
	ErrMissingFeedback  = errors.New("regeneration feedback is required")
)

// ============================================================================
// Stage Prerequisite Errors
// ============================================================================

var (
	ErrDiscoverIncomplete        = errors.New("discover artifacts not found: complete Discover stage first")
	ErrDefineIncomplete          = errors.New("requirements not found: complete Define stage first")
	ErrArchitectureMissing       = errors.New("architecture not found: complete Design stage first")
	ErrInvalidArchitectureOption = errors.New("invalid architecture option selected")
)

// ============================================================================
// Develop / Ticket Errors
// ============================================================================

var (
	ErrTicketSetNotFound   = errors.New("development tickets not found: generate tickets first")
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrInvalidTicketStatus = errors.New("invalid ticket status: must be todo, in_progress, or done")
)

// ============================================================================
// Test Stage Errors
// ============================================================================

var (
	ErrTestCasesNotFound     = errors.New("test cases not found: generate test cases first")
	ErrTestCaseNotFound      = errors.New("test case not found")
	ErrNoTestSuites          = errors.New("no test suites to execute")
	ErrInvalidTestCaseStatus = errors.New("invalid test case status: must be not_run, passed, failed, or blocked")
)

// ============================================================================
// Gate Review Errors
// ============================================================================

var (
	ErrInvalidGateStatus = errors.New("invalid gate status")
	ErrInvalidReviewer   = errors.New("reviewer is required")
)

// ============================================================================
// GitHub Errors
// ============================================================================

var (
	ErrGitHubNotConfigured = errors.New("GitHub not configured for this project")
	ErrInvalidRepoFormat   = errors.New("invalid repo format: use 'owner/repo'")
	ErrGitHubTokenInvalid  = errors.New("invalid GitHub token")
	ErrGitHubRepoNotFound  = errors.New("repository not found or not accessible")
	ErrMissingPushAccess   = errors.New("token does not have push access to this repository")
	ErrMissingGitHubToken  = errors.New("GitHub token is required")
	ErrMissingGitHubRepo   = errors.New("GitHub repo is required")
)

// ============================================================================
// AI Errors
// ============================================================================

var (
	ErrAIUnavailable     = errors.New("AI backend is not configured")
	ErrAIResponseNotJSON = errors.New("failed to parse AI response as JSON")
)
