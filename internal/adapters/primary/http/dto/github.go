package dto

import (
	ports "sdlc-studio-service/internal/core/ports/output"
)

type ValidateRepoRequest struct {
	Token string `json:"token" binding:"required"`
	Repo  string `json:"repo" binding:"required"`
}

type ValidateRepoResponse struct {
	Valid         bool   `json:"valid"`
	FullName      string `json:"full_name"`
	DefaultBranch string `json:"default_branch"`
	Private       bool   `json:"private"`
	HTMLURL       string `json:"html_url"`
}

func ToValidateRepoResponse(info *ports.RepoInfo) ValidateRepoResponse {
	return ValidateRepoResponse{
		Valid:         true,
		FullName:      info.FullName,
		DefaultBranch: info.DefaultBranch,
		Private:       info.Private,
		HTMLURL:       info.HTMLURL,
	}
}

type SaveGitHubConfigRequest struct {
	Token  string `json:"token" binding:"required"`
	Repo   string `json:"repo" binding:"required"`
	UserID string `json:"user_id"`
}
