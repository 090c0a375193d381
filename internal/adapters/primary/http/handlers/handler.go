package handlers

import (
	"github.com/gin-gonic/gin"

	"sdlc-studio-service/internal/core/services"
)

type Handler struct {
	projectSvc  *services.ProjectService
	artifactSvc *services.ArtifactService
	chatSvc     *services.ChatService
	discoverSvc *services.DiscoverService
	defineSvc   *services.DefineService
	designSvc   *services.DesignService
	developSvc  *services.DevelopService
	testSvc     *services.TestStageService
	githubSvc   *services.GitHubService
	gateSvc     *services.GateService
}

func New(
	projectSvc *services.ProjectService,
	artifactSvc *services.ArtifactService,
	chatSvc *services.ChatService,
	discoverSvc *services.DiscoverService,
	defineSvc *services.DefineService,
	designSvc *services.DesignService,
	developSvc *services.DevelopService,
	testSvc *services.TestStageService,
	githubSvc *services.GitHubService,
	gateSvc *services.GateService,
) *Handler {
	return &Handler{
		projectSvc:  projectSvc,
		artifactSvc: artifactSvc,
		chatSvc:     chatSvc,
		discoverSvc: discoverSvc,
		defineSvc:   defineSvc,
		designSvc:   designSvc,
		developSvc:  developSvc,
		testSvc:     testSvc,
		githubSvc:   githubSvc,
		gateSvc:     gateSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Projects
	r.POST("/projects", h.CreateProject)
	r.GET("/projects", h.ListProjects)
	r.GET("/projects/:id", h.GetProject)
	r.PUT("/projects/:id", h.UpdateProject)
	r.DELETE("/projects/:id", h.DeleteProject)
	r.PUT("/projects/:id/stage", h.SetProjectStage)
	r.PUT("/projects/:id/stages-config", h.SetStagesConfig)
	r.GET("/projects/:id/commits", h.ListProjectCommits)
	r.GET("/projects/:id/activity", h.ListProjectActivity)
	r.POST("/projects/:id/gates", h.SubmitGateReview)
	r.GET("/projects/:id/gates", h.ListGateReviews)

	// Artifacts
	r.GET("/artifacts/:id", h.GetArtifact)
	r.GET("/artifacts/project/:projectId", h.ListProjectArtifacts)
	r.GET("/artifacts/project/:projectId/stage/:stage", h.ListStageArtifacts)
	r.POST("/artifacts/regenerate", h.RegenerateArtifact)

	// Stage operations
	stages := r.Group("/stages")
	{
		stages.POST("/discover/generate", h.GenerateDiscover)
		stages.POST("/define/generate", h.GenerateDefine)
		stages.POST("/design/generate", h.GenerateDesignOptions)
		stages.POST("/design/select", h.SelectDesignOption)
		stages.POST("/develop/generate-tickets", h.GenerateTickets)
		stages.GET("/develop/:projectId/tickets", h.GetTickets)
		stages.PUT("/develop/:projectId/tickets/:key/status", h.UpdateTicketStatus)
		stages.POST("/develop/start-implementation", h.StartImplementation)
		stages.POST("/develop/implement", h.ImplementTicket)
		stages.POST("/test/generate-plan", h.GenerateTestPlan)
		stages.GET("/test/:projectId/plan", h.GetTestPlan)
		stages.POST("/test/generate-cases", h.GenerateTestCases)
		stages.GET("/test/:projectId/cases", h.GetTestCases)
		stages.POST("/test/run", h.RunTests)
		stages.GET("/test/:projectId/dashboard", h.GetTestDashboard)
		stages.PUT("/test/:projectId/cases/:caseId/status", h.UpdateTestCaseStatus)
	}

	// Chat
	r.POST("/chat/send", h.SendChatMessage)
	r.GET("/chat/:projectId/:stage/history", h.GetChatHistory)
	r.DELETE("/chat/:projectId/:stage/history", h.ClearChatHistory)

	// GitHub
	r.POST("/github/validate", h.ValidateGitHubRepo)
	r.POST("/github/projects/:projectId/config", h.SaveGitHubConfig)
	r.GET("/github/projects/:projectId/config", h.GetGitHubConfig)
	r.DELETE("/github/projects/:projectId/config", h.DeleteGitHubConfig)
}
