package handlers

import (
	"github.com/gin-gonic/gin"

	"sdlc-studio-service/internal/core/crypto"
	"sdlc-studio-service/internal/core/services"
	"sdlc-studio-service/internal/testutil"
)

type routerFixture struct {
	router     *gin.Engine
	projects   *testutil.MockProjectRepo
	artifacts  *testutil.MockArtifactRepo
	chats      *testutil.MockChatRepo
	commits    *testutil.MockCommitRepo
	activities *testutil.MockActivityRepo
	gates      *testutil.MockGateReviewRepo
	ai         *testutil.MockAIClient
	github     *testutil.MockGitHubClient
	cipher     *crypto.TokenCipher
}

func setupRouter() *routerFixture {
	gin.SetMode(gin.TestMode)

	f := &routerFixture{
		projects:   new(testutil.MockProjectRepo),
		artifacts:  new(testutil.MockArtifactRepo),
		chats:      new(testutil.MockChatRepo),
		commits:    new(testutil.MockCommitRepo),
		activities: new(testutil.MockActivityRepo),
		gates:      new(testutil.MockGateReviewRepo),
		ai:         new(testutil.MockAIClient),
		github:     new(testutil.MockGitHubClient),
		cipher:     crypto.NewTokenCipher("handler-test-key"),
	}

	projectSvc := services.NewProjectService(f.projects, f.commits, f.activities)
	artifactSvc := services.NewArtifactService(f.artifacts, f.projects, f.ai, f.commits, f.activities)
	chatSvc := services.NewChatService(f.chats, f.projects, f.ai)
	discoverSvc := services.NewDiscoverService(f.projects, f.artifacts, f.chats, f.ai, f.commits, f.activities)
	defineSvc := services.NewDefineService(f.projects, f.artifacts, f.chats, f.ai, f.commits, f.activities)
	designSvc := services.NewDesignService(f.projects, f.artifacts, f.chats, f.ai, f.commits, f.activities)
	developSvc := services.NewDevelopService(f.projects, f.artifacts, f.ai, f.github, f.cipher, f.commits, f.activities)
	testSvc := services.NewTestStageService(f.projects, f.artifacts, f.ai, f.commits, f.activities)
	githubSvc := services.NewGitHubService(f.projects, f.github, f.cipher, f.activities)
	gateSvc := services.NewGateService(f.projects, f.gates, f.activities)

	h := New(projectSvc, artifactSvc, chatSvc, discoverSvc, defineSvc, designSvc, developSvc, testSvc, githubSvc, gateSvc)

	r := gin.New()
	api := r.Group("/api")
	h.RegisterRoutes(api)
	f.router = r

	return f
}
