package domain

// ============================================================================
// Stages
// ============================================================================

// Stage is one of the seven fixed SDLC stages.
type Stage string

const (
	StageDiscover Stage = "discover"
	StageDefine   Stage = "define"
	StageDesign   Stage = "design"
	StageDevelop  Stage = "develop"
	StageTest     Stage = "test"
	StageBuild    Stage = "build"
	StageDeploy   Stage = "deploy"
)

// AllStages returns the stages in pipeline order.
func AllStages() []Stage {
	return []Stage{
		StageDiscover,
		StageDefine,
		StageDesign,
		StageDevelop,
		StageTest,
		StageBuild,
		StageDeploy,
	}
}

// ParseStage validates a stage name.
func ParseStage(s string) (Stage, error) {
	for _, stage := range AllStages() {
		if string(stage) == s {
			return stage, nil
		}
	}
	return "", ErrInvalidStage
}

// Order returns the 1-based pipeline position, or 0 for an unknown stage.
func (s Stage) Order() int {
	for i, stage := range AllStages() {
		if stage == s {
			return i + 1
		}
	}
	return 0
}

// ============================================================================
// Artifact Types
// ============================================================================

// ArtifactType identifies what kind of document an artifact holds.
type ArtifactType string

const (
	ArtifactProblemStatement    ArtifactType = "problem_statement"
	ArtifactStakeholderAnalysis ArtifactType = "stakeholder_analysis"
	ArtifactBRD                 ArtifactType = "brd"
	ArtifactPRD                 ArtifactType = "prd"
	ArtifactUserStories         ArtifactType = "user_stories"
	ArtifactSolutionOptions     ArtifactType = "solution_options"
	ArtifactArchitecture        ArtifactType = "architecture"
	ArtifactSDD                 ArtifactType = "sdd"
	ArtifactAPISpec             ArtifactType = "api_spec"
	ArtifactCode                ArtifactType = "code"
	ArtifactTestPlan            ArtifactType = "test_plan"
	ArtifactTestCases           ArtifactType = "test_cases"
	ArtifactBuildConfig         ArtifactType = "build_config"
	ArtifactDeployment          ArtifactType = "deployment"
	ArtifactReleaseNotes        ArtifactType = "release_notes"
)

var artifactStages = map[ArtifactType]Stage{
	ArtifactProblemStatement:    StageDiscover,
	ArtifactStakeholderAnalysis: StageDiscover,
	ArtifactBRD:                 StageDefine,
	ArtifactPRD:                 StageDefine,
	ArtifactUserStories:         StageDefine,
	ArtifactSolutionOptions:     StageDesign,
	ArtifactArchitecture:        StageDesign,
	ArtifactSDD:                 StageDesign,
	ArtifactAPISpec:             StageDesign,
	ArtifactCode:                StageDevelop,
	ArtifactTestPlan:            StageTest,
	ArtifactTestCases:           StageTest,
	ArtifactBuildConfig:         StageBuild,
	ArtifactDeployment:          StageDeploy,
	ArtifactReleaseNotes:        StageDeploy,
}

// StageForArtifactType returns the stage an artifact type belongs to.
func StageForArtifactType(t ArtifactType) (Stage, bool) {
	stage, ok := artifactStages[t]
	return stage, ok
}

// ============================================================================
// Gate Review Status
// ============================================================================

// GateStatus is the outcome of a stage gate review.
type GateStatus string

const (
	GatePending GateStatus = "pending"
	GateReady   GateStatus = "ready"
	GatePassed  GateStatus = "passed"
	GateFailed  GateStatus = "failed"
	GateBlocked GateStatus = "blocked"
)

// ParseGateStatus validates a gate status.
func ParseGateStatus(s string) (GateStatus, error) {
	switch GateStatus(s) {
	case GatePending, GateReady, GatePassed, GateFailed, GateBlocked:
		return GateStatus(s), nil
	}
	return "", ErrInvalidGateStatus
}

// ============================================================================
// Ticket Status
// ============================================================================

// Ticket workflow states.
const (
	TicketTodo       = "todo"
	TicketInProgress = "in_progress"
	TicketDone       = "done"
)

// ValidTicketStatus reports whether s is a known ticket state.
func ValidTicketStatus(s string) bool {
	return s == TicketTodo || s == TicketInProgress || s == TicketDone
}
