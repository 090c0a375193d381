package client

// Response shapes for the service API. Fields mirror the server DTOs;
// maps are used where the payload is free-form.

type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedBy   string `json:"created_by,omitempty"`
}

type Project struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	CreatedBy    string         `json:"created_by"`
	CurrentStage string         `json:"current_stage"`
	StagesConfig map[string]any `json:"stages_config"`
	CreatedAt    string         `json:"created_at"`
	UpdatedAt    string         `json:"updated_at"`
}

type Artifact struct {
	ID        string         `json:"id"`
	ProjectID string         `json:"project_id"`
	Stage     string         `json:"stage"`
	Type      string         `json:"type"`
	Name      string         `json:"name"`
	Content   string         `json:"content"`
	Version   int            `json:"version"`
	CreatedBy string         `json:"created_by"`
	CreatedAt string         `json:"created_at"`
	Metadata  map[string]any `json:"metadata"`
}

type Commit struct {
	ID        string              `json:"id"`
	ProjectID string              `json:"project_id"`
	Stage     string              `json:"stage"`
	AuthorID  string              `json:"author_id"`
	Message   string              `json:"message"`
	Changes   map[string][]string `json:"changes"`
	CreatedAt string              `json:"created_at"`
}

type StageGeneration struct {
	Stage     string     `json:"stage"`
	Artifacts []Artifact `json:"artifacts"`
}

type Ticket struct {
	Key                string         `json:"key"`
	Type               string         `json:"type"`
	Summary            string         `json:"summary"`
	Description        string         `json:"description"`
	AcceptanceCriteria []string       `json:"acceptance_criteria"`
	TechStack          []string       `json:"tech_stack"`
	Priority           string         `json:"priority"`
	EstimatedHours     int            `json:"estimated_hours"`
	Dependencies       []string       `json:"dependencies,omitempty"`
	Status             string         `json:"status"`
	Implementation     map[string]any `json:"implementation,omitempty"`
}

type TicketSet struct {
	ProjectKey string         `json:"project_key"`
	Summary    map[string]any `json:"summary"`
	Tickets    []Ticket       `json:"tickets"`
}

type TicketGeneration struct {
	ArtifactID string    `json:"artifact_id"`
	Tickets    TicketSet `json:"tickets"`
}

type Implementation struct {
	Ticket    Ticket   `json:"ticket"`
	Branch    string   `json:"branch"`
	IssueURL  string   `json:"issue_url"`
	PRURL     string   `json:"pr_url"`
	CommitSHA string   `json:"commit_sha"`
	Files     []string `json:"files"`
	Summary   string   `json:"summary"`
}

type TestRun struct {
	ID         string  `json:"id"`
	ExecutedAt string  `json:"executed_at"`
	ExecutedBy string  `json:"executed_by"`
	Total      int     `json:"total"`
	Passed     int     `json:"passed"`
	Failed     int     `json:"failed"`
	PassRate   float64 `json:"pass_rate"`
	DurationMS int     `json:"duration_ms"`
}

type ChatReply struct {
	Reply      string `json:"reply"`
	Stage      string `json:"stage"`
	TokensUsed int    `json:"tokens_used"`
}

type ChatMessage struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	Stage     string `json:"stage"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type ChatHistory struct {
	Messages []ChatMessage `json:"messages"`
	Total    int           `json:"total"`
}

type RepoValidation struct {
	Valid         bool   `json:"valid"`
	FullName      string `json:"full_name"`
	DefaultBranch string `json:"default_branch"`
	Private       bool   `json:"private"`
	HTMLURL       string `json:"html_url"`
}

type GitHubConfig struct {
	IsConfigured  bool   `json:"is_configured"`
	Repo          string `json:"repo,omitempty"`
	DefaultBranch string `json:"default_branch,omitempty"`
	ConfiguredAt  string `json:"configured_at,omitempty"`
}
