package domain

// Ticket is a single development ticket generated for the Develop
// stage. Tickets live inside the "Development Tickets" artifact as a
// JSON document, so the struct carries its wire tags.
type Ticket struct {
	Key                string                `json:"key"`
	Type               string                `json:"type"`
	Summary            string                `json:"summary"`
	Description        string                `json:"description"`
	AcceptanceCriteria []string              `json:"acceptance_criteria"`
	TechStack          []string              `json:"tech_stack"`
	Priority           string                `json:"priority"`
	EstimatedHours     int                   `json:"estimated_hours"`
	Dependencies       []string              `json:"dependencies,omitempty"`
	Status             string                `json:"status"`
	Implementation     *TicketImplementation `json:"implementation,omitempty"`
}

// TicketImplementation records the GitHub objects created when a
// ticket was implemented.
type TicketImplementation struct {
	Branch        string   `json:"branch"`
	IssueNumber   int      `json:"issue_number"`
	IssueURL      string   `json:"issue_url"`
	PRNumber      int      `json:"pr_number"`
	PRURL         string   `json:"pr_url"`
	CommitSHA     string   `json:"commit_sha"`
	Files         []string `json:"files"`
	ImplementedAt string   `json:"implemented_at"`
}

// TicketSet is the full ticket payload stored in the tickets artifact.
type TicketSet struct {
	ProjectKey string         `json:"project_key"`
	Summary    map[string]any `json:"summary"`
	Tickets    []*Ticket      `json:"tickets"`
}

// Find returns the ticket with the given key, or nil.
func (ts *TicketSet) Find(key string) *Ticket {
	for _, t := range ts.Tickets {
		if t.Key == key {
			return t
		}
	}
	return nil
}
