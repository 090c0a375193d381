package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChangeSet records what a commit added, modified, or deleted.
type ChangeSet struct {
	Added    []string `json:"added"`
	Modified []string `json:"modified"`
	Deleted  []string `json:"deleted"`
}

// Commit is a change record written whenever a generation or manual
// update alters project artifacts.
type Commit struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Stage     Stage
	AuthorID  string
	Message   string
	Changes   ChangeSet
	CreatedAt time.Time
}

// NewCommit creates a commit record for a project stage.
func NewCommit(projectID uuid.UUID, stage Stage, authorID, message string, changes ChangeSet) *Commit {
	return &Commit{
		ID:        uuid.New(),
		ProjectID: projectID,
		Stage:     stage,
		AuthorID:  authorID,
		Message:   message,
		Changes:   changes,
		CreatedAt: time.Now().UTC(),
	}
}

// Activity is an audit-log entry for significant project actions
// (project_created, discover_completed, tickets_generated, ...).
type Activity struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	UserID    string
	Type      string
	Data      map[string]any
	CreatedAt time.Time
}

// NewActivity creates an activity log entry.
func NewActivity(projectID uuid.UUID, userID, activityType string, data map[string]any) *Activity {
	if userID == "" {
		userID = "system"
	}
	if data == nil {
		data = map[string]any{}
	}
	return &Activity{
		ID:        uuid.New(),
		ProjectID: projectID,
		UserID:    userID,
		Type:      activityType,
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}
}

// GateReview is an approval checkpoint between stages.
type GateReview struct {
	ID         uuid.UUID
	ProjectID  uuid.UUID
	Stage      Stage
	ReviewerID string
	Status     GateStatus
	Comment    string
	CreatedAt  time.Time
}

// NewGateReview creates a gate review for a project stage.
func NewGateReview(projectID uuid.UUID, stage Stage, reviewerID string, status GateStatus, comment string) (*GateReview, error) {
	if reviewerID == "" {
		return nil, ErrInvalidReviewer
	}
	return &GateReview{
		ID:         uuid.New(),
		ProjectID:  projectID,
		Stage:      stage,
		ReviewerID: reviewerID,
		Status:     status,
		Comment:    comment,
		CreatedAt:  time.Now().UTC(),
	}, nil
}
