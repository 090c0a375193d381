package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Artifact is a generated document or data object tied to a stage.
// Regeneration produces a new row with an incremented version rather
// than mutating the original, so the full lineage stays queryable.
type Artifact struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Stage     Stage
	Type      ArtifactType
	Name      string
	Content   string
	Version   int
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
	Metadata  map[string]any
}

// NewArtifact creates a version-1 artifact.
func NewArtifact(projectID uuid.UUID, stage Stage, t ArtifactType, name, content, createdBy string, metadata map[string]any) *Artifact {
	if metadata == nil {
		metadata = map[string]any{}
	}
	now := time.Now().UTC()
	return &Artifact{
		ID:        uuid.New(),
		ProjectID: projectID,
		Stage:     stage,
		Type:      t,
		Name:      name,
		Content:   content,
		Version:   1,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
		Metadata:  metadata,
	}
}

// BaseName strips the " vN" suffix appended by regeneration.
func (a *Artifact) BaseName() string {
	if i := strings.Index(a.Name, " v"); i >= 0 {
		return a.Name[:i]
	}
	return a.Name
}
