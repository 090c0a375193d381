package ports

import (
	"context"

	"github.com/google/uuid"

	"sdlc-studio-service/internal/core/domain"
)

// ArtifactFilter narrows artifact listings. Zero values mean "any".
type ArtifactFilter struct {
	Stage domain.Stage
	Type  domain.ArtifactType
}

// ProjectRepository persists projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ArtifactRepository persists versioned artifacts.
type ArtifactRepository interface {
	Create(ctx context.Context, artifact *domain.Artifact) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Artifact, error)
	// ListByProject returns artifacts newest-first.
	ListByProject(ctx context.Context, projectID uuid.UUID, filter ArtifactFilter) ([]*domain.Artifact, error)
	// LatestByType returns the highest-version, newest artifact of a type.
	LatestByType(ctx context.Context, projectID uuid.UUID, t domain.ArtifactType) (*domain.Artifact, error)
	// LatestByName returns the newest artifact in a stage whose base
	// name matches, including regenerated " vN" variants. Used for
	// the named JSON documents (Development Tickets).
	LatestByName(ctx context.Context, projectID uuid.UUID, stage domain.Stage, name string) (*domain.Artifact, error)
	Update(ctx context.Context, artifact *domain.Artifact) error
}

// ChatRepository persists specialist conversations.
type ChatRepository interface {
	Create(ctx context.Context, msg *domain.ChatMessage) error
	// ListByStage returns messages oldest-first.
	ListByStage(ctx context.Context, projectID uuid.UUID, stage domain.Stage, limit int) ([]*domain.ChatMessage, error)
	DeleteByStage(ctx context.Context, projectID uuid.UUID, stage domain.Stage) (int, error)
}

// CommitRepository persists change records. An empty stage lists all stages.
type CommitRepository interface {
	Create(ctx context.Context, commit *domain.Commit) error
	ListByProject(ctx context.Context, projectID uuid.UUID, stage domain.Stage, limit int) ([]*domain.Commit, error)
}

// ActivityRepository persists the project audit log.
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) error
	ListByProject(ctx context.Context, projectID uuid.UUID, limit int) ([]*domain.Activity, error)
}

// GateReviewRepository persists stage gate reviews.
type GateReviewRepository interface {
	Create(ctx context.Context, review *domain.GateReview) error
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.GateReview, error)
}
