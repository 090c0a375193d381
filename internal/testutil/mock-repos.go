package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"sdlc-studio-service/internal/core/domain"
	ports "sdlc-studio-service/internal/core/ports/output"
)

// MockProjectRepo is a mock of ProjectRepository.
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, project *domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepo) List(ctx context.Context, limit, offset int) ([]*domain.Project, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Project), args.Error(1)
}

func (m *MockProjectRepo) Update(ctx context.Context, project *domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockArtifactRepo is a mock of ArtifactRepository.
type MockArtifactRepo struct {
	mock.Mock
}

func (m *MockArtifactRepo) Create(ctx context.Context, artifact *domain.Artifact) error {
	args := m.Called(ctx, artifact)
	return args.Error(0)
}

func (m *MockArtifactRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Artifact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artifact), args.Error(1)
}

func (m *MockArtifactRepo) ListByProject(ctx context.Context, projectID uuid.UUID, filter ports.ArtifactFilter) ([]*domain.Artifact, error) {
	args := m.Called(ctx, projectID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Artifact), args.Error(1)
}

func (m *MockArtifactRepo) LatestByType(ctx context.Context, projectID uuid.UUID, t domain.ArtifactType) (*domain.Artifact, error) {
	args := m.Called(ctx, projectID, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artifact), args.Error(1)
}

func (m *MockArtifactRepo) LatestByName(ctx context.Context, projectID uuid.UUID, stage domain.Stage, name string) (*domain.Artifact, error) {
	args := m.Called(ctx, projectID, stage, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artifact), args.Error(1)
}

func (m *MockArtifactRepo) Update(ctx context.Context, artifact *domain.Artifact) error {
	args := m.Called(ctx, artifact)
	return args.Error(0)
}

// MockChatRepo is a mock of ChatRepository.
type MockChatRepo struct {
	mock.Mock
}

func (m *MockChatRepo) Create(ctx context.Context, msg *domain.ChatMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockChatRepo) ListByStage(ctx context.Context, projectID uuid.UUID, stage domain.Stage, limit int) ([]*domain.ChatMessage, error) {
	args := m.Called(ctx, projectID, stage, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ChatMessage), args.Error(1)
}

func (m *MockChatRepo) DeleteByStage(ctx context.Context, projectID uuid.UUID, stage domain.Stage) (int, error) {
	args := m.Called(ctx, projectID, stage)
	return args.Int(0), args.Error(1)
}

// MockCommitRepo is a mock of CommitRepository.
type MockCommitRepo struct {
	mock.Mock
}

func (m *MockCommitRepo) Create(ctx context.Context, commit *domain.Commit) error {
	args := m.Called(ctx, commit)
	return args.Error(0)
}

func (m *MockCommitRepo) ListByProject(ctx context.Context, projectID uuid.UUID, stage domain.Stage, limit int) ([]*domain.Commit, error) {
	args := m.Called(ctx, projectID, stage, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Commit), args.Error(1)
}

// MockActivityRepo is a mock of ActivityRepository.
type MockActivityRepo struct {
	mock.Mock
}

func (m *MockActivityRepo) Create(ctx context.Context, activity *domain.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepo) ListByProject(ctx context.Context, projectID uuid.UUID, limit int) ([]*domain.Activity, error) {
	args := m.Called(ctx, projectID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Activity), args.Error(1)
}

// MockGateReviewRepo is a mock of GateReviewRepository.
type MockGateReviewRepo struct {
	mock.Mock
}

func (m *MockGateReviewRepo) Create(ctx context.Context, review *domain.GateReview) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockGateReviewRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.GateReview, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.GateReview), args.Error(1)
}
