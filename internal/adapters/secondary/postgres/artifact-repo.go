package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sdlc-studio-service/internal/core/domain"
	ports "sdlc-studio-service/internal/core/ports/output"
)

const artifactColumns = `id, project_id, stage, type, name, content, version, created_by, metadata, created_at, updated_at`

type artifactRepo struct {
	pool *pgxpool.Pool
}

func NewArtifactRepository(pool *pgxpool.Pool) ports.ArtifactRepository {
	return &artifactRepo{pool: pool}
}

func (r *artifactRepo) Create(ctx context.Context, artifact *domain.Artifact) error {
	metadataJSON, err := json.Marshal(artifact.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	query := `
		INSERT INTO artifacts
			(id, project_id, stage, type, name, content, version, created_by, metadata, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`
	_, err = r.pool.Exec(ctx, query,
		artifact.ID, artifact.ProjectID, string(artifact.Stage), string(artifact.Type),
		artifact.Name, artifact.Content, artifact.Version, artifact.CreatedBy,
		metadataJSON, artifact.CreatedAt, artifact.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create artifact: %w", err)
	}
	return nil
}

func (r *artifactRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Artifact, error) {
	query := `SELECT ` + artifactColumns + ` FROM artifacts WHERE id = $1`
	artifact, err := scanArtifact(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArtifactNotFound
		}
		return nil, fmt.Errorf("get artifact by id: %w", err)
	}
	return artifact, nil
}

func (r *artifactRepo) ListByProject(ctx context.Context, projectID uuid.UUID, filter ports.ArtifactFilter) ([]*domain.Artifact, error) {
	query := `SELECT ` + artifactColumns + ` FROM artifacts WHERE project_id = $1`
	args := []any{projectID}
	if filter.Stage != "" {
		args = append(args, string(filter.Stage))
		query += fmt.Sprintf(" AND stage = $%d", len(args))
	}
	if filter.Type != "" {
		args = append(args, string(filter.Type))
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}
	defer rows.Close()

	artifacts := make([]*domain.Artifact, 0)
	for rows.Next() {
		artifact, err := scanArtifact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan artifact: %w", err)
		}
		artifacts = append(artifacts, artifact)
	}
	return artifacts, rows.Err()
}

func (r *artifactRepo) LatestByType(ctx context.Context, projectID uuid.UUID, t domain.ArtifactType) (*domain.Artifact, error) {
	query := `
		SELECT ` + artifactColumns + `
		FROM artifacts
		WHERE project_id = $1 AND type = $2
		ORDER BY version DESC, created_at DESC
		LIMIT 1
	`
	artifact, err := scanArtifact(r.pool.QueryRow(ctx, query, projectID, string(t)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArtifactNotFound
		}
		return nil, fmt.Errorf("get latest artifact by type: %w", err)
	}
	return artifact, nil
}

// LatestByName matches the base name and any regenerated " vN"
// variant, so callers resolving a named set always see the newest
// version.
func (r *artifactRepo) LatestByName(ctx context.Context, projectID uuid.UUID, stage domain.Stage, name string) (*domain.Artifact, error) {
	query := `
		SELECT ` + artifactColumns + `
		FROM artifacts
		WHERE project_id = $1 AND stage = $2 AND (name = $3 OR name LIKE $3 || ' v%')
		ORDER BY version DESC, created_at DESC
		LIMIT 1
	`
	artifact, err := scanArtifact(r.pool.QueryRow(ctx, query, projectID, string(stage), name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArtifactNotFound
		}
		return nil, fmt.Errorf("get latest artifact by name: %w", err)
	}
	return artifact, nil
}

func (r *artifactRepo) Update(ctx context.Context, artifact *domain.Artifact) error {
	metadataJSON, err := json.Marshal(artifact.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	query := `
		UPDATE artifacts
		SET name=$1, content=$2, version=$3, metadata=$4, updated_at=$5
		WHERE id=$6
	`
	result, err := r.pool.Exec(ctx, query,
		artifact.Name, artifact.Content, artifact.Version, metadataJSON,
		artifact.UpdatedAt, artifact.ID,
	)
	if err != nil {
		return fmt.Errorf("update artifact: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrArtifactNotFound
	}
	return nil
}

func scanArtifact(row pgx.Row) (*domain.Artifact, error) {
	var (
		a            domain.Artifact
		stage, typ   string
		metadataJSON []byte
	)
	if err := row.Scan(&a.ID, &a.ProjectID, &stage, &typ, &a.Name, &a.Content, &a.Version, &a.CreatedBy, &metadataJSON, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.Stage = domain.Stage(stage)
	a.Type = domain.ArtifactType(typ)
	if len(metadataJSON) > 0 {
		if err := json.Unmarshal(metadataJSON, &a.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal metadata: %w", err)
		}
	}
	if a.Metadata == nil {
		a.Metadata = map[string]any{}
	}
	return &a, nil
}
