package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"sdlc-studio-service/internal/core/domain"
	ports "sdlc-studio-service/internal/core/ports/output"
)

type commitRepo struct {
	pool *pgxpool.Pool
}

func NewCommitRepository(pool *pgxpool.Pool) ports.CommitRepository {
	return &commitRepo{pool: pool}
}

func (r *commitRepo) Create(ctx context.Context, commit *domain.Commit) error {
	changesJSON, err := json.Marshal(commit.Changes)
	if err != nil {
		return fmt.Errorf("marshal changes: %w", err)
	}

	query := `
		INSERT INTO commits (id, project_id, stage, author_id, message, changes, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`
	_, err = r.pool.Exec(ctx, query,
		commit.ID, commit.ProjectID, string(commit.Stage), commit.AuthorID,
		commit.Message, changesJSON, commit.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create commit: %w", err)
	}
	return nil
}

func (r *commitRepo) ListByProject(ctx context.Context, projectID uuid.UUID, stage domain.Stage, limit int) ([]*domain.Commit, error) {
	query := `
		SELECT id, project_id, stage, author_id, message, changes, created_at
		FROM commits
		WHERE project_id = $1
	`
	args := []any{projectID}
	if stage != "" {
		args = append(args, string(stage))
		query += fmt.Sprintf(" AND stage = $%d", len(args))
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list commits: %w", err)
	}
	defer rows.Close()

	commits := make([]*domain.Commit, 0)
	for rows.Next() {
		var (
			c           domain.Commit
			stageStr    string
			changesJSON []byte
		)
		if err := rows.Scan(&c.ID, &c.ProjectID, &stageStr, &c.AuthorID, &c.Message, &changesJSON, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan commit: %w", err)
		}
		c.Stage = domain.Stage(stageStr)
		if len(changesJSON) > 0 {
			if err := json.Unmarshal(changesJSON, &c.Changes); err != nil {
				return nil, fmt.Errorf("unmarshal changes: %w", err)
			}
		}
		commits = append(commits, &c)
	}
	return commits, rows.Err()
}
