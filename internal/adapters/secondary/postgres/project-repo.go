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

type projectRepo struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) ports.ProjectRepository {
	return &projectRepo{pool: pool}
}

func (r *projectRepo) Create(ctx context.Context, project *domain.Project) error {
	configJSON, err := json.Marshal(project.StagesConfig)
	if err != nil {
		return fmt.Errorf("marshal stages config: %w", err)
	}

	query := `
		INSERT INTO projects
			(id, name, description, created_by, current_stage, stages_config, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`
	_, err = r.pool.Exec(ctx, query,
		project.ID, project.Name, project.Description, project.CreatedBy,
		string(project.CurrentStage), configJSON, project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

func (r *projectRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	query := `
		SELECT id, name, description, created_by, current_stage, stages_config, created_at, updated_at
		FROM projects
		WHERE id = $1
	`
	project, err := scanProject(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project by id: %w", err)
	}
	return project, nil
}

func (r *projectRepo) List(ctx context.Context, limit, offset int) ([]*domain.Project, error) {
	query := `
		SELECT id, name, description, created_by, current_stage, stages_config, created_at, updated_at
		FROM projects
		ORDER BY updated_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]*domain.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

func (r *projectRepo) Update(ctx context.Context, project *domain.Project) error {
	configJSON, err := json.Marshal(project.StagesConfig)
	if err != nil {
		return fmt.Errorf("marshal stages config: %w", err)
	}

	query := `
		UPDATE projects
		SET name=$1, description=$2, current_stage=$3, stages_config=$4, updated_at=$5
		WHERE id=$6
	`
	result, err := r.pool.Exec(ctx, query,
		project.Name, project.Description, string(project.CurrentStage),
		configJSON, project.UpdatedAt, project.ID,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *projectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var (
		p          domain.Project
		stage      string
		configJSON []byte
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedBy, &stage, &configJSON, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.CurrentStage = domain.Stage(stage)
	if len(configJSON) > 0 {
		if err := json.Unmarshal(configJSON, &p.StagesConfig); err != nil {
			return nil, fmt.Errorf("unmarshal stages config: %w", err)
		}
	}
	if p.StagesConfig == nil {
		p.StagesConfig = map[string]any{}
	}
	return &p, nil
}
