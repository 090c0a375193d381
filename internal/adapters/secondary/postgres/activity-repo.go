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

type activityRepo struct {
	pool *pgxpool.Pool
}

func NewActivityRepository(pool *pgxpool.Pool) ports.ActivityRepository {
	return &activityRepo{pool: pool}
}

func (r *activityRepo) Create(ctx context.Context, activity *domain.Activity) error {
	dataJSON, err := json.Marshal(activity.Data)
	if err != nil {
		return fmt.Errorf("marshal data: %w", err)
	}

	query := `
		INSERT INTO activities (id, project_id, user_id, type, data, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`
	_, err = r.pool.Exec(ctx, query,
		activity.ID, activity.ProjectID, activity.UserID, activity.Type, dataJSON, activity.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create activity: %w", err)
	}
	return nil
}

func (r *activityRepo) ListByProject(ctx context.Context, projectID uuid.UUID, limit int) ([]*domain.Activity, error) {
	query := `
		SELECT id, project_id, user_id, type, data, created_at
		FROM activities
		WHERE project_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, projectID, limit)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	activities := make([]*domain.Activity, 0)
	for rows.Next() {
		var (
			a        domain.Activity
			dataJSON []byte
		)
		if err := rows.Scan(&a.ID, &a.ProjectID, &a.UserID, &a.Type, &dataJSON, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		if len(dataJSON) > 0 {
			if err := json.Unmarshal(dataJSON, &a.Data); err != nil {
				return nil, fmt.Errorf("unmarshal data: %w", err)
			}
		}
		if a.Data == nil {
			a.Data = map[string]any{}
		}
		activities = append(activities, &a)
	}
	return activities, rows.Err()
}
