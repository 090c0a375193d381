package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"sdlc-studio-service/internal/core/domain"
	ports "sdlc-studio-service/internal/core/ports/output"
)

type gateReviewRepo struct {
	pool *pgxpool.Pool
}

func NewGateReviewRepository(pool *pgxpool.Pool) ports.GateReviewRepository {
	return &gateReviewRepo{pool: pool}
}

func (r *gateReviewRepo) Create(ctx context.Context, review *domain.GateReview) error {
	query := `
		INSERT INTO gate_reviews (id, project_id, stage, reviewer_id, status, comment, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`
	_, err := r.pool.Exec(ctx, query,
		review.ID, review.ProjectID, string(review.Stage), review.ReviewerID,
		string(review.Status), review.Comment, review.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create gate review: %w", err)
	}
	return nil
}

func (r *gateReviewRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.GateReview, error) {
	query := `
		SELECT id, project_id, stage, reviewer_id, status, comment, created_at
		FROM gate_reviews
		WHERE project_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list gate reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]*domain.GateReview, 0)
	for rows.Next() {
		var (
			g             domain.GateReview
			stage, status string
		)
		if err := rows.Scan(&g.ID, &g.ProjectID, &stage, &g.ReviewerID, &status, &g.Comment, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan gate review: %w", err)
		}
		g.Stage = domain.Stage(stage)
		g.Status = domain.GateStatus(status)
		reviews = append(reviews, &g)
	}
	return reviews, rows.Err()
}
