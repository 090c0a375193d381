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

type chatRepo struct {
	pool *pgxpool.Pool
}

func NewChatRepository(pool *pgxpool.Pool) ports.ChatRepository {
	return &chatRepo{pool: pool}
}

func (r *chatRepo) Create(ctx context.Context, msg *domain.ChatMessage) error {
	metadataJSON, err := json.Marshal(msg.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	query := `
		INSERT INTO chat_messages (id, project_id, stage, role, content, metadata, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`
	_, err = r.pool.Exec(ctx, query,
		msg.ID, msg.ProjectID, string(msg.Stage), msg.Role, msg.Content, metadataJSON, msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create chat message: %w", err)
	}
	return nil
}

// ListByStage returns the last `limit` messages in chronological order.
func (r *chatRepo) ListByStage(ctx context.Context, projectID uuid.UUID, stage domain.Stage, limit int) ([]*domain.ChatMessage, error) {
	query := `
		SELECT id, project_id, stage, role, content, metadata, created_at
		FROM (
			SELECT id, project_id, stage, role, content, metadata, created_at
			FROM chat_messages
			WHERE project_id = $1 AND stage = $2
			ORDER BY created_at DESC
			LIMIT $3
		) recent
		ORDER BY created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, projectID, string(stage), limit)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	defer rows.Close()

	messages := make([]*domain.ChatMessage, 0)
	for rows.Next() {
		var (
			m            domain.ChatMessage
			stageStr     string
			metadataJSON []byte
		)
		if err := rows.Scan(&m.ID, &m.ProjectID, &stageStr, &m.Role, &m.Content, &metadataJSON, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		m.Stage = domain.Stage(stageStr)
		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &m.Metadata); err != nil {
				return nil, fmt.Errorf("unmarshal metadata: %w", err)
			}
		}
		if m.Metadata == nil {
			m.Metadata = map[string]any{}
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}

func (r *chatRepo) DeleteByStage(ctx context.Context, projectID uuid.UUID, stage domain.Stage) (int, error) {
	result, err := r.pool.Exec(ctx,
		`DELETE FROM chat_messages WHERE project_id = $1 AND stage = $2`,
		projectID, string(stage),
	)
	if err != nil {
		return 0, fmt.Errorf("delete chat messages: %w", err)
	}
	return int(result.RowsAffected()), nil
}
