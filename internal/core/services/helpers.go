package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"sdlc-studio-service/internal/core/domain"
	ports "sdlc-studio-service/internal/core/ports/output"
)

// stripJSONFences removes the ```json fences models wrap payloads in.
func stripJSONFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if i := strings.Index(s, "\n"); i >= 0 {
			s = s[i+1:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

// decodeAIJSON parses a model response as JSON after fence stripping.
func decodeAIJSON(raw string, v any) error {
	if err := json.Unmarshal([]byte(stripJSONFences(raw)), v); err != nil {
		return domain.ErrAIResponseNotJSON
	}
	return nil
}

// formatChatHistory renders a conversation for inclusion in a
// generation prompt. Returns "" when there is no history.
func formatChatHistory(messages []*domain.ChatMessage) string {
	if len(messages) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Conversation with the team:\n")
	for _, m := range messages {
		fmt.Fprintf(&b, "[%s] %s\n", m.Role, m.Content)
	}
	return b.String()
}

// projectHeader renders the project facts every generation prompt opens with.
func projectHeader(p *domain.Project) string {
	return fmt.Sprintf("Project: %s\nDescription: %s\n", p.Name, p.Description)
}

// generationRecorder writes the commit and activity rows that
// accompany every artifact mutation.
type generationRecorder struct {
	commits    ports.CommitRepository
	activities ports.ActivityRepository
}

func (r generationRecorder) record(ctx context.Context, projectID uuid.UUID, stage domain.Stage, userID, message, activityType string, changes domain.ChangeSet, data map[string]any) {
	commit := domain.NewCommit(projectID, stage, userID, message, changes)
	_ = r.commits.Create(ctx, commit)

	activity := domain.NewActivity(projectID, userID, activityType, data)
	_ = r.activities.Create(ctx, activity)
}

// advanceStage moves the project forward to target if it has not
// already passed it.
func advanceStage(ctx context.Context, repo ports.ProjectRepository, project *domain.Project, target domain.Stage) error {
	if project.CurrentStage.Order() >= target.Order() {
		return nil
	}
	project.CurrentStage = target
	applyStageTransition(project, target)
	return repo.Update(ctx, project)
}
