package store

import (
	"context"
	"strings"

	"github.com/rcliao/uaforge/internal/model"
)

// ExportAll returns every ledger row in creation order.
func (s *SQLiteStore) ExportAll(ctx context.Context) ([]model.GeneratedAgent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_agent, device_type, created_at FROM generated_agents ORDER BY created_at, id`)
	if err != nil {
		return nil, unavailable("export", err)
	}
	defer rows.Close()

	var agents []model.GeneratedAgent
	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, unavailable("scan agent", err)
		}
		agents = append(agents, a)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("export", err)
	}
	return agents, nil
}

// Import records user agent strings, classifying each by the Android token.
// Duplicates and blank lines are skipped. Returns the number of new rows.
func (s *SQLiteStore) Import(ctx context.Context, texts []string) (int, error) {
	imported := 0
	for _, text := range texts {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		added, err := s.Record(ctx, text, model.Classify(text))
		if err != nil {
			return imported, err
		}
		if added {
			imported++
		}
	}
	return imported, nil
}
