package store

import (
	"context"
	"time"

	"github.com/rcliao/uaforge/internal/model"
)

// Record inserts text into the ledger unless it is already present. The
// uniqueness constraint on user_agent makes this atomic across connections;
// a duplicate returns (false, nil).
func (s *SQLiteStore) Record(ctx context.Context, text string, dt model.DeviceType) (bool, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO generated_agents (id, user_agent, device_type, created_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(user_agent) DO NOTHING`,
		s.newID(now), text, string(dt), now.Format(timeFormat))
	if err != nil {
		return false, unavailable("record agent", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, unavailable("record agent", err)
	}
	return n == 1, nil
}

// CountByDeviceType returns ledger counts for android and ios, zero-filled.
func (s *SQLiteStore) CountByDeviceType(ctx context.Context) (map[model.DeviceType]int, error) {
	counts := map[model.DeviceType]int{model.Android: 0, model.IOS: 0}

	rows, err := s.db.QueryContext(ctx,
		`SELECT device_type, COUNT(*) FROM generated_agents GROUP BY device_type`)
	if err != nil {
		return nil, unavailable("count agents", err)
	}
	defer rows.Close()

	for rows.Next() {
		var dt string
		var n int
		if err := rows.Scan(&dt, &n); err != nil {
			return nil, unavailable("scan counts", err)
		}
		counts[model.DeviceType(dt)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("count agents", err)
	}
	return counts, nil
}

// ListAgents returns ledger rows, newest first.
func (s *SQLiteStore) ListAgents(ctx context.Context, p ListParams) ([]model.GeneratedAgent, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, user_agent, device_type, created_at FROM generated_agents`
	args := []interface{}{}
	if p.DeviceType != "" {
		query += ` WHERE device_type = ?`
		args = append(args, string(p.DeviceType))
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, unavailable("list agents", err)
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
		return nil, unavailable("list agents", err)
	}
	return agents, nil
}
