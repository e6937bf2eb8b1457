package store

import (
	"context"
	"os"
	"time"

	"github.com/rcliao/uaforge/internal/model"
)

// Stats holds ledger statistics.
type Stats struct {
	DBPath      string            `json:"db_path"`
	DBSizeBytes int64             `json:"db_size_bytes"`
	Total       int               `json:"total"`
	DeviceTypes []DeviceTypeStats `json:"device_types"`
}

// DeviceTypeStats holds per device type counts and generation window.
type DeviceTypeStats struct {
	DeviceType     model.DeviceType `json:"device_type"`
	Count          int              `json:"count"`
	FirstGenerated time.Time        `json:"first_generated"`
	LastGenerated  time.Time        `json:"last_generated"`
}

// DetailedStats returns ledger statistics, optionally restricted to one
// device type.
func (s *SQLiteStore) DetailedStats(ctx context.Context, dbPath string, dt model.DeviceType) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	query := `SELECT device_type, COUNT(*), MIN(created_at), MAX(created_at)
		FROM generated_agents`
	args := []interface{}{}
	if dt != "" {
		query += ` WHERE device_type = ?`
		args = append(args, string(dt))
	}
	query += ` GROUP BY device_type ORDER BY device_type`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, unavailable("stats", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ds DeviceTypeStats
		var deviceType, first, last string
		if err := rows.Scan(&deviceType, &ds.Count, &first, &last); err != nil {
			return nil, unavailable("scan stats", err)
		}
		ds.DeviceType = model.DeviceType(deviceType)
		ds.FirstGenerated, _ = time.Parse(timeFormat, first)
		ds.LastGenerated, _ = time.Parse(timeFormat, last)
		st.Total += ds.Count
		st.DeviceTypes = append(st.DeviceTypes, ds)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("stats", err)
	}

	return st, nil
}
