package store

import (
	"context"
	"database/sql"

	"github.com/rcliao/uaforge/internal/corpus"
	"github.com/rcliao/uaforge/internal/model"
)

// referenceTables lists the corpus tables in seeding order.
var referenceTables = []string{"android_devices", "ios_devices", "chrome_versions", "safari_versions"}

// EnsureSeeded populates each reference table from the built-in corpus if,
// and only if, it is empty. It runs in one immediate transaction, so
// concurrent callers seed at most once.
func (s *SQLiteStore) EnsureSeeded(ctx context.Context) (*SeedReport, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, unavailable("begin seed", err)
	}
	defer tx.Rollback()

	seeders := map[string]func(*sql.Tx) error{
		"android_devices": func(tx *sql.Tx) error {
			for _, d := range corpus.AndroidDevices {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO android_devices (manufacturer, model, os_version) VALUES (?, ?, ?)`,
					d.Manufacturer, d.Model, d.OSVersion); err != nil {
					return err
				}
			}
			return nil
		},
		"ios_devices": func(tx *sql.Tx) error {
			for _, d := range corpus.IOSDevices {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO ios_devices (model, os_version) VALUES (?, ?)`,
					d.Model, d.OSVersion); err != nil {
					return err
				}
			}
			return nil
		},
		"chrome_versions": func(tx *sql.Tx) error { return insertVersions(ctx, tx, "chrome_versions", corpus.ChromeVersions) },
		"safari_versions": func(tx *sql.Tx) error { return insertVersions(ctx, tx, "safari_versions", corpus.SafariVersions) },
	}

	report := &SeedReport{Counts: map[string]int{}}
	for _, table := range referenceTables {
		var one int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM `+table+` LIMIT 1`).Scan(&one)
		switch {
		case err == sql.ErrNoRows:
			if err := seeders[table](tx); err != nil {
				return nil, unavailable("seed "+table, err)
			}
			report.Seeded = append(report.Seeded, table)
		case err != nil:
			return nil, unavailable("check "+table, err)
		}

		var n int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
			return nil, unavailable("count "+table, err)
		}
		report.Counts[table] = n
	}

	if err := tx.Commit(); err != nil {
		return nil, unavailable("commit seed", err)
	}
	return report, nil
}

func insertVersions(ctx context.Context, tx *sql.Tx, table string, versions []model.BrowserVersion) error {
	for _, v := range versions {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO `+table+` (version, build) VALUES (?, ?)`, v.Version, v.Build); err != nil {
			return err
		}
	}
	return nil
}

// LoadCorpus reads the four reference tables. Empty tables are returned as
// empty; sampling from them fails with corpus.ErrEmptyCorpus.
func (s *SQLiteStore) LoadCorpus(ctx context.Context) (*corpus.Corpus, error) {
	android, err := s.androidDevices(ctx)
	if err != nil {
		return nil, err
	}
	ios, err := s.iosDevices(ctx)
	if err != nil {
		return nil, err
	}
	chrome, err := s.versions(ctx, "chrome_versions")
	if err != nil {
		return nil, err
	}
	safari, err := s.versions(ctx, "safari_versions")
	if err != nil {
		return nil, err
	}
	return corpus.New(android, ios, chrome, safari), nil
}

func (s *SQLiteStore) androidDevices(ctx context.Context) ([]model.AndroidDevice, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT manufacturer, model, os_version FROM android_devices ORDER BY id`)
	if err != nil {
		return nil, unavailable("load android_devices", err)
	}
	defer rows.Close()

	var out []model.AndroidDevice
	for rows.Next() {
		var d model.AndroidDevice
		if err := rows.Scan(&d.Manufacturer, &d.Model, &d.OSVersion); err != nil {
			return nil, unavailable("scan android_devices", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("load android_devices", err)
	}
	return out, nil
}

func (s *SQLiteStore) iosDevices(ctx context.Context) ([]model.IOSDevice, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT model, os_version FROM ios_devices ORDER BY id`)
	if err != nil {
		return nil, unavailable("load ios_devices", err)
	}
	defer rows.Close()

	var out []model.IOSDevice
	for rows.Next() {
		var d model.IOSDevice
		if err := rows.Scan(&d.Model, &d.OSVersion); err != nil {
			return nil, unavailable("scan ios_devices", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("load ios_devices", err)
	}
	return out, nil
}

func (s *SQLiteStore) versions(ctx context.Context, table string) ([]model.BrowserVersion, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT version, build FROM `+table+` ORDER BY id`)
	if err != nil {
		return nil, unavailable("load "+table, err)
	}
	defer rows.Close()

	var out []model.BrowserVersion
	for rows.Next() {
		var v model.BrowserVersion
		if err := rows.Scan(&v.Version, &v.Build); err != nil {
			return nil, unavailable("scan "+table, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("load "+table, err)
	}
	return out, nil
}
