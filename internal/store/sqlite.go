package store

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/uaforge/internal/model"
)

// timeFormat is fixed-width so created_at sorts lexically.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore holds the four reference tables and the ledger.
type SQLiteStore struct {
	db *sql.DB

	mu      sync.Mutex // guards entropy
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	dsn := dbPath + "?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)&_txlock=immediate"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, unavailable("open db", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, unavailable("migrate", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID(t time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS android_devices (
		id           INTEGER PRIMARY KEY,
		manufacturer TEXT NOT NULL,
		model        TEXT NOT NULL,
		os_version   TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS ios_devices (
		id         INTEGER PRIMARY KEY,
		model      TEXT NOT NULL,
		os_version TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS chrome_versions (
		id      INTEGER PRIMARY KEY,
		version TEXT NOT NULL,
		build   TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS safari_versions (
		id      INTEGER PRIMARY KEY,
		version TEXT NOT NULL,
		build   TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS generated_agents (
		id          TEXT PRIMARY KEY,
		user_agent  TEXT NOT NULL UNIQUE,
		device_type TEXT NOT NULL,
		created_at  TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_agents_device ON generated_agents(device_type);
	CREATE INDEX IF NOT EXISTS idx_agents_created ON generated_agents(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Ping verifies the database is reachable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

// Close closes the store.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAgent(row scanner) (model.GeneratedAgent, error) {
	var a model.GeneratedAgent
	var deviceType, createdAt string

	if err := row.Scan(&a.ID, &a.Text, &deviceType, &createdAt); err != nil {
		return a, err
	}
	a.DeviceType = model.DeviceType(deviceType)
	a.CreatedAt, _ = time.Parse(timeFormat, createdAt)
	return a, nil
}
