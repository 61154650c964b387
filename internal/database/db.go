package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/jgoulah/habitgrid/pkg/models"
)

// HabitsKey is the key the habit collection is stored under
const HabitsKey = "habitTrackerData"

// DB wraps the database connection
type DB struct {
	conn   *sql.DB
	logger *zap.Logger
}

// New creates a new database connection and initializes the schema
func New(dbPath string, logger *zap.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	db := &DB{conn: conn, logger: logger}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// initSchema creates the necessary tables
func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`

	_, err := db.conn.Exec(schema)
	return err
}

// Get returns the value stored under key, and false if there is none
func (db *DB) Get(key string) (string, bool, error) {
	var value string
	err := db.conn.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("querying key %s: %w", key, err)
	}
	return value, true, nil
}

// Put stores value under key, replacing any previous value
func (db *DB) Put(key, value string) error {
	query := `
	INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	updatedAt := time.Now().UTC().Format(time.RFC3339)
	if _, err := db.conn.Exec(query, key, value, updatedAt); err != nil {
		return fmt.Errorf("storing key %s: %w", key, err)
	}
	return nil
}

// UpdatedAt returns when key was last written, and false if it was never written
func (db *DB) UpdatedAt(key string) (time.Time, bool, error) {
	var ts string
	err := db.conn.QueryRow(`SELECT updated_at FROM kv WHERE key = ?`, key).Scan(&ts)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("querying key %s: %w", key, err)
	}

	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parsing updated_at: %w", err)
	}
	return t, true, nil
}

// Load returns the stored habit collection.
// A missing or unparseable document loads as an empty collection.
func (db *DB) Load() ([]models.Habit, error) {
	value, ok, err := db.Get(HabitsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Habit{}, nil
	}

	habits, err := models.DecodeHabits([]byte(value))
	if err != nil {
		db.logger.Warn("ignoring malformed habit data", zap.Error(err))
		return []models.Habit{}, nil
	}
	return habits, nil
}

// Save replaces the stored habit collection
func (db *DB) Save(habits []models.Habit) error {
	data, err := models.EncodeHabits(habits)
	if err != nil {
		return err
	}
	return db.Put(HabitsKey, string(data))
}
