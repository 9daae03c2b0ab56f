package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

type Storage struct {
	DB *sql.DB
}

// driverFor picks the libsql driver for remote Turso URLs and the embedded
// SQLite driver for local files and :memory:.
func driverFor(connectionString string) string {
	for _, scheme := range []string{"libsql://", "http://", "https://", "ws://", "wss://"} {
		if strings.HasPrefix(connectionString, scheme) {
			return "libsql"
		}
	}
	return "sqlite"
}

// NewStorage opens the database and makes sure the schema exists.
func NewStorage(connectionString string) (*Storage, error) {
	if connectionString == "" {
		return nil, fmt.Errorf("database connection string is empty")
	}

	driver := driverFor(connectionString)
	if driver == "sqlite" {
		if err := ensureDir(connectionString); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open(driver, connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	// Every connection to :memory: is a separate database.
	if strings.Contains(connectionString, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	st := &Storage{DB: db}
	if err := st.InitializeDB(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	logrus.WithField("driver", driver).Debug("database ready")
	return st, nil
}

// ensureDir creates the parent directory of a local database file.
func ensureDir(connectionString string) error {
	path := strings.TrimPrefix(connectionString, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" || path == ":memory:" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating db directory: %w", err)
	}
	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// InitializeDB creates the tables if they do not exist. seq preserves
// insertion order, which the aggregator relies on for tie-breaking.
func (s *Storage) InitializeDB(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS workouts (
            seq INTEGER PRIMARY KEY AUTOINCREMENT,
            id TEXT NOT NULL UNIQUE,
            type TEXT NOT NULL,
            duration_minutes INTEGER NOT NULL CHECK (duration_minutes > 0),
            calories_burned INTEGER NOT NULL CHECK (calories_burned > 0),
            date TEXT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS goals (
            seq INTEGER PRIMARY KEY AUTOINCREMENT,
            id TEXT NOT NULL UNIQUE,
            title TEXT NOT NULL,
            target REAL NOT NULL CHECK (target > 0),
            unit TEXT NOT NULL,
            period TEXT NOT NULL
        )`,
	}
	for _, stmt := range statements {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
