package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Database manages the post-history store's lifecycle: the SQLite
// connection with WAL mode, the embedded migrations, and graceful
// shutdown.
//
// Usage:
//
//	db, err := db.Open("/path/to/malevich.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//	posts := db.Posts()
type Database struct {
	db    *sql.DB
	path  string
	posts *PostsRepository
	mu    sync.RWMutex
}

// Open creates the database file if needed, connects with WAL mode,
// and applies pending migrations.
func Open(path string) (*Database, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
		}
	}

	// golang-migrate takes ownership of the connection it is given, so
	// migrations run on their own connection first.
	if err := MigrateUpFromPath(path); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	conn, err := NewSQLiteConnectionWithDefaults(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}

	d := &Database{db: conn, path: path}
	d.posts = NewPostsRepository(conn)
	return d, nil
}

// Posts returns the posts repository.
func (d *Database) Posts() *PostsRepository {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.posts
}

// DB returns the underlying sql.DB. The returned connection should not
// be closed directly; use Database.Close() instead.
func (d *Database) DB() *sql.DB {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.db
}

// Path returns the database file path.
func (d *Database) Path() string {
	return d.path
}

// Ping verifies the database connection is alive.
func (d *Database) Ping() error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.db == nil {
		return fmt.Errorf("database connection is closed")
	}
	return d.db.Ping()
}

// Close gracefully closes the database connection. After Close the
// Database instance should not be used.
func (d *Database) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db == nil {
		return nil
	}
	if err := d.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	d.db = nil
	d.posts = nil
	return nil
}
