package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmunix/sortarr/internal/migrations"
	_ "modernc.org/sqlite"
)

// openDB opens the history database, creating it and its directory on first
// use.
func openDB(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := migrations.Apply(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
