// Package store persists navigation sessions to sqlite so an app can
// restore its coordinator forest on the next launch.
package store

import (
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store owns the sqlite handle for session snapshots.
type Store struct {
	db    *sql.DB
	codec Codec
}

// Open opens (creating if needed) the session database at path, applies
// pending migrations and returns the store. The codec controls how screens
// and modal payloads round-trip; pass StringCodec() when screens are plain
// strings.
func Open(path string, codec Codec) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)

	s := &Store{db: db, codec: codec}
	if err := s.migrateUp(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate sessions db: %w", err)
	}
	return s, nil
}

func (s *Store) migrateUp() error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	driver, err := sqlite3.WithInstance(s.db, &sqlite3.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return err
	}
	err = m.Up()
	if err == migrate.ErrNoChange {
		return nil
	}
	return err
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// now returns UTC time truncated to seconds (consistent with the sqlite
// default).
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
