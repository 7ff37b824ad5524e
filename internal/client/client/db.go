package client

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"path/filepath"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/reflecta/internal/client/migrations"
	"github.com/dmitrijs2005/reflecta/internal/client/repositories/metadata"
)

// Storage drivers accepted by OpenStorage.
const (
	StorageSQLite = "sqlite"
	StorageDiskv  = "diskv"
	StorageMemory = "memory"
)

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenStorage opens the durable key/value store for driver inside dataDir.
// The returned closer releases it; for SQLite it is the repository itself,
// which owns the database handle.
func OpenStorage(ctx context.Context, driver, dataDir string) (metadata.Repository, io.Closer, error) {
	switch driver {
	case StorageSQLite:
		db, err := InitDatabase(ctx, filepath.Join(dataDir, "session.db"))
		if err != nil {
			return nil, nil, fmt.Errorf("error initializing database: %w", err)
		}
		repo := metadata.NewSQLiteRepository(db)
		return repo, repo, nil
	case StorageDiskv:
		return metadata.NewDiskvRepository(filepath.Join(dataDir, "session")), nopCloser{}, nil
	case StorageMemory:
		return metadata.NewMemoryRepository(), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
