package repositories

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
)

// embed migrations sql folder
//
//go:embed migrations/*.sql
var embedMigrations embed.FS

type migrationParams struct {
	fileSystem embed.FS
	folderName string
}

type Migrater struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewMigrater(db *sql.DB, logger *slog.Logger) *Migrater {
	return &Migrater{db: db, logger: logger}
}

func (m *Migrater) Run(ctx context.Context) error {
	params := migrationParams{
		fileSystem: embedMigrations,
		folderName: "migrations",
	}
	if err := m.runMigrationsWithFolder(ctx, params); err != nil {
		return fmt.Errorf("runMigrationsWithFolder error: %w", err)
	}
	return nil
}

func (m *Migrater) runMigrationsWithFolder(ctx context.Context, params migrationParams) error {
	m.logger.InfoContext(ctx, "Migrations starting to setup DB: "+params.folderName)
	goose.SetBaseFS(params.fileSystem)

	if err := goose.SetDialect("mysql"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, m.db, params.folderName); err != nil {
		return fmt.Errorf("unable to run migrations: %w", err)
	}
	return nil
}
