package postgres

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrationTableName isolates this application's migration bookkeeping
// from any other goose user sharing the database.
const migrationTableName = "taskdeck_goose_version"

// slogGooseLogger adapts goose's logging callbacks onto slog.
type slogGooseLogger struct{}

func (slogGooseLogger) Printf(format string, v ...any) {
	slog.Info(fmt.Sprintf(format, v...), slog.String("component", "migrations"))
}

func (slogGooseLogger) Fatalf(format string, v ...any) {
	slog.Error(fmt.Sprintf(format, v...), slog.String("component", "migrations"))
}

// RunMigrations applies all pending embedded schema migrations.
func RunMigrations(db *sql.DB) error {
	goose.SetLogger(slogGooseLogger{})
	goose.SetBaseFS(migrationsFS)
	goose.SetTableName(migrationTableName)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
