package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Gunvolt24/party_registry/migrations"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql драйвер "pgx" для goose
	"github.com/pressly/goose/v3"
)

// Migrate — применяет встроенные миграции (goose up) к базе по DSN.
func Migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
