package db

import (
	"context"
	"fmt"

	"fyyur/message/outbox"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

type DB struct {
	Conn *sqlx.DB
}

func NewDBConn(connString string) (DB, error) {
	traced, err := otelsql.Open("postgres", connString,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName("fyyur"),
	)
	if err != nil {
		return DB{}, err
	}

	return DB{Conn: sqlx.NewDb(traced, "postgres")}, nil
}

func (db *DB) Close() error {
	return db.Conn.Close()
}

// MigrateSchema creates the application tables and the outbox table. It is
// safe to run on every start.
func (db *DB) MigrateSchema(ctx context.Context) error {
	if _, err := db.Conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("could not migrate schema: %w", err)
	}

	logger := log.NewWatermill(log.FromContext(ctx))
	if err := outbox.InitializeSchema(db.Conn, logger); err != nil {
		return fmt.Errorf("could not initialize outbox schema: %w", err)
	}

	return nil
}
