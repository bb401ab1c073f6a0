package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate crea la tabla de certificados si no existe. El esquema es una sola
// tabla keyed por id; el QR se guarda inline como string, no como archivo.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS certificates (
			id                TEXT PRIMARY KEY,
			vet_name          TEXT NOT NULL,
			license_number    TEXT NOT NULL,
			clinic_name       TEXT,
			pet_name          TEXT NOT NULL,
			pet_type          TEXT NOT NULL,
			vaccine_type      TEXT NOT NULL,
			date_administered TEXT NOT NULL,
			next_due_date     TEXT,
			created_at        TIMESTAMPTZ NOT NULL,
			qr_code           TEXT
		)
	`)
	return err
}
