package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql) y deja
// el esquema al día.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// defaults razonables para MVP (ajustable luego)
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

	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate postgres schema: %w", err)
	}

	return db, nil
}

// migrate es aditiva solamente: crea la tabla completa si no existe y agrega
// las columnas opcionales a bases que nacieron con el esquema viejo. Nunca
// toca filas ya guardadas.
func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS asset_entries (
			id TEXT PRIMARY KEY,
			asset_id TEXT NOT NULL,
			timestamp TIMESTAMPTZ NOT NULL,
			type TEXT NOT NULL,
			location TEXT NOT NULL,
			remarks TEXT,
			name TEXT,
			model TEXT,
			condition TEXT
		)`,
		`ALTER TABLE asset_entries ADD COLUMN IF NOT EXISTS name TEXT`,
		`ALTER TABLE asset_entries ADD COLUMN IF NOT EXISTS model TEXT`,
		`ALTER TABLE asset_entries ADD COLUMN IF NOT EXISTS condition TEXT`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
