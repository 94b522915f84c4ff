package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Open abre (o crea) la base SQLite y deja el esquema al día.
func Open(path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// El driver es in-process pero serializa escrituras; un pool de una
	// conexión evita SQLITE_BUSY en appends concurrentes.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate sqlite schema: %w", err)
	}

	return db, nil
}

// migrate crea la tabla con el esquema completo y, para bases viejas que
// nacieron sin name/model/condition, agrega las columnas que falten.
// Migración aditiva solamente: nunca se tocan filas ya guardadas.
func migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS asset_entries (
			id TEXT PRIMARY KEY,
			asset_id TEXT NOT NULL,
			timestamp TEXT NOT NULL,
			type TEXT NOT NULL,
			location TEXT NOT NULL,
			remarks TEXT,
			name TEXT,
			model TEXT,
			condition TEXT
		)
	`)
	if err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx, `PRAGMA table_info(asset_entries)`)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]bool{}
	for rows.Next() {
		var (
			cid     int
			name    string
			typ     string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return err
		}
		existing[name] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, col := range []string{"name", "model", "condition"} {
		if existing[col] {
			continue
		}
		if _, err := db.ExecContext(ctx, "ALTER TABLE asset_entries ADD COLUMN "+col+" TEXT"); err != nil {
			return err
		}
	}

	return nil
}
