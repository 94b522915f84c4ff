package postgres

import (
	"context"
	"database/sql"

	"asset-tracking/internal/domain/entries"
)

type EntriesRepo struct {
	db *sql.DB
}

func NewEntriesRepo(db *sql.DB) *EntriesRepo {
	return &EntriesRepo{db: db}
}

func (r *EntriesRepo) Append(ctx context.Context, e entries.Entry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO asset_entries (
			id, asset_id, timestamp,
			type, location,
			remarks, name, model, condition
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		e.ID,
		e.AssetID,
		e.Timestamp,
		string(e.Kind),
		string(e.Location),
		nullIfEmpty(e.Remarks),
		nullIfEmpty(e.Name),
		nullIfEmpty(e.Model),
		nullIfEmpty(string(e.Condition)),
	)
	return err
}

func (r *EntriesRepo) ListAll(ctx context.Context) ([]entries.Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, asset_id, timestamp,
			type, location,
			remarks, name, model, condition
		FROM asset_entries
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entries.Entry, 0)
	for rows.Next() {
		var e entries.Entry
		var typ, loc string
		var remarks, name, model, cond sql.NullString

		if err := rows.Scan(
			&e.ID,
			&e.AssetID,
			&e.Timestamp,
			&typ,
			&loc,
			&remarks,
			&name,
			&model,
			&cond,
		); err != nil {
			return nil, err
		}

		e.Kind = entries.Kind(typ)
		e.Location = entries.Location(loc)
		e.Remarks = remarks.String
		e.Name = name.String
		e.Model = model.String
		e.Condition = entries.Condition(cond.String)

		out = append(out, e)
	}

	return out, rows.Err()
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
