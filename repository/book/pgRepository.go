package bookrepo

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/jackc/pgx/v5/pgxpool"

	"eternalink/model"
)

// pgRepo stores each book as a JSONB document but keeps the whole-collection
// Load/Save contract of the flat-file store: Save truncates and reinserts in
// one transaction, so the observable semantics stay a wholesale rewrite.
type pgRepo struct{ pool *pgxpool.Pool }

func NewPG(pool *pgxpool.Pool) Repo { return &pgRepo{pool: pool} }

func (r *pgRepo) Load(ctx context.Context) ([]model.Book, error) {
	rows, err := r.pool.Query(ctx, `SELECT doc FROM books ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	var out []model.Book
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var b model.Book
		if err := json.Unmarshal(doc, &b); err != nil {
			return nil, fmt.Errorf("parse book doc: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *pgRepo) Save(ctx context.Context, books []model.Book) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, `TRUNCATE books`); err != nil {
		return err
	}
	for _, b := range books {
		doc, err := json.Marshal(b)
		if err != nil {
			return fmt.Errorf("encode book %d: %w", b.ID, err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO books (id, doc) VALUES ($1, $2)`, b.ID, doc); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
