package userrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"eternalink/model"
)

type pgRepo struct{ pool *pgxpool.Pool }

func NewPG(pool *pgxpool.Pool) Repo { return &pgRepo{pool: pool} }

func (r *pgRepo) Load(ctx context.Context) ([]model.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, username, email, password_hash FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	out := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *pgRepo) Save(ctx context.Context, users []model.User) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, `TRUNCATE users`); err != nil {
		return err
	}
	for _, u := range users {
		if _, err := tx.Exec(ctx,
			`INSERT INTO users (id, username, email, password_hash) VALUES ($1, $2, $3, $4)`,
			u.ID, u.Username, u.Email, u.PasswordHash,
		); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
