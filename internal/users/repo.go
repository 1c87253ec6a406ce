package users

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, user User) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO app_user (id, username, password_hash, created_at) VALUES ($1, $2, $3, $4);`,
		user.ID, user.Username, user.PasswordHash, user.CreatedAt,
	); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

// GetByUsername matches the username case-insensitively.
func (r *Repo) GetByUsername(ctx context.Context, username string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByUsername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var u User
	if err := r.db.QueryRow(
		ctx,
		`SELECT id, username, password_hash, created_at FROM app_user WHERE lower(username) = lower($1);`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &u, nil
}
