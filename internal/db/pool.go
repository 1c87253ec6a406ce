package db

import (
	"context"
	"fmt"
	"net"
	"net/url"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NewDBPoolParams struct {
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	MaxConns       int32
	TracingEnabled bool
}

func ConnString(params NewDBPoolParams) string {
	user := params.DBUser
	if user == "" {
		user = "postgres"
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(params.DBHost, params.DBPort),
		Path:   "/" + params.DBName,
	}
	if params.DBPassword != "" {
		u.User = url.UserPassword(user, params.DBPassword)
	} else {
		u.User = url.User(user)
	}
	return u.String()
}

func NewDBPool(ctx context.Context, params NewDBPoolParams) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(ConnString(params))
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	if params.MaxConns > 0 {
		poolConfig.MaxConns = params.MaxConns
	}

	if params.TracingEnabled {
		poolConfig.ConnConfig.Tracer = otelpgx.NewTracer(otelpgx.WithIncludeQueryParameters())
	}

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	return db, nil
}
