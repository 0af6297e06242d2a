package integration_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/cinelist/cinelist-api/internal/app"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TestApp struct {
	App *app.Application
	// DB is a separate pool on the same database, used to seed fixtures.
	DB *pgxpool.Pool
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	application, err := app.New(cfg, logger)
	if err != nil {
		return nil, err
	}

	db, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		application.Close()
		return nil, err
	}

	return &TestApp{
		App: application,
		DB:  db,
	}, nil
}

func (a *TestApp) Close() {
	a.DB.Close()
	a.App.Close()
}
