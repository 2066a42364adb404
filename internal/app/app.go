// Package app wires configuration, logging, storage and the CLI together.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/aqikeeper/internal/cli"
	"github.com/dmitrijs2005/aqikeeper/internal/config"
	"github.com/dmitrijs2005/aqikeeper/internal/credentials"
	"github.com/dmitrijs2005/aqikeeper/internal/dbx"
	"github.com/dmitrijs2005/aqikeeper/internal/logging"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	store  *credentials.Store
}

// NewApp opens the database and makes sure the users table exists. Any
// failure here means the store is unusable and is returned to the caller.
// Logs go to logOut so they do not interleave with the prompts on stdout.
func NewApp(ctx context.Context, c *config.Config, logOut io.Writer) (*App, error) {
	logger, err := logging.New(c.LogLevel, c.LogFormat, logOut)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	db, dialect, err := dbx.Open(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	store, err := credentials.NewStore(db, dialect, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := store.Initialize(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	logger.Info(ctx, "credential store ready", "dialect", string(dialect))

	return &App{config: c, logger: logger, db: db, store: store}, nil
}

// Store exposes the initialised credential store.
func (app *App) Store() *credentials.Store {
	return app.store
}

// Run serves the CLI on in/out until the user exits or a termination
// signal arrives.
func (app *App) Run(ctx context.Context, in io.Reader, out io.Writer) {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	cli.NewApp(app.store, app.logger, in, out).Run(ctx)
}

func (app *App) Close() error {
	return app.db.Close()
}

// Main is the process entry point used by cmd/aqikeeper.
func Main() int {
	ctx := context.Background()
	cfg := config.LoadConfig(os.Args[1:])

	a, err := NewApp(ctx, cfg, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer a.Close()

	a.Run(ctx, os.Stdin, os.Stdout)
	return 0
}
