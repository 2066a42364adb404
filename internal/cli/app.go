package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/aqikeeper/internal/credentials"
	"github.com/dmitrijs2005/aqikeeper/internal/logging"
	"github.com/google/uuid"
)

// CredentialStore is the part of credentials.Store the CLI relies on.
type CredentialStore interface {
	Register(ctx context.Context, email, username, name, password string) (bool, error)
	Authenticate(ctx context.Context, email, password string) (*credentials.Profile, error)
}

// Session is the caller-owned login state.
type Session struct {
	LoggedIn bool
	Profile  credentials.Profile
}

type App struct {
	store   CredentialStore
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer
	session Session
}

func NewApp(store CredentialStore, logger logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		store:  store,
		logger: logger.With("session_id", uuid.NewString()),
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn
}

func (a *App) getStatus() string {
	if !a.session.LoggedIn {
		return ""
	}
	return fmt.Sprintf("(%s)", a.session.Profile.Name)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// Run starts the REPL and returns when the user exits, input ends or ctx
// is cancelled.
func (a *App) Run(ctx context.Context) {
	a.logger.Info(ctx, "cli started")
	a.println("Air Quality Index Visualization (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
	a.logger.Info(ctx, "cli stopped")
}
