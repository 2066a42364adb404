// Package credentials implements the dashboard's local credential store:
// account registration with a per-email uniqueness guarantee and
// authentication by (email, password hash) lookup.
package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/aqikeeper/internal/common"
	"github.com/dmitrijs2005/aqikeeper/internal/credentials/migrations"
	"github.com/dmitrijs2005/aqikeeper/internal/dbx"
	"github.com/dmitrijs2005/aqikeeper/internal/logging"
)

// Store owns the database handle. Every Register and Authenticate call
// checks out its own connection and returns it before the call ends.
type Store struct {
	db      *sql.DB
	dialect dbx.Dialect
	repo    func(dbx.DBTX) Repository
	logger  logging.Logger
}

func NewStore(db *sql.DB, dialect dbx.Dialect, logger logging.Logger) (*Store, error) {
	s := &Store{db: db, dialect: dialect, logger: logger}

	switch dialect {
	case dbx.DialectSQLite:
		s.repo = func(db dbx.DBTX) Repository { return NewSQLiteRepository(db) }
	case dbx.DialectPostgres:
		s.repo = func(db dbx.DBTX) Repository { return NewPostgresRepository(db) }
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}

	return s, nil
}

// Initialize creates the users table if it does not exist yet.
func (s *Store) Initialize(ctx context.Context) error {
	if err := dbx.RunMigrations(ctx, s.db, s.dialect, migrations.Migrations, s.logger); err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorageUnavailable, err)
	}
	return nil
}

// Register stores a new account. It reports false, with a nil error, when
// the email is already on file; nothing is written in that case.
func (s *Store) Register(ctx context.Context, email, username, name, password string) (bool, error) {
	user := &User{
		Email:        email,
		UserName:     username,
		Name:         name,
		PasswordHash: HashPassword(password),
	}

	conn, err := s.db.Conn(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: %w", common.ErrStorageUnavailable, err)
	}
	defer conn.Close()

	err = dbx.WithTx(ctx, conn, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repo(tx).Create(ctx, user)
	})

	switch {
	case err == nil:
		s.logger.Info(ctx, "user registered", "email", email)
		return true, nil
	case errors.Is(err, common.ErrorAlreadyExists):
		s.logger.Warn(ctx, "registration rejected, email already exists", "email", email)
		return false, nil
	default:
		s.logger.Error(ctx, "registration failed", "email", email, "error", err)
		return false, fmt.Errorf("%w: %w", common.ErrStorageUnavailable, err)
	}
}

// Authenticate returns the stored profile when both email and password
// match. A wrong email and a wrong password are indistinguishable: both
// yield a nil profile and a nil error.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*Profile, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrStorageUnavailable, err)
	}
	defer conn.Close()

	p, err := s.repo(conn).FindByCredentials(ctx, email, HashPassword(password))
	switch {
	case err == nil:
		s.logger.Info(ctx, "user authenticated", "email", email)
		return p, nil
	case errors.Is(err, common.ErrorNotFound):
		s.logger.Warn(ctx, "authentication failed", "email", email)
		return nil, nil
	default:
		s.logger.Error(ctx, "authentication lookup failed", "email", email, "error", err)
		return nil, fmt.Errorf("%w: %w", common.ErrStorageUnavailable, err)
	}
}
