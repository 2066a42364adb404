package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/aqikeeper/internal/common"
	"github.com/dmitrijs2005/aqikeeper/internal/dbx"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, user *User) error {
	query :=
		`INSERT INTO users (email, username, name, password)
		 VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, user.Email, user.UserName, user.Name, user.PasswordHash)
	if err != nil {
		if isSQLiteUniqueViolation(err) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *SQLiteRepository) FindByCredentials(ctx context.Context, email, passwordHash string) (*Profile, error) {
	query :=
		`SELECT name, email FROM users
		 WHERE email = ? AND password = ?`

	p := &Profile{}
	err := r.db.QueryRowContext(ctx, query, email, passwordHash).Scan(&p.Name, &p.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func isSQLiteUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed: users.email")
}

var _ Repository = (*SQLiteRepository)(nil)
