package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/aqikeeper/internal/common"
	"github.com/dmitrijs2005/aqikeeper/internal/credentials"
	"github.com/dmitrijs2005/aqikeeper/internal/dbx"
	"github.com/dmitrijs2005/aqikeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	registered  bool
	registerErr error
	profile     *credentials.Profile
	authErr     error

	gotRegister []string
	gotAuth     []string
}

func (s *stubStore) Register(ctx context.Context, email, username, name, password string) (bool, error) {
	s.gotRegister = []string{email, username, name, password}
	return s.registered, s.registerErr
}

func (s *stubStore) Authenticate(ctx context.Context, email, password string) (*credentials.Profile, error) {
	s.gotAuth = []string{email, password}
	return s.profile, s.authErr
}

func newTestApp(t *testing.T, store CredentialStore, input string) (*App, *bytes.Buffer) {
	t.Helper()
	withTerminal(t, false)
	var out bytes.Buffer
	return NewApp(store, logging.Discard(), strings.NewReader(input), &out), &out
}

func lines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}

func TestRegister_Success(t *testing.T) {
	store := &stubStore{registered: true}
	app, out := newTestApp(t, store, lines("a@x.com", "alice", "Alice A", "secret1", "secret1"))

	require.NoError(t, app.Register(context.Background()))
	assert.Equal(t, []string{"a@x.com", "alice", "Alice A", "secret1"}, store.gotRegister)
	assert.Contains(t, out.String(), "User Alice A successfully registered! Please Login to get started")
	assert.False(t, app.isLoggedIn(), "registration does not log the user in")
}

func TestRegister_PasswordMismatch(t *testing.T) {
	store := &stubStore{registered: true}
	app, out := newTestApp(t, store, lines("a@x.com", "alice", "Alice A", "secret1", "secret2"))

	err := app.Register(context.Background())
	require.ErrorIs(t, err, common.ErrPasswordMismatch)
	assert.Nil(t, store.gotRegister, "store must not be called")
	assert.Contains(t, out.String(), "Passwords do not match!")
}

func TestRegister_MissingField(t *testing.T) {
	store := &stubStore{registered: true}
	app, out := newTestApp(t, store, lines("a@x.com", "", "Alice A", "secret1", "secret1"))

	err := app.Register(context.Background())
	require.ErrorIs(t, err, common.ErrorValidation)
	assert.Nil(t, store.gotRegister)
	assert.Contains(t, out.String(), "All fields are required.")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := &stubStore{registered: false}
	app, out := newTestApp(t, store, lines("a@x.com", "alice", "Alice A", "secret1", "secret1"))

	err := app.Register(context.Background())
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
	assert.Contains(t, out.String(), "Email already exists. Please try a different E-mail id.")
}

func TestRegister_StorageError(t *testing.T) {
	boom := errors.New("boom")
	store := &stubStore{registerErr: boom}
	app, out := newTestApp(t, store, lines("a@x.com", "alice", "Alice A", "secret1", "secret1"))

	err := app.Register(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, out.String(), "Registration is unavailable right now.")
}

func TestLogin_SuccessSetsSession(t *testing.T) {
	store := &stubStore{profile: &credentials.Profile{Name: "Alice A", Email: "a@x.com"}}
	app, out := newTestApp(t, store, lines("a@x.com", "secret1"))

	require.NoError(t, app.Login(context.Background()))
	assert.Equal(t, []string{"a@x.com", "secret1"}, store.gotAuth)
	assert.True(t, app.isLoggedIn())
	assert.Equal(t, "(Alice A)", app.getStatus())
	assert.Contains(t, out.String(), "Alice A, You are successfully logged in!")

	require.NoError(t, app.Logout(context.Background()))
	assert.False(t, app.isLoggedIn())
	assert.Equal(t, "", app.getStatus())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	app, out := newTestApp(t, &stubStore{}, lines("a@x.com", "wrong"))

	err := app.Login(context.Background())
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.False(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "Invalid email or password.")
}

func TestLogin_StorageError(t *testing.T) {
	boom := errors.New("boom")
	app, out := newTestApp(t, &stubStore{authErr: boom}, lines("a@x.com", "secret1"))

	err := app.Login(context.Background())
	require.ErrorIs(t, err, boom)
	assert.False(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "Login is unavailable right now.")
}

func TestRun_EndToEndWithSQLiteStore(t *testing.T) {
	db, dialect, err := dbx.Open(filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store, err := credentials.NewStore(db, dialect, logging.Discard())
	require.NoError(t, err)
	require.NoError(t, store.Initialize(context.Background()))

	input := lines(
		"register", "a@x.com", "alice", "Alice A", "secret1", "secret1",
		"register", "a@x.com", "alice", "Alice A", "other", "other",
		"login", "a@x.com", "wrong",
		"login", "a@x.com", "secret1",
		"whoami",
		"logout",
		"exit",
	)
	app, out := newTestApp(t, store, input)
	app.Run(context.Background())

	s := out.String()
	assert.Contains(t, s, "User Alice A successfully registered!")
	assert.Contains(t, s, "Email already exists.")
	assert.Contains(t, s, "Invalid email or password.")
	assert.Contains(t, s, "Alice A, You are successfully logged in!")
	assert.Contains(t, s, "Email: a@x.com")
	assert.Contains(t, s, "Logged out.")
	assert.False(t, app.isLoggedIn())
}
