package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/domains/user"
	"library-catalog/pkg/jwt"
	"library-catalog/pkg/password"
)

// fakeUserRepo is an in-memory user.Repository enforcing the username
// unique constraint the way the database index would.
type fakeUserRepo struct {
	users  map[string]user.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	if _, ok := r.users[u.Username]; ok {
		return user.ErrUsernameTaken
	}
	r.nextID++
	u.ID = r.nextID
	u.CreatedAt = time.Now()
	r.users[u.Username] = *u
	return nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*user.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int, error) {
	return len(r.users), nil
}

func newTestService(repo user.Repository) (user.Service, *jwt.Manager) {
	manager := jwt.NewManager("test-secret", time.Hour)
	return NewAuthService(repo, manager), manager
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestService(repo)
	ctx := context.Background()

	err := svc.Register(ctx, user.CredentialsRequest{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	stored, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Positive(t, stored.ID)
	// password is stored hashed, never in the clear
	assert.NotEqual(t, "secret", stored.PasswordHash)
	assert.True(t, password.Verify("secret", stored.PasswordHash))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestService(repo)
	ctx := context.Background()

	req := user.CredentialsRequest{Username: "alice", Password: "secret"}
	require.NoError(t, svc.Register(ctx, req))

	err := svc.Register(ctx, req)
	assert.ErrorIs(t, err, user.ErrUsernameTaken)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "duplicate register must not add a second user")
}

func TestRegisterValidation(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestService(repo)
	ctx := context.Background()

	tests := []struct {
		name string
		req  user.CredentialsRequest
	}{
		{"empty username", user.CredentialsRequest{Username: "", Password: "secret"}},
		{"empty password", user.CredentialsRequest{Username: "alice", Password: ""}},
		{"username too long", user.CredentialsRequest{Username: strings.Repeat("a", 101), Password: "secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Register(ctx, tt.req)
			assert.Error(t, err)

			count, _ := repo.Count(ctx)
			assert.Zero(t, count)
		})
	}
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc, manager := newTestService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, user.CredentialsRequest{Username: "alice", Password: "secret"}))

	res, err := svc.Login(ctx, user.CredentialsRequest{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)

	// the token asserts the authenticated username
	claims, err := manager.Validate(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
}

func TestLoginFailures(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, user.CredentialsRequest{Username: "alice", Password: "secret"}))

	tests := []struct {
		name string
		req  user.CredentialsRequest
	}{
		{"wrong password", user.CredentialsRequest{Username: "alice", Password: "wrong"}},
		{"unknown username", user.CredentialsRequest{Username: "bob", Password: "secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Login(ctx, tt.req)
			// both failure modes report identically
			assert.ErrorIs(t, err, user.ErrInvalidCredentials)
			assert.Nil(t, res)
		})
	}
}

func TestLoginIsCaseSensitive(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, user.CredentialsRequest{Username: "Alice", Password: "secret"}))

	_, err := svc.Login(ctx, user.CredentialsRequest{Username: "alice", Password: "secret"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}
