package service

import (
	"context"
	"errors"
	"fmt"

	"library-catalog/internal/domains/user"
	"library-catalog/pkg/jwt"
	"library-catalog/pkg/password"
)

// authService implements user.Service.
type authService struct {
	repo       user.Repository
	jwtManager *jwt.Manager
}

// NewAuthService creates the auth service with its dependencies injected.
func NewAuthService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &authService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

// Register creates a new user with a bcrypt password hash.
func (s *authService) Register(ctx context.Context, req user.CredentialsRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	// Cheap pre-check for the common case. The unique index on username is
	// the real guard: a concurrent register slipping past this check comes
	// back from Create as ErrUsernameTaken.
	exists, err := s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return fmt.Errorf("check username exists: %w", err)
	}
	if exists {
		return user.ErrUsernameTaken
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	newUser := &user.User{
		Username:     req.Username,
		PasswordHash: hash,
	}

	if err := s.repo.Create(ctx, newUser); err != nil {
		return err
	}

	return nil
}

// Login authenticates the credentials and issues a bearer token.
func (s *authService) Login(ctx context.Context, req user.CredentialsRequest) (*user.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Same error as a wrong password, so login failures do not
			// reveal which usernames exist.
			return nil, user.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !password.Verify(req.Password, u.PasswordHash) {
		return nil, user.ErrInvalidCredentials
	}

	token, err := s.jwtManager.Issue(u.Username)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &user.TokenResponse{Token: token}, nil
}
