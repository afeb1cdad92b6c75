package user

import "context"

// Service defines the authentication business logic contract.
type Service interface {
	// Register creates a new account. Returns ErrUsernameTaken when the
	// username is already in use. No token is issued at registration.
	Register(ctx context.Context, req CredentialsRequest) error

	// Login verifies the credentials and returns a signed bearer token.
	// Returns ErrInvalidCredentials for both unknown username and wrong
	// password.
	Login(ctx context.Context, req CredentialsRequest) (*TokenResponse, error)
}
