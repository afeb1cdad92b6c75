package user

import "context"

// Repository defines the data access contract for users. Implementations
// must rely on the storage unique index for username uniqueness; two
// concurrent Create calls for the same username are resolved there, not here.
type Repository interface {
	// Create inserts a new user and fills in the assigned id.
	// Returns ErrUsernameTaken when the username already exists.
	Create(ctx context.Context, u *User) error

	// FindByUsername returns the user with the exact (case-sensitive) username.
	// Returns ErrUserNotFound when no such user exists.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// ExistsByUsername reports whether a user with that username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Count returns the total number of users.
	Count(ctx context.Context) (int, error)
}
