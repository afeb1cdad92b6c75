package book

import "context"

// Repository defines the data access contract for books.
type Repository interface {
	// List returns every book in insertion order. An empty table yields an
	// empty slice, not an error.
	List(ctx context.Context) ([]Book, error)

	// FindByID returns ErrBookNotFound when no book has that id.
	FindByID(ctx context.Context, id int64) (*Book, error)

	// Create inserts a new book and fills in the assigned id.
	Create(ctx context.Context, b *Book) error

	// Update replaces title, author and description wholesale.
	// Returns ErrBookNotFound when the row does not exist.
	Update(ctx context.Context, b *Book) error

	// Delete removes the book permanently.
	// Returns ErrBookNotFound when the row does not exist.
	Delete(ctx context.Context, id int64) error
}
