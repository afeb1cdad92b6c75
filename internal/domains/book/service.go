package book

import "context"

// Service defines the catalog business logic contract. Every operation is
// idempotent except Create; Update is a wholesale overwrite, last writer wins.
type Service interface {
	List(ctx context.Context) ([]BookDTO, error)

	// Get returns ErrBookNotFound when the id is unknown.
	Get(ctx context.Context, id int64) (*BookDTO, error)

	// Create assigns a new id and returns the full stored record.
	Create(ctx context.Context, req UpsertBookRequest) (*BookDTO, error)

	// Update returns ErrIDMismatch when pathID != req.ID and
	// ErrBookNotFound when the record does not exist.
	Update(ctx context.Context, pathID int64, req UpsertBookRequest) error

	// Delete returns ErrBookNotFound when the record does not exist,
	// including on a repeated delete of the same id.
	Delete(ctx context.Context, id int64) error
}
