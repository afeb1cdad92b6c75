package book

import "errors"

var (
	ErrBookNotFound = errors.New("book not found")

	// ErrIDMismatch is returned when the id in the URL path and the id in
	// the request body disagree on an update.
	ErrIDMismatch = errors.New("path id and body id do not match")
)
