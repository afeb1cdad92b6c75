package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// BookDTO is the wire representation of a book.
type BookDTO struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
}

// UpsertBookRequest is the body of POST /api/books and PUT /api/books/{id}.
// The id is optional on create (the store assigns one) and mandatory on
// update, where it must match the path id.
type UpsertBookRequest struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
}

// Field lengths mirror the column widths; anything longer would be
// rejected by the store anyway.
func (r UpsertBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 100).Error("title must be 1-100 characters"),
		),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
			validation.Length(1, 50).Error("author must be 1-50 characters"),
		),
		validation.Field(&r.Description,
			validation.Required.Error("description is required"),
			validation.Length(1, 500).Error("description must be 1-500 characters"),
		),
	)
}
