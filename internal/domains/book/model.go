package book

import "time"

// Book maps 1:1 to the books table.
type Book struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Author      string    `db:"author" json:"author"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"-"`
	UpdatedAt   time.Time `db:"updated_at" json:"-"`
}

// ToDTO converts the storage record into its wire representation.
func (b *Book) ToDTO() BookDTO {
	return BookDTO{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
	}
}
