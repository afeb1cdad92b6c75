package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/domains/book"
)

// fakeBookRepo is an in-memory book.Repository preserving insertion order.
type fakeBookRepo struct {
	books  []book.Book
	nextID int64
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{}
}

func (r *fakeBookRepo) List(_ context.Context) ([]book.Book, error) {
	out := make([]book.Book, len(r.books))
	copy(out, r.books)
	return out, nil
}

func (r *fakeBookRepo) FindByID(_ context.Context, id int64) (*book.Book, error) {
	for _, b := range r.books {
		if b.ID == id {
			b := b
			return &b, nil
		}
	}
	return nil, book.ErrBookNotFound
}

func (r *fakeBookRepo) Create(_ context.Context, b *book.Book) error {
	r.nextID++
	b.ID = r.nextID
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	r.books = append(r.books, *b)
	return nil
}

func (r *fakeBookRepo) Update(_ context.Context, b *book.Book) error {
	for i := range r.books {
		if r.books[i].ID == b.ID {
			r.books[i].Title = b.Title
			r.books[i].Author = b.Author
			r.books[i].Description = b.Description
			r.books[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return book.ErrBookNotFound
}

func (r *fakeBookRepo) Delete(_ context.Context, id int64) error {
	for i := range r.books {
		if r.books[i].ID == id {
			r.books = append(r.books[:i], r.books[i+1:]...)
			return nil
		}
	}
	return book.ErrBookNotFound
}

// fakeCache is an in-memory cache.Cache storing JSON documents.
type fakeCache struct {
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	data, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = data
	return nil
}

func (c *fakeCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.entries, key)
	}
	return nil
}

func (c *fakeCache) Ping(_ context.Context) error { return nil }

func validRequest() book.UpsertBookRequest {
	return book.UpsertBookRequest{
		Title:       "Dune",
		Author:      "Herbert",
		Description: "Sci-fi",
	}
}

func TestCreateAssignsID(t *testing.T) {
	svc := NewBookService(newFakeBookRepo(), newFakeCache())
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.Equal(t, "Dune", created.Title)
	assert.Equal(t, "Herbert", created.Author)
	assert.Equal(t, "Sci-fi", created.Description)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreateIgnoresClientID(t *testing.T) {
	svc := NewBookService(newFakeBookRepo(), newFakeCache())

	req := validRequest()
	req.ID = 9999

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestCreateValidation(t *testing.T) {
	svc := NewBookService(newFakeBookRepo(), newFakeCache())
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*book.UpsertBookRequest)
	}{
		{"missing title", func(r *book.UpsertBookRequest) { r.Title = "" }},
		{"missing author", func(r *book.UpsertBookRequest) { r.Author = "" }},
		{"missing description", func(r *book.UpsertBookRequest) { r.Description = "" }},
		{"title too long", func(r *book.UpsertBookRequest) { r.Title = strings.Repeat("t", 101) }},
		{"author too long", func(r *book.UpsertBookRequest) { r.Author = strings.Repeat("a", 51) }},
		{"description too long", func(r *book.UpsertBookRequest) { r.Description = strings.Repeat("d", 501) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			_, err := svc.Create(ctx, req)
			assert.Error(t, err)
		})
	}
}

func TestGetNotFound(t *testing.T) {
	svc := NewBookService(newFakeBookRepo(), newFakeCache())

	_, err := svc.Get(context.Background(), 9999)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestGetServesFromCache(t *testing.T) {
	repo := newFakeBookRepo()
	cache := newFakeCache()
	svc := NewBookService(repo, cache)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	// first read populates the cache
	_, err = svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Contains(t, cache.entries, "book:1")

	// drop the row behind the cache; the cached copy still answers
	require.NoError(t, repo.Delete(ctx, created.ID))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
}

func TestList(t *testing.T) {
	svc := NewBookService(newFakeBookRepo(), newFakeCache())
	ctx := context.Background()

	// empty store yields an empty slice, not nil
	books, err := svc.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)

	first, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.Title = "Dune Messiah"
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	books, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, books, 2)
	// insertion order
	assert.Equal(t, "Dune", books[0].Title)
	assert.Equal(t, "Dune Messiah", books[1].Title)

	// deleted books disappear from the listing
	require.NoError(t, svc.Delete(ctx, first.ID))

	books, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Dune Messiah", books[0].Title)
}

func TestUpdate(t *testing.T) {
	svc := NewBookService(newFakeBookRepo(), newFakeCache())
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	req := book.UpsertBookRequest{
		ID:          created.ID,
		Title:       "Dune Messiah",
		Author:      "Frank Herbert",
		Description: "The sequel",
	}
	require.NoError(t, svc.Update(ctx, created.ID, req))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	// wholesale overwrite of all three fields
	assert.Equal(t, "Dune Messiah", got.Title)
	assert.Equal(t, "Frank Herbert", got.Author)
	assert.Equal(t, "The sequel", got.Description)
}

func TestUpdateIDMismatch(t *testing.T) {
	svc := NewBookService(newFakeBookRepo(), newFakeCache())
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.ID = created.ID + 1

	err = svc.Update(ctx, created.ID, req)
	assert.ErrorIs(t, err, book.ErrIDMismatch)
}

func TestUpdateNotFound(t *testing.T) {
	svc := NewBookService(newFakeBookRepo(), newFakeCache())

	req := validRequest()
	req.ID = 9999

	err := svc.Update(context.Background(), 9999, req)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestUpdateInvalidatesCache(t *testing.T) {
	cache := newFakeCache()
	svc := NewBookService(newFakeBookRepo(), cache)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	_, err = svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Contains(t, cache.entries, "book:1")

	req := book.UpsertBookRequest{ID: created.ID, Title: "New", Author: "New", Description: "New"}
	require.NoError(t, svc.Update(ctx, created.ID, req))

	assert.NotContains(t, cache.entries, "book:1")

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
}

func TestDelete(t *testing.T) {
	svc := NewBookService(newFakeBookRepo(), newFakeCache())
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)

	// second delete fails cleanly, it does not panic
	err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}
