package service

import (
	"context"
	"fmt"
	"time"

	"library-catalog/internal/domains/book"
	"library-catalog/pkg/cache"
	"library-catalog/pkg/logger"
)

// detailCacheTTL bounds how long a cached book detail can outlive a write
// that raced past the invalidation below.
const detailCacheTTL = 10 * time.Minute

func detailCacheKey(id int64) string {
	return fmt.Sprintf("book:%d", id)
}

// bookService implements book.Service with a cache-aside read path for
// single-book lookups. The database remains the source of truth; cache
// failures are logged and ignored.
type bookService struct {
	repo  book.Repository
	cache cache.Cache
}

// NewBookService creates the catalog service with its dependencies injected.
func NewBookService(repo book.Repository, c cache.Cache) book.Service {
	return &bookService{
		repo:  repo,
		cache: c,
	}
}

func (s *bookService) List(ctx context.Context) ([]book.BookDTO, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]book.BookDTO, len(books))
	for i, b := range books {
		dtos[i] = b.ToDTO()
	}

	return dtos, nil
}

func (s *bookService) Get(ctx context.Context, id int64) (*book.BookDTO, error) {
	key := detailCacheKey(id)

	var cached book.BookDTO
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Warn("book cache read failed", err)
	}
	if found {
		return &cached, nil
	}

	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := b.ToDTO()
	if err := s.cache.Set(ctx, key, &dto, detailCacheTTL); err != nil {
		logger.Warn("book cache write failed", err)
	}

	return &dto, nil
}

func (s *bookService) Create(ctx context.Context, req book.UpsertBookRequest) (*book.BookDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Any id supplied by the client is ignored; the store assigns one.
	b := &book.Book{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	dto := b.ToDTO()
	return &dto, nil
}

func (s *bookService) Update(ctx context.Context, pathID int64, req book.UpsertBookRequest) error {
	if pathID != req.ID {
		return book.ErrIDMismatch
	}

	if err := req.Validate(); err != nil {
		return err
	}

	b := &book.Book{
		ID:          pathID,
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return err
	}

	s.invalidate(ctx, pathID)
	return nil
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	return nil
}

func (s *bookService) invalidate(ctx context.Context, id int64) {
	if err := s.cache.Delete(ctx, detailCacheKey(id)); err != nil {
		logger.Warn("book cache invalidation failed", err)
	}
}
