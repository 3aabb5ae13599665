// Package services contains the thin per-domain wrappers over the API
// client used by the CLI screens. All business rules (borrowing limits,
// fine computation, credit accrual) live behind the remote API; these
// services only shape calls and cache a little read-mostly state.
package services

import (
	"context"

	"github.com/librivault/librivault-cli/internal/client/models"
)

// BookAPI is the catalog slice of the API client.
type BookAPI interface {
	ListBooks(ctx context.Context, page, size int) (*models.Paged[models.Book], error)
	SearchBooks(ctx context.Context, params models.BookSearchParams) (*models.Paged[models.Book], error)
	GetBook(ctx context.Context, id int64) (*models.Book, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// DefaultPageSize is used when a screen does not ask for a specific size.
const DefaultPageSize = 20

type BookService struct {
	api BookAPI
}

func NewBookService(api BookAPI) *BookService {
	return &BookService{api: api}
}

func (s *BookService) List(ctx context.Context, page int) (*models.Paged[models.Book], error) {
	return s.api.ListBooks(ctx, page, DefaultPageSize)
}

func (s *BookService) Search(ctx context.Context, params models.BookSearchParams) (*models.Paged[models.Book], error) {
	if params.Size == 0 {
		params.Size = DefaultPageSize
	}
	return s.api.SearchBooks(ctx, params)
}

func (s *BookService) Get(ctx context.Context, id int64) (*models.Book, error) {
	return s.api.GetBook(ctx, id)
}

func (s *BookService) Categories(ctx context.Context) ([]models.Category, error) {
	return s.api.ListCategories(ctx)
}
