package services

import (
	"context"

	"github.com/librivault/librivault-cli/internal/client/models"
)

// BorrowAPI is the borrowing slice of the API client.
type BorrowAPI interface {
	CreateBorrowRequest(ctx context.Context, req models.CreateBorrowRequestRequest) (*models.BorrowRequest, error)
	MyBorrowRequests(ctx context.Context, page, size int) (*models.Paged[models.BorrowRequest], error)
	MyBorrowRecords(ctx context.Context, page, size int) (*models.Paged[models.BorrowRecord], error)
	ReturnBook(ctx context.Context, recordID int64) (*models.BorrowRecord, error)
	MyFines(ctx context.Context, page, size int) (*models.Paged[models.Fine], error)
	PayFine(ctx context.Context, fineID int64) (*models.Fine, error)
}

type BorrowService struct {
	api BorrowAPI
}

func NewBorrowService(api BorrowAPI) *BorrowService {
	return &BorrowService{api: api}
}

// RequestBook files a borrow request for the given book. Whether the
// reader may borrow (limits, credits, subscription) is the server's call.
func (s *BorrowService) RequestBook(ctx context.Context, bookID int64) (*models.BorrowRequest, error) {
	return s.api.CreateBorrowRequest(ctx, models.CreateBorrowRequestRequest{BookID: bookID})
}

func (s *BorrowService) MyRequests(ctx context.Context, page int) (*models.Paged[models.BorrowRequest], error) {
	return s.api.MyBorrowRequests(ctx, page, DefaultPageSize)
}

func (s *BorrowService) MyLoans(ctx context.Context, page int) (*models.Paged[models.BorrowRecord], error) {
	return s.api.MyBorrowRecords(ctx, page, DefaultPageSize)
}

func (s *BorrowService) Return(ctx context.Context, recordID int64) (*models.BorrowRecord, error) {
	return s.api.ReturnBook(ctx, recordID)
}

func (s *BorrowService) MyFines(ctx context.Context, page int) (*models.Paged[models.Fine], error) {
	return s.api.MyFines(ctx, page, DefaultPageSize)
}

func (s *BorrowService) PayFine(ctx context.Context, fineID int64) (*models.Fine, error) {
	return s.api.PayFine(ctx, fineID)
}
