// Package api is the HTTP client for the LibriVault REST API.
//
// Every call goes through the request gate: the current bearer token is
// attached on the way out, and error responses are classified on the way
// back (forced logout and a login redirect on 401, user-facing notices for
// the rest). Errors are always re-raised to the caller after those side
// effects, so call-site-specific handling still runs.
package api

import (
	"context"

	"github.com/librivault/librivault-cli/internal/client/models"
)

// Client is the full operation surface of the LibriVault API consumed by
// the session and the domain services.
type Client interface {
	// Auth and profile.
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Refresh(ctx context.Context) (*models.AuthResponse, error)
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error

	// Catalog.
	ListBooks(ctx context.Context, page, size int) (*models.Paged[models.Book], error)
	SearchBooks(ctx context.Context, params models.BookSearchParams) (*models.Paged[models.Book], error)
	GetBook(ctx context.Context, id int64) (*models.Book, error)
	ListCategories(ctx context.Context) ([]models.Category, error)

	// Borrowing.
	CreateBorrowRequest(ctx context.Context, req models.CreateBorrowRequestRequest) (*models.BorrowRequest, error)
	MyBorrowRequests(ctx context.Context, page, size int) (*models.Paged[models.BorrowRequest], error)
	MyBorrowRecords(ctx context.Context, page, size int) (*models.Paged[models.BorrowRecord], error)
	ReturnBook(ctx context.Context, recordID int64) (*models.BorrowRecord, error)
	MyFines(ctx context.Context, page, size int) (*models.Paged[models.Fine], error)
	PayFine(ctx context.Context, fineID int64) (*models.Fine, error)

	// Notifications.
	ListNotifications(ctx context.Context, page, size int) (*models.Paged[models.Notification], error)
	UnreadCount(ctx context.Context) (int64, error)
	MarkNotificationRead(ctx context.Context, id int64) error

	// Subscriptions.
	SubscriptionPlans(ctx context.Context) ([]models.SubscriptionPlan, error)
	CurrentSubscription(ctx context.Context) (*models.Subscription, error)
}

// SessionControl is the slice of the session the gate needs: the current
// credential for outbound requests and the forced-expiry transition for
// 401 responses.
type SessionControl interface {
	Token() string
	ForceExpire(ctx context.Context)
}

// Notifier surfaces user-facing notices for failed calls. The CLI shell
// implements it; a web shell would show toasts.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// Navigator redirects the active navigation, used by the gate to send an
// expired session to the login entry point.
type Navigator interface {
	NavigateTo(ctx context.Context, path string)
}
