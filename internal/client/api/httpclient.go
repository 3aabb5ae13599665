package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/librivault/librivault-cli/internal/client/models"
	"github.com/librivault/librivault-cli/internal/common"
	"github.com/librivault/librivault-cli/internal/logging"
)

// HTTPClient implements Client against the REST API.
type HTTPClient struct {
	baseURL  string
	http     *http.Client
	timeout  time.Duration
	session  SessionControl
	notifier Notifier
	nav      Navigator
	log      logging.Logger
}

// NewHTTPClient builds a client for the API at baseURL. Each request gets
// its own timeout-bounded context; there is no automatic retry, callers
// retry manually.
func NewHTTPClient(baseURL string, timeout time.Duration, notifier Notifier, nav Navigator, log logging.Logger) *HTTPClient {
	c := &HTTPClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		timeout:  timeout,
		notifier: notifier,
		nav:      nav,
		log:      log,
	}
	c.http = &http.Client{Transport: &authTransport{token: c.currentToken}}
	return c
}

// Bind connects the client to the session. The session depends on the
// client for its auth calls and the client depends on the session for the
// credential, so the two are wired in this second step, before any request
// is issued.
func (c *HTTPClient) Bind(s SessionControl) {
	c.session = s
}

func (c *HTTPClient) currentToken() string {
	if c.session == nil {
		return ""
	}
	return c.session.Token()
}

// do performs one JSON request/response cycle through the gate.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rdr io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		rdr = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	c.log.Debug(ctx, "api request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		err = fmt.Errorf("%w: %v", common.ErrUnavailable, err)
		if c.notifier != nil && !strings.HasSuffix(path, refreshPath) {
			c.notifier.Notify(ctx, "An unexpected error occurred")
		}
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		if data, rerr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)); rerr == nil {
			var env errorEnvelope
			if jerr := json.Unmarshal(data, &env); jerr == nil {
				apiErr.Message = env.Message
			}
		}
		c.gate(ctx, path, apiErr)
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func pageQuery(page, size int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	return q
}

// ---- auth and profile ----

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Refresh(ctx context.Context) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, refreshPath, nil, struct{}{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/users/profile", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPut, "/users/profile", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	return c.do(ctx, http.MethodPost, "/users/change-password", nil, req, nil)
}

// ---- catalog ----

func (c *HTTPClient) ListBooks(ctx context.Context, page, size int) (*models.Paged[models.Book], error) {
	var out models.Paged[models.Book]
	if err := c.do(ctx, http.MethodGet, "/books", pageQuery(page, size), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) SearchBooks(ctx context.Context, params models.BookSearchParams) (*models.Paged[models.Book], error) {
	q := url.Values{}
	if params.Query != "" {
		q.Set("query", params.Query)
	}
	if params.CategoryID != 0 {
		q.Set("categoryId", strconv.FormatInt(params.CategoryID, 10))
	}
	if params.Author != "" {
		q.Set("author", params.Author)
	}
	q.Set("page", strconv.Itoa(params.Page))
	if params.Size != 0 {
		q.Set("size", strconv.Itoa(params.Size))
	}
	if params.SortBy != "" {
		q.Set("sortBy", params.SortBy)
	}
	if params.SortDirection != "" {
		q.Set("sortDirection", params.SortDirection)
	}

	var out models.Paged[models.Book]
	if err := c.do(ctx, http.MethodGet, "/books/search", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetBook(ctx context.Context, id int64) (*models.Book, error) {
	var out models.Book
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/books/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ---- borrowing ----

func (c *HTTPClient) CreateBorrowRequest(ctx context.Context, req models.CreateBorrowRequestRequest) (*models.BorrowRequest, error) {
	var out models.BorrowRequest
	if err := c.do(ctx, http.MethodPost, "/borrowing/requests", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) MyBorrowRequests(ctx context.Context, page, size int) (*models.Paged[models.BorrowRequest], error) {
	var out models.Paged[models.BorrowRequest]
	if err := c.do(ctx, http.MethodGet, "/borrowing/requests/my", pageQuery(page, size), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) MyBorrowRecords(ctx context.Context, page, size int) (*models.Paged[models.BorrowRecord], error) {
	var out models.Paged[models.BorrowRecord]
	if err := c.do(ctx, http.MethodGet, "/borrowing/records/my", pageQuery(page, size), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ReturnBook(ctx context.Context, recordID int64) (*models.BorrowRecord, error) {
	var out models.BorrowRecord
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/borrowing/records/%d/return", recordID), nil, struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) MyFines(ctx context.Context, page, size int) (*models.Paged[models.Fine], error) {
	var out models.Paged[models.Fine]
	if err := c.do(ctx, http.MethodGet, "/borrowing/fines/my", pageQuery(page, size), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) PayFine(ctx context.Context, fineID int64) (*models.Fine, error) {
	var out models.Fine
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/borrowing/fines/%d/pay", fineID), nil, struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ---- notifications ----

func (c *HTTPClient) ListNotifications(ctx context.Context, page, size int) (*models.Paged[models.Notification], error) {
	var out models.Paged[models.Notification]
	if err := c.do(ctx, http.MethodGet, "/notifications", pageQuery(page, size), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UnreadCount(ctx context.Context) (int64, error) {
	var out models.UnreadCount
	if err := c.do(ctx, http.MethodGet, "/notifications/unread-count", nil, nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (c *HTTPClient) MarkNotificationRead(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/notifications/%d/read", id), nil, struct{}{}, nil)
}

// ---- subscriptions ----

func (c *HTTPClient) SubscriptionPlans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	var out []models.SubscriptionPlan
	if err := c.do(ctx, http.MethodGet, "/subscriptions/plans", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CurrentSubscription(ctx context.Context) (*models.Subscription, error) {
	var out models.Subscription
	if err := c.do(ctx, http.MethodGet, "/subscriptions/current", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
