package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/librivault/librivault-cli/internal/client/routes"
	"github.com/librivault/librivault-cli/internal/common"
)

// refreshPath is the one endpoint whose 401 must not force a logout or a
// redirect: the refresh call is itself the recovery path, and reacting to
// its failure the normal way would loop.
const refreshPath = "/auth/refresh"

// authTransport attaches the current credential to every outbound request.
// Requests issued while anonymous go out bare; the server decides whether
// that is permitted.
type authTransport struct {
	base  http.RoundTripper
	token func() string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if tok := t.token(); tok != "" {
		req = req.Clone(req.Context())
		req.Header.Set(common.AuthHeaderName, common.AuthScheme+" "+tok)
	}
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

// gate applies the cross-cutting reaction to an error response before the
// error is re-raised to the caller.
//
// 401 from anything but the refresh endpoint forces the session to expire
// and redirects the active navigation to the login entry point. The
// user-facing notice is suppressed for refresh calls and for any 401: the
// redirect already communicates the state change, and a second notice
// would only confuse.
func (c *HTTPClient) gate(ctx context.Context, path string, apiErr *APIError) {
	isRefresh := strings.HasSuffix(path, refreshPath)

	if apiErr.Status == http.StatusUnauthorized && !isRefresh {
		if c.session != nil {
			c.session.ForceExpire(ctx)
		}
		if c.nav != nil {
			c.nav.NavigateTo(ctx, routes.PathLogin)
		}
	}

	if isRefresh || apiErr.Status == http.StatusUnauthorized {
		return
	}
	if c.notifier == nil {
		return
	}
	c.notifier.Notify(ctx, noticeFor(apiErr))
}

// noticeFor picks the user-facing message for an error response, passing
// the server's own message through for the validation-style statuses.
func noticeFor(apiErr *APIError) string {
	switch apiErr.Status {
	case http.StatusBadRequest:
		return orDefault(apiErr.Message, "Bad request")
	case http.StatusForbidden:
		return "Access forbidden"
	case http.StatusNotFound:
		return "Resource not found"
	case http.StatusConflict:
		return orDefault(apiErr.Message, "Conflict occurred")
	case http.StatusUnprocessableEntity:
		return orDefault(apiErr.Message, "Validation error")
	case http.StatusInternalServerError:
		return "Internal server error"
	default:
		return orDefault(apiErr.Message, fmt.Sprintf("Error %d", apiErr.Status))
	}
}

func orDefault(s, def string) string {
	if s != "" {
		return s
	}
	return def
}
