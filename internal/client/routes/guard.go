package routes

import (
	"strings"

	"github.com/librivault/librivault-cli/internal/client/models"
)

// SessionReader is the read-only slice of the session the guard consults.
// Both checks run synchronously against in-memory state; no network call is
// made during navigation, so a decision can be based on a stale profile if
// a role changed server-side. Accepted staleness window.
type SessionReader interface {
	IsAuthenticated() bool
	HasAnyRole(roles ...models.Role) bool
}

// Decision is the outcome of guarding one navigation.
//
// When Allowed is false, RedirectTo names where the navigation should go
// instead. A redirect to the login entry point carries the originally
// requested path in ReturnTo so a later login can resume there.
type Decision struct {
	Allowed    bool
	RedirectTo string
	ReturnTo   string
}

// Guard evaluates navigations against the route table.
type Guard struct {
	table   []Route
	session SessionReader
}

func NewGuard(table []Route, session SessionReader) *Guard {
	return &Guard{table: table, session: session}
}

// Resolve decides whether the session may navigate to path.
//
// The authentication check always precedes the role check: an
// unauthenticated user is sent to log in, never shown a wrong-role
// outcome. An authenticated user failing the role check is sent to the
// default landing area rather than bounced to the login screen.
// Unknown paths are allowed; the shell renders its not-found screen.
func (g *Guard) Resolve(path string) Decision {
	route, ok := g.match(path)
	if !ok {
		return Decision{Allowed: true}
	}

	if route.RequiresAuth && !g.session.IsAuthenticated() {
		return Decision{RedirectTo: PathLogin, ReturnTo: path}
	}

	if len(route.Roles) > 0 && !g.session.HasAnyRole(route.Roles...) {
		return Decision{RedirectTo: PathDashboard}
	}

	return Decision{Allowed: true}
}

// match finds the most specific route whose path is a prefix of the
// requested path, on segment boundaries.
func (g *Guard) match(path string) (Route, bool) {
	var best Route
	found := false
	for _, r := range g.table {
		if path != r.Path && !strings.HasPrefix(path, r.Path+"/") {
			continue
		}
		if !found || len(r.Path) > len(best.Path) {
			best = r
			found = true
		}
	}
	return best, found
}
