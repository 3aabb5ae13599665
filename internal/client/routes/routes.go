// Package routes declares the navigable screens of the client and decides,
// before a navigation completes, whether the destination is permitted for
// the current session.
package routes

import "github.com/librivault/librivault-cli/internal/client/models"

// Well-known navigation targets.
const (
	PathHome          = "/home"
	PathLogin         = "/auth/login"
	PathRegister      = "/auth/register"
	PathBooks         = "/books"
	PathDashboard     = "/dashboard"
	PathAdmin         = "/admin"
	PathLibrarian     = "/librarian"
	PathSubscription  = "/subscription"
	PathProfile       = "/profile"
	PathNotifications = "/notifications"
	PathAbout         = "/about"
	PathContact       = "/contact"
)

// Route attaches access requirements to a path prefix. RequiresAuth gates
// the route on an authenticated session; a non-empty Roles set additionally
// restricts it to those roles. An empty Roles set with RequiresAuth means
// any authenticated role is sufficient.
type Route struct {
	Path         string
	RequiresAuth bool
	Roles        []models.Role
}

// Table returns the static route table. Defined once at startup, never
// mutated.
func Table() []Route {
	return []Route{
		{Path: PathHome},
		{Path: PathLogin},
		{Path: PathRegister},
		{Path: PathBooks},
		{Path: PathAbout},
		{Path: PathContact},
		{Path: PathDashboard, RequiresAuth: true},
		{Path: PathProfile, RequiresAuth: true},
		{Path: PathNotifications, RequiresAuth: true},
		{Path: PathSubscription, RequiresAuth: true},
		{Path: PathAdmin, RequiresAuth: true, Roles: []models.Role{models.RoleAdmin}},
		{Path: PathLibrarian, RequiresAuth: true, Roles: []models.Role{models.RoleLibrarian, models.RoleAdmin}},
	}
}
