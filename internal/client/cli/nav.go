package cli

import (
	"context"
	"fmt"

	"github.com/librivault/librivault-cli/internal/client/routes"
)

// Go handles the "go <path>" command.
func (a *App) Go(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: go <path>, e.g. go /books")
		return nil
	}
	a.Navigate(ctx, args[0])
	return nil
}

// Navigate runs one navigation through the route guard and renders the
// resulting screen. A denial never renders the requested screen: an
// anonymous visitor is parked on the login screen with the original
// destination remembered, and a wrong-role visitor lands on the dashboard.
func (a *App) Navigate(ctx context.Context, path string) {
	d := a.guard.Resolve(path)
	if !d.Allowed {
		if d.ReturnTo != "" {
			a.returnTo = d.ReturnTo
			printlnFn("Please log in first.")
		} else {
			printlnFn("You don't have access to that area.")
		}
		a.currentPath = d.RedirectTo
		a.render(ctx, d.RedirectTo)
		return
	}
	a.currentPath = path
	a.render(ctx, path)
}

// render shows the screen behind a path. Screens with nothing to fetch
// print a line and leave the rest to commands.
func (a *App) render(ctx context.Context, path string) {
	switch path {
	case routes.PathHome:
		printlnFn("Welcome to LibriVault. Type 'help' for commands.")
	case routes.PathLogin:
		printlnFn("Login screen. Type 'login' to sign in or 'register' to create an account.")
	case routes.PathRegister:
		printlnFn("Registration screen. Type 'register' to create an account.")
	case routes.PathBooks:
		_ = a.Books(ctx, nil)
	case routes.PathDashboard:
		a.dashboard(ctx)
	case routes.PathProfile:
		_ = a.Whoami(ctx)
	case routes.PathNotifications:
		_ = a.Notifications(ctx)
	case routes.PathSubscription:
		_ = a.MySubscription(ctx)
	case routes.PathAdmin:
		printlnFn("Administration area.")
	case routes.PathLibrarian:
		printlnFn("Librarian desk.")
	case routes.PathAbout:
		printlnFn("LibriVault — a community library.")
	case routes.PathContact:
		printlnFn("Reach us at support@librivault.example.")
	default:
		printlnFn("Nothing here:", path)
	}
}

// dashboard prints a small landing summary: who is logged in and how many
// notifications are waiting.
func (a *App) dashboard(ctx context.Context) {
	u := a.session.CurrentUser()
	if u == nil {
		printlnFn("Dashboard.")
		return
	}
	printlnFn(fmt.Sprintf("Dashboard — %s (%s)", u.FullName, u.Role))
	if n, err := a.notifications.Unread(ctx); err == nil && n > 0 {
		printlnFn(fmt.Sprintf("You have %d unread notification(s).", n))
	}
}
