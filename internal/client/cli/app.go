// Package cli is the terminal shell of the LibriVault client: a REPL whose
// screens map onto the navigable routes, with every navigation passing
// through the route guard and every API call through the request gate.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/librivault/librivault-cli/internal/client/api"
	"github.com/librivault/librivault-cli/internal/client/config"
	"github.com/librivault/librivault-cli/internal/client/routes"
	"github.com/librivault/librivault-cli/internal/client/services"
	"github.com/librivault/librivault-cli/internal/client/session"
	"github.com/librivault/librivault-cli/internal/client/tokenstore"
	"github.com/librivault/librivault-cli/internal/logging"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	account accountAPI
	session *session.Session
	guard   *routes.Guard

	books         *services.BookService
	borrows       *services.BorrowService
	notifications *services.NotificationService
	subscriptions *services.SubscriptionService

	reader *bufio.Reader

	// currentPath is the screen being shown; returnTo remembers where a
	// denied navigation wanted to go so login can resume there.
	currentPath string
	returnTo    string
}

// NewApp wires the client together: local store, API client, session,
// route guard and domain services. A local database that cannot be opened
// degrades to the no-op token store; the session then simply starts
// Anonymous each run.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) *App {
	a := &App{
		config:      c,
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
		currentPath: routes.PathHome,
	}

	var store tokenstore.Store
	if db, err := tokenstore.OpenDatabase(ctx, c.DatabaseFile); err != nil {
		log.Warn(ctx, "local store unavailable, session will not persist", "error", err)
		store = tokenstore.NewNoopStore()
	} else {
		store = tokenstore.NewSQLiteStore(db, log)
	}

	client := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, a, a, log)
	a.session = session.New(store, client, log)
	client.Bind(a.session)

	a.account = client
	a.guard = routes.NewGuard(routes.Table(), a.session)
	a.books = services.NewBookService(client)
	a.borrows = services.NewBorrowService(client)
	a.notifications = services.NewNotificationService(client)
	a.subscriptions = services.NewSubscriptionService(client)

	return a
}

// Run restores the session and enters the REPL.
func (a *App) Run(ctx context.Context) {
	a.session.Init(ctx)
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

// Notify implements api.Notifier: the CLI's stand-in for a toast.
func (a *App) Notify(ctx context.Context, message string) {
	printlnFn("! " + message)
}

// NavigateTo implements api.Navigator: the gate redirects an expired
// session to the login screen through here.
func (a *App) NavigateTo(ctx context.Context, path string) {
	a.currentPath = path
	if path == routes.PathLogin {
		printlnFn("Session expired, please log in again.")
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// status renders the prompt decoration, e.g. "(r@example.com READER /books)".
func (a *App) status() string {
	s := a.currentPath
	if u := a.session.CurrentUser(); u != nil {
		s = fmt.Sprintf("%s %s %s", u.Email, u.Role, a.currentPath)
	}
	return fmt.Sprintf("(%s)", s)
}
