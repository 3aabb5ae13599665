package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	EditProfile(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	Refresh(ctx context.Context) error
	Go(ctx context.Context, args []string) error
	Books(ctx context.Context, args []string) error
	ShowBook(ctx context.Context, args []string) error
	SearchBooks(ctx context.Context) error
	Borrow(ctx context.Context, args []string) error
	Loans(ctx context.Context) error
	Requests(ctx context.Context) error
	ReturnBook(ctx context.Context, args []string) error
	Fines(ctx context.Context) error
	PayFine(ctx context.Context, args []string) error
	Notifications(ctx context.Context) error
	MarkRead(ctx context.Context, args []string) error
	Plans(ctx context.Context) error
	MySubscription(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the LibriVault CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - go <path>      — navigate to a screen
//	  - books [page]   — browse the catalog
//	  - book <id>      — show one book
//	  - search         — search the catalog (interactive)
//	  - exit | quit    — leave the program
//
//	Logged in, additionally:
//	  - whoami         — show the current profile
//	  - profile        — edit the profile
//	  - passwd         — change the password
//	  - borrow <id>    — request a book
//	  - loans          — list active and past loans
//	  - requests       — list borrow requests
//	  - return <id>    — return a borrowed book
//	  - fines          — list fines
//	  - payfine <id>   — pay a fine
//	  - notifications  — list notifications
//	  - read <id>      — mark a notification read
//	  - plans          — list subscription plans
//	  - subscription   — show the current subscription
//	  - refresh        — renew the session token
//	  - logout         — log out
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("lv> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, profile, passwd, go <path>, books, book <id>, search, borrow <id>, loans, requests, return <id>, fines, payfine <id>, notifications, read <id>, plans, subscription, refresh, logout, exit")
			} else {
				printlnFn("Available commands: register, login, go <path>, books, book <id>, search, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "profile":
			_ = a.EditProfile(ctx)

		case "passwd":
			_ = a.ChangePassword(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "go":
			_ = a.Go(ctx, args)

		case "b", "books":
			_ = a.Books(ctx, args)

		case "book":
			_ = a.ShowBook(ctx, args)

		case "search":
			_ = a.SearchBooks(ctx)

		case "borrow":
			_ = a.Borrow(ctx, args)

		case "loans":
			_ = a.Loans(ctx)

		case "requests":
			_ = a.Requests(ctx)

		case "return":
			_ = a.ReturnBook(ctx, args)

		case "fines":
			_ = a.Fines(ctx)

		case "payfine":
			_ = a.PayFine(ctx, args)

		case "n", "notifications":
			_ = a.Notifications(ctx)

		case "read":
			_ = a.MarkRead(ctx, args)

		case "plans":
			_ = a.Plans(ctx)

		case "subscription":
			_ = a.MySubscription(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// argID parses the single numeric argument commands like "book 12" carry.
func argID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly one numeric argument")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %s", args[0])
	}
	return id, nil
}
