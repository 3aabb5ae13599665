package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/librivault/librivault-cli/internal/client/models"
	"github.com/librivault/librivault-cli/internal/client/routes"
	"github.com/librivault/librivault-cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// promptText and promptPassword report read failures to the user before
// returning them; the REPL drops handler errors on the floor, so an
// unprinted prompt error would be a silent no-op.
func (a *App) promptText(prompt string) (string, error) {
	s, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		printlnFn("Input error:", err.Error())
	}
	return s, err
}

func (a *App) promptPassword(prompt string) ([]byte, error) {
	pw, err := getPassword(os.Stdout, prompt)
	if err != nil {
		printlnFn("Input error:", err.Error())
	}
	return pw, err
}

// accountAPI is the profile slice of the API client the shell uses
// directly, bypassing the session.
type accountAPI interface {
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error
}

// Register prompts for the account details and creates a new account.
// A successful registration logs the user in immediately. The password
// byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := a.promptText("Enter email")
	if err != nil {
		return err
	}
	firstName, err := a.promptText("Enter first name")
	if err != nil {
		return err
	}
	lastName, err := a.promptText("Enter last name")
	if err != nil {
		return err
	}
	password, err := a.promptPassword("Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.session.Register(ctx, models.RegisterRequest{
		Email:     email,
		Password:  string(password),
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", user.FullName))
	a.afterLogin(ctx)
	return nil
}

// Login prompts for credentials and authenticates. On success the shell
// resumes the screen a denied navigation wanted, if one is pending.
// The password is wiped before returning; API failures have already been
// reported through the notifier, so they are not printed again here.
func (a *App) Login(ctx context.Context) error {
	email, err := a.promptText("Enter email")
	if err != nil {
		return err
	}
	password, err := a.promptPassword("Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.session.Login(ctx, models.LoginRequest{
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Welcome back, %s!", user.FullName))
	a.afterLogin(ctx)
	return nil
}

// afterLogin resumes a pending navigation or lands on the dashboard.
func (a *App) afterLogin(ctx context.Context) {
	target := a.returnTo
	a.returnTo = ""
	if target == "" {
		target = routes.PathDashboard
	}
	a.Navigate(ctx, target)
}

// Logout drops the session locally. No server call is made; the token is
// simply discarded and the screen returns home.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.notifications.Reset()
	a.returnTo = ""
	a.currentPath = routes.PathHome
	printlnFn("Logged out.")
	return nil
}

// Whoami prints the cached profile of the current user.
func (a *App) Whoami(ctx context.Context) error {
	u := a.session.CurrentUser()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s>", u.FullName, u.Email))
	printlnFn(fmt.Sprintf("Role: %s, credits: %d", u.Role, u.ReaderCredits))
	return nil
}

// EditProfile prompts for new profile fields; an empty answer keeps the
// current value. The session profile is reloaded afterwards.
func (a *App) EditProfile(ctx context.Context) error {
	u := a.session.CurrentUser()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}

	firstName, err := a.promptText(fmt.Sprintf("First name [%s]", u.FirstName))
	if err != nil {
		return err
	}
	lastName, err := a.promptText(fmt.Sprintf("Last name [%s]", u.LastName))
	if err != nil {
		return err
	}
	email, err := a.promptText(fmt.Sprintf("Email [%s]", u.Email))
	if err != nil {
		return err
	}

	req := models.UpdateProfileRequest{FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
	if firstName != "" {
		req.FirstName = firstName
	}
	if lastName != "" {
		req.LastName = lastName
	}
	if email != "" {
		req.Email = email
	}

	if _, err := a.account.UpdateProfile(ctx, req); err != nil {
		return err
	}
	if err := a.session.ReloadProfile(ctx); err != nil {
		a.log.Warn(ctx, "profile reload after update failed", "error", err)
	}
	printlnFn("Profile updated.")
	return nil
}

// ChangePassword prompts for the current and a new password. Both byte
// slices are wiped before returning.
func (a *App) ChangePassword(ctx context.Context) error {
	if a.session.CurrentUser() == nil {
		printlnFn("Not logged in.")
		return nil
	}

	current, err := a.promptPassword("Current password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	next, err := a.promptPassword("New password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)

	err = a.account.ChangePassword(ctx, models.ChangePasswordRequest{
		CurrentPassword: string(current),
		NewPassword:     string(next),
	})
	if err != nil {
		return err
	}
	printlnFn("Password changed.")
	return nil
}

// Refresh renews the bearer token. A failed renewal keeps the current
// session; the token simply runs out on its own schedule.
func (a *App) Refresh(ctx context.Context) error {
	if _, err := a.session.RefreshToken(ctx); err != nil {
		return err
	}
	printlnFn("Session renewed.")
	return nil
}
