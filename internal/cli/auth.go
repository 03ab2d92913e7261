package cli

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"github.com/MajhiMohit/fsd-16-project/internal/access"
	"github.com/MajhiMohit/fsd-16-project/internal/models"
	"github.com/MajhiMohit/fsd-16-project/internal/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates against the directory.
// On success the user lands on their role's home page.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}

	role, err := a.session.Login(ctx, email, password)
	if err != nil {
		log.Printf("Login failed: %s", err.Error())
		return err
	}

	printlnFn("Welcome back!")
	a.navigate(ctx, access.HomeFor(role))
	return nil
}

// Register prompts for the registration form, creates the account, and
// logs straight in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Full name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	roleText, err := getSimpleText(a.reader, "Role (visitor/artist/curator/admin, default visitor)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Password")
	if err != nil {
		return err
	}
	confirm, err := getPassword(os.Stdout, "Confirm password")
	if err != nil {
		return err
	}

	role, err := a.session.Register(ctx, session.RegisterParams{
		Name:     name,
		Email:    email,
		Password: password,
		Confirm:  confirm,
		Role:     models.Role(strings.ToLower(strings.TrimSpace(roleText))),
	})
	if err != nil {
		log.Printf("Registration failed: %s", err.Error())
		return err
	}

	printlnFn("Account created!")
	a.navigate(ctx, access.HomeFor(role))
	return nil
}

// Logout clears the current user. The wishlist and purchase history stay
// behind for the next login.
func (a *App) Logout(ctx context.Context) error {
	if !a.session.IsAuthenticated() {
		printlnFn("Not logged in.")
		return nil
	}
	a.session.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}

// Whoami shows the current user record.
func (a *App) Whoami(ctx context.Context) error {
	u, ok := a.session.CurrentUser()
	if !ok {
		printlnFn("Not logged in.")
		return errors.New("not logged in")
	}
	printlnFn(u.Name, "<"+u.Email+">", "—", u.Role.String())
	return nil
}
