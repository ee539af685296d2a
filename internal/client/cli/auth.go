package cli

import (
	"context"
	"os"
	"time"

	"github.com/facturadash/facturadash/internal/client/models"
	"github.com/facturadash/facturadash/internal/client/session"
	"github.com/facturadash/facturadash/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates through the session
// manager. Failures are reported to the user, not returned; the session
// manager converts them to a readable message.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.session.Login(ctx, email, string(password))
	if msg := a.session.Err(); msg != "" {
		printlnFn("Login failed:", msg)
		a.session.ClearError()
		return nil
	}

	printlnFn("Logged in as", a.session.User().FullName())
	return nil
}

// Register prompts for account and company details and creates an account.
// On success the returned session is adopted, same as Login.
func (a *App) Register(ctx context.Context) error {
	reg := models.Registration{}

	prompts := []struct {
		label string
		dst   *string
	}{
		{"Enter first name", &reg.FirstName},
		{"Enter last name", &reg.LastName},
		{"Enter email", &reg.Email},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.label, os.Stdout)
		if err != nil {
			return err
		}
		*p.dst = v
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	reg.Password = string(password)

	companyPrompts := []struct {
		label string
		dst   *string
	}{
		{"Enter company name", &reg.CompanyName},
		{"Enter company RUC (11 digits)", &reg.CompanyRUC},
	}
	for _, p := range companyPrompts {
		v, err := getSimpleText(a.reader, p.label, os.Stdout)
		if err != nil {
			return err
		}
		*p.dst = v
	}

	a.session.Register(ctx, reg)
	if msg := a.session.Err(); msg != "" {
		printlnFn("Registration failed:", msg)
		a.session.ClearError()
		return nil
	}

	printlnFn("Account created, logged in as", a.session.User().FullName())
	return nil
}

// Logout tells the backend best-effort and always drops the local session.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Logged out")
	return nil
}

// WhoAmI shows the current identity and, when the credential is a JWT,
// its expiry.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		printlnFn("Not logged in")
		return nil
	}

	printlnFn("Name: ", u.FullName())
	printlnFn("Email:", u.Email)
	printlnFn("Role: ", string(u.Role))
	if exp, ok := session.TokenExpiry(a.session.Token()); ok {
		printlnFn("Token expires:", exp.Format(time.RFC3339))
	}
	return nil
}
