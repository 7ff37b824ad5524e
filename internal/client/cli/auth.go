package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/reflecta/internal/client/models"
	"github.com/dmitrijs2005/reflecta/internal/common"
)

// Signup switches to the signup form, prompts for every field and creates
// the account. On success the user still has to log in.
func (a *App) Signup(ctx context.Context) error {
	if a.store.Mode() != models.AuthModeSignup {
		a.store.ToggleMode()
	}

	for _, f := range []struct{ field, prompt string }{
		{models.FieldFirstName, "Enter first name"},
		{models.FieldLastName, "Enter last name"},
		{models.FieldEmail, "Enter email"},
	} {
		if err := a.promptField(f.field, f.prompt); err != nil {
			return err
		}
	}
	if err := a.promptSecret(models.FieldPassword, "Enter password"); err != nil {
		return err
	}
	if err := a.promptSecret(models.FieldConfirmPassword, "Confirm password"); err != nil {
		return err
	}

	if err := a.store.SignUp(ctx); err != nil {
		a.printFormError()
		return err
	}

	fmt.Fprintln(a.out, "Signup successful. Please login now.")
	return nil
}

// Login switches to the login form, prompts for credentials and opens the
// journal for the authenticated user.
func (a *App) Login(ctx context.Context) error {
	if a.store.Mode() != models.AuthModeLogin {
		a.store.ToggleMode()
	}

	if err := a.promptField(models.FieldEmail, "Enter email"); err != nil {
		return err
	}
	if err := a.promptSecret(models.FieldPassword, "Enter password"); err != nil {
		return err
	}

	id, err := a.store.LogIn(ctx)
	if err != nil {
		a.printFormError()
		return err
	}

	a.startJournal(ctx, id)
	return nil
}

// ToggleMode flips between the login and signup forms.
func (a *App) ToggleMode(_ context.Context) error {
	switch a.store.ToggleMode() {
	case models.AuthModeSignup:
		fmt.Fprintln(a.out, "Signup form selected. Type 'signup' to create an account.")
	default:
		fmt.Fprintln(a.out, "Login form selected. Type 'login' to sign in.")
	}
	return nil
}

// Logout forgets the persisted session, drops all journal state and hides
// the previous user's notification.
func (a *App) Logout(ctx context.Context) error {
	a.endSession(ctx)
	a.notifier.Dismiss()
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) promptField(field, prompt string) error {
	value, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	return a.store.Edit(field, value)
}

func (a *App) promptSecret(field, prompt string) error {
	secret, err := getPassword(prompt, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(secret)

	return a.store.Edit(field, string(secret))
}

func (a *App) printFormError() {
	if msg := a.store.FormError(); msg != "" {
		_, _ = errorColor.Fprintln(a.out, msg)
	}
}
