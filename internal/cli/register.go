package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/aqikeeper/internal/common"
)

// Register runs the sign-up form. Field validation happens here, before
// the store is called.
func (a *App) Register(ctx context.Context) error {
	a.println("Create a New Account")

	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "Full Name", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	confirm, err := GetPassword(a.reader, "Confirm Password", a.out)
	if err != nil {
		return err
	}
	defer wipe(confirm)

	if email == "" || username == "" || name == "" || len(password) == 0 {
		a.println("All fields are required.")
		return common.ErrorValidation
	}

	if string(password) != string(confirm) {
		a.println("Passwords do not match!")
		return common.ErrPasswordMismatch
	}

	ok, err := a.store.Register(ctx, email, username, name, string(password))
	if err != nil {
		a.logger.Error(ctx, "register failed", "error", err)
		a.println("Registration is unavailable right now. Please try again later.")
		return err
	}
	if !ok {
		a.println("Email already exists. Please try a different E-mail id.")
		return common.ErrorAlreadyExists
	}

	a.println(fmt.Sprintf("User %s successfully registered! Please Login to get started", name))
	return nil
}
