package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/aqikeeper/internal/common"
)

func (a *App) Login(ctx context.Context) error {
	a.println("Login to Your Account")

	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	profile, err := a.store.Authenticate(ctx, email, string(password))
	if err != nil {
		a.logger.Error(ctx, "login failed", "error", err)
		a.println("Login is unavailable right now. Please try again later.")
		return err
	}
	if profile == nil {
		a.println("Invalid email or password.")
		return common.ErrInvalidCredentials
	}

	a.session = Session{LoggedIn: true, Profile: *profile}
	a.println(fmt.Sprintf("%s, You are successfully logged in!", profile.Name))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.logger.Info(ctx, "logged out", "email", a.session.Profile.Email)
	a.session = Session{}
	a.println("Logged out.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	a.println("Name: " + a.session.Profile.Name)
	a.println("Email: " + a.session.Profile.Email)
	return nil
}
