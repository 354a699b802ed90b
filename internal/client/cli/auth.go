package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/taskhub/taskhub/internal/api"
	"github.com/taskhub/taskhub/internal/client/session"
)

func (a *App) register(ctx context.Context, _ []string) error {
	var req api.RegisterRequest
	var err error

	if req.Username, err = a.ask("Enter username"); err != nil {
		return err
	}
	if req.Email, err = a.ask("Enter email"); err != nil {
		return err
	}
	if req.Name, err = a.ask("Enter name (optional)"); err != nil {
		return err
	}
	if req.Password, err = a.askPassword(); err != nil {
		return err
	}

	token, err := a.client.Register(ctx, req)
	if err != nil {
		return err
	}

	if err := a.startSession(ctx, req.Username, token); err != nil {
		return err
	}
	a.printf("Registered and logged in as %s\n", req.Username)
	return nil
}

func (a *App) login(ctx context.Context, _ []string) error {
	userName, err := a.ask("Enter username")
	if err != nil {
		return err
	}
	password, err := a.askPassword()
	if err != nil {
		return err
	}

	token, err := a.client.Login(ctx, userName, password)
	if err != nil {
		return err
	}

	if err := a.startSession(ctx, userName, token); err != nil {
		return err
	}
	a.printf("Logged in as %s\n", userName)
	return nil
}

func (a *App) logout(ctx context.Context, _ []string) error {
	a.dropSession(ctx)
	a.printf("Logged out\n")
	return nil
}

func (a *App) deleteAccount(ctx context.Context, _ []string) error {
	answer, err := a.ask("This deletes your account with all tags and tasks. Type 'yes' to confirm")
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "yes") {
		a.printf("Cancelled\n")
		return nil
	}

	if err := a.client.DeleteAccount(ctx); err != nil {
		return err
	}
	a.dropSession(ctx)
	a.printf("Account deleted\n")
	return nil
}

func (a *App) startSession(ctx context.Context, userName, token string) error {
	a.client.SetToken(token)
	a.userName = userName
	return a.sessions.Save(ctx, session.Session{Username: userName, Token: token})
}

func (a *App) dropSession(ctx context.Context) {
	a.client.SetToken("")
	a.userName = ""
	if err := a.sessions.Clear(ctx); err != nil && !errors.Is(err, session.ErrNoSession) {
		a.printf("Error: %s\n", err)
	}
}
