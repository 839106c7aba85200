// Package services contains the application services of the Eco-Trackify
// client. They sit between the views and the API gateway: the gateway only
// talks to the network, services decide what gets persisted in the session.
package services

import (
	"context"
	"fmt"

	"github.com/asaraswat/ecotrackify/internal/client/api"
	"github.com/asaraswat/ecotrackify/internal/client/session"
)

// AuthService handles login, signup and logout.
//
// Contract:
//   - Login: authenticate and start a fresh session; any breakdown cached
//     before the login is dropped, since it may belong to another account.
//   - Register: create an account; the issued token is persisted but the
//     caller decides where to navigate afterwards.
//   - Logout: wipe the whole session (token and cached breakdown).
type AuthService interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, email, password, passwordConfirm string) error
	Logout(ctx context.Context) error
}

type authService struct {
	client api.Client
	store  session.Store
}

// NewAuthService constructs an AuthService bound to the given gateway and store.
func NewAuthService(client api.Client, store session.Store) AuthService {
	return &authService{client: client, store: store}
}

func (a *authService) Login(ctx context.Context, email, password string) error {
	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	if err := a.store.StartSession(ctx, token); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	return nil
}

func (a *authService) Register(ctx context.Context, email, password, passwordConfirm string) error {
	token, err := a.client.Register(ctx, email, password, passwordConfirm)
	if err != nil {
		return fmt.Errorf("register error: %w", err)
	}

	if err := a.store.SetToken(ctx, token); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}
