// Package api is the client's gateway to the Eco-Trackify REST backend.
//
// The gateway issues the four logical calls the application needs (login,
// register, submit footprint, list/add tips), attaches the bearer token where
// one is required, and decodes the JSON payloads. It performs no retries and
// touches no storage; callers decide what to persist.
package api

import (
	"context"

	"github.com/asaraswat/ecotrackify/internal/client/models"
)

// Client is the remote backend as seen by the application services.
type Client interface {
	// Login exchanges credentials for a bearer token. The backend signals
	// success with an exact marker message; anything else is a failure even
	// on HTTP 200.
	Login(ctx context.Context, email, password string) (string, error)

	// Register creates an account and returns the issued bearer token.
	Register(ctx context.Context, email, password, passwordConfirm string) (string, error)

	// SubmitFootprint sends the three estimated figures and returns the
	// backend-computed breakdown.
	SubmitFootprint(ctx context.Context, values models.FootprintValues, token string) (*models.Breakdown, error)

	// ListTips returns the community tips in server order.
	ListTips(ctx context.Context, token string) ([]models.Tip, error)

	// AddTip submits one tip message and returns the stored record.
	AddTip(ctx context.Context, message, token string) (*models.Tip, error)
}
