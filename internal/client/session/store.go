// Package session persists the client's authenticated session: the opaque
// bearer token and the last-known footprint breakdown. Both survive restarts
// and are cleared only by explicit logout.
package session

import (
	"context"

	"github.com/asaraswat/ecotrackify/internal/client/models"
)

// Store is the durable session slot. It is passed explicitly to whatever
// needs it; nothing in the client reads session state from ambient globals.
//
// Absence is expressed as the zero value: an empty token, a nil breakdown.
// Writes replace whole values, so reads never observe partial state.
type Store interface {
	// SetToken stores the bearer token, replacing any previous one.
	SetToken(ctx context.Context, token string) error

	// Token returns the stored token, or "" when none is set.
	Token(ctx context.Context) (string, error)

	// ClearToken removes the stored token.
	ClearToken(ctx context.Context) error

	// StartSession atomically stores a freshly issued token and drops any
	// breakdown cached by a previous session.
	StartSession(ctx context.Context, token string) error

	// CacheFootprint stores the breakdown verbatim, replacing any previous one.
	CacheFootprint(ctx context.Context, b *models.Breakdown) error

	// CachedFootprint returns the cached breakdown, or nil when none is set.
	CachedFootprint(ctx context.Context) (*models.Breakdown, error)

	// Clear wipes the whole session (token and cached breakdown).
	Clear(ctx context.Context) error
}
