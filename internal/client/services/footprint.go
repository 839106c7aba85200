package services

import (
	"context"
	"fmt"

	"github.com/asaraswat/ecotrackify/internal/client/api"
	"github.com/asaraswat/ecotrackify/internal/client/models"
	"github.com/asaraswat/ecotrackify/internal/client/session"
)

// FootprintService submits footprint estimates and serves the cached
// breakdown so the chart can render before any new submission.
type FootprintService interface {
	// Submit sends the values with the stored token and, on success,
	// replaces the cached breakdown wholesale.
	Submit(ctx context.Context, values models.FootprintValues) (*models.Breakdown, error)

	// Cached returns the last stored breakdown, or nil when none exists.
	Cached(ctx context.Context) (*models.Breakdown, error)
}

type footprintService struct {
	client api.Client
	store  session.Store
}

// NewFootprintService constructs a FootprintService bound to the given
// gateway and session store.
func NewFootprintService(client api.Client, store session.Store) FootprintService {
	return &footprintService{client: client, store: store}
}

func (f *footprintService) Submit(ctx context.Context, values models.FootprintValues) (*models.Breakdown, error) {
	token, err := f.store.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("session read error: %w", err)
	}

	breakdown, err := f.client.SubmitFootprint(ctx, values, token)
	if err != nil {
		return nil, fmt.Errorf("footprint submission error: %w", err)
	}

	if err := f.store.CacheFootprint(ctx, breakdown); err != nil {
		return nil, fmt.Errorf("breakdown caching error: %w", err)
	}
	return breakdown, nil
}

func (f *footprintService) Cached(ctx context.Context) (*models.Breakdown, error) {
	return f.store.CachedFootprint(ctx)
}
