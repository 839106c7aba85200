package services

import (
	"context"
	"fmt"

	"github.com/asaraswat/ecotrackify/internal/client/api"
	"github.com/asaraswat/ecotrackify/internal/client/models"
	"github.com/asaraswat/ecotrackify/internal/client/session"
)

// TipService reads and appends community eco tips. The list is append-only
// from the client's perspective; ordering is whatever the server returns.
type TipService interface {
	List(ctx context.Context) ([]models.Tip, error)
	Add(ctx context.Context, message string) (*models.Tip, error)
}

type tipService struct {
	client api.Client
	store  session.Store
}

// NewTipService constructs a TipService bound to the given gateway and store.
func NewTipService(client api.Client, store session.Store) TipService {
	return &tipService{client: client, store: store}
}

func (t *tipService) List(ctx context.Context) ([]models.Tip, error) {
	token, err := t.store.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("session read error: %w", err)
	}
	return t.client.ListTips(ctx, token)
}

func (t *tipService) Add(ctx context.Context, message string) (*models.Tip, error) {
	token, err := t.store.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("session read error: %w", err)
	}
	return t.client.AddTip(ctx, message, token)
}
