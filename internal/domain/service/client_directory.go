package service

import (
	"context"

	"routeopt/internal/domain/entity"
	"routeopt/internal/errors"
)

// ErrClientNotFound is returned when the directory has no record for a client.
var ErrClientNotFound = errors.New("client not found")

// ClientDirectory looks up the address details of an order's client.
type ClientDirectory interface {
	Lookup(ctx context.Context, clientID string) (*entity.ClientProfile, error)
}
