package redis

import (
	"context"

	"routeopt/internal/domain/entity"
	"routeopt/internal/domain/service"
	"routeopt/internal/errors"

	goredis "github.com/redis/go-redis/v9"
)

// Hash fields written by the user sync for each client.
const (
	fieldAddress    = "address"
	fieldCity       = "city"
	fieldPostalCode = "postalCode"
	fieldRegion     = "region"
)

// ClientDirectory reads client address records from hashes at prefix+id.
type ClientDirectory struct {
	client *goredis.Client
	prefix string
}

// NewClientDirectory creates the Redis client directory
func NewClientDirectory(client *goredis.Client, prefix string) service.ClientDirectory {
	return &ClientDirectory{client: client, prefix: prefix}
}

// Lookup returns the client's address details or service.ErrClientNotFound
func (d *ClientDirectory) Lookup(ctx context.Context, clientID string) (*entity.ClientProfile, error) {
	fields, err := d.client.HGetAll(ctx, d.prefix+clientID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read client %s", clientID)
	}
	if len(fields) == 0 {
		return nil, errors.WithStack(service.ErrClientNotFound)
	}

	return &entity.ClientProfile{
		ID:         clientID,
		Address:    fields[fieldAddress],
		City:       fields[fieldCity],
		PostalCode: fields[fieldPostalCode],
		Region:     entity.Region(fields[fieldRegion]),
	}, nil
}
