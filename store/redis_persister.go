package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"storefront/models"
)

// RedisPersister mirrors the cart to a Redis key. Used instead of the file
// persister when the storefront runs more than one instance.
type RedisPersister struct {
	client *redis.Client
	key    string
}

func NewRedisPersister(client *redis.Client, key string) *RedisPersister {
	return &RedisPersister{client: client, key: key}
}

func (p *RedisPersister) Load() ([]models.CartEntry, error) {
	data, err := p.client.Get(context.Background(), p.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var entries []models.CartEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (p *RedisPersister) Save(entries []models.CartEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return p.client.Set(context.Background(), p.key, data, 0).Err()
}
