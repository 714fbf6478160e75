// Package imagecache caches image payloads in memory, keyed by the
// resolved request URL. There is no eviction: the cache is bounded by
// the process lifetime and the number of distinct images, which is
// acceptable for a single-session client. Concurrent fetches for the
// same id are not deduplicated; callers avoid issuing duplicates.
package imagecache

import (
	"context"
	"sync"

	"github.com/julianstephens/habits/internal/api"
)

type Cache struct {
	client *api.Client

	mu     sync.RWMutex
	images map[string][]byte
}

func New(client *api.Client) *Cache {
	return &Cache{
		client: client,
		images: make(map[string][]byte),
	}
}

// Get returns the cached image for an id, if present. It never
// performs network I/O.
func (c *Cache) Get(imageID string) ([]byte, bool) {
	key := c.client.URL(api.ImageRequest(imageID))

	c.mu.RLock()
	defer c.mu.RUnlock()
	img, ok := c.images[key]
	return img, ok
}

// Fetch retrieves the image over the network and stores it under the
// same resolved URL Get consults. Last writer wins.
func (c *Cache) Fetch(ctx context.Context, imageID string) ([]byte, error) {
	img, err := api.FetchImage(ctx, c.client, imageID)
	if err != nil {
		return nil, err
	}

	key := c.client.URL(api.ImageRequest(imageID))
	c.mu.Lock()
	c.images[key] = img
	c.mu.Unlock()

	return img, nil
}
