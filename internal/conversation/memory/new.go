// Package memory is an in-process conversation.Store bounded by size and idle time.
package memory

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"art-historian/internal/conversation"
)

const (
	DefaultMaxEntries = 10000
	DefaultTTL        = 24 * time.Hour
)

// Config bounds the store. Zero values select the defaults.
type Config struct {
	MaxEntries int
	TTL        time.Duration
}

type implStore struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, *conversation.Conversation]
	now   func() time.Time
}

// New creates an in-memory conversation store.
func New(cfg Config) *implStore {
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	return &implStore{
		cache: expirable.NewLRU[string, *conversation.Conversation](cfg.MaxEntries, nil, cfg.TTL),
		now:   time.Now,
	}
}
