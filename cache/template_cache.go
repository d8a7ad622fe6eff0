package cache

import (
	"github.com/Konsultn-Engineering/sqltpl/utils"
	lru "github.com/hashicorp/golang-lru/v2"
)

type entry[T any] struct {
	text    string
	payload T
}

// TemplateCache keeps the scanned form of recently seen templates.
// Entries are keyed by fingerprint and verified against the template text,
// so a fingerprint collision reads as a miss.
type TemplateCache[T any] struct {
	cache *lru.Cache[uint64, entry[T]]
}

func NewTemplateCache[T any](size int) (*TemplateCache[T], error) {
	c, err := lru.New[uint64, entry[T]](size)
	if err != nil {
		return nil, err
	}
	return &TemplateCache[T]{cache: c}, nil
}

func (c *TemplateCache[T]) Get(template string) (T, bool) {
	e, ok := c.cache.Get(utils.FingerprintString(template))
	if !ok || e.text != template {
		var zero T
		return zero, false
	}
	return e.payload, true
}

// Add stores payload for template. The payload must not be mutated afterwards.
func (c *TemplateCache[T]) Add(template string, payload T) {
	c.cache.Add(utils.FingerprintString(template), entry[T]{text: template, payload: payload})
}

func (c *TemplateCache[T]) Len() int {
	return c.cache.Len()
}

func (c *TemplateCache[T]) Purge() {
	c.cache.Purge()
}
