package memory

import (
	"time"

	"activity-insights-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

const catalogKey = "template_catalog"

// TemplateCache keeps the enabled template catalog in memory. The catalog
// is small and changes rarely, so a short TTL is enough to pick up edits.
type TemplateCache struct {
	cache *cache.Cache
}

func NewTemplateCache(ttl time.Duration) *TemplateCache {
	c := cache.New(ttl, 2*ttl)
	return &TemplateCache{
		cache: c,
	}
}

func (r *TemplateCache) Get() ([]*entity.Template, bool) {
	if x, found := r.cache.Get(catalogKey); found {
		return x.([]*entity.Template), true
	}
	return nil, false
}

func (r *TemplateCache) Set(templates []*entity.Template) {
	r.cache.Set(catalogKey, templates, cache.DefaultExpiration)
}

func (r *TemplateCache) Invalidate() {
	r.cache.Delete(catalogKey)
}
