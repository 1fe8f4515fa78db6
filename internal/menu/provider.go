package menu

import (
	"sync"
	"time"
)

// Provider hands out the catalog valid for a given moment. The weekday
// specials (Rippchen-Tag, Schnitzel-Tag) make a built catalog valid only for
// the calendar day it was resolved against, so the provider rebuilds it when
// the date changes instead of holding one catalog for the process lifetime.
type Provider struct {
	mu      sync.Mutex
	day     string
	catalog *Catalog
}

func NewProvider() *Provider {
	return &Provider{}
}

// Catalog returns the catalog for now, rebuilding on day change.
func (p *Provider) Catalog(now time.Time) *Catalog {
	day := now.Format("2006-01-02")

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.catalog == nil || p.day != day {
		p.catalog = NewCatalog(now)
		p.day = day
	}
	return p.catalog
}
