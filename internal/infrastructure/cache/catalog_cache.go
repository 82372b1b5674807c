// Package cache contiene la caché explícita del catálogo. Se coloca delante de Lookup y
// se invalida en cada escritura; nunca es estado global.
package cache

import (
	"sync"
	"sync/atomic"
)

// CatalogCache caché en memoria código → descripción. Guarda también los códigos
// ausentes (descripción vacía) hasta la próxima invalidación.
type CatalogCache struct {
	mu      sync.RWMutex
	entries map[string]string

	hits   int64
	misses int64
}

// NewCatalogCache construye una caché vacía.
func NewCatalogCache() *CatalogCache {
	return &CatalogCache{entries: make(map[string]string)}
}

// Get devuelve la descripción cacheada y si estaba presente.
func (c *CatalogCache) Get(code string) (string, bool) {
	c.mu.RLock()
	desc, ok := c.entries[code]
	c.mu.RUnlock()
	if ok {
		atomic.AddInt64(&c.hits, 1)
	} else {
		atomic.AddInt64(&c.misses, 1)
	}
	return desc, ok
}

// Set guarda el resultado de una búsqueda.
func (c *CatalogCache) Set(code, description string) {
	c.mu.Lock()
	c.entries[code] = description
	c.mu.Unlock()
}

// Invalidate descarta los códigos dados.
func (c *CatalogCache) Invalidate(codes ...string) {
	c.mu.Lock()
	for _, code := range codes {
		delete(c.entries, code)
	}
	c.mu.Unlock()
}

// Purge vacía la caché (reemplazo total del catálogo).
func (c *CatalogCache) Purge() {
	c.mu.Lock()
	c.entries = make(map[string]string)
	c.mu.Unlock()
}

// Stats aciertos y fallos acumulados.
func (c *CatalogCache) Stats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}
