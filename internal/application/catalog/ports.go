package catalog

// Cache caché explícita delante de Lookup. La implementación vive en infrastructure/cache.
type Cache interface {
	Get(code string) (string, bool)
	Set(code, description string)
	Invalidate(codes ...string)
	Purge()
}
