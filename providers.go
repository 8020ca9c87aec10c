package scopenv

import "os"

// ============================================================================
// Environment Source
// ============================================================================

type envSource struct{}

// Env returns a source that reads from the process environment.
func Env() Source {
	return envSource{}
}

func (envSource) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// ============================================================================
// Map Source
// ============================================================================

type mapSource struct {
	values map[string]string
}

// Map returns a source backed by a copy of values.
func Map(values map[string]string) Source {
	m := make(map[string]string, len(values))
	for k, v := range values {
		m[k] = v
	}
	return mapSource{values: m}
}

func (p mapSource) Lookup(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// ============================================================================
// Chained Source
// ============================================================================

type chainSource []Source

// Chain returns a source that asks each source in order and returns the
// first hit. Nil sources are skipped.
func Chain(sources ...Source) Source {
	c := make(chainSource, 0, len(sources))
	for _, s := range sources {
		if s != nil {
			c = append(c, s)
		}
	}
	return c
}

func (c chainSource) Lookup(key string) (string, bool) {
	for _, s := range c {
		if v, ok := s.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}
