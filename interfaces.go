package scopenv

// Source is a read-only origin of raw values, such as the process
// environment or a fixed map.
type Source interface {
	// Lookup returns the raw value for key and whether it is present.
	Lookup(key string) (string, bool)
}

// SourceFunc adapts a lookup function to Source.
type SourceFunc func(key string) (string, bool)

func (f SourceFunc) Lookup(key string) (string, bool) { return f(key) }
