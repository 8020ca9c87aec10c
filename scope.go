package scopenv

import "sort"

// ScopeVar is the source key that selects the current scope.
const ScopeVar = "NODE_ENV"

// Scopes maps a scope name to the prefix prepended to every lookup key
// while that scope is active. Prefixes carry no trailing separator.
type Scopes map[string]string

// DefaultScopes returns a new copy of the built-in scope table.
func DefaultScopes() Scopes {
	return Scopes{
		"development": "DEV",
		"production":  "PROD",
		"test":        "TEST",
		"staging":     "STAGE",
	}
}

// Merge returns a new table holding s overlaid with overrides. Neither
// input is modified.
func (s Scopes) Merge(overrides Scopes) Scopes {
	out := make(Scopes, len(s)+len(overrides))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// Names returns the scope names, sorted.
func (s Scopes) Names() []string {
	names := make([]string, 0, len(s))
	for k := range s {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Key returns the lookup key for name under scope. An empty prefix still
// gets the separator, so "" and "PORT" give "_PORT".
func (s Scopes) Key(scope, name string) string {
	return s[scope] + "_" + name
}
