package scopenv

import (
	"fmt"
	"strings"
)

// Manager holds a schema parsed against a source. It is immutable once
// New returns and safe for concurrent use.
type Manager struct {
	schema   Schema
	scopes   Scopes
	scopeVar string
	scope    string
	hasScope bool
	enabled  bool
	data     Values
}

// New validates src against schema and returns a Manager holding the
// parsed values. Keys are processed in sorted order and the first
// failure aborts construction.
func New(schema Schema, src Source, opts ...Option) (*Manager, error) {
	m, logger, err := prepare(schema, src, opts)
	if err != nil {
		return nil, err
	}

	values := make(map[string]Value, len(m.schema))
	for _, name := range m.schema.Keys() {
		v, err := m.parse(name, src, logger)
		if err != nil {
			return nil, err
		}
		values[name] = v
	}
	m.data = Values{m: values}

	return m, nil
}

// Keys resolves the lookup key of every schema entry without reading or
// validating the values. It fails under the same scope conditions as New.
func Keys(schema Schema, src Source, opts ...Option) (map[string]string, error) {
	m, _, err := prepare(schema, src, opts)
	if err != nil {
		return nil, err
	}
	keys := make(map[string]string, len(m.schema))
	for name := range m.schema {
		keys[name] = m.Key(name)
	}
	return keys, nil
}

// prepare applies opts and determines the scope.
func prepare(schema Schema, src Source, opts []Option) (*Manager, Logger, error) {
	if src == nil {
		return nil, nil, &Error{Err: ErrInvalidSource}
	}

	o := &options{scopes: DefaultScopes(), scopeVar: ScopeVar}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = NewWriterLogger(nil)
	}

	m := &Manager{
		schema:   make(Schema, len(schema)),
		scopes:   o.scopes,
		scopeVar: o.scopeVar,
		enabled:  o.enableScopes,
	}
	for k, d := range schema {
		m.schema[k] = d
	}

	m.scope, m.hasScope = src.Lookup(o.scopeVar)

	if m.enabled && !m.hasScope {
		return nil, nil, &Error{
			Key: o.scopeVar,
			Err: fmt.Errorf("%w: set %s to one of: %s", ErrScopeUndetermined, o.scopeVar, strings.Join(m.scopes.Names(), ", ")),
		}
	}
	if m.enabled {
		o.logger.Printf("scopenv: scope %q, prefix %q", m.scope, m.scopes[m.scope])
	}

	return m, o.logger, nil
}

// MustNew is like New but panics on error.
func MustNew(schema Schema, src Source, opts ...Option) *Manager {
	m, err := New(schema, src, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Manager) parse(name string, src Source, logger Logger) (Value, error) {
	decl := m.schema[name]
	key := m.Key(name)

	raw, ok := src.Lookup(key)
	if !ok {
		if decl.IsRequired() {
			return Value{}, &Error{Key: key, Err: ErrMissing}
		}
		logger.Printf("scopenv: %s: not set", key)
		return Value{kind: decl.kind}, nil
	}

	v, err := parseValue(key, decl.kind, raw)
	if err != nil {
		return Value{}, err
	}

	if decl.check != nil {
		if err := decl.check(v); err != nil {
			return Value{}, validationError(key, err)
		}
	}

	logger.Printf("scopenv: %s: loaded %s", key, decl.kind)
	return v, nil
}

// Data returns the parsed values.
func (m *Manager) Data() Values {
	return m.data
}

// Schema returns a copy of the schema the manager was built from.
func (m *Manager) Schema() Schema {
	s := make(Schema, len(m.schema))
	for k, d := range m.schema {
		s[k] = d
	}
	return s
}

// Scope returns the value of the scope selector and whether it was set.
// It is read even when scopes are disabled.
func (m *Manager) Scope() (string, bool) {
	return m.scope, m.hasScope
}

// Key returns the source key name is read from: the scope prefix, an
// underscore and name when scopes are enabled, name otherwise.
func (m *Manager) Key(name string) string {
	if m.enabled && m.hasScope {
		return m.scopes.Key(m.scope, name)
	}
	return name
}
