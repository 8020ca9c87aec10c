package scopenv

// Option configures a Manager.
type Option func(*options)

type options struct {
	enableScopes bool
	scopes       Scopes
	scopeVar     string
	logger       Logger
}

// Config is the declarative form of the scope options.
type Config struct {
	// EnableScopes turns on scope prefixing. Defaults to false.
	EnableScopes bool
	// Scopes overrides or extends the default scope table by name.
	Scopes Scopes
}

// WithConfig applies cfg.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.enableScopes = cfg.EnableScopes
		o.scopes = o.scopes.Merge(cfg.Scopes)
	}
}

// WithScopes enables or disables scope prefixing.
// Example: with NODE_ENV=production, "Port" is read from "PROD_PORT".
func WithScopes(enable bool) Option {
	return func(o *options) {
		o.enableScopes = enable
	}
}

// WithScope sets the prefix used for one scope.
func WithScope(name, prefix string) Option {
	return func(o *options) {
		o.scopes = o.scopes.Merge(Scopes{name: prefix})
	}
}

// WithScopeTable merges table into the scope table.
func WithScopeTable(table Scopes) Option {
	return func(o *options) {
		o.scopes = o.scopes.Merge(table)
	}
}

// WithScopeVar changes the key that selects the scope (default: NODE_ENV).
func WithScopeVar(key string) Option {
	return func(o *options) {
		o.scopeVar = key
	}
}

// WithLogger sets where construction details are logged (default: discarded).
func WithLogger(l Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
