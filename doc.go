// Package scopenv validates flat string configuration, such as environment
// variables, against a declared schema and exposes the parsed values.
//
// Basic usage:
//
//	schema := scopenv.Schema{
//	    "PORT":         scopenv.Number(),
//	    "DATABASE_URL": scopenv.String().Secret(),
//	    "DEBUG":        scopenv.Bool().Optional(),
//	}
//
//	m, err := scopenv.New(schema, scopenv.Env())
//	port, _ := m.Data().Number("PORT")
//
// Every variable is required unless marked Optional. Parsing happens once,
// inside New; the first missing or malformed variable is returned as an
// *Error naming the key that was read.
//
// # Kinds
//
//   - String(checks...) - the raw value, unchanged
//   - Number(checks...) - decimal or scientific notation, as float64
//   - Bool(checks...)   - exactly "true", "false", "1" or "0"
//
// Checks receive the parsed value. Returning ErrRejected (see Predicate)
// fails with a generic message; any other error becomes the message.
//
// # Scopes
//
// With WithScopes(true), the NODE_ENV variable selects a scope and every
// lookup is prefixed with that scope's name and an underscore:
//
//	development -> DEV_    production -> PROD_
//	test        -> TEST_   staging    -> STAGE_
//
// Entries can be overridden or added with WithScope or WithScopeTable:
//
//	m, err := scopenv.New(schema, scopenv.Env(),
//	    scopenv.WithScopes(true),
//	    scopenv.WithScope("production", "LIVE"), // LIVE_PORT
//	)
//
// # Binding
//
// Bind copies parsed values into a struct:
//
//	type Config struct {
//	    Port        int
//	    DatabaseURL string
//	    Debug       *bool
//	}
//
//	cfg, err := scopenv.Bind[Config](m.Data())
package scopenv
