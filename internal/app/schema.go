package app

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/nicolasmmb/scopenv"
	"github.com/nicolasmmb/scopenv/internal/constants"
	"github.com/nicolasmmb/scopenv/internal/schemafile"
)

// SchemaConfig holds the flags shared by commands that work on a schema.
type SchemaConfig struct {
	Schema   string
	Scopes   bool
	Scope    cli.StringSlice
	ScopeVar string
}

// Source is where commands read variables from.
var Source = scopenv.Env

// SchemaFlags returns the flags that fill cfg.
func SchemaFlags(cfg *SchemaConfig) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "schema",
			Aliases:     []string{"s"},
			Usage:       "Path to the schema file (YAML or JSON)",
			Required:    true,
			Destination: &cfg.Schema,
		},
		&cli.BoolFlag{
			Name:        "scopes",
			Usage:       "Prefix every variable with the prefix of the current scope",
			Destination: &cfg.Scopes,
		},
		&cli.StringSliceFlag{
			Name:        "scope",
			Usage:       "Override or add a scope prefix as name=PREFIX",
			Destination: &cfg.Scope,
		},
		&cli.StringFlag{
			Name:        "scope-var",
			Value:       scopenv.ScopeVar,
			Usage:       "Variable that selects the current scope",
			Destination: &cfg.ScopeVar,
		},
	}
}

// Load reads the schema file and turns the flags into scopenv options.
func (cfg SchemaConfig) Load(logger log.FieldLogger) (scopenv.Schema, []scopenv.Option, error) {
	if cfg.Schema == "" {
		return nil, nil, constants.ErrMissingSchema
	}

	schema, err := schemafile.Load(cfg.Schema)
	if err != nil {
		return nil, nil, constants.ErrLoadSchema.Wrap(err)
	}

	table := scopenv.Scopes{}
	for _, s := range cfg.Scope.Value() {
		name, prefix, ok := strings.Cut(s, "=")
		if !ok || name == "" {
			return nil, nil, constants.ErrScopeFlag.Wrap(nil, s)
		}
		table[name] = prefix
	}

	logger.WithFields(log.Fields{
		"schema":    cfg.Schema,
		"variables": len(schema),
		"scopes":    cfg.Scopes,
	}).Debug("Loaded schema")

	opts := []scopenv.Option{
		scopenv.WithConfig(scopenv.Config{EnableScopes: cfg.Scopes, Scopes: table}),
		scopenv.WithLogger(debugLogger{logger}),
	}
	if cfg.ScopeVar != "" {
		opts = append(opts, scopenv.WithScopeVar(cfg.ScopeVar))
	}
	return schema, opts, nil
}

// debugLogger sends library output to the debug level.
type debugLogger struct {
	log.FieldLogger
}

func (l debugLogger) Printf(format string, args ...any) {
	l.Debugf(format, args...)
}
