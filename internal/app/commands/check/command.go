package check

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/nicolasmmb/scopenv"
	"github.com/nicolasmmb/scopenv/internal/app"
	"github.com/nicolasmmb/scopenv/internal/constants"
)

const (
	name        = `check`
	usage       = `Validate the environment against a schema.`
	argUsage    = ``
	description = `Parse every variable declared in the schema from the environment and
print the parsed values. Secrets are masked. Exits non-zero on the first
missing or invalid variable.`
)

// Config holds the configuration for the check command.
type Config struct {
	app.SchemaConfig
}

// Variable is one parsed variable in the result.
type Variable struct {
	Name  string `json:"name"`
	Key   string `json:"key"`
	Kind  string `json:"kind"`
	Set   bool   `json:"set"`
	Value string `json:"value,omitempty"`
}

// Result holds the output of the check command.
type Result struct {
	Scope     string     `json:"scope,omitempty"`
	Variables []Variable `json:"variables"`
	Count     int        `json:"count"`
}

var (
	cfg       Config
	runAction = Run
)

// Command returns the CLI command definition.
func Command() *cli.Command {
	return &cli.Command{
		Name:        name,
		Usage:       usage,
		ArgsUsage:   argUsage,
		Description: description,
		Flags:       app.SchemaFlags(&cfg.SchemaConfig),
		Action:      app.Default(&cfg, runAction),
	}
}

// Run executes the check command.
func Run(ctx context.Context, logger log.FieldLogger, config Config, args ...string) (Result, error) {
	schema, opts, err := config.Load(logger)
	if err != nil {
		return Result{}, err
	}

	m, err := scopenv.New(schema, app.Source(), opts...)
	if err != nil {
		return Result{}, constants.ErrConfig.Wrap(err)
	}

	data := m.Data()
	result := Result{Variables: make([]Variable, 0, data.Len())}
	if scope, ok := m.Scope(); ok && config.Scopes {
		result.Scope = scope
	}

	for _, k := range data.Keys() {
		v, _ := data.Lookup(k)
		out := Variable{
			Name: k,
			Key:  m.Key(k),
			Kind: v.Kind().String(),
			Set:  v.IsSet(),
		}
		if v.IsSet() {
			out.Value = scopenv.Masked(k, schema[k], v)
		}
		result.Variables = append(result.Variables, out)
	}
	result.Count = len(result.Variables)

	logger.WithFields(log.Fields{"count": result.Count, "scope": result.Scope}).Info("Configuration is valid")

	return result, nil
}
