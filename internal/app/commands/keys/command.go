package keys

import (
	"context"
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/nicolasmmb/scopenv"
	"github.com/nicolasmmb/scopenv/internal/app"
	"github.com/nicolasmmb/scopenv/internal/constants"
)

const (
	name        = `keys`
	usage       = `Show which environment variable each schema entry is read from.`
	argUsage    = ``
	description = `Resolve the lookup key of every schema entry for the current scope
without reading or validating the values.`
)

// Config holds the configuration for the keys command.
type Config struct {
	app.SchemaConfig
}

// Key maps a schema entry to the variable it is read from.
type Key struct {
	Name     string `json:"name"`
	Key      string `json:"key"`
	Required bool   `json:"required"`
}

// Result holds the output of the keys command.
type Result struct {
	Keys  []Key `json:"keys"`
	Count int   `json:"count"`
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

// Run executes the keys command.
func Run(ctx context.Context, logger log.FieldLogger, config Config, args ...string) (Result, error) {
	schema, opts, err := config.Load(logger)
	if err != nil {
		return Result{}, err
	}

	resolved, err := scopenv.Keys(schema, app.Source(), opts...)
	if err != nil {
		return Result{}, constants.ErrConfig.Wrap(err)
	}

	result := Result{Keys: make([]Key, 0, len(resolved))}
	for n, k := range resolved {
		result.Keys = append(result.Keys, Key{Name: n, Key: k, Required: schema[n].IsRequired()})
	}
	sort.Slice(result.Keys, func(i, j int) bool { return result.Keys[i].Name < result.Keys[j].Name })
	result.Count = len(result.Keys)

	logger.WithFields(log.Fields{"count": result.Count}).Debug("Resolved keys")

	return result, nil
}
