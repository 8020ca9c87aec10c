package main

import (
	"context"
	"os"
	"os/signal"
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/nicolasmmb/scopenv/internal/app"
	"github.com/nicolasmmb/scopenv/internal/app/commands/check"
	"github.com/nicolasmmb/scopenv/internal/app/commands/keys"
)

const (
	argUsage    = ``
	description = `Validate environment variables against a schema file.

Variables are declared with a kind (string, number, boolean), whether they
are required, and optional checks. With --scopes, the NODE_ENV variable
selects a scope and every variable is read with that scope's prefix,
e.g. PROD_PORT instead of PORT when NODE_ENV=production.

Available Commands:
  check  - Parse and validate the environment, print the values
  keys   - Show which variable each schema entry is read from`
	envName   = "SCOPENV"
	envPrefix = envName + "_"
	name      = `scopenv`
	usage     = `Validate scoped environment configuration.`
)

var (
	appCreator    = createApp
	loggerConfig  app.LoggerConfig
	loggerCreator = newLogger
)

type (
	appVersion string
)

// version is the application version.
// Set via ldflags: -X main.version=1.0.0
var version = "dev"

func getVersion() appVersion {
	return appVersion(version)
}

func main() { run() }

func run() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	c := appCreator(loggerCreator)

	if err := c.RunContext(ctx, os.Args); err != nil {
		log.WithFields(log.Fields{"err": err}).Error("Application error")
		os.Exit(1)
	}
}

func newLogger(c *cli.Context) log.FieldLogger {
	return app.NewLogger(c.App.ErrWriter, loggerConfig)
}

// createApp constructs the definition of the CLI.
func createApp(getLogger app.GetLoggerFunc) *cli.App {
	cliApp := &cli.App{
		Name:                 name,
		Usage:                usage,
		ArgsUsage:            argUsage,
		Description:          description,
		Version:              string(getVersion()),
		EnableBashCompletion: true,
		Commands: cli.Commands{
			check.Command(),
			keys.Command(),
		},
		Before: func(c *cli.Context) error {
			c.App.Metadata[app.LoggerMetadataKey] = getLogger(c)
			return nil
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				EnvVars:     []string{envPrefix + "LOG_LEVEL"},
				Value:       "info",
				Usage:       "Set the logging level (debug, info, warn, error)",
				Destination: (*string)(&loggerConfig.LogLevel),
			},
			&cli.StringFlag{
				Name:        "log-format",
				EnvVars:     []string{envPrefix + "LOG_FORMAT"},
				Value:       "text",
				Usage:       "Set the log output format (text, json)",
				Destination: (*string)(&loggerConfig.LogFormat),
			},
		},
	}

	sort.Sort(cli.FlagsByName(cliApp.Flags))
	sort.Sort(cli.CommandsByName(cliApp.Commands))

	return cliApp
}
