package main

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/nicolasmmb/scopenv"
)

// Config demonstrates most scopenv features in one place.
type Config struct {
	AppName       string
	Port          int
	DatabaseURL   string `env:"DATABASE_URL"`
	MaxConns      *int
	Debug         *bool
	ShutdownGrace time.Duration
}

var schema = scopenv.Schema{
	"APP_NAME": scopenv.String(),
	"PORT": scopenv.Number(scopenv.Predicate(func(n float64) bool {
		return n >= 1024 && n <= 65535
	})),
	"DATABASE_URL": scopenv.String(func(s string) error {
		u, err := url.Parse(s)
		if err != nil || u.Scheme == "" {
			return fmt.Errorf("%q is not a URL", s)
		}
		return nil
	}).Secret(),
	"MAX_CONNS":      scopenv.Number().Optional(),
	"DEBUG":          scopenv.Bool().Optional(),
	"SHUTDOWN_GRACE": scopenv.Number().Required(true),
}

func main() {
	logger := log.New()
	logger.SetLevel(log.DebugLevel)

	m, err := scopenv.New(schema, scopenv.Env(),
		scopenv.WithConfig(scopenv.Config{
			EnableScopes: true,
			Scopes:       scopenv.Scopes{"production": "LIVE", "preview": "PR"},
		}),
		scopenv.WithLogger(logger),
	)
	if err != nil {
		logger.WithFields(log.Fields{"err": err}).Fatal("Invalid configuration")
	}
	scopenv.PrintTo(os.Stdout, m)

	cfg, err := scopenv.Bind[Config](m.Data())
	if err != nil {
		logger.WithFields(log.Fields{"err": err}).Fatal("Bind configuration")
	}

	scope, _ := m.Scope()
	fmt.Printf("\nRunning %s on :%d (scope=%s, grace=%s)\n", cfg.AppName, cfg.Port, strings.ToUpper(scope), cfg.ShutdownGrace)
}
