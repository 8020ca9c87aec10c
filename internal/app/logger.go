package app

import (
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const LoggerMetadataKey = "logger"

type (
	LogFormat string
	LogLevel  string
)

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	LogLevel  LogLevel
	LogFormat LogFormat
}

type GetLoggerFunc func(*cli.Context) log.FieldLogger

// GetLogger retrieves the logger from the CLI context metadata.
func GetLogger(c *cli.Context) log.FieldLogger {
	if c.App != nil && c.App.Metadata != nil {
		if logger, ok := c.App.Metadata[LoggerMetadataKey].(log.FieldLogger); ok {
			return logger
		}
	}
	return log.StandardLogger()
}

var _ GetLoggerFunc = GetLogger

// NewLogger builds a logrus logger writing to w. Unknown levels fall back
// to info and unknown formats to text.
func NewLogger(w io.Writer, cfg LoggerConfig) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)

	level, err := log.ParseLevel(string(cfg.LogLevel))
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	switch cfg.LogFormat {
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	default:
		logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	}
	return logger
}
