// Package schemafile reads a scopenv schema from a YAML or JSON document.
//
// A document maps each variable name to its declaration:
//
//	PORT:
//	  kind: number
//	  min: 1
//	  max: 65535
//	LOG_LEVEL:
//	  kind: string
//	  required: false
//	  oneOf: [debug, info, warn, error]
//	API_TOKEN:
//	  kind: string
//	  secret: true
//	  pattern: "^[a-f0-9]{32}$"
//
// kind defaults to string and required to true.
package schemafile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nicolasmmb/scopenv"
)

// Sentinel errors for use with errors.Is.
var (
	ErrUnknownKind = errors.New("unknown kind")
	ErrBadCheck    = errors.New("check does not apply to kind")
)

// Entry is one variable declaration as written in a schema file.
type Entry struct {
	Kind     string   `yaml:"kind"`
	Required *bool    `yaml:"required"`
	Secret   bool     `yaml:"secret"`
	OneOf    []string `yaml:"oneOf"`
	Pattern  string   `yaml:"pattern"`
	Min      *float64 `yaml:"min"`
	Max      *float64 `yaml:"max"`
}

// Load reads and parses the schema file at path.
func Load(path string) (scopenv.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	schema, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return schema, nil
}

// Parse decodes a schema document. Unknown fields are rejected.
func Parse(data []byte) (scopenv.Schema, error) {
	var entries map[string]Entry

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&entries); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	schema := make(scopenv.Schema, len(entries))
	for name, e := range entries {
		d, err := e.Declaration()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		schema[name] = d
	}
	return schema, nil
}

// Declaration converts e into a scopenv declaration with its checks.
func (e Entry) Declaration() (scopenv.Declaration, error) {
	var d scopenv.Declaration

	switch strings.ToLower(e.Kind) {
	case "", "string":
		if e.Min != nil || e.Max != nil {
			return d, fmt.Errorf("%w: min/max on string", ErrBadCheck)
		}
		checks, err := e.stringChecks()
		if err != nil {
			return d, err
		}
		d = scopenv.String(checks...)

	case "number":
		if len(e.OneOf) > 0 || e.Pattern != "" {
			return d, fmt.Errorf("%w: oneOf/pattern on number", ErrBadCheck)
		}
		d = scopenv.Number(e.numberChecks()...)

	case "bool", "boolean":
		if len(e.OneOf) > 0 || e.Pattern != "" || e.Min != nil || e.Max != nil {
			return d, fmt.Errorf("%w: checks on boolean", ErrBadCheck)
		}
		d = scopenv.Bool()

	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownKind, e.Kind)
	}

	if e.Required != nil {
		d = d.Required(*e.Required)
	}
	if e.Secret {
		d = d.Secret()
	}
	return d, nil
}

func (e Entry) stringChecks() ([]func(string) error, error) {
	var checks []func(string) error

	if len(e.OneOf) > 0 {
		allowed := append([]string(nil), e.OneOf...)
		checks = append(checks, func(s string) error {
			for _, a := range allowed {
				if s == a {
					return nil
				}
			}
			return fmt.Errorf("must be one of %s", strings.Join(allowed, ", "))
		})
	}

	if e.Pattern != "" {
		re, err := regexp.Compile(e.Pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern: %w", err)
		}
		checks = append(checks, func(s string) error {
			if !re.MatchString(s) {
				return fmt.Errorf("must match %s", re)
			}
			return nil
		})
	}

	return checks, nil
}

func (e Entry) numberChecks() []func(float64) error {
	var checks []func(float64) error
	if e.Min != nil {
		lo := *e.Min
		checks = append(checks, func(n float64) error {
			if n < lo {
				return fmt.Errorf("must be >= %v", lo)
			}
			return nil
		})
	}
	if e.Max != nil {
		hi := *e.Max
		checks = append(checks, func(n float64) error {
			if n > hi {
				return fmt.Errorf("must be <= %v", hi)
			}
			return nil
		})
	}
	return checks
}
