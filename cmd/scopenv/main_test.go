package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/nicolasmmb/scopenv"
	"github.com/nicolasmmb/scopenv/internal/app"
)

func quietLogger(*cli.Context) log.FieldLogger {
	return app.NewLogger(io.Discard, app.LoggerConfig{})
}

func TestRun_Version(t *testing.T) {
	want, must := assert.New(t), require.New(t)

	var stdout bytes.Buffer

	cliApp := createApp(quietLogger)
	cliApp.Writer = &stdout

	must.NoError(cliApp.RunContext(context.Background(), []string{name, "--version"}))
	want.Contains(stdout.String(), version)
}

func TestCreateApp(t *testing.T) {
	want, must := assert.New(t), require.New(t)

	cliApp := createApp(quietLogger)

	want.Equal(name, cliApp.Name)
	want.Equal(version, cliApp.Version)
	must.NotEmpty(cliApp.Commands, "expected app to have commands")

	for _, expected := range []string{"check", "keys"} {
		want.NotNil(cliApp.Command(expected), "expected command %q", expected)
	}
}

func TestRun_Commands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte("PORT: {kind: number}\nAPI_TOKEN: {}\n"), 0o600))

	orig := app.Source
	app.Source = func() scopenv.Source {
		return scopenv.Map(map[string]string{
			"NODE_ENV":      "development",
			"DEV_PORT":      "3000",
			"DEV_API_TOKEN": "0123456789abcdef",
		})
	}
	t.Cleanup(func() { app.Source = orig })

	tests := []struct {
		name string
		args []string
		want map[string]any
	}{
		{
			name: "keys",
			args: []string{name, "keys", "--schema", path, "--scopes"},
			want: map[string]any{
				"count": 2.0,
				"keys": []any{
					map[string]any{"name": "API_TOKEN", "key": "DEV_API_TOKEN", "required": true},
					map[string]any{"name": "PORT", "key": "DEV_PORT", "required": true},
				},
			},
		},
		{
			name: "check",
			args: []string{name, "check", "--schema", path, "--scopes"},
			want: map[string]any{
				"scope": "development",
				"count": 2.0,
				"variables": []any{
					map[string]any{"name": "API_TOKEN", "key": "DEV_API_TOKEN", "kind": "string", "set": true, "value": "012***def"},
					map[string]any{"name": "PORT", "key": "DEV_PORT", "kind": "number", "set": true, "value": "3000"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, must := assert.New(t), require.New(t)

			var stdout bytes.Buffer
			cliApp := createApp(quietLogger)
			cliApp.Writer = &stdout

			must.NoError(cliApp.RunContext(context.Background(), tt.args))

			var got map[string]any
			must.NoError(json.Unmarshal(stdout.Bytes(), &got))
			want.Equal(tt.want, got)
		})
	}
}

func TestRun_CheckFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte("PORT: {kind: number}\n"), 0o600))

	orig := app.Source
	app.Source = func() scopenv.Source { return scopenv.Map(nil) }
	t.Cleanup(func() { app.Source = orig })

	cliApp := createApp(quietLogger)
	cliApp.Writer = io.Discard

	err := cliApp.RunContext(context.Background(), []string{name, "check", "--schema", path})
	assert.ErrorIs(t, err, scopenv.ErrMissing)
}
