package scopenv

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBind(t *testing.T) {
	want, must := assert.New(t), require.New(t)

	type Config struct {
		Port        int
		Host        string
		DatabaseURL string `env:"DB"`
		Debug       bool
		Ratio       float32
		Workers     uint8
		Timeout     time.Duration
		MaxConns    *int
		Verbose     *bool
		Ignored     string `env:"-"`
		unexported  string
	}

	m, err := New(Schema{
		"PORT":      Number(),
		"HOST":      String(),
		"DB":        String(),
		"DEBUG":     Bool(),
		"RATIO":     Number(),
		"WORKERS":   Number(),
		"TIMEOUT":   Number(),
		"MAX_CONNS": Number(),
		"VERBOSE":   Bool().Optional(),
		"IGNORED":   String(),
	}, Map(map[string]string{
		"PORT":      "8080",
		"HOST":      "localhost",
		"DB":        "postgres://db",
		"DEBUG":     "true",
		"RATIO":     "0.5",
		"WORKERS":   "4",
		"TIMEOUT":   "1.5",
		"MAX_CONNS": "10",
		"IGNORED":   "x",
	}))
	must.NoError(err)

	cfg, err := Bind[Config](m.Data())
	must.NoError(err)

	want.Equal(8080, cfg.Port)
	want.Equal("localhost", cfg.Host)
	want.Equal("postgres://db", cfg.DatabaseURL)
	want.True(cfg.Debug)
	want.Equal(float32(0.5), cfg.Ratio)
	want.Equal(uint8(4), cfg.Workers)
	want.Equal(1500*time.Millisecond, cfg.Timeout)
	must.NotNil(cfg.MaxConns)
	want.Equal(10, *cfg.MaxConns)
	want.Nil(cfg.Verbose)
	want.Empty(cfg.Ignored)
	want.Empty(cfg.unexported)
}

func TestBind_Errors(t *testing.T) {
	tests := []struct {
		name   string
		schema Schema
		env    map[string]string
		bind   func(Values) error
	}{
		{
			name:   "fraction into int",
			schema: Schema{"PORT": Number()},
			env:    map[string]string{"PORT": "80.5"},
			bind: func(v Values) error {
				_, err := Bind[struct{ Port int }](v)
				return err
			},
		},
		{
			name:   "overflow",
			schema: Schema{"SMALL": Number()},
			env:    map[string]string{"SMALL": "300"},
			bind: func(v Values) error {
				_, err := Bind[struct{ Small int8 }](v)
				return err
			},
		},
		{
			name:   "negative into uint",
			schema: Schema{"COUNT": Number()},
			env:    map[string]string{"COUNT": "-1"},
			bind: func(v Values) error {
				_, err := Bind[struct{ Count uint }](v)
				return err
			},
		},
		{
			name:   "string into bool",
			schema: Schema{"DEBUG": String()},
			env:    map[string]string{"DEBUG": "on"},
			bind: func(v Values) error {
				_, err := Bind[struct{ Debug bool }](v)
				return err
			},
		},
		{
			name:   "unsupported field",
			schema: Schema{"HOSTS": String()},
			env:    map[string]string{"HOSTS": "a,b"},
			bind: func(v Values) error {
				_, err := Bind[struct{ Hosts []string }](v)
				return err
			},
		},
		{
			name:   "above int64 range",
			schema: Schema{"BIG": Number()},
			env:    map[string]string{"BIG": "1e19"},
			bind: func(v Values) error {
				_, err := Bind[struct{ Big int64 }](v)
				return err
			},
		},
		{
			name:   "below int64 range",
			schema: Schema{"LOW": Number()},
			env:    map[string]string{"LOW": "-1e19"},
			bind: func(v Values) error {
				_, err := Bind[struct{ Low int }](v)
				return err
			},
		},
		{
			name:   "exactly 2^63",
			schema: Schema{"EDGE": Number()},
			env:    map[string]string{"EDGE": "9223372036854775808"},
			bind: func(v Values) error {
				_, err := Bind[struct{ Edge int64 }](v)
				return err
			},
		},
		{
			name:   "above uint64 range",
			schema: Schema{"HUGE": Number()},
			env:    map[string]string{"HUGE": "1e20"},
			bind: func(v Values) error {
				_, err := Bind[struct{ Huge uint64 }](v)
				return err
			},
		},
		{
			name:   "duration overflow",
			schema: Schema{"LONG": Number()},
			env:    map[string]string{"LONG": "1e12"},
			bind: func(v Values) error {
				_, err := Bind[struct{ Long time.Duration }](v)
				return err
			},
		},
		{
			name:   "not a struct",
			schema: Schema{},
			bind: func(v Values) error {
				_, err := Bind[int](v)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.schema, Map(tt.env))
			require.NoError(t, err)
			assert.ErrorIs(t, tt.bind(m.Data()), ErrBind)
		})
	}
}

type prefixMapper struct{}

func (prefixMapper) Field(name string) string { return "cfg." + name }

func TestBind_Limits(t *testing.T) {
	want, must := assert.New(t), require.New(t)

	m, err := New(Schema{
		"SMALL": Number(),
		"HUGE":  Number(),
		"LONG":  Number(),
	}, Map(map[string]string{
		"SMALL": "-9223372036854775808",
		"HUGE":  "1e19",
		"LONG":  "9e9",
	}))
	must.NoError(err)

	cfg, err := Bind[struct {
		Small int64
		Huge  uint64
		Long  time.Duration
	}](m.Data())
	must.NoError(err)
	want.Equal(int64(math.MinInt64), cfg.Small)
	want.Equal(uint64(1e19), cfg.Huge)
	want.Equal(9e9*time.Second, cfg.Long)
}

func TestBindWith(t *testing.T) {
	want, must := assert.New(t), require.New(t)

	m, err := New(Schema{"cfg.Port": Number()}, Map(map[string]string{"cfg.Port": "9000"}))
	must.NoError(err)

	cfg, err := BindWith[struct{ Port int }](m.Data(), prefixMapper{})
	must.NoError(err)
	want.Equal(9000, cfg.Port)
}

func TestToScreamingSnake(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Port", "PORT"},
		{"DatabaseURL", "DATABASE_URL"},
		{"JWTSecret", "JWT_SECRET"},
		{"HTTPServer", "HTTP_SERVER"},
		{"MaxConns", "MAX_CONNS"},
		{"S3Bucket", "S3_BUCKET"},
	}

	for _, tc := range tests {
		got := toScreamingSnake(tc.input)
		if got != tc.want {
			t.Errorf("toScreamingSnake(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
