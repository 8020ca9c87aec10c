package scopenv

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Print writes the manager's values to stdout with secret masking.
func Print(m *Manager) {
	PrintTo(os.Stdout, m)
}

// PrintTo writes the manager's values to w with secret masking. Each line
// shows the effective lookup key and the parsed value.
func PrintTo(w io.Writer, m *Manager) {
	fmt.Fprintln(w, "Configuration:")
	if scope, ok := m.Scope(); ok && m.enabled {
		fmt.Fprintf(w, "%-25s = %s\n", m.scopeVar, scope)
	}
	fmt.Fprintln(w, strings.Repeat("─", 50))
	for _, name := range m.schema.Keys() {
		fmt.Fprintf(w, "%-25s = %s\n", m.Key(name), Masked(name, m.schema[name], m.data.m[name]))
	}
	fmt.Fprintln(w, strings.Repeat("─", 50))
}

// Masked renders v for display, hiding secrets. Unset values render as
// "<unset>".
func Masked(name string, d Declaration, v Value) string {
	if !v.IsSet() {
		return "<unset>"
	}
	val := v.String()
	if isSecret(name, d) && len(val) > 0 {
		if len(val) > 8 {
			val = val[:3] + "***" + val[len(val)-3:]
		} else {
			val = "***"
		}
	}
	return val
}

func isSecret(name string, d Declaration) bool {
	if d.IsSecret() {
		return true
	}
	upper := strings.ToUpper(name)
	return strings.Contains(upper, "SECRET") ||
		strings.Contains(upper, "PASSWORD") ||
		strings.Contains(upper, "TOKEN") ||
		strings.Contains(upper, "KEY")
}
