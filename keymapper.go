package scopenv

import "strings"

// KeyMapper allows customizing how struct field names are mapped to keys.
type KeyMapper interface {
	Field(string) string
}

type screamingSnakeMapper struct{}

func (screamingSnakeMapper) Field(name string) string {
	return toScreamingSnake(name)
}

var defaultMapper screamingSnakeMapper

// toScreamingSnake converts CamelCase to SCREAMING_SNAKE_CASE.
func toScreamingSnake(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if i > 0 && r >= 'A' && r <= 'Z' {
			prev := runes[i-1]
			if prev >= 'a' && prev <= 'z' || prev >= '0' && prev <= '9' {
				b.WriteByte('_')
			} else if i+1 < len(runes) {
				next := runes[i+1]
				if next >= 'a' && next <= 'z' {
					b.WriteByte('_')
				}
			}
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}
