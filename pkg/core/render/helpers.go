package render

import (
	"strings"

	"prontuario/pkg/core/record"
	"prontuario/pkg/core/textutil"
)

// get reads a text field, undoing CAPS LOCK typing on the way out.
func get(n *record.Note, key string) string {
	return textutil.ProperCase(n.Text(key))
}

// gets is get with surrounding whitespace trimmed.
func gets(n *record.Note, key string) string {
	return strings.TrimSpace(get(n, key))
}

// choice reads a tri-state field ("" when unset).
func choice(n *record.Note, key string) string {
	v, _ := n.Choice(key)
	return v
}

func joinSemi(parts []string) string { return strings.Join(parts, "; ") }

// appendIf appends "label value"-style parts only when the value is set.
func appendIf(parts []string, part string, ok bool) []string {
	if ok {
		return append(parts, part)
	}
	return parts
}
