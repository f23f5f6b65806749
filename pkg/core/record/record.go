// Package record holds the flat field mapping behind one patient progress
// note: every clinical field of the fifteen form sections, its kind and
// default, the per-section display ordering lists, and the explicit
// lifecycle operations (init, clear, advance-day shifts, merge of parsed
// or agent-extracted partial mappings).
package record

import (
	"regexp"
	"strings"

	"prontuario/pkg/core/textutil"
)

// Kind discriminates the three value kinds a field key can carry.
type Kind int

const (
	KindText   Kind = iota // free text / numeric-as-text, "" means absent
	KindChoice             // tri-state: unset or one of a fixed vocabulary
	KindFlag               // boolean checkbox
)

// FieldDef describes one registered field key.
type FieldDef struct {
	Key     string
	Kind    Kind
	Options []string // valid values for KindChoice
}

// Note is the mutable state of one progress-note session. It is passed
// explicitly into renderers and parsers; there is no package-level state.
type Note struct {
	defs    map[string]FieldDef
	text    map[string]string
	choices map[string]string // key present = choice set
	flags   map[string]bool
	orders  map[string][]int
}

// Ordering list capacities, one per reorderable section.
var orderCapacity = map[string]int{
	"hd_ordem":   8,
	"cult_ordem": 8,
	"disp_ordem": 8,
	"comp_ordem": 8,
	"muc_ordem":  20,
	"atb_ordem":  8,
}

// New builds a Note with every field registered and set to its default.
func New() *Note {
	n := &Note{
		defs:    make(map[string]FieldDef),
		text:    make(map[string]string),
		choices: make(map[string]string),
		flags:   make(map[string]bool),
		orders:  make(map[string][]int),
	}
	for _, def := range allFields() {
		n.defs[def.Key] = def
	}
	n.Reset()
	return n
}

// Reset clears every field back to its registered default and restores the
// identity ordering lists.
func (n *Note) Reset() {
	n.text = make(map[string]string, len(n.defs))
	n.choices = make(map[string]string)
	n.flags = make(map[string]bool)
	for key, def := range n.defs {
		switch def.Kind {
		case KindText:
			n.text[key] = ""
		case KindFlag:
			n.flags[key] = false
		}
	}
	for section, cap := range orderCapacity {
		ids := make([]int, cap)
		for i := range ids {
			ids[i] = i + 1
		}
		n.orders[section] = ids
	}
	n.text["ctrl_periodo"] = "24 horas"
}

// Has reports whether key is registered.
func (n *Note) Has(key string) bool {
	_, ok := n.defs[key]
	return ok
}

// KindOf returns the registered kind for key.
func (n *Note) KindOf(key string) (Kind, bool) {
	def, ok := n.defs[key]
	return def.Kind, ok
}

// Text returns the raw text value for key ("" when absent or not a text
// field). CAPS normalization happens at render time, never here.
func (n *Note) Text(key string) string {
	return n.text[key]
}

// SetText stores val under a registered text key. Unregistered keys are
// ignored so malformed agent output cannot grow the mapping.
func (n *Note) SetText(key, val string) {
	if def, ok := n.defs[key]; ok && def.Kind == KindText {
		n.text[key] = val
	}
}

// Choice returns the tri-state value for key and whether it is set.
func (n *Note) Choice(key string) (string, bool) {
	v, ok := n.choices[key]
	return v, ok
}

// ChoiceIs reports whether the tri-state key is set to val.
func (n *Note) ChoiceIs(key, val string) bool {
	v, ok := n.choices[key]
	return ok && v == val
}

// SetChoice sets a tri-state field. An empty val clears it back to unset,
// mirroring the widget behavior where "" coming from an agent means "not
// found".
func (n *Note) SetChoice(key, val string) {
	def, ok := n.defs[key]
	if !ok || def.Kind != KindChoice {
		return
	}
	if strings.TrimSpace(val) == "" {
		delete(n.choices, key)
		return
	}
	n.choices[key] = val
}

// ClearChoice resets a tri-state field to unset.
func (n *Note) ClearChoice(key string) {
	delete(n.choices, key)
}

// Flag returns a boolean checkbox value.
func (n *Note) Flag(key string) bool {
	return n.flags[key]
}

// SetFlag stores a boolean checkbox value.
func (n *Note) SetFlag(key string, val bool) {
	if def, ok := n.defs[key]; ok && def.Kind == KindFlag {
		n.flags[key] = val
	}
}

// Order returns a copy of the display ordering for section (e.g.
// "hd_ordem"). The list is always a permutation of 1..N.
func (n *Note) Order(section string) []int {
	ids := n.orders[section]
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}

// SwapOrder exchanges two display positions (0-based) in a section's
// ordering list. Out-of-range positions are ignored.
func (n *Note) SwapOrder(section string, i, j int) {
	ids, ok := n.orders[section]
	if !ok || i < 0 || j < 0 || i >= len(ids) || j >= len(ids) {
		return
	}
	ids[i], ids[j] = ids[j], ids[i]
}

// SetOrder replaces a section's ordering list when the given ids are a
// permutation of 1..N for that section; anything else is rejected.
func (n *Note) SetOrder(section string, ids []int) bool {
	cap, ok := orderCapacity[section]
	if !ok || len(ids) != cap {
		return false
	}
	seen := make(map[int]bool, cap)
	for _, id := range ids {
		if id < 1 || id > cap || seen[id] {
			return false
		}
		seen[id] = true
	}
	cp := make([]int, cap)
	copy(cp, ids)
	n.orders[section] = cp
	return true
}

// ApplyPartial merges a parser or agent result into the note under the
// fill-only-empty policy: a destination text field is written only when
// currently empty, a tri-state only when currently unset. Manually entered
// data is never overwritten. Returns the number of fields filled.
func (n *Note) ApplyPartial(partial map[string]string) int {
	filled := 0
	for key, val := range partial {
		if strings.TrimSpace(val) == "" {
			continue
		}
		def, ok := n.defs[key]
		if !ok {
			continue
		}
		switch def.Kind {
		case KindText:
			if n.text[key] == "" {
				n.text[key] = val
				filled++
			}
		case KindChoice:
			if _, set := n.choices[key]; !set {
				n.choices[key] = val
				filled++
			}
		case KindFlag:
			if !n.flags[key] && (val == "true" || val == "Sim") {
				n.flags[key] = true
				filled++
			}
		}
	}
	n.SanitizeChoices()
	return filled
}

// SanitizeChoices drops tri-state values outside the field's registered
// vocabulary (agents and sheet loads occasionally hand back junk like ""
// or free text on a pills field).
func (n *Note) SanitizeChoices() {
	for key, val := range n.choices {
		def := n.defs[key]
		if len(def.Options) == 0 {
			continue
		}
		valid := false
		for _, opt := range def.Options {
			if val == opt {
				valid = true
				break
			}
		}
		if !valid {
			delete(n.choices, key)
		}
	}
}

var dateKeyPat = regexp.MustCompile(`(?i)(_data|_ultima|_proxima|_antepen|_ini$|_fim$|^di_hosp$|^di_uti$|^di_enf$)`)

// NormalizeDates reformats every date-like key typed as a bare digit run
// (10022026 -> 10/02/2026). Non-date content in those keys is left alone.
func (n *Note) NormalizeDates() {
	for key, val := range n.text {
		if val == "" || !dateKeyPat.MatchString(key) {
			continue
		}
		if formatted := textutil.FormatDate(val); formatted != val {
			n.text[key] = formatted
		}
	}
}
