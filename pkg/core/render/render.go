// Package render turns a record.Note into the canonical progress-note
// text. Every section renderer is deterministic: it returns the section's
// lines, or nil when the section has no content, and never mutates the
// note. Rendering twice over unchanged state yields identical output.
package render

import (
	"strings"

	"prontuario/pkg/core/record"
)

// Render assembles the full document in the fixed section order. Sections
// are trimmed of trailing blank lines and joined by one blank line; empty
// sections disappear entirely. A final pass normalizes " ml" to " mL"
// across the whole text.
func Render(n *record.Note) string {
	sections := [][]string{
		Identification(n),
		Diagnoses(n),
		Comorbidities(n),
		ContinuousMeds(n),
		Devices(n),
		Cultures(n),
		History(n),
		Antibiotics(n),
		Complementary(n),
		Labs(n),
		Controls(n),
		ClinicalCourse(n),
		Systems(n),
		Conducts(n),
		Prescription(n),
	}

	var blocks []string
	for _, lines := range sections {
		for len(lines) > 0 && lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
		}
		if len(lines) > 0 {
			blocks = append(blocks, strings.Join(lines, "\n"))
		}
	}
	text := strings.Join(blocks, "\n\n")
	return strings.ReplaceAll(text, " ml", " mL")
}
