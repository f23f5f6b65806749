package clean

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PasteSanitizer normalizes text pasted from hospital EHR screens before it
// reaches the section agents. Pastes arrive either as plain text or as HTML
// fragments copied straight out of the browser, full of layout tables,
// spacer images and inline styles that confuse extraction.
type PasteSanitizer struct{}

// NewPasteSanitizer creates a new sanitizer instance.
func NewPasteSanitizer() *PasteSanitizer {
	return &PasteSanitizer{}
}

var (
	htmlHintPat  = regexp.MustCompile(`(?i)<\s*(html|body|div|span|table|p|br|td|tr)\b`)
	blankLinePat = regexp.MustCompile(`\n{3,}`)
	spaceRunPat  = regexp.MustCompile(`[ \t\x{00a0}]+`)
)

// Sanitize returns the paste as clean plain text. HTML fragments are parsed
// and flattened, plain text only gets whitespace normalization.
func (s *PasteSanitizer) Sanitize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	if !htmlHintPat.MatchString(raw) {
		return normalizeWhitespace(raw), nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("PASTE_PARSE_ERROR: %v", err)
	}

	s.RemoveNoise(doc)
	s.FlattenTables(doc)
	s.MarkBreaks(doc)

	body := doc.Find("body")
	text := body.Text()
	if strings.TrimSpace(text) == "" {
		text = doc.Text()
	}

	return normalizeWhitespace(text), nil
}

// RemoveNoise strips elements that carry no clinical text.
func (s *PasteSanitizer) RemoveNoise(doc *goquery.Document) {
	doc.Find("script, style, head, img, button, input, select, nav").Remove()

	doc.Find("[hidden], [style*='display:none'], [style*='display: none']").Remove()

	// EHR screens repeat short footer labels on every paste.
	doc.Find("p, div, span").Each(func(i int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if matched, _ := regexp.MatchString(`(?i)^(página\s*\d+|imprimir|voltar|fechar)$`, text); matched {
			sel.Remove()
		}
	})
}

// FlattenTables rewrites layout tables as "label: value" lines. Result grids
// from lab viewers paste as two-column tables and lose all structure when the
// markup is stripped naively.
func (s *PasteSanitizer) FlattenTables(doc *goquery.Document) {
	doc.Find("tr").Each(func(i int, row *goquery.Selection) {
		cells := []string{}
		row.Find("td, th").Each(func(j int, cell *goquery.Selection) {
			if text := strings.TrimSpace(cell.Text()); text != "" {
				cells = append(cells, text)
			}
		})
		if len(cells) == 0 {
			row.Remove()
			return
		}
		line := strings.Join(cells, ": ")
		if len(cells) > 2 {
			line = strings.Join(cells, " | ")
		}
		row.ReplaceWithHtml(fmt.Sprintf("\n%s\n", line))
	})
}

// MarkBreaks turns block boundaries into explicit newlines so that goquery's
// Text() does not glue adjacent lines together.
func (s *PasteSanitizer) MarkBreaks(doc *goquery.Document) {
	doc.Find("br").Each(func(i int, sel *goquery.Selection) {
		sel.ReplaceWithHtml("\n")
	})
	doc.Find("p, div, li, h1, h2, h3, h4").Each(func(i int, sel *goquery.Selection) {
		sel.AppendHtml("\n")
	})
}

func normalizeWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRunPat.ReplaceAllString(line, " "))
	}
	text = strings.Join(lines, "\n")
	text = blankLinePat.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
