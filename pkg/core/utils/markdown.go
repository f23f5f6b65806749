package utils

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"
)

// CleanMarkdown strips outer markdown code fences from a model reply.
// The history rewrite agent sometimes wraps its answer this way.
func CleanMarkdown(input string) string {
	cleaned := strings.TrimSpace(input)

	if strings.HasPrefix(cleaned, "```markdown") && strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```markdown")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	} else if strings.HasPrefix(cleaned, "```") && strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}

	return cleaned
}

// RenderHTML converts a generated progress note to HTML for the preview
// endpoint. The note's `# ` section headers and `> ` quote lines are
// already valid Markdown.
func RenderHTML(document string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(document), &buf); err != nil {
		return "", fmt.Errorf("MARKDOWN_RENDER_ERROR: %v", err)
	}
	return buf.String(), nil
}

// ValidateMarkdown checks if the string parses as Markdown. Goldmark is
// very permissive, so this is a basic sanity check.
func ValidateMarkdown(input string) bool {
	parser := goldmark.DefaultParser()
	reader := text.NewReader([]byte(input))
	doc := parser.Parse(reader)
	return doc != nil
}
