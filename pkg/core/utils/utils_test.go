package utils

import (
	"strings"
	"testing"
)

func TestExtractJSONFromFencedReply(t *testing.T) {
	raw := "```json\n{\"nome\": \"Maria\", \"idade\": 64}\n```"
	out, err := ExtractJSON(raw)
	if err != nil {
		t.Fatalf("ExtractJSON expected no error, got %v", err)
	}
	if out["nome"] != "Maria" {
		t.Errorf("nome expected %q, got %v", "Maria", out["nome"])
	}
}

func TestExtractJSONWithSurroundingProse(t *testing.T) {
	raw := "Segue o resultado:\n{\"leito\": \"12\"}\nEspero ter ajudado."
	out, err := ExtractJSON(raw)
	if err != nil {
		t.Fatalf("ExtractJSON expected no error, got %v", err)
	}
	if out["leito"] != "12" {
		t.Errorf("leito expected %q, got %v", "12", out["leito"])
	}
}

func TestExtractJSONRepairsTruncatedObject(t *testing.T) {
	raw := `{"nome": "José", "equipe": "Azul"`
	out, err := ExtractJSON(raw)
	if err != nil {
		t.Fatalf("ExtractJSON expected repair to succeed, got %v", err)
	}
	if out["nome"] != "José" {
		t.Errorf("nome expected %q, got %v", "José", out["nome"])
	}
}

func TestExtractJSONNoObject(t *testing.T) {
	if _, err := ExtractJSON("sem json aqui"); err == nil {
		t.Errorf("ExtractJSON expected error for proseless reply")
	}
}

func TestSmartParseHJSONFallback(t *testing.T) {
	raw := `{ nome: Maria, leito: '12' }`
	var out map[string]interface{}
	if _, err := SmartParse(raw, &out); err != nil {
		t.Fatalf("SmartParse expected hjson fallback to work, got %v", err)
	}
	if out["nome"] != "Maria" {
		t.Errorf("nome expected %q, got %v", "Maria", out["nome"])
	}
}

func TestCleanMarkdownStripsFences(t *testing.T) {
	raw := "```markdown\nPaciente admitido por choque séptico.\n```"
	out := CleanMarkdown(raw)
	if strings.Contains(out, "```") {
		t.Errorf("CleanMarkdown should strip fences, got %q", out)
	}
	if !strings.Contains(out, "choque séptico") {
		t.Errorf("CleanMarkdown should keep content, got %q", out)
	}
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML("**NEURO:** RASS 0")
	if err != nil {
		t.Fatalf("RenderHTML expected no error, got %v", err)
	}
	if !strings.Contains(html, "<strong>NEURO:</strong>") {
		t.Errorf("RenderHTML expected bold span, got %q", html)
	}
}
