package clean

import (
	"strings"
	"testing"
)

func TestSanitizePlainTextNormalizesWhitespace(t *testing.T) {
	s := NewPasteSanitizer()
	out, err := s.Sanitize("  PA: 120x80   mmHg  \n\n\n\nFC: 88 bpm  ")
	if err != nil {
		t.Fatalf("Sanitize expected no error, got %v", err)
	}
	expected := "PA: 120x80 mmHg\n\nFC: 88 bpm"
	if out != expected {
		t.Errorf("Sanitize expected %q, got %q", expected, out)
	}
}

func TestSanitizeStripsMarkupAndNoise(t *testing.T) {
	s := NewPasteSanitizer()
	raw := `<html><head><style>p{color:red}</style></head><body>
<script>alert(1)</script>
<p>Paciente em ar ambiente.</p>
<span>Imprimir</span>
<div>Dieta enteral plena.</div>
</body></html>`
	out, err := s.Sanitize(raw)
	if err != nil {
		t.Fatalf("Sanitize expected no error, got %v", err)
	}
	if strings.Contains(out, "alert") || strings.Contains(out, "color:red") {
		t.Errorf("script/style content should be removed, got %q", out)
	}
	if strings.Contains(out, "Imprimir") {
		t.Errorf("footer label should be removed, got %q", out)
	}
	if !strings.Contains(out, "Paciente em ar ambiente.") || !strings.Contains(out, "Dieta enteral plena.") {
		t.Errorf("clinical text should survive, got %q", out)
	}
}

func TestSanitizeFlattensTwoColumnTables(t *testing.T) {
	s := NewPasteSanitizer()
	raw := `<table>
<tr><td>Hb</td><td>9,8</td></tr>
<tr><td>Creatinina</td><td>1,4</td></tr>
</table>`
	out, err := s.Sanitize(raw)
	if err != nil {
		t.Fatalf("Sanitize expected no error, got %v", err)
	}
	if !strings.Contains(out, "Hb: 9,8") {
		t.Errorf("two-column row expected label: value, got %q", out)
	}
	if !strings.Contains(out, "Creatinina: 1,4") {
		t.Errorf("two-column row expected label: value, got %q", out)
	}
}

func TestSanitizeWideTablesUsePipes(t *testing.T) {
	s := NewPasteSanitizer()
	raw := `<table><tr><td>Exame</td><td>Hoje</td><td>Ontem</td></tr></table>`
	out, err := s.Sanitize(raw)
	if err != nil {
		t.Fatalf("Sanitize expected no error, got %v", err)
	}
	if !strings.Contains(out, "Exame | Hoje | Ontem") {
		t.Errorf("wide row expected pipe join, got %q", out)
	}
}

func TestSanitizeEmptyInput(t *testing.T) {
	s := NewPasteSanitizer()
	out, err := s.Sanitize("   ")
	if err != nil {
		t.Fatalf("Sanitize expected no error, got %v", err)
	}
	if out != "" {
		t.Errorf("empty paste expected empty string, got %q", out)
	}
}
