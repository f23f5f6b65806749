package prompt

import (
	"strings"
	"testing"
)

func TestRegisterDefaultsCoversAllSections(t *testing.T) {
	Get().Clear()
	RegisterDefaults()

	ids := []string{
		IDs.Identificacao, IDs.HD, IDs.Comorbidades, IDs.MUC, IDs.HMPA,
		IDs.Dispositivos, IDs.Culturas, IDs.Antibioticos, IDs.Complementares,
		IDs.Laboratoriais, IDs.Controles, IDs.Sistemas,
	}
	for _, id := range ids {
		pt, err := Get().GetPrompt(id)
		if err != nil {
			t.Fatalf("GetPrompt(%s) expected prompt, got %v", id, err)
		}
		if pt.SystemPrompt == "" {
			t.Errorf("%s expected non-empty system prompt", id)
		}
	}
}

func TestSectionPromptsDemandBareJSON(t *testing.T) {
	Get().Clear()
	RegisterDefaults()

	for _, id := range []string{IDs.Identificacao, IDs.Laboratoriais, IDs.Sistemas} {
		pt, err := Get().GetPrompt(id)
		if err != nil {
			t.Fatalf("GetPrompt(%s) expected prompt, got %v", id, err)
		}
		if !pt.JSONReply {
			t.Errorf("%s expected JSONReply", id)
		}
		if !strings.Contains(strings.ToLower(pt.SystemPrompt), "json") {
			t.Errorf("%s system prompt should mention JSON", id)
		}
	}
}

func TestHMPAPromptIsFreeText(t *testing.T) {
	Get().Clear()
	RegisterDefaults()

	pt, err := Get().GetPrompt(IDs.HMPA)
	if err != nil {
		t.Fatalf("GetPrompt expected prompt, got %v", err)
	}
	if pt.JSONReply {
		t.Errorf("HMPA rewrite should not demand JSON")
	}
	if pt.UserPrefix == "" {
		t.Errorf("HMPA expected a user prefix")
	}
}

func TestGenerateIDFromPath(t *testing.T) {
	cases := map[string]string{
		"resources/prompts/section/culturas.json": "section.culturas",
		"resources/prompts/rewrite/hmpa.json":     "rewrite.hmpa",
	}
	for path, expected := range cases {
		if got := generateIDFromPath(path, "resources/prompts"); got != expected {
			t.Errorf("generateIDFromPath(%s) expected %s, got %s", path, expected, got)
		}
	}
}

func TestRegistryOverrideWins(t *testing.T) {
	Get().Clear()
	RegisterDefaults()

	override := &PromptTemplate{
		ID:           IDs.Culturas,
		Name:         "Culturas ajustado",
		Category:     "section",
		SystemPrompt: "ajustado",
		JSONReply:    true,
	}
	Get().Register(override)

	pt, err := Get().GetPrompt(IDs.Culturas)
	if err != nil {
		t.Fatalf("GetPrompt expected prompt, got %v", err)
	}
	if pt.SystemPrompt != "ajustado" {
		t.Errorf("override expected to replace default, got %q", pt.SystemPrompt)
	}
}
