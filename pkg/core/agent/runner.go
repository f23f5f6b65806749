package agent

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"prontuario/pkg/core/utils"
)

// Run executes one section agent over its pasted note text and returns the
// partial field mapping to merge under the fill-only-empty policy.
func Run(ctx context.Context, m *Manager, sectionID, texto string) (map[string]string, error) {
	section, ok := ByID(sectionID)
	if !ok {
		return nil, fmt.Errorf("AGENT_UNKNOWN_SECTION: %s", sectionID)
	}

	texto = strings.TrimSpace(texto)
	if texto == "" {
		return map[string]string{}, nil
	}

	// Free-text sections skip the model round trip or the JSON step.
	switch section.ID {
	case "evolucao":
		return map[string]string{"evolucao_notas": texto}, nil
	case "hmpa":
		raw, err := m.ExecutePrompt(ctx, section.ID, section.PromptID, texto)
		if err != nil {
			return nil, err
		}
		return map[string]string{"hmpa_reescrito": utils.CleanMarkdown(raw)}, nil
	}

	raw, err := m.ExecutePrompt(ctx, section.ID, section.PromptID, texto)
	if err != nil {
		return nil, err
	}

	parsed, err := utils.ExtractJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("AGENT_REPLY_INVALID: %s: %v", section.ID, err)
	}

	return section.mapReply(reply(parsed)), nil
}

// RunAll fans every section agent out over its pasted notes and merges the
// partial mappings. Sections with empty notes are skipped. Failures do not
// abort the others; they come back keyed by section id.
func RunAll(ctx context.Context, m *Manager, notas map[string]string) (map[string]string, map[string]error) {
	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		merged = map[string]string{}
		errs   = map[string]error{}
	)

	for _, section := range Sections {
		texto := strings.TrimSpace(notas[section.NotesKey])
		if texto == "" {
			continue
		}

		wg.Add(1)
		go func(id, texto string) {
			defer wg.Done()
			partial, err := Run(ctx, m, id, texto)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs[id] = err
				return
			}
			for k, v := range partial {
				merged[k] = v
			}
		}(section.ID, texto)
	}

	wg.Wait()
	return merged, errs
}
