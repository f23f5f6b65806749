package sections

import (
	"encoding/json"
	"fmt"
	"net/http"

	"prontuario/pkg/api/note"
	"prontuario/pkg/core/agent"
	"prontuario/pkg/core/clean"
	"prontuario/pkg/core/record"
)

// Handler runs the section extraction agents and merges their output into
// the note under the fill-only-empty policy.
type Handler struct {
	State     *note.State
	AgentMgr  *agent.Manager
	sanitizer *clean.PasteSanitizer
}

// NewHandler creates a new sections handler
func NewHandler(state *note.State, mgr *agent.Manager) *Handler {
	return &Handler{
		State:     state,
		AgentMgr:  mgr,
		sanitizer: clean.NewPasteSanitizer(),
	}
}

// RunRequest runs one section agent over pasted text.
type RunRequest struct {
	Section string `json:"section"`
	Texto   string `json:"texto"`
}

// RunResponse reports the extracted partial mapping and how much merged.
type RunResponse struct {
	Partial map[string]string `json:"partial"`
	Applied int               `json:"applied"`
}

// HandleRun executes a single section agent.
func (h *Handler) HandleRun(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	section, ok := agent.ByID(req.Section)
	if !ok {
		http.Error(w, fmt.Sprintf("Unknown section: %s", req.Section), http.StatusNotFound)
		return
	}

	texto, err := h.sanitizer.Sanitize(req.Texto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fmt.Printf("[SECTIONS] Running %s agent (%d chars)\n", section.ID, len(texto))
	partial, err := agent.Run(r.Context(), h.AgentMgr, section.ID, texto)
	if err != nil {
		fmt.Printf("[ERROR] Section %s failed: %v\n", section.ID, err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	var applied int
	h.State.With(func(n *record.Note, notas map[string]string) {
		applied = n.ApplyPartial(partial)
		n.SanitizeChoices()
		n.NormalizeDates()
		notas[section.NotesKey] = texto
	})
	fmt.Printf("[SECTIONS] %s: %d extracted, %d applied\n", section.ID, len(partial), applied)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(RunResponse{Partial: partial, Applied: applied})
}

// RunAllRequest carries pasted texts keyed by section notes key. Sections
// absent or empty are skipped.
type RunAllRequest struct {
	Notas map[string]string `json:"notas"`
}

// RunAllResponse aggregates the fan-out result.
type RunAllResponse struct {
	Partial map[string]string `json:"partial"`
	Applied int               `json:"applied"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// HandleRunAll fans every section agent out concurrently and merges all
// partial mappings at once.
func (h *Handler) HandleRunAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RunAllRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	notas := map[string]string{}
	for key, raw := range req.Notas {
		texto, err := h.sanitizer.Sanitize(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		notas[key] = texto
	}

	fmt.Printf("[SECTIONS] Running all agents over %d pasted texts\n", len(notas))
	partial, errs := agent.RunAll(r.Context(), h.AgentMgr, notas)

	var applied int
	h.State.With(func(n *record.Note, stored map[string]string) {
		applied = n.ApplyPartial(partial)
		n.SanitizeChoices()
		n.NormalizeDates()
		for key, texto := range notas {
			if texto != "" {
				stored[key] = texto
			}
		}
	})

	resp := RunAllResponse{Partial: partial, Applied: applied}
	if len(errs) > 0 {
		resp.Errors = map[string]string{}
		for id, err := range errs {
			resp.Errors[id] = err.Error()
			fmt.Printf("[ERROR] Section %s failed: %v\n", id, err)
		}
	}
	fmt.Printf("[SECTIONS] Fan-out done: %d extracted, %d applied, %d failed\n", len(partial), applied, len(resp.Errors))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// HandleList returns the section catalog for the form UI.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	type entry struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		NotesKey string `json:"notes_key"`
	}
	out := []entry{}
	for _, s := range agent.Sections {
		out = append(out, entry{ID: s.ID, Name: s.Name, NotesKey: s.NotesKey})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}
