package extract

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"prontuario/pkg/api/note"
	"prontuario/pkg/core/clean"
	"prontuario/pkg/core/parse"
	"prontuario/pkg/core/record"
)

// Handler exposes the deterministic parsers: lab panels, bedside controls
// and the systems reassessment block. No model call is involved; the text
// is parsed locally and merged into the note.
type Handler struct {
	State     *note.State
	sanitizer *clean.PasteSanitizer
}

// NewHandler creates a new extract handler
func NewHandler(state *note.State) *Handler {
	return &Handler{
		State:     state,
		sanitizer: clean.NewPasteSanitizer(),
	}
}

// Request carries the pasted text to parse.
type Request struct {
	Texto string `json:"texto"`
}

// Response reports what the parser produced and how much of it merged.
type Response struct {
	Parsed  map[string]string `json:"parsed"`
	Applied int               `json:"applied"`
}

func (h *Handler) run(w http.ResponseWriter, r *http.Request, notesKey string, parser func(string) map[string]string) {
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

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	texto, err := h.sanitizer.Sanitize(req.Texto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	parsed := parser(texto)

	var applied int
	h.State.With(func(n *record.Note, notas map[string]string) {
		applied = n.ApplyPartial(parsed)
		n.NormalizeDates()
		notas[notesKey] = texto
	})
	fmt.Printf("[EXTRACT] %s: %d parsed, %d applied\n", notesKey, len(parsed), applied)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Response{Parsed: parsed, Applied: applied})
}

// HandleLabs parses a pasted lab report into the dated lab columns.
func (h *Handler) HandleLabs(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, "laboratoriais_notas", func(texto string) map[string]string {
		return parse.Labs(texto, time.Now())
	})
}

// HandleControls parses pasted bedside controls into the three day blocks.
func (h *Handler) HandleControls(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, "controles_notas", func(texto string) map[string]string {
		return parse.Controls(texto, time.Now())
	})
}

// HandleSystems parses a pasted systems reassessment back into the form.
func (h *Handler) HandleSystems(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, "sistemas_notas", parse.Systems)
}
