package note

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"prontuario/pkg/core/record"
	"prontuario/pkg/core/render"
	"prontuario/pkg/core/utils"
)

// Handler holds dependencies for note endpoints
type Handler struct {
	State *State
}

// NewHandler creates a new note handler
func NewHandler(state *State) *Handler {
	return &Handler{State: state}
}

func cors(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// HandleRender returns the rendered progress note as plain text.
func (h *Handler) HandleRender(w http.ResponseWriter, r *http.Request) {
	cors(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var document string
	h.State.With(func(n *record.Note, _ map[string]string) {
		document = render.Render(n)
	})

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, document)
}

// HandlePreview returns the rendered note converted to HTML for the
// side-by-side preview pane.
func (h *Handler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	cors(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var document string
	h.State.With(func(n *record.Note, _ map[string]string) {
		document = render.Render(n)
	})

	html, err := utils.RenderHTML(document)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"html": html})
}

// FieldRequest sets one field value.
type FieldRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// HandleField reads (GET) or writes (POST) a single field.
func (h *Handler) HandleField(w http.ResponseWriter, r *http.Request) {
	cors(w)
	w.Header().Set("Content-Type", "application/json")

	switch r.Method {
	case "OPTIONS":
		w.WriteHeader(http.StatusOK)
	case "GET":
		key := r.URL.Query().Get("key")
		var (
			kind  record.Kind
			known bool
			value string
		)
		h.State.With(func(n *record.Note, _ map[string]string) {
			kind, known = n.KindOf(key)
			switch kind {
			case record.KindText:
				value = n.Text(key)
			case record.KindChoice:
				value, _ = n.Choice(key)
			case record.KindFlag:
				if n.Flag(key) {
					value = "Sim"
				}
			}
		})
		if !known {
			http.Error(w, fmt.Sprintf("Unknown field: %s", key), http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"key": key, "value": value})
	case "POST":
		var req FieldRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		var known bool
		h.State.With(func(n *record.Note, _ map[string]string) {
			kind, ok := n.KindOf(req.Key)
			known = ok
			if !ok {
				return
			}
			switch kind {
			case record.KindText:
				n.SetText(req.Key, req.Value)
			case record.KindChoice:
				if req.Value == "" {
					n.ClearChoice(req.Key)
				} else {
					n.SetChoice(req.Key, req.Value)
				}
			case record.KindFlag:
				v := strings.ToLower(strings.TrimSpace(req.Value))
				n.SetFlag(req.Key, v == "sim" || v == "true" || v == "1")
			}
		})
		if !known {
			http.Error(w, fmt.Sprintf("Unknown field: %s", req.Key), http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// OrderRequest replaces one section's display ordering.
type OrderRequest struct {
	Section string `json:"section"`
	IDs     []int  `json:"ids"`
}

// HandleOrder sets the display order of a reorderable section.
func (h *Handler) HandleOrder(w http.ResponseWriter, r *http.Request) {
	cors(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var ok bool
	h.State.With(func(n *record.Note, _ map[string]string) {
		ok = n.SetOrder(req.Section, req.IDs)
	})
	if !ok {
		http.Error(w, fmt.Sprintf("Invalid ordering for %s", req.Section), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// HandleReset clears the whole session.
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	cors(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.State.Reset()
	fmt.Printf("[NOTE] Session cleared\n")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// HandleAdvanceDay shifts labs, controls and daily system values one day
// back and clears today's slots.
func (h *Handler) HandleAdvanceDay(w http.ResponseWriter, r *http.Request) {
	cors(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.State.With(func(n *record.Note, _ map[string]string) {
		n.AdvanceDay()
	})
	fmt.Printf("[NOTE] Advanced to next day\n")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// HandleSnapshot exports (GET) or restores (POST) the note state.
func (h *Handler) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	cors(w)
	w.Header().Set("Content-Type", "application/json")

	switch r.Method {
	case "OPTIONS":
		w.WriteHeader(http.StatusOK)
	case "GET":
		snap, notas := h.State.Export()
		json.NewEncoder(w).Encode(map[string]interface{}{
			"snapshot": snap,
			"notas":    notas,
		})
	case "POST":
		var req struct {
			Snapshot record.Snapshot   `json:"snapshot"`
			Notas    map[string]string `json:"notas"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		h.State.Import(req.Snapshot, req.Notas)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
