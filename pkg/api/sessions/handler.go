package sessions

import (
	"encoding/json"
	"fmt"
	"net/http"

	"prontuario/pkg/api/note"
	"prontuario/pkg/core/record"
	"prontuario/pkg/core/store"
)

// Handler persists and restores editing sessions through the database.
// Every endpoint degrades to 503 when no pool is configured, so the app
// still works fully in memory without DATABASE_URL.
type Handler struct {
	State *note.State
	Repo  *store.SessionRepo
}

// NewHandler creates a new sessions handler
func NewHandler(state *note.State, repo *store.SessionRepo) *Handler {
	return &Handler{State: state, Repo: repo}
}

func cors(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func (h *Handler) unavailable(w http.ResponseWriter) bool {
	if h.Repo == nil {
		http.Error(w, "Session storage not configured", http.StatusServiceUnavailable)
		return true
	}
	return false
}

// SaveRequest names the session being saved. An empty id creates a new one.
type SaveRequest struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// HandleSave stores the current session.
func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	cors(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.unavailable(w) {
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	snap, notas := h.State.Export()

	var name, leito string
	h.State.With(func(n *record.Note, _ map[string]string) {
		name = req.Name
		if name == "" {
			name = n.Text("nome")
		}
		leito = n.Text("leito")
	})

	id, err := h.Repo.SaveSession(r.Context(), req.ID, name, leito, snap, notas)
	if err != nil {
		fmt.Printf("[ERROR] Session save failed: %v\n", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	fmt.Printf("[SESSIONS] Saved session %s (%s)\n", id, name)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"id": id})
}

// HandleLoad restores a stored session into the editor.
func (h *Handler) HandleLoad(w http.ResponseWriter, r *http.Request) {
	cors(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.unavailable(w) {
		return
	}

	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	session, err := h.Repo.GetSession(r.Context(), req.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	h.State.Import(session.Snapshot, session.Notas)
	fmt.Printf("[SESSIONS] Loaded session %s (%s)\n", session.ID, session.Name)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"id": session.ID, "name": session.Name})
}

// HandleList returns summaries of all saved sessions.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	cors(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if h.unavailable(w) {
		return
	}

	list, err := h.Repo.ListSessions(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []store.SessionSummary{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// HandleDelete removes a saved session.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	cors(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" && r.Method != "DELETE" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.unavailable(w) {
		return
	}

	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Repo.DeleteSession(r.Context(), req.ID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	fmt.Printf("[SESSIONS] Deleted session %s\n", req.ID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
