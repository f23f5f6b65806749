package note

import (
	"sync"

	"prontuario/pkg/core/record"
)

// State is the in-memory editing session shared by every handler: the
// current note plus the raw pasted texts per section. One instance serves
// the whole process, guarded by its mutex.
type State struct {
	mu    sync.Mutex
	note  *record.Note
	notas map[string]string
}

// NewState creates a fresh session with an empty note.
func NewState() *State {
	return &State{
		note:  record.New(),
		notas: map[string]string{},
	}
}

// With runs fn while holding the session lock.
func (s *State) With(fn func(n *record.Note, notas map[string]string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.note, s.notas)
}

// Reset clears the note and the pasted texts.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.note.Reset()
	s.notas = map[string]string{}
}

// Export captures the session for persistence.
func (s *State) Export() (record.Snapshot, map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	notas := make(map[string]string, len(s.notas))
	for k, v := range s.notas {
		notas[k] = v
	}
	return s.note.Snapshot(), notas
}

// Import replaces the session with a stored snapshot and pasted texts.
func (s *State) Import(snap record.Snapshot, notas map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.note.Restore(snap)
	s.notas = map[string]string{}
	for k, v := range notas {
		s.notas[k] = v
	}
}
