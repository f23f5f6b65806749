package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"prontuario/pkg/core/record"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionRepo persists saved progress-note sessions. A session is the note
// snapshot plus the raw pasted texts, so a resident can reopen yesterday's
// record tomorrow and keep evolving it.
type SessionRepo struct {
	pool *pgxpool.Pool
}

// SessionSummary is the listing row, without payloads.
type SessionSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Leito     string    `json:"leito"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Session is a fully loaded saved session.
type Session struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Leito     string            `json:"leito"`
	Snapshot  record.Snapshot   `json:"snapshot"`
	Notas     map[string]string `json:"notas"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(pool *pgxpool.Pool) *SessionRepo {
	return &SessionRepo{pool: pool}
}

// SaveSession upserts a session. An empty id means a new session and gets a
// fresh UUID; the stored id is returned either way.
func (r *SessionRepo) SaveSession(ctx context.Context, id, name, leito string, snapshot record.Snapshot, notas map[string]string) (string, error) {
	if r.pool == nil {
		return "", fmt.Errorf("database pool not configured")
	}

	if id == "" {
		id = uuid.New().String()
	} else if _, err := uuid.Parse(id); err != nil {
		return "", fmt.Errorf("invalid session id %q: %w", id, err)
	}

	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	notasJSON, err := json.Marshal(notas)
	if err != nil {
		return "", fmt.Errorf("failed to marshal pasted notes: %w", err)
	}

	query := `
		INSERT INTO note_sessions (id, name, leito, snapshot, notas)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id)
		DO UPDATE SET
			name = EXCLUDED.name,
			leito = EXCLUDED.leito,
			snapshot = EXCLUDED.snapshot,
			notas = EXCLUDED.notas,
			updated_at = NOW()
		RETURNING id
	`

	var stored string
	if err := r.pool.QueryRow(ctx, query, id, name, leito, snapshotJSON, notasJSON).Scan(&stored); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}
	return stored, nil
}

// GetSession loads one session by id.
func (r *SessionRepo) GetSession(ctx context.Context, id string) (*Session, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("database pool not configured")
	}

	query := `
		SELECT id, name, leito, snapshot, notas, created_at, updated_at
		FROM note_sessions
		WHERE id = $1
	`

	var (
		s            Session
		snapshotJSON []byte
		notasJSON    []byte
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Leito, &snapshotJSON, &notasJSON, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if len(snapshotJSON) > 0 {
		if err := json.Unmarshal(snapshotJSON, &s.Snapshot); err != nil {
			return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
		}
	}
	s.Notas = map[string]string{}
	if len(notasJSON) > 0 {
		json.Unmarshal(notasJSON, &s.Notas)
	}
	return &s, nil
}

// ListSessions returns summaries of every saved session, newest first.
func (r *SessionRepo) ListSessions(ctx context.Context) ([]SessionSummary, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("database pool not configured")
	}

	query := `
		SELECT id, name, leito, updated_at
		FROM note_sessions
		ORDER BY updated_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionSummary
	for rows.Next() {
		var s SessionSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Leito, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		out = append(out, s)
	}
	return out, nil
}

// DeleteSession removes a saved session.
func (r *SessionRepo) DeleteSession(ctx context.Context, id string) error {
	if r.pool == nil {
		return fmt.Errorf("database pool not configured")
	}
	if _, err := r.pool.Exec(ctx, "DELETE FROM note_sessions WHERE id = $1", id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// SessionExists checks if a session id is present.
func (r *SessionRepo) SessionExists(ctx context.Context, id string) bool {
	if r.pool == nil {
		return false
	}
	query := `SELECT 1 FROM note_sessions WHERE id = $1 LIMIT 1`
	var exists int
	err := r.pool.QueryRow(ctx, query, id).Scan(&exists)
	return err == nil
}
