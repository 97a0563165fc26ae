package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/ekraf-client/internal/application/ports"
)

const sessionSchema = `
CREATE TABLE IF NOT EXISTS client_sessions (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// SessionStore implementa ports.SessionStore sobre la tabla client_sessions.
type SessionStore struct {
	pool *pgxpool.Pool
	tx   *TxRunner
}

var _ ports.BatchSessionStore = (*SessionStore)(nil)

const upsertSession = `
	INSERT INTO client_sessions (key, value, updated_at) VALUES ($1, $2, NOW())
	ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

// NewSessionStore crea el store. Llamar EnsureSchema una vez al arrancar.
func NewSessionStore(pool *pgxpool.Pool) *SessionStore {
	return &SessionStore{pool: pool, tx: NewTxRunner(pool)}
}

// EnsureSchema crea la tabla si no existe.
func (s *SessionStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, sessionSchema); err != nil {
		return fmt.Errorf("crear client_sessions: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := s.pool.QueryRow(ctx, `SELECT value FROM client_sessions WHERE key = $1`, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("leer sesión %s: %w", key, err)
	}
	return v, true, nil
}

func (s *SessionStore) Set(ctx context.Context, key, value string) error {
	_, err := s.pool.Exec(ctx, upsertSession, key, value)
	if err != nil {
		return fmt.Errorf("guardar sesión %s: %w", key, err)
	}
	return nil
}

// SetMany escribe todas las claves en una sola transacción.
func (s *SessionStore) SetMany(ctx context.Context, values map[string]string) error {
	return s.tx.Run(ctx, func(tx pgx.Tx) error {
		for k, v := range values {
			if _, err := tx.Exec(ctx, upsertSession, k, v); err != nil {
				return fmt.Errorf("guardar sesión %s: %w", k, err)
			}
		}
		return nil
	})
}

func (s *SessionStore) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if _, err := s.pool.Exec(ctx, `DELETE FROM client_sessions WHERE key = ANY($1)`, keys); err != nil {
		return fmt.Errorf("borrar sesión: %w", err)
	}
	return nil
}
