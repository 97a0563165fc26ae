package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/ekraf-client/internal/application/ports"
	"github.com/jhoicas/ekraf-client/internal/domain/entity"
	"github.com/jhoicas/ekraf-client/pkg/logger"
)

// Claves lógicas dentro del SessionStore.
const (
	TokenKey = "userToken"
	UserKey  = "userData"
)

// Manager es el objeto de sesión explícito que se inyecta en los casos de uso.
// Token y usuario se escriben juntos en el login y se borran juntos en el logout.
type Manager struct {
	store ports.SessionStore
	log   *logger.Logger
}

var _ ports.TokenSource = (*Manager)(nil)

// NewManager construye el manager sobre un store concreto (memoria, archivo, redis, postgres).
func NewManager(store ports.SessionStore, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop()
	}
	return &Manager{store: store, log: log.Named("session")}
}

// Save persiste token y usuario de una sesión recién creada. Si el store admite escrituras
// en lote, ambas claves se escriben juntas. Una sesión sin usuario borra el de la anterior,
// y si la segunda escritura falla el store queda vacío: nunca token nuevo con usuario viejo.
func (m *Manager) Save(ctx context.Context, s entity.Session) error {
	if s.User == nil {
		if err := m.store.Remove(ctx, UserKey); err != nil {
			return fmt.Errorf("session: borrar usuario anterior: %w", err)
		}
		if err := m.SetToken(ctx, s.Token); err != nil {
			m.rollback(ctx)
			return err
		}
		return nil
	}
	raw, err := json.Marshal(s.User)
	if err != nil {
		return fmt.Errorf("session: serializar usuario: %w", err)
	}
	if batch, ok := m.store.(ports.BatchSessionStore); ok {
		if err := batch.SetMany(ctx, map[string]string{TokenKey: s.Token, UserKey: string(raw)}); err != nil {
			return fmt.Errorf("session: guardar: %w", err)
		}
	} else {
		if err := m.SetToken(ctx, s.Token); err != nil {
			m.rollback(ctx)
			return err
		}
		if err := m.store.Set(ctx, UserKey, string(raw)); err != nil {
			m.rollback(ctx)
			return fmt.Errorf("session: guardar usuario: %w", err)
		}
	}
	m.log.Debug().Int64("user_id", s.User.ID).Msg("sesión guardada")
	return nil
}

// rollback deja el store sin sesión tras una escritura a medias.
func (m *Manager) rollback(ctx context.Context) {
	if err := m.Clear(ctx); err != nil {
		m.log.Warn().Err(err).Msg("no se pudo limpiar una sesión a medias")
	}
}

// Clear elimina token y usuario.
func (m *Manager) Clear(ctx context.Context) error {
	if err := m.store.Remove(ctx, TokenKey, UserKey); err != nil {
		return fmt.Errorf("session: limpiar: %w", err)
	}
	return nil
}

// Token implementa ports.TokenSource. Un fallo del store se trata como "sin token"
// para que las llamadas públicas sigan funcionando.
func (m *Manager) Token(ctx context.Context) (string, error) {
	v, ok, err := m.store.Get(ctx, TokenKey)
	if err != nil {
		m.log.Warn().Err(err).Msg("no se pudo leer el token de sesión")
		return "", nil
	}
	if !ok {
		return "", nil
	}
	return v, nil
}

// SetToken guarda el token manualmente.
func (m *Manager) SetToken(ctx context.Context, token string) error {
	if err := m.store.Set(ctx, TokenKey, token); err != nil {
		return fmt.Errorf("session: guardar token: %w", err)
	}
	return nil
}

// User devuelve el último usuario guardado, o nil si no hay.
func (m *Manager) User(ctx context.Context) (*entity.User, error) {
	v, ok, err := m.store.Get(ctx, UserKey)
	if err != nil {
		return nil, fmt.Errorf("session: leer usuario: %w", err)
	}
	if !ok || v == "" {
		return nil, nil
	}
	var u entity.User
	if err := json.Unmarshal([]byte(v), &u); err != nil {
		return nil, fmt.Errorf("session: usuario corrupto: %w", err)
	}
	return &u, nil
}

// SetUser guarda el usuario serializado como JSON.
func (m *Manager) SetUser(ctx context.Context, u *entity.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("session: serializar usuario: %w", err)
	}
	if err := m.store.Set(ctx, UserKey, string(b)); err != nil {
		return fmt.Errorf("session: guardar usuario: %w", err)
	}
	return nil
}

// Current devuelve la sesión completa, o nil si no hay token.
func (m *Manager) Current(ctx context.Context) (*entity.Session, error) {
	tok, err := m.Token(ctx)
	if err != nil || tok == "" {
		return nil, err
	}
	u, err := m.User(ctx)
	if err != nil {
		return nil, err
	}
	return &entity.Session{Token: tok, User: u}, nil
}

// IsAuthenticated indica si hay un token guardado.
func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	tok, _ := m.Token(ctx)
	return tok != ""
}
