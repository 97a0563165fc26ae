package entity

import "time"

// Niveles (roles) válidos para User; cada uno tiene su propia ruta de login.
const (
	LevelSuperadmin = "superadmin"
	LevelAdmin      = "admin"
	LevelUMKM       = "umkm"
)

// ValidLevel indica si level es uno de los niveles aceptados por /auth/login/{level}.
func ValidLevel(level string) bool {
	switch level {
	case LevelSuperadmin, LevelAdmin, LevelUMKM:
		return true
	}
	return false
}

// Géneros aceptados por el registro.
const (
	GenderMale   = "Laki-laki"
	GenderFemale = "Perempuan"
)

// Estado del negocio declarado al registrarse.
const (
	BusinessStatusNew      = "BARU"
	BusinessStatusExisting = "SUDAH_LAMA"
)

// User representa un usuario del marketplace (normalmente dueño de una UMKM).
type User struct {
	ID                 int64             `json:"id"`
	Name               string            `json:"name"`
	Username           string            `json:"username"`
	Email              string            `json:"email"`
	PhoneNumber        string            `json:"phone_number"`
	Gender             string            `json:"gender"`
	BusinessName       string            `json:"business_name,omitempty"`
	BusinessStatus     string            `json:"business_status,omitempty"`
	LevelID            int64             `json:"level_id"`
	BusinessCategoryID int64             `json:"business_category_id,omitempty"`
	VerifiedAt         *time.Time        `json:"verified_at,omitempty"`
	Level              *Level            `json:"level,omitempty"`
	BusinessCategory   *BusinessCategory `json:"business_category,omitempty"`
}

// LevelName devuelve el nombre del nivel embebido, o "" si la respuesta no lo trajo.
func (u User) LevelName() string {
	if u.Level == nil {
		return ""
	}
	return u.Level.Name
}
