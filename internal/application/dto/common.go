package dto

// Envelope es la envoltura estándar de las respuestas del API: {message, data, success?, error?}.
type Envelope[T any] struct {
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
	Success *bool  `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Page es la respuesta paginada de los listados públicos.
type Page[T any] struct {
	Message     string `json:"message,omitempty"`
	Data        []T    `json:"data"`
	CurrentPage int    `json:"currentPage"`
	TotalPages  int    `json:"totalPages"`
	Total       int    `json:"total,omitempty"`
}

// Message es la respuesta de operaciones sin payload (delete, forgot-password...).
type Message struct {
	Message string `json:"message"`
	Success *bool  `json:"success,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// PageRequest paginación para listados (page empieza en 1; 0 = valor del servidor).
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// DefaultPage aplica valores por defecto si Page/Limit son cero (lado servidor).
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// TotalPages calcula el número de páginas para total elementos.
func (p PageRequest) TotalPages(total int) int {
	if p.Limit <= 0 || total == 0 {
		return 0
	}
	return (total + p.Limit - 1) / p.Limit
}
