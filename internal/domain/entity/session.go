package entity

// Session une el token de autenticación con el usuario que autentica. Vive hasta el logout.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Statistics son los contadores agregados del tablero; el servidor los calcula todos.
type Statistics struct {
	TotalUsers       int            `json:"total_users"`
	TotalProducts    int            `json:"total_products"`
	TotalArticles    int            `json:"total_articles"`
	UsersByLevel     map[string]int `json:"users_by_level,omitempty"`
	ProductsByStatus map[string]int `json:"products_by_status,omitempty"`
}

// Asset es el handle local de una imagen elegida para subir.
type Asset struct {
	URI      string `json:"uri"`
	FileName string `json:"fileName"`
	Type     string `json:"type"`
}

// Complete indica si el asset trae todos los metadatos necesarios para la subida.
func (a Asset) Complete() bool {
	return a.URI != "" && a.FileName != "" && a.Type != ""
}
