package entity

// BusinessCategory clasifica el negocio de un usuario y la categoría de un producto.
type BusinessCategory struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image,omitempty"`
	SubSectorID int64  `json:"sub_sector_id,omitempty"`
	Description string `json:"description,omitempty"`
}

// Level es el nivel (rol) de un usuario.
type Level struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SubSector agrupa categorías de negocio (subsektor ekonomi kreatif).
type SubSector struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug,omitempty"`
}
