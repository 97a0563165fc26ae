package entity

import "time"

// Article es contenido editorial publicado en el portal.
type Article struct {
	ID                int64          `json:"id"`
	Title             string         `json:"title"`
	Slug              string         `json:"slug,omitempty"`
	Thumbnail         string         `json:"thumbnail"`
	Content           string         `json:"content"`
	IsFeatured        bool           `json:"is_featured"`
	ArticleCategoryID string         `json:"artikel_kategori_id,omitempty"`
	AuthorID          int64          `json:"author_id,omitempty"`
	Author            *ArticleAuthor `json:"author,omitempty"`
	CreatedAt         *time.Time     `json:"created_at,omitempty"`
}

// ArticleAuthor es la vista reducida del autor embebida en un artículo.
type ArticleAuthor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
