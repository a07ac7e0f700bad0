package domain

import (
	"time"

	pgvector "github.com/pgvector/pgvector-go"
)

const (
	SectionHeading   = "heading"
	SectionParagraph = "paragraph"
	SectionList      = "list"
)

// Article es una pieza del feed de insights con secciones ordenadas y
// actividades sugeridas.
type Article struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Subtitle      string          `json:"subtitle,omitempty"`
	Tag           string          `json:"tag,omitempty"`
	ReadTime      string          `json:"read_time,omitempty"`
	AuthorName    string          `json:"author_name,omitempty"`
	AuthorRole    string          `json:"author_role,omitempty"`
	AuthorAvatar  string          `json:"author_avatar,omitempty"`
	HeroImage     string          `json:"hero_image,omitempty"`
	MascotInsight string          `json:"mascot_insight,omitempty"`
	Embedding     pgvector.Vector `json:"-"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Section es un bloque de contenido del articulo. Kind es heading, paragraph
// o list; Items solo aplica a list.
type Section struct {
	ID        string   `json:"id"`
	ArticleID string   `json:"article_id"`
	Position  int      `json:"position"`
	Kind      string   `json:"kind"`
	Text      string   `json:"text,omitempty"`
	Items     []string `json:"items,omitempty"`
}

// Activity es una actividad sugerida por el articulo. El estado checked que
// el cliente muta es efimero y nunca se persiste.
type Activity struct {
	ID             string `json:"id"`
	ArticleID      string `json:"article_id"`
	Text           string `json:"text"`
	DefaultChecked bool   `json:"default_checked"`
}
