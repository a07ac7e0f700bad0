package domain

import "time"

// ResultLevel es el nivel cualitativo de un fenotipo, ordenado de mayor a
// menor: GIFTED > EXCELLENT > STRONG > POTENTIAL > NORMAL.
type ResultLevel string

const (
	LevelGifted    ResultLevel = "GIFTED"
	LevelExcellent ResultLevel = "EXCELLENT"
	LevelStrong    ResultLevel = "STRONG"
	LevelPotential ResultLevel = "POTENTIAL"
	LevelNormal    ResultLevel = "NORMAL"
)

var resultLevelRank = map[ResultLevel]int{
	LevelGifted:    4,
	LevelExcellent: 3,
	LevelStrong:    2,
	LevelPotential: 1,
	LevelNormal:    0,
}

// Rank devuelve la posicion ordinal del nivel; niveles desconocidos valen 0.
func (l ResultLevel) Rank() int {
	return resultLevelRank[l]
}

// Phenotype vincula un perfil con un rasgo y su resultado computado.
// Una fila por (perfil, rasgo).
type Phenotype struct {
	ID          string      `json:"id"`
	ProfileID   string      `json:"profile_id"`
	TraitID     string      `json:"trait_id"`
	Trait       Trait       `json:"trait"`
	ResultLevel ResultLevel `json:"result_level"`
	Score       int         `json:"score"`
	DisplayText string      `json:"display_text,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Description prefiere el texto computado del resultado sobre la descripcion
// generica de la taxonomia.
func (p Phenotype) Description() string {
	if p.DisplayText != "" {
		return p.DisplayText
	}
	return p.Trait.Description
}
