package view

import (
	"time"

	"gennova/internal/domain"
)

// DataMode define si el dashboard muestra solo datos reales o sustituye
// series de muestra cuando no hay resultados. Se inyecta en la construccion;
// nunca se infiere de la ausencia de filas.
type DataMode string

const (
	ModeLive DataMode = "live"
	ModeDemo DataMode = "demo"
)

// ParseDataMode normaliza el modo; valores desconocidos caen en live.
func ParseDataMode(raw string) DataMode {
	if DataMode(raw) == ModeDemo {
		return ModeDemo
	}
	return ModeLive
}

// RadarPoint es un punto del grafico de radar de talentos.
type RadarPoint struct {
	Label    string `json:"label"`
	Value    int    `json:"value"`
	ScaleMax int    `json:"scale_max"`
}

// SampleRadar devuelve la serie ilustrativa de 7 puntos que el modo demo
// sustituye cuando un perfil aun no tiene fenotipos.
func SampleRadar() []RadarPoint {
	return []RadarPoint{
		{Label: "Music Ability", Value: 98, ScaleMax: 100},
		{Label: "Intelligence", Value: 92, ScaleMax: 100},
		{Label: "Memory", Value: 85, ScaleMax: 100},
		{Label: "Creativity", Value: 95, ScaleMax: 100},
		{Label: "Endurance Sport", Value: 78, ScaleMax: 100},
		{Label: "Power Sport", Value: 60, ScaleMax: 100},
		{Label: "Sporting Ability", Value: 88, ScaleMax: 100},
	}
}

// RadarSeries construye un punto por cada fenotipo de categoria Talent.
// Sin fenotipos, el modo demo sustituye la muestra fija; el modo live
// devuelve una serie vacia para no enmascarar un resultado vacio genuino.
func RadarSeries(phenos []domain.Phenotype, mode DataMode) []RadarPoint {
	var points []RadarPoint
	for _, p := range phenos {
		if p.Trait.Category != domain.TraitCategoryTalent {
			continue
		}
		points = append(points, RadarPoint{
			Label:    p.Trait.Name,
			Value:    p.Score,
			ScaleMax: 100,
		})
	}
	if len(points) == 0 && mode == ModeDemo {
		return SampleRadar()
	}
	return points
}

// TraitCard es la forma lista para mostrar de un fenotipo.
type TraitCard struct {
	ID          string             `json:"id"`
	Category    string             `json:"category"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Level       domain.ResultLevel `json:"level"`
	Score       int                `json:"score"`
	Icon        string             `json:"icon"`
}

// TraitCards mapea filas de fenotipos a tarjetas, aplicando los fallbacks
// documentados (icono por defecto, descripcion de taxonomia).
func TraitCards(phenos []domain.Phenotype) []TraitCard {
	cards := make([]TraitCard, 0, len(phenos))
	for _, p := range phenos {
		cards = append(cards, TraitCard{
			ID:          p.ID,
			Category:    p.Trait.Category,
			Name:        p.Trait.Name,
			Description: p.Description(),
			Level:       p.ResultLevel,
			Score:       p.Score,
			Icon:        p.Trait.Icon(),
		})
	}
	return cards
}

// FilterCategory devuelve las tarjetas de una categoria, en el orden de
// entrada.
func FilterCategory(cards []TraitCard, category string) []TraitCard {
	var out []TraitCard
	for _, c := range cards {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out
}

// TopTraitIndex elige la posicion de la tarjeta de mayor score. Los empates
// los gana el primer elemento en orden de entrada; el criterio es arbitrario
// y queda fijado aqui.
func TopTraitIndex(cards []TraitCard) (int, bool) {
	if len(cards) == 0 {
		return 0, false
	}
	top := 0
	for i, c := range cards[1:] {
		if c.Score > cards[top].Score {
			top = i + 1
		}
	}
	return top, true
}

// OtherTraits devuelve las tarjetas restantes tras extraer la principal por
// posicion. Excluir por posicion y no por id evita descartar tarjetas con ids
// repetidos o vacios.
func OtherTraits(cards []TraitCard, topIndex int) []TraitCard {
	var out []TraitCard
	for i, c := range cards {
		if i == topIndex {
			continue
		}
		out = append(out, c)
	}
	return out
}

// TimelineStep es un paso del timeline de seguimiento del kit.
type TimelineStep struct {
	Title   string     `json:"title"`
	Done    bool       `json:"done"`
	Current bool       `json:"current"`
	At      *time.Time `json:"at,omitempty"`
}

// KitTimeline proyecta el estado del kit sobre los cuatro pasos fijos del
// pipeline. Un kit ausente se muestra todo pendiente.
func KitTimeline(kit *domain.Kit) []TimelineStep {
	status := domain.KitStatusPending
	var activated, laboratory, completed *time.Time
	if kit != nil {
		status = domain.ParseKitStatus(string(kit.Status))
		activated = kit.ActivatedAt
		laboratory = kit.LaboratoryAt
		completed = kit.CompletedAt
	}

	steps := []TimelineStep{
		{Title: "Kit Activated", Done: kit != nil, At: activated},
		{Title: "Sample Received", Done: status.Reached(domain.KitStatusLaboratory), At: laboratory},
		{Title: "Lab Processing", Done: status.Reached(domain.KitStatusCompleted)},
		{Title: "Result Ready", Done: status == domain.KitStatusCompleted, At: completed},
	}
	if status == domain.KitStatusProcessing {
		steps[2].Current = true
	}
	return steps
}
