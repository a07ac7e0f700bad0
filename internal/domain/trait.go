package domain

const (
	TraitCategoryTalent    = "Talent"
	TraitCategoryNutrition = "Nutrition"
	TraitCategoryHealth    = "Health"
)

// DefaultIconName se usa cuando la taxonomia no define un icono.
const DefaultIconName = "dna"

// Trait es una entrada de la taxonomia de rasgos. Definida por el backend;
// el cliente nunca la muta.
type Trait struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IconName    string `json:"icon_name,omitempty"`
}

// Icon devuelve el icono del rasgo o el icono por defecto.
func (t Trait) Icon() string {
	if t.IconName == "" {
		return DefaultIconName
	}
	return t.IconName
}
