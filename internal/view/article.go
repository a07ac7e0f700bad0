package view

import "gennova/internal/domain"

// ActivityItem es una actividad sugerida con su estado de check efimero.
type ActivityItem struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// ArticleView es el articulo listo para render: secciones en orden y
// actividades con el check inicial. Los toggles viven solo en la vista.
type ArticleView struct {
	Article    domain.Article   `json:"article"`
	Sections   []domain.Section `json:"sections"`
	Activities []ActivityItem   `json:"activities"`
}

// NewArticleView arma la vista sembrando el check por defecto de cada
// actividad.
func NewArticleView(article domain.Article, sections []domain.Section, activities []domain.Activity) *ArticleView {
	items := make([]ActivityItem, 0, len(activities))
	for _, a := range activities {
		items = append(items, ActivityItem{ID: a.ID, Text: a.Text, Checked: a.DefaultChecked})
	}
	return &ArticleView{Article: article, Sections: sections, Activities: items}
}

// ToggleActivity invierte el check de una actividad. El cambio no se persiste.
func (v *ArticleView) ToggleActivity(id string) {
	for i := range v.Activities {
		if v.Activities[i].ID == id {
			v.Activities[i].Checked = !v.Activities[i].Checked
			return
		}
	}
}
