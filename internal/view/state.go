package view

// Tab identifica las pestañas de la navegacion inferior.
type Tab string

const (
	TabHome    Tab = "home"
	TabReports Tab = "reports"
	TabAlerts  Tab = "alerts"
	TabProfile Tab = "profile"
)

// ParseTab normaliza una pestaña; valores desconocidos caen en home.
func ParseTab(raw string) Tab {
	switch Tab(raw) {
	case TabReports, TabAlerts, TabProfile:
		return Tab(raw)
	default:
		return TabHome
	}
}

// ScreenKind etiqueta la pantalla completa activa.
type ScreenKind string

const (
	ScreenLoading        ScreenKind = "loading"
	ScreenLogin          ScreenKind = "login"
	ScreenArticleDetail  ScreenKind = "article_detail"
	ScreenSubTraitDetail ScreenKind = "subtrait_detail"
	ScreenTraitDetail    ScreenKind = "trait_detail"
	ScreenHome           ScreenKind = "home"
	ScreenReports        ScreenKind = "reports"
	ScreenAlerts         ScreenKind = "alerts"
	ScreenProfile        ScreenKind = "profile"
)

// Screen es el valor discriminado que describe que renderizar.
type Screen struct {
	Kind      ScreenKind
	Trait     *TraitCard
	SubTrait  string
	ArticleID string
	ProfileID string
}

// AuthPhase refleja el estado del proveedor de identidad.
type AuthPhase int

const (
	AuthLoading AuthPhase = iota
	AuthSignedOut
	AuthSignedIn
)

// FetchToken marca la generacion de navegacion bajo la cual se lanzo un fetch.
// Una respuesta cuyo token ya no coincide debe descartarse.
type FetchToken uint64

// Controller decide de forma determinista la pantalla activa a partir de las
// selecciones de navegacion. Nunca falla: la ausencia de datos la resuelve la
// pantalla, no el controlador.
type Controller struct {
	phase AuthPhase
	tab   Tab

	selectedTrait    *TraitCard
	selectedSubTrait string
	selectedArticle  string

	profileID string
	linking   bool
	tracking  bool

	gen uint64
}

func NewController() *Controller {
	return &Controller{phase: AuthLoading, tab: TabHome}
}

// SetPhase actualiza el estado de autenticacion. Pasar a signed-out descarta
// toda la navegacion acumulada.
func (c *Controller) SetPhase(phase AuthPhase) {
	if c.phase == phase {
		return
	}
	c.phase = phase
	if phase != AuthSignedIn {
		c.tab = TabHome
		c.clearSelections()
		c.linking = false
		c.tracking = false
		c.profileID = ""
	}
	c.gen++
}

// Screen elige exactamente una pantalla, en orden estricto de prioridad:
// pre-auth, articulo, sub-rasgo, rasgo y por ultimo la pestaña activa.
func (c *Controller) Screen() Screen {
	switch c.phase {
	case AuthLoading:
		return Screen{Kind: ScreenLoading}
	case AuthSignedOut:
		return Screen{Kind: ScreenLogin}
	}

	if c.selectedArticle != "" {
		return Screen{Kind: ScreenArticleDetail, ArticleID: c.selectedArticle}
	}
	if c.selectedSubTrait != "" {
		return Screen{Kind: ScreenSubTraitDetail, SubTrait: c.selectedSubTrait, ProfileID: c.profileID}
	}
	if c.selectedTrait != nil {
		return Screen{Kind: ScreenTraitDetail, Trait: c.selectedTrait}
	}

	switch c.tab {
	case TabReports:
		return Screen{Kind: ScreenReports}
	case TabAlerts:
		return Screen{Kind: ScreenAlerts}
	case TabProfile:
		return Screen{Kind: ScreenProfile}
	default:
		return Screen{Kind: ScreenHome, ProfileID: c.profileID}
	}
}

// BottomNavVisible deriva la visibilidad de la barra inferior de la etiqueta
// de pantalla en lugar de duplicar booleanos.
func (c *Controller) BottomNavVisible() bool {
	switch c.Screen().Kind {
	case ScreenHome, ScreenReports, ScreenAlerts, ScreenProfile, ScreenSubTraitDetail:
		return true
	default:
		return false
	}
}

// SelectTab cambia la pestaña activa y limpia atomicamente las tres
// selecciones profundas (rasgo, sub-rasgo, articulo).
func (c *Controller) SelectTab(tab Tab) {
	c.tab = ParseTab(string(tab))
	c.clearSelections()
	c.gen++
}

func (c *Controller) ActiveTab() Tab { return c.tab }

// OpenTrait abre la pantalla de detalle del grupo de rasgos.
func (c *Controller) OpenTrait(card TraitCard) {
	c.selectedTrait = &card
	c.gen++
}

// OpenSubTrait abre el detalle de un sub-rasgo.
func (c *Controller) OpenSubTrait(name string) {
	c.selectedSubTrait = name
	c.gen++
}

// OpenArticle abre el detalle de un articulo (pantalla completa).
func (c *Controller) OpenArticle(id string) {
	c.selectedArticle = id
	c.gen++
}

// Back cierra la seleccion mas profunda y devuelve false si ya no habia nada
// que cerrar.
func (c *Controller) Back() bool {
	switch {
	case c.selectedArticle != "":
		c.selectedArticle = ""
	case c.selectedSubTrait != "":
		c.selectedSubTrait = ""
	case c.selectedTrait != nil:
		c.selectedTrait = nil
	default:
		return false
	}
	c.gen++
	return true
}

// SelectProfile cambia el perfil de ADN activo.
func (c *Controller) SelectProfile(id string) {
	c.profileID = id
	c.gen++
}

func (c *Controller) ProfileID() string { return c.profileID }

// StartLinking abre el overlay de vinculacion de kit. No altera la seleccion
// de navegacion que queda debajo.
func (c *Controller) StartLinking() { c.linking = true }

// DismissLinking cierra el overlay sin completar; el resto del estado queda
// intacto.
func (c *Controller) DismissLinking() { c.linking = false }

// FinishLinking cierra el overlay tras completar el flujo: fuerza la pestaña
// home y activa el modo de seguimiento.
func (c *Controller) FinishLinking() {
	c.linking = false
	c.tracking = true
	c.SelectTab(TabHome)
}

func (c *Controller) Linking() bool      { return c.linking }
func (c *Controller) TrackingMode() bool { return c.tracking }

// ExitTracking vuelve a la vista de resultados (alerta "ver reporte").
func (c *Controller) ExitTracking() {
	c.tracking = false
	c.SelectTab(TabHome)
}

// BeginFetch devuelve el token de la generacion actual de navegacion.
func (c *Controller) BeginFetch() FetchToken {
	return FetchToken(c.gen)
}

// Accept indica si una respuesta lanzada bajo el token sigue siendo valida
// para la pantalla activa.
func (c *Controller) Accept(token FetchToken) bool {
	return uint64(token) == c.gen
}

func (c *Controller) clearSelections() {
	c.selectedTrait = nil
	c.selectedSubTrait = ""
	c.selectedArticle = ""
}
