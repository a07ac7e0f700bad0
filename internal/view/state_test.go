package view

import "testing"

func signedInController() *Controller {
	c := NewController()
	c.SetPhase(AuthSignedIn)
	return c
}

func TestControllerAuthPriority(t *testing.T) {
	c := NewController()
	if got := c.Screen().Kind; got != ScreenLoading {
		t.Fatalf("expected loading screen, got %s", got)
	}
	if c.BottomNavVisible() {
		t.Fatalf("bottom nav must be hidden while loading")
	}

	c.SetPhase(AuthSignedOut)
	if got := c.Screen().Kind; got != ScreenLogin {
		t.Fatalf("expected login screen, got %s", got)
	}

	// La autenticacion corta antes que cualquier seleccion previa.
	c.SetPhase(AuthSignedIn)
	c.OpenArticle("a1")
	c.SetPhase(AuthSignedOut)
	if got := c.Screen().Kind; got != ScreenLogin {
		t.Fatalf("expected login screen after sign out, got %s", got)
	}
}

func TestControllerPriorityOrder(t *testing.T) {
	c := signedInController()

	trait := TraitCard{ID: "t1", Name: "Intelligence"}
	c.OpenTrait(trait)
	if got := c.Screen().Kind; got != ScreenTraitDetail {
		t.Fatalf("expected trait detail, got %s", got)
	}
	if c.BottomNavVisible() {
		t.Fatalf("bottom nav must be hidden on trait detail")
	}

	c.OpenSubTrait("Cognitive Ability")
	if got := c.Screen().Kind; got != ScreenSubTraitDetail {
		t.Fatalf("expected sub-trait detail, got %s", got)
	}
	if !c.BottomNavVisible() {
		t.Fatalf("bottom nav must stay visible on sub-trait detail")
	}

	c.OpenArticle("a1")
	scr := c.Screen()
	if scr.Kind != ScreenArticleDetail || scr.ArticleID != "a1" {
		t.Fatalf("expected article detail a1, got %+v", scr)
	}
	if c.BottomNavVisible() {
		t.Fatalf("bottom nav must be hidden on article detail")
	}
}

func TestControllerExactlyOneScreen(t *testing.T) {
	// Con todas las selecciones activas solo puede elegirse una pantalla.
	c := signedInController()
	c.OpenTrait(TraitCard{ID: "t1"})
	c.OpenSubTrait("Explosive Power")
	c.OpenArticle("a9")

	if got := c.Screen().Kind; got != ScreenArticleDetail {
		t.Fatalf("article must win, got %s", got)
	}

	c.Back()
	if got := c.Screen().Kind; got != ScreenSubTraitDetail {
		t.Fatalf("sub-trait must follow, got %s", got)
	}
	c.Back()
	if got := c.Screen().Kind; got != ScreenTraitDetail {
		t.Fatalf("trait must follow, got %s", got)
	}
	c.Back()
	if got := c.Screen().Kind; got != ScreenHome {
		t.Fatalf("home is the fallback, got %s", got)
	}
	if c.Back() {
		t.Fatalf("back with nothing open must report false")
	}
}

func TestControllerTabDispatch(t *testing.T) {
	c := signedInController()
	cases := []struct {
		tab  Tab
		want ScreenKind
	}{
		{TabHome, ScreenHome},
		{TabReports, ScreenReports},
		{TabAlerts, ScreenAlerts},
		{TabProfile, ScreenProfile},
		{Tab("bogus"), ScreenHome},
	}
	for _, tc := range cases {
		c.SelectTab(tc.tab)
		if got := c.Screen().Kind; got != tc.want {
			t.Fatalf("tab %q: expected %s, got %s", tc.tab, tc.want, got)
		}
		if !c.BottomNavVisible() {
			t.Fatalf("tab %q: bottom nav must be visible", tc.tab)
		}
	}
}

func TestControllerSelectTabClearsSelections(t *testing.T) {
	for _, tab := range []Tab{TabHome, TabReports, TabAlerts, TabProfile} {
		c := signedInController()
		c.OpenTrait(TraitCard{ID: "t1"})
		c.OpenSubTrait("Strength")
		c.OpenArticle("a1")

		c.SelectTab(tab)

		scr := c.Screen()
		if scr.Trait != nil || scr.SubTrait != "" || scr.ArticleID != "" {
			t.Fatalf("tab %q: expected all selections cleared, got %+v", tab, scr)
		}
	}
}

func TestControllerLinkingOverlay(t *testing.T) {
	c := signedInController()
	c.SelectTab(TabProfile)
	c.StartLinking()
	if !c.Linking() {
		t.Fatalf("expected linking overlay open")
	}
	// El overlay no altera la pantalla de debajo.
	if got := c.Screen().Kind; got != ScreenProfile {
		t.Fatalf("expected profile screen beneath overlay, got %s", got)
	}

	c.DismissLinking()
	if c.Linking() || c.TrackingMode() {
		t.Fatalf("dismiss must only clear the overlay")
	}
	if got := c.ActiveTab(); got != TabProfile {
		t.Fatalf("dismiss must not move the active tab, got %s", got)
	}

	c.StartLinking()
	c.FinishLinking()
	if c.Linking() {
		t.Fatalf("expected overlay closed after completion")
	}
	if got := c.ActiveTab(); got != TabHome {
		t.Fatalf("completion must force home tab, got %s", got)
	}
	if !c.TrackingMode() {
		t.Fatalf("completion must enable tracking mode")
	}
}

func TestControllerFetchTokens(t *testing.T) {
	c := signedInController()
	c.SelectTab(TabReports)
	token := c.BeginFetch()
	if !c.Accept(token) {
		t.Fatalf("token must be valid before navigation changes")
	}

	c.SelectTab(TabHome)
	if c.Accept(token) {
		t.Fatalf("superseded fetch must be discarded")
	}
	if !c.Accept(c.BeginFetch()) {
		t.Fatalf("fresh token must be accepted")
	}
}

func TestParseTabUnknownFallsBackToHome(t *testing.T) {
	if got := ParseTab("settings"); got != TabHome {
		t.Fatalf("expected home fallback, got %s", got)
	}
	if got := ParseTab("reports"); got != TabReports {
		t.Fatalf("expected reports, got %s", got)
	}
}
