package view

import (
	"testing"
	"time"

	"gennova/internal/domain"
)

func talentPhenotype(id, name string, score int) domain.Phenotype {
	return domain.Phenotype{
		ID:    id,
		Score: score,
		Trait: domain.Trait{Name: name, Category: domain.TraitCategoryTalent},
	}
}

func TestRadarSeriesMapsTalentRows(t *testing.T) {
	phenos := []domain.Phenotype{
		talentPhenotype("p1", "Memory", 85),
		{ID: "p2", Score: 70, Trait: domain.Trait{Name: "Lactose", Category: domain.TraitCategoryNutrition}},
		talentPhenotype("p3", "Creativity", 95),
	}

	points := RadarSeries(phenos, ModeLive)
	if len(points) != 2 {
		t.Fatalf("expected 2 talent points, got %d", len(points))
	}
	if points[0].Label != "Memory" || points[0].Value != 85 || points[0].ScaleMax != 100 {
		t.Fatalf("unexpected first point: %+v", points[0])
	}
	if points[1].Label != "Creativity" || points[1].Value != 95 {
		t.Fatalf("unexpected second point: %+v", points[1])
	}
}

func TestRadarSeriesDemoFallback(t *testing.T) {
	points := RadarSeries(nil, ModeDemo)
	if len(points) != 7 {
		t.Fatalf("expected the fixed 7-point sample, got %d points", len(points))
	}
	want := []RadarPoint{
		{Label: "Music Ability", Value: 98, ScaleMax: 100},
		{Label: "Intelligence", Value: 92, ScaleMax: 100},
		{Label: "Memory", Value: 85, ScaleMax: 100},
		{Label: "Creativity", Value: 95, ScaleMax: 100},
		{Label: "Endurance Sport", Value: 78, ScaleMax: 100},
		{Label: "Power Sport", Value: 60, ScaleMax: 100},
		{Label: "Sporting Ability", Value: 88, ScaleMax: 100},
	}
	for i, p := range points {
		if p != want[i] {
			t.Fatalf("sample point %d: expected %+v, got %+v", i, want[i], p)
		}
	}
}

func TestRadarSeriesLiveStaysEmpty(t *testing.T) {
	if points := RadarSeries(nil, ModeLive); len(points) != 0 {
		t.Fatalf("live mode must not fabricate traits, got %d points", len(points))
	}
}

func TestTraitCardsFallbacks(t *testing.T) {
	phenos := []domain.Phenotype{
		{
			ID:          "p1",
			Score:       60,
			ResultLevel: domain.LevelPotential,
			DisplayText: "computed text",
			Trait:       domain.Trait{Name: "Power Sport", Category: domain.TraitCategoryTalent, Description: "generic", IconName: "zap"},
		},
		{
			ID:          "p2",
			Score:       88,
			ResultLevel: domain.LevelExcellent,
			Trait:       domain.Trait{Name: "Sporting Ability", Category: domain.TraitCategoryTalent, Description: "generic"},
		},
	}

	cards := TraitCards(phenos)
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if cards[0].Description != "computed text" || cards[0].Icon != "zap" {
		t.Fatalf("unexpected first card: %+v", cards[0])
	}
	if cards[1].Description != "generic" {
		t.Fatalf("expected taxonomy description fallback, got %q", cards[1].Description)
	}
	if cards[1].Icon != domain.DefaultIconName {
		t.Fatalf("expected default icon, got %q", cards[1].Icon)
	}
}

func TestTopTraitFirstWinsOnTie(t *testing.T) {
	cards := []TraitCard{
		{ID: "a", Score: 60},
		{ID: "b", Score: 95},
		{ID: "c", Score: 95},
	}
	idx, ok := TopTraitIndex(cards)
	if !ok {
		t.Fatalf("expected a top trait")
	}
	if idx != 1 {
		t.Fatalf("tie must resolve to the first element, got index %d", idx)
	}

	others := OtherTraits(cards, idx)
	if len(others) != 2 || others[0].ID != "a" || others[1].ID != "c" {
		t.Fatalf("unexpected remaining cards: %+v", others)
	}
}

func TestTopTraitEmpty(t *testing.T) {
	if _, ok := TopTraitIndex(nil); ok {
		t.Fatalf("expected no top trait for empty input")
	}
}

func TestOtherTraitsKeepsDuplicateIDs(t *testing.T) {
	// Filas sin id (o con ids repetidos) solo pierden la tarjeta principal.
	cards := []TraitCard{
		{Name: "Memory", Score: 85},
		{Name: "Creativity", Score: 95},
		{Name: "Endurance", Score: 70},
	}
	idx, ok := TopTraitIndex(cards)
	if !ok || cards[idx].Name != "Creativity" {
		t.Fatalf("expected Creativity as top trait, got index %d", idx)
	}
	others := OtherTraits(cards, idx)
	if len(others) != 2 || others[0].Name != "Memory" || others[1].Name != "Endurance" {
		t.Fatalf("expected the two remaining cards, got %+v", others)
	}
}

func TestFilterCategoryPreservesOrder(t *testing.T) {
	cards := []TraitCard{
		{ID: "a", Category: domain.TraitCategoryTalent},
		{ID: "b", Category: domain.TraitCategoryNutrition},
		{ID: "c", Category: domain.TraitCategoryTalent},
	}
	got := FilterCategory(cards, domain.TraitCategoryTalent)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("unexpected filter result: %+v", got)
	}
}

func TestKitTimelineAbsentKit(t *testing.T) {
	steps := KitTimeline(nil)
	if len(steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(steps))
	}
	for i, s := range steps {
		if s.Done || s.Current {
			t.Fatalf("step %d must be pending without a kit: %+v", i, s)
		}
	}
}

func TestKitTimelineProcessing(t *testing.T) {
	now := time.Now().UTC()
	kit := &domain.Kit{
		Status:       domain.KitStatusProcessing,
		ActivatedAt:  &now,
		LaboratoryAt: &now,
	}
	steps := KitTimeline(kit)
	if !steps[0].Done || !steps[1].Done {
		t.Fatalf("activated and received must be done: %+v", steps)
	}
	if steps[2].Done || !steps[2].Current {
		t.Fatalf("lab processing must be the current stage: %+v", steps[2])
	}
	if steps[3].Done {
		t.Fatalf("result must not be ready yet")
	}
}

func TestKitTimelineUnknownStatusIsPending(t *testing.T) {
	kit := &domain.Kit{Status: domain.KitStatus("shipped?")}
	steps := KitTimeline(kit)
	if steps[1].Done || steps[2].Done || steps[3].Done {
		t.Fatalf("unknown status must behave as pending: %+v", steps)
	}
	if !steps[0].Done {
		t.Fatalf("an existing kit counts as activated")
	}
}

func TestParseDataMode(t *testing.T) {
	if ParseDataMode("demo") != ModeDemo {
		t.Fatalf("expected demo mode")
	}
	if ParseDataMode("") != ModeLive || ParseDataMode("sample") != ModeLive {
		t.Fatalf("unknown modes must fall back to live")
	}
}
