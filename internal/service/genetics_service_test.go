package service

import (
	"context"
	"errors"
	"testing"

	"gennova/internal/domain"
)

type mockGenotypeRepo struct {
	genotypes map[string][]domain.Genotype
	rules     []domain.GenotypeRule
}

func newMockGenotypeRepo() *mockGenotypeRepo {
	return &mockGenotypeRepo{genotypes: make(map[string][]domain.Genotype)}
}

func (m *mockGenotypeRepo) ListByProfileAndTrait(_ context.Context, profileID, traitName string) ([]domain.Genotype, error) {
	var out []domain.Genotype
	for _, g := range m.genotypes[profileID] {
		if g.TraitName == traitName {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *mockGenotypeRepo) ListRulesByRsIDs(_ context.Context, rsIDs []string) ([]domain.GenotypeRule, error) {
	wanted := make(map[string]bool, len(rsIDs))
	for _, id := range rsIDs {
		wanted[id] = true
	}
	var out []domain.GenotypeRule
	for _, r := range m.rules {
		if wanted[r.RsID] {
			out = append(out, r)
		}
	}
	return out, nil
}

type mockTraitRepo struct {
	traits []domain.Trait
}

func (m *mockTraitRepo) ListAll(_ context.Context) ([]domain.Trait, error) {
	return m.traits, nil
}

func (m *mockTraitRepo) ListByCategory(_ context.Context, category string) ([]domain.Trait, error) {
	var out []domain.Trait
	for _, tr := range m.traits {
		if tr.Category == category {
			out = append(out, tr)
		}
	}
	return out, nil
}

func (m *mockTraitRepo) GetByName(_ context.Context, name string) (domain.Trait, error) {
	for _, tr := range m.traits {
		if tr.Name == name {
			return tr, nil
		}
	}
	return domain.Trait{}, errors.New("no rows in result set")
}

func TestGeneticsServiceTraitDetail(t *testing.T) {
	profiles := newMockProfileRepo()
	phenos := newMockPhenotypeRepo()
	genos := newMockGenotypeRepo()
	svc := NewGeneticsService(profiles, phenos, genos, &mockTraitRepo{})

	profiles.profiles["p1"] = domain.Profile{ID: "p1", UserID: "u1"}
	phenos.rows["p1"] = []domain.Phenotype{
		{
			Trait:       domain.Trait{Name: "Sporting Ability", Category: domain.TraitCategoryTalent, Description: "generic"},
			ResultLevel: domain.LevelExcellent,
			DisplayText: "Built for explosive power.",
		},
	}
	genos.genotypes["p1"] = []domain.Genotype{
		{Gene: "ACTN3", RsID: "rs1815739", Genotype: "RR", TraitName: "Sporting Ability"},
		{Gene: "ACE", RsID: "rs4646994", Genotype: "DD", TraitName: "Sporting Ability"},
	}
	genos.rules = []domain.GenotypeRule{
		{RsID: "rs1815739", TargetGenotype: "RR", ResultLevel: "Optimal"},
		{RsID: "rs4646994", TargetGenotype: "DD", ResultLevel: "Typical"},
	}

	detail, err := svc.TraitDetail(context.Background(), "u1", "p1", "Sporting Ability")
	if err != nil {
		t.Fatalf("TraitDetail: %v", err)
	}
	if detail.GaugeBand != "Gifted" {
		t.Fatalf("expected Gifted band for EXCELLENT, got %q", detail.GaugeBand)
	}
	if detail.Description != "Built for explosive power." {
		t.Fatalf("expected computed display text, got %q", detail.Description)
	}
	if len(detail.Genes) != 2 {
		t.Fatalf("expected 2 gene rows, got %d", len(detail.Genes))
	}
	if detail.Genes[0].Status != domain.GenotypeOptimal {
		t.Fatalf("expected ACTN3 RR optimal, got %q", detail.Genes[0].Status)
	}
	if detail.Genes[1].Status != domain.GenotypeMixed {
		t.Fatalf("expected ACE DD mixed, got %q", detail.Genes[1].Status)
	}
}

func TestGeneticsServiceTraitNotFound(t *testing.T) {
	profiles := newMockProfileRepo()
	profiles.profiles["p1"] = domain.Profile{ID: "p1", UserID: "u1"}
	svc := NewGeneticsService(profiles, newMockPhenotypeRepo(), newMockGenotypeRepo(), &mockTraitRepo{})

	if _, err := svc.TraitDetail(context.Background(), "u1", "p1", "Unknown"); !errors.Is(err, ErrTraitNotFound) {
		t.Fatalf("expected ErrTraitNotFound, got %v", err)
	}
}

func TestGeneticsServiceOwnership(t *testing.T) {
	profiles := newMockProfileRepo()
	profiles.profiles["p1"] = domain.Profile{ID: "p1", UserID: "u1"}
	svc := NewGeneticsService(profiles, newMockPhenotypeRepo(), newMockGenotypeRepo(), &mockTraitRepo{})

	if _, err := svc.TraitDetail(context.Background(), "u2", "p1", "Memory"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestGeneticsServiceTaxonomy(t *testing.T) {
	traits := &mockTraitRepo{traits: []domain.Trait{
		{ID: "t1", Name: "Memory", Category: domain.TraitCategoryTalent},
		{ID: "t2", Name: "Lactose Tolerance", Category: domain.TraitCategoryNutrition},
	}}
	svc := NewGeneticsService(newMockProfileRepo(), newMockPhenotypeRepo(), newMockGenotypeRepo(), traits)

	all, err := svc.Taxonomy(context.Background(), "")
	if err != nil || len(all) != 2 {
		t.Fatalf("Taxonomy() = %d traits, %v", len(all), err)
	}

	talent, err := svc.Taxonomy(context.Background(), domain.TraitCategoryTalent)
	if err != nil || len(talent) != 1 || talent[0].Name != "Memory" {
		t.Fatalf("Taxonomy(Talent) = %+v, %v", talent, err)
	}
}
