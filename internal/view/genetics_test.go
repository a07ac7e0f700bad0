package view

import (
	"testing"

	"gennova/internal/domain"
)

func TestGeneTableStatusMapping(t *testing.T) {
	genotypes := []domain.Genotype{
		{Gene: "ACTN3", RsID: "rs1815739", Genotype: "RR"},
		{Gene: "ACE", RsID: "rs4646994", Genotype: "DD"},
		{Gene: "BDNF", RsID: "rs6265", Genotype: "AA"},
	}
	rules := []domain.GenotypeRule{
		{RsID: "rs1815739", TargetGenotype: "RR", ResultLevel: "Optimal"},
		{RsID: "rs4646994", TargetGenotype: "DD", ResultLevel: "Typical"},
	}

	rows := GeneTable(genotypes, rules)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Status != domain.GenotypeOptimal {
		t.Fatalf("matching optimal rule must map to optimal, got %s", rows[0].Status)
	}
	if rows[1].Status != domain.GenotypeMixed {
		t.Fatalf("matching non-optimal rule must map to mixed, got %s", rows[1].Status)
	}
	if rows[2].Status != domain.GenotypeUnknown {
		t.Fatalf("no matching rule must map to unknown, got %s", rows[2].Status)
	}
}

func TestGeneTableDropsGenelessRows(t *testing.T) {
	genotypes := []domain.Genotype{
		{Gene: "", RsID: "rs17070145", Genotype: "CT"},
		{Gene: "KIBRA", RsID: "rs17070145", Genotype: "CT"},
	}
	rows := GeneTable(genotypes, nil)
	if len(rows) != 1 || rows[0].Gene != "KIBRA" {
		t.Fatalf("rows without a gene symbol must be dropped: %+v", rows)
	}
}

func TestGeneTableGenotypeMustMatch(t *testing.T) {
	genotypes := []domain.Genotype{{Gene: "ACTN3", RsID: "rs1815739", Genotype: "RX"}}
	rules := []domain.GenotypeRule{{RsID: "rs1815739", TargetGenotype: "RR", ResultLevel: "Optimal"}}
	rows := GeneTable(genotypes, rules)
	if rows[0].Status != domain.GenotypeUnknown {
		t.Fatalf("rule must match both SNP and genotype, got %s", rows[0].Status)
	}
}

func TestGaugeBand(t *testing.T) {
	cases := []struct {
		level domain.ResultLevel
		want  string
	}{
		{domain.LevelGifted, "Gifted"},
		{domain.LevelExcellent, "Gifted"},
		{domain.LevelStrong, "Moderate"},
		{domain.LevelPotential, "Moderate"},
		{domain.LevelNormal, "Weak"},
		{domain.ResultLevel("???"), "Weak"},
	}
	for _, tc := range cases {
		if got := GaugeBand(tc.level); got != tc.want {
			t.Fatalf("level %s: expected %s, got %s", tc.level, tc.want, got)
		}
	}
}
