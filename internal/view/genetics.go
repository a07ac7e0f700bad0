package view

import "gennova/internal/domain"

// GeneRow es una fila de la tabla "Genetic Blueprint".
type GeneRow struct {
	Gene     string                `json:"gene"`
	RsID     string                `json:"rs_id"`
	Genotype string                `json:"genotype"`
	Status   domain.GenotypeStatus `json:"status"`
}

// GeneTable cruza los genotipos del perfil con la tabla de reglas. El estado
// es optimal si la regla coincidente marca el resultado optimo, mixed si hay
// regla pero no es optima y unknown si ningún par (SNP, genotipo) coincide.
// Las filas sin simbolo de gen se descartan.
func GeneTable(genotypes []domain.Genotype, rules []domain.GenotypeRule) []GeneRow {
	var out []GeneRow
	for _, g := range genotypes {
		if g.Gene == "" {
			continue
		}
		out = append(out, GeneRow{
			Gene:     g.Gene,
			RsID:     g.RsID,
			Genotype: g.Genotype,
			Status:   matchRule(g, rules),
		})
	}
	return out
}

func matchRule(g domain.Genotype, rules []domain.GenotypeRule) domain.GenotypeStatus {
	for _, r := range rules {
		if r.RsID == g.RsID && r.TargetGenotype == g.Genotype {
			if r.ResultLevel == domain.OptimalMarker {
				return domain.GenotypeOptimal
			}
			return domain.GenotypeMixed
		}
	}
	return domain.GenotypeUnknown
}

// GaugeBand traduce un nivel de resultado a la banda del medidor del detalle
// de sub-rasgo.
func GaugeBand(level domain.ResultLevel) string {
	switch {
	case level.Rank() >= domain.LevelExcellent.Rank():
		return "Gifted"
	case level.Rank() >= domain.LevelPotential.Rank():
		return "Moderate"
	default:
		return "Weak"
	}
}
