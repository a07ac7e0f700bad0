package domain

// GenotypeStatus clasifica el genotipo de un usuario contra la tabla de reglas.
type GenotypeStatus string

const (
	GenotypeOptimal GenotypeStatus = "optimal"
	GenotypeMixed   GenotypeStatus = "mixed"
	GenotypeUnknown GenotypeStatus = "unknown"
)

// OptimalMarker es el nivel de resultado que marca una regla como optima.
const OptimalMarker = "Optimal"

// Genotype es el genotipo crudo de un SNP para un perfil. Solo lectura.
type Genotype struct {
	ID        string `json:"id"`
	ProfileID string `json:"profile_id"`
	Gene      string `json:"gene"`
	RsID      string `json:"rs_id"`
	Genotype  string `json:"genotype"`
	TraitName string `json:"trait_name,omitempty"`
}

// GenotypeRule mapea (SNP, genotipo) a un resultado cualitativo.
type GenotypeRule struct {
	ID             string `json:"id"`
	RsID           string `json:"rs_id"`
	TargetGenotype string `json:"target_genotype"`
	ResultLevel    string `json:"result_level"`
}
