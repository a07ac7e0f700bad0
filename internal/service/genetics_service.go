package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"gennova/internal/domain"
	"gennova/internal/repository"
	"gennova/internal/view"
)

// GeneticsService arma el detalle genetico de un sub-rasgo: fenotipo,
// banda del medidor y tabla de genes clasificados contra las reglas.
// Tambien expone la taxonomia de rasgos soportados.
type GeneticsService struct {
	profiles   repository.ProfileRepository
	phenotypes repository.PhenotypeRepository
	genotypes  repository.GenotypeRepository
	traits     repository.TraitRepository
}

var ErrTraitNotFound = errors.New("trait not found")

func NewGeneticsService(profiles repository.ProfileRepository, phenotypes repository.PhenotypeRepository, genotypes repository.GenotypeRepository, traits repository.TraitRepository) *GeneticsService {
	return &GeneticsService{
		profiles:   profiles,
		phenotypes: phenotypes,
		genotypes:  genotypes,
		traits:     traits,
	}
}

// Taxonomy lista los rasgos que la plataforma analiza, opcionalmente
// filtrados por categoria.
func (s *GeneticsService) Taxonomy(ctx context.Context, category string) ([]domain.Trait, error) {
	if strings.TrimSpace(category) == "" {
		return s.traits.ListAll(ctx)
	}
	return s.traits.ListByCategory(ctx, category)
}

// TraitGenetics es el view model de la pantalla de detalle de sub-rasgo.
type TraitGenetics struct {
	Trait       domain.Trait       `json:"trait"`
	ResultLevel domain.ResultLevel `json:"result_level"`
	GaugeBand   string             `json:"gauge_band"`
	Description string             `json:"description,omitempty"`
	Genes       []view.GeneRow     `json:"genes"`
}

func (s *GeneticsService) TraitDetail(ctx context.Context, userID, profileID, traitName string) (TraitGenetics, error) {
	profile, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return TraitGenetics{}, ErrProfileNotFound
		}
		return TraitGenetics{}, err
	}
	if profile.UserID != userID {
		return TraitGenetics{}, ErrForbidden
	}

	phenos, err := s.phenotypes.ListByProfileID(ctx, profileID)
	if err != nil {
		return TraitGenetics{}, err
	}
	var pheno *domain.Phenotype
	for i := range phenos {
		if phenos[i].Trait.Name == traitName {
			pheno = &phenos[i]
			break
		}
	}
	if pheno == nil {
		return TraitGenetics{}, ErrTraitNotFound
	}

	genotypes, err := s.genotypes.ListByProfileAndTrait(ctx, profileID, traitName)
	if err != nil {
		return TraitGenetics{}, err
	}

	rsIDs := make([]string, 0, len(genotypes))
	for _, g := range genotypes {
		rsIDs = append(rsIDs, g.RsID)
	}
	rules, err := s.genotypes.ListRulesByRsIDs(ctx, rsIDs)
	if err != nil {
		return TraitGenetics{}, err
	}

	return TraitGenetics{
		Trait:       pheno.Trait,
		ResultLevel: pheno.ResultLevel,
		GaugeBand:   view.GaugeBand(pheno.ResultLevel),
		Description: pheno.Description(),
		Genes:       view.GeneTable(genotypes, rules),
	}, nil
}
