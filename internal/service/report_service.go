package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"gennova/internal/domain"
	"gennova/internal/repository"
	"gennova/internal/view"
)

// ReportService arma el reporte de rasgos de un perfil a partir de los
// fenotipos computados y el kit activo.
type ReportService struct {
	logger     *zap.Logger
	profiles   repository.ProfileRepository
	kits       repository.KitRepository
	phenotypes repository.PhenotypeRepository
	mode       view.DataMode
}

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrForbidden       = errors.New("profile does not belong to user")
)

func NewReportService(logger *zap.Logger, profiles repository.ProfileRepository, kits repository.KitRepository, phenotypes repository.PhenotypeRepository, mode view.DataMode) *ReportService {
	return &ReportService{
		logger:     logger,
		profiles:   profiles,
		kits:       kits,
		phenotypes: phenotypes,
		mode:       mode,
	}
}

func (s *ReportService) ListProfiles(ctx context.Context, userID string) ([]domain.Profile, error) {
	return s.profiles.ListByUserID(ctx, userID)
}

// ownedProfile carga el perfil y verifica que pertenezca al usuario.
func (s *ReportService) ownedProfile(ctx context.Context, userID, profileID string) (domain.Profile, error) {
	profile, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Profile{}, ErrProfileNotFound
		}
		return domain.Profile{}, err
	}
	if profile.UserID != userID {
		return domain.Profile{}, ErrForbidden
	}
	return profile, nil
}

// ActiveKit devuelve el kit activado mas reciente del perfil, o nil si el
// perfil todavia no tiene ninguno.
func (s *ReportService) ActiveKit(ctx context.Context, userID, profileID string) (*domain.Kit, error) {
	if _, err := s.ownedProfile(ctx, userID, profileID); err != nil {
		return nil, err
	}
	kit, err := s.kits.LatestByProfileID(ctx, profileID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &kit, nil
}

// Report es el view model del dashboard de un perfil.
type Report struct {
	Profile  domain.Profile      `json:"profile"`
	Kit      *domain.Kit         `json:"kit,omitempty"`
	Timeline []view.TimelineStep `json:"timeline"`
	Radar    []view.RadarPoint   `json:"radar"`
	Cards    []view.TraitCard    `json:"cards"`
	TopTrait *view.TraitCard     `json:"top_trait,omitempty"`
	Others   []view.TraitCard    `json:"others,omitempty"`
}

// BuildReport junta kit, timeline, radar y tarjetas para el perfil dado.
func (s *ReportService) BuildReport(ctx context.Context, userID, profileID string) (Report, error) {
	profile, err := s.ownedProfile(ctx, userID, profileID)
	if err != nil {
		return Report{}, err
	}

	kit, err := s.ActiveKit(ctx, userID, profileID)
	if err != nil {
		return Report{}, err
	}

	phenos, err := s.phenotypes.ListByProfileID(ctx, profileID)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Profile:  profile,
		Kit:      kit,
		Timeline: view.KitTimeline(kit),
		Radar:    view.RadarSeries(phenos, s.mode),
		Cards:    view.TraitCards(phenos),
	}
	if idx, ok := view.TopTraitIndex(report.Cards); ok {
		top := report.Cards[idx]
		report.TopTrait = &top
		report.Others = view.OtherTraits(report.Cards, idx)
	}

	if s.logger != nil {
		s.logger.Debug("report built",
			zap.String("profile_id", profileID),
			zap.Int("phenotypes", len(phenos)),
		)
	}
	return report, nil
}

// Phenotypes expone las filas crudas para otros servicios (asistente).
func (s *ReportService) Phenotypes(ctx context.Context, userID, profileID string) ([]domain.Phenotype, error) {
	if _, err := s.ownedProfile(ctx, userID, profileID); err != nil {
		return nil, err
	}
	return s.phenotypes.ListByProfileID(ctx, profileID)
}
