package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"gennova/internal/domain"
	"gennova/internal/email"
	"gennova/internal/repository"
)

// KitService maneja el ciclo de vida de los kits de test: registro al
// completar el onboarding y avance de etapa desde el laboratorio.
type KitService struct {
	logger   *zap.Logger
	kits     repository.KitRepository
	profiles repository.ProfileRepository
	users    repository.UserRepository
	sender   email.Sender
}

var (
	ErrKitNotFound    = errors.New("kit not found")
	ErrKitCompleted   = errors.New("kit already completed")
	ErrBarcodeMissing = errors.New("barcode required")
)

func NewKitService(logger *zap.Logger, kits repository.KitRepository, profiles repository.ProfileRepository, users repository.UserRepository, sender email.Sender) *KitService {
	return &KitService{
		logger:   logger,
		kits:     kits,
		profiles: profiles,
		users:    users,
		sender:   sender,
	}
}

// Activate registra un kit recien vinculado para el perfil. El kit nace en
// pending con activated_at sellado.
func (s *KitService) Activate(ctx context.Context, profileID, barcode string) (domain.Kit, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return domain.Kit{}, ErrBarcodeMissing
	}
	if _, err := s.profiles.GetByID(ctx, profileID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Kit{}, ErrProfileNotFound
		}
		return domain.Kit{}, err
	}

	now := time.Now().UTC()
	kit := domain.Kit{
		ID:          uuid.NewString(),
		ProfileID:   profileID,
		Barcode:     barcode,
		Status:      domain.KitStatusPending,
		ActivatedAt: &now,
	}
	if err := s.kits.Create(ctx, kit); err != nil {
		return domain.Kit{}, err
	}
	if s.logger != nil {
		s.logger.Info("kit activated", zap.String("kit_id", kit.ID), zap.String("profile_id", profileID))
	}
	return kit, nil
}

// Advance mueve el kit exactamente una etapa hacia adelante y sella el
// timestamp de la etapa alcanzada. Al llegar a completed notifica al dueño
// de la cuenta por correo; un fallo de correo no revierte el avance.
func (s *KitService) Advance(ctx context.Context, kitID string) (domain.Kit, error) {
	kit, err := s.kits.GetByID(ctx, kitID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Kit{}, ErrKitNotFound
		}
		return domain.Kit{}, err
	}

	next, ok := kit.Status.Next()
	if !ok {
		return domain.Kit{}, ErrKitCompleted
	}

	now := time.Now().UTC()
	if err := s.kits.UpdateStatus(ctx, kit.ID, next, now); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Kit{}, ErrKitNotFound
		}
		return domain.Kit{}, err
	}

	kit.Status = next
	switch next {
	case domain.KitStatusLaboratory:
		kit.LaboratoryAt = &now
	case domain.KitStatusProcessing:
		kit.ProcessingAt = &now
	case domain.KitStatusCompleted:
		kit.CompletedAt = &now
		s.notifyResultsReady(ctx, kit)
	}

	if s.logger != nil {
		s.logger.Info("kit advanced", zap.String("kit_id", kit.ID), zap.String("status", string(next)))
	}
	return kit, nil
}

func (s *KitService) notifyResultsReady(ctx context.Context, kit domain.Kit) {
	if s.sender == nil {
		return
	}
	profile, err := s.profiles.GetByID(ctx, kit.ProfileID)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("results-ready lookup failed", zap.Error(err), zap.String("kit_id", kit.ID))
		}
		return
	}
	owner, err := s.users.GetByID(ctx, profile.UserID)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("results-ready lookup failed", zap.Error(err), zap.String("kit_id", kit.ID))
		}
		return
	}
	if err := s.sender.SendResultsReady(ctx, owner.Email, profile.Name); err != nil {
		if s.logger != nil {
			s.logger.Warn("results-ready email failed", zap.Error(err), zap.String("kit_id", kit.ID))
		}
	}
}
