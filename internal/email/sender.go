package email

import (
	"context"
	"errors"
)

// Sender define la interfaz para notificaciones por correo.
type Sender interface {
	// SendResultsReady avisa al dueño de la cuenta que el reporte genetico
	// de un perfil ya esta disponible.
	SendResultsReady(ctx context.Context, toEmail string, profileName string) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendResultsReady(_ context.Context, _ string, _ string) error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
