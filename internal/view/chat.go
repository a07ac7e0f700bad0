package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gennova/internal/domain"
)

// FallbackUnavailable es la respuesta literal cuando el gateway de IA falla.
const FallbackUnavailable = "I'm having trouble connecting to the genetics database right now. Please try again later."

// AssistantGateway genera la respuesta del asistente para un mensaje del
// usuario.
type AssistantGateway interface {
	Reply(ctx context.Context, userMessage string) (string, error)
}

// ChatSession mantiene el transcript lineal del asistente: solo-append, en
// orden de llamada, nunca persistido mas alla de la sesion.
type ChatSession struct {
	gateway  AssistantGateway
	messages []domain.ChatMessage
	busy     bool
}

// NewChatSession siembra el transcript con el saludo del asistente.
func NewChatSession(gateway AssistantGateway, userName string) *ChatSession {
	greeting := fmt.Sprintf(
		"Hi %s! I've analyzed your DNA profile. What would you like to know about your talents or nutrition?",
		userName,
	)
	return &ChatSession{
		gateway: gateway,
		messages: []domain.ChatMessage{
			{ID: uuid.NewString(), Role: domain.RoleAssistant, Text: greeting},
		},
	}
}

// Messages devuelve una copia del transcript.
func (s *ChatSession) Messages() []domain.ChatMessage {
	out := make([]domain.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Busy indica si hay una respuesta pendiente; la entrada debe deshabilitarse
// mientras tanto.
func (s *ChatSession) Busy() bool { return s.busy }

// Send agrega el mensaje del usuario, espera exactamente una respuesta del
// gateway y la agrega al transcript. Texto vacio o solo espacios es un no-op
// que nunca invoca al gateway. Un fallo del gateway degrada a la respuesta
// literal de fallback, nunca a un error.
func (s *ChatSession) Send(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	s.messages = append(s.messages, domain.ChatMessage{
		ID:   uuid.NewString(),
		Role: domain.RoleUser,
		Text: text,
	})
	s.busy = true

	reply, err := s.gateway.Reply(ctx, text)
	if err != nil || strings.TrimSpace(reply) == "" {
		reply = FallbackUnavailable
	}

	s.messages = append(s.messages, domain.ChatMessage{
		ID:   uuid.NewString(),
		Role: domain.RoleAssistant,
		Text: reply,
	})
	s.busy = false
}
