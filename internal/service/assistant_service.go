package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"gennova/internal/domain"
	"gennova/internal/llm"
)

// Textos literales que el asistente devuelve cuando no puede responder.
// El cliente los muestra tal cual; nunca son errores HTTP.
const (
	AssistantMissingKeyText = "Please configure your API_KEY to use the AI assistant."
	AssistantEmptyText      = "I couldn't generate an analysis at this moment."
	AssistantErrorText      = "I'm having trouble connecting to the genetics database right now. Please try again later."
)

// AssistantService responde preguntas sobre el reporte genetico del usuario
// usando el LLM con el contexto de sus rasgos.
type AssistantService struct {
	logger     *zap.Logger
	client     llm.LLMClient
	reports    *ReportService
	limiter    RateLimiter
	configured bool
}

func NewAssistantService(logger *zap.Logger, client llm.LLMClient, reports *ReportService, limiter RateLimiter, configured bool) *AssistantService {
	return &AssistantService{
		logger:     logger,
		client:     client,
		reports:    reports,
		limiter:    limiter,
		configured: configured,
	}
}

// Chat genera la respuesta del asistente. Las fallas del LLM degradan a un
// texto fijo con error nil; solo el rate limit y los errores de acceso al
// perfil suben como error.
func (s *AssistantService) Chat(ctx context.Context, user domain.User, profileID, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", errors.New("empty message")
	}

	if s.limiter != nil && !s.limiter.Allow(user.ID) {
		return "", ErrRateLimited
	}

	if !s.configured || s.client == nil {
		return AssistantMissingKeyText, nil
	}

	phenos, err := s.reports.Phenotypes(ctx, user.ID, profileID)
	if err != nil {
		return "", err
	}

	prompt := s.buildPrompt(user, phenos, message)
	reply, err := s.client.Generate(ctx, prompt)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("assistant generate failed", zap.Error(err), zap.String("user_id", user.ID))
		}
		return AssistantErrorText, nil
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return AssistantEmptyText, nil
	}
	return reply, nil
}

type traitContext struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Result   string `json:"result"`
	Score    int    `json:"score"`
}

func (s *AssistantService) buildPrompt(user domain.User, phenos []domain.Phenotype, message string) string {
	name := strings.TrimSpace(user.DisplayName)
	if name == "" {
		name = "there"
	}

	traits := make([]traitContext, 0, len(phenos))
	for _, p := range phenos {
		traits = append(traits, traitContext{
			Name:     p.Trait.Name,
			Category: p.Trait.Category,
			Result:   string(p.ResultLevel),
			Score:    p.Score,
		})
	}
	traitJSON, err := json.Marshal(traits)
	if err != nil {
		traitJSON = []byte("[]")
	}

	var b strings.Builder
	b.WriteString("You are Gennova AI, a friendly genetics expert for a DNA trait-report app.\n")
	fmt.Fprintf(&b, "The user's name is %s. Their DNA trait results:\n%s\n", name, traitJSON)
	b.WriteString("Answer the user's question about their genetic traits in an encouraging, science-grounded tone. Keep the response under 100 words.\n\n")
	fmt.Fprintf(&b, "User question: %s", message)
	return b.String()
}
