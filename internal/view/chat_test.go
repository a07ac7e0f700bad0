package view

import (
	"context"
	"errors"
	"testing"

	"gennova/internal/domain"
)

type stubGateway struct {
	reply string
	err   error
	calls int
	last  string
}

func (g *stubGateway) Reply(_ context.Context, userMessage string) (string, error) {
	g.calls++
	g.last = userMessage
	return g.reply, g.err
}

func TestChatSessionGreetingSeed(t *testing.T) {
	s := NewChatSession(&stubGateway{}, "Sarah")
	msgs := s.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected seeded greeting, got %d messages", len(msgs))
	}
	if msgs[0].Role != domain.RoleAssistant {
		t.Fatalf("greeting must come from the assistant, got %s", msgs[0].Role)
	}
	if msgs[0].Text != "Hi Sarah! I've analyzed your DNA profile. What would you like to know about your talents or nutrition?" {
		t.Fatalf("unexpected greeting: %q", msgs[0].Text)
	}
}

func TestChatSessionEmptySendIsNoop(t *testing.T) {
	gw := &stubGateway{reply: "hello"}
	s := NewChatSession(gw, "Sarah")

	s.Send(context.Background(), "")
	s.Send(context.Background(), "   ")

	if gw.calls != 0 {
		t.Fatalf("empty sends must never invoke the gateway, got %d calls", gw.calls)
	}
	if len(s.Messages()) != 1 {
		t.Fatalf("empty sends must not append messages, got %d", len(s.Messages()))
	}
}

func TestChatSessionAppendsPairInOrder(t *testing.T) {
	gw := &stubGateway{reply: "Your ACTN3 variant favors power sports."}
	s := NewChatSession(gw, "Sarah")

	s.Send(context.Background(), "  what about sports?  ")

	msgs := s.Messages()
	if len(msgs) != 3 {
		t.Fatalf("expected greeting + user + assistant, got %d", len(msgs))
	}
	if msgs[1].Role != domain.RoleUser || msgs[1].Text != "what about sports?" {
		t.Fatalf("user message must be trimmed and appended first: %+v", msgs[1])
	}
	if msgs[2].Role != domain.RoleAssistant || msgs[2].Text != gw.reply {
		t.Fatalf("assistant reply must follow: %+v", msgs[2])
	}
	if gw.last != "what about sports?" {
		t.Fatalf("gateway must receive the trimmed message, got %q", gw.last)
	}
	if s.Busy() {
		t.Fatalf("busy flag must clear after the reply")
	}
}

func TestChatSessionGatewayFailureDegrades(t *testing.T) {
	gw := &stubGateway{err: errors.New("upstream 500")}
	s := NewChatSession(gw, "Sarah")

	s.Send(context.Background(), "hola")

	msgs := s.Messages()
	if got := msgs[len(msgs)-1].Text; got != FallbackUnavailable {
		t.Fatalf("gateway failure must degrade to the literal fallback, got %q", got)
	}
}

func TestChatSessionEmptyReplyDegrades(t *testing.T) {
	gw := &stubGateway{reply: "   "}
	s := NewChatSession(gw, "Sarah")
	s.Send(context.Background(), "hola")
	msgs := s.Messages()
	if got := msgs[len(msgs)-1].Text; got != FallbackUnavailable {
		t.Fatalf("blank reply must degrade to the fallback, got %q", got)
	}
}
