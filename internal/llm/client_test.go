package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestHTTPClientGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer k1" {
			t.Errorf("unexpected auth header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hola"}}]}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "k1", "model-1", "embed-1", zap.NewNop())
	reply, err := c.Generate(context.Background(), "hi")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if reply != "hola" {
		t.Fatalf("unexpected reply %q", reply)
	}
}

func TestHTTPClientGenerateErrorLogged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	core, logs := observer.New(zap.WarnLevel)
	c := NewHTTPClient(srv.URL, "k1", "model-1", "embed-1", zap.New(core))

	if _, err := c.Generate(context.Background(), "hi"); err == nil {
		t.Fatalf("expected error for 500 response")
	}
	entries := logs.FilterMessage("llm error response").All()
	if len(entries) != 1 {
		t.Fatalf("expected the error response logged, got %d entries", len(entries))
	}
}

func TestHTTPClientGenerateNilLogger(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "k1", "model-1", "embed-1", nil)
	if _, err := c.Generate(context.Background(), "hi"); err == nil {
		t.Fatalf("expected error for 400 response")
	}
}

func TestHTTPClientCreateEmbedding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embeddings" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"embedding":[0.1,0.2,0.3]}]}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "k1", "model-1", "embed-1", zap.NewNop())
	embedding, err := c.CreateEmbedding(context.Background(), "text")
	if err != nil {
		t.Fatalf("CreateEmbedding: %v", err)
	}
	if len(embedding) != 3 {
		t.Fatalf("expected 3 dimensions, got %d", len(embedding))
	}
}
