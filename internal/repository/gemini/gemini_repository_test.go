package gemini

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestRepository(serverURL string) *GeminiRepository {
	return NewGeminiRepository(GeminiConfig{
		APIKey:  "test-key",
		BaseURL: serverURL,
		Model:   "gemini-1.5-flash",
	})
}

func TestGenerateTextSuccess(t *testing.T) {
	var gotPath, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"### Recommended Route\nok"}]}}]}`))
	}))
	defer server.Close()

	repo := newTestRepository(server.URL)

	text, err := repo.GenerateText(context.Background(), "explain the route choice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "### Recommended Route\nok" {
		t.Fatalf("unexpected text: %q", text)
	}
	if gotPath != "/v1beta/models/gemini-1.5-flash:generateContent" {
		t.Errorf("unexpected path: %q", gotPath)
	}
	if !strings.Contains(gotBody, "explain the route choice") {
		t.Errorf("request body is missing the prompt: %s", gotBody)
	}
}

func TestGenerateTextNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	if _, err := newTestRepository(server.URL).GenerateText(context.Background(), "p"); err == nil {
		t.Fatal("expected error on non-200 status")
	}
}

func TestGenerateTextMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	if _, err := newTestRepository(server.URL).GenerateText(context.Background(), "p"); err == nil {
		t.Fatal("expected error on malformed body")
	}
}

func TestGenerateTextEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	if _, err := newTestRepository(server.URL).GenerateText(context.Background(), "p"); err == nil {
		t.Fatal("expected error on empty candidate list")
	}
}

func TestGenerateTextHonorsContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := newTestRepository(server.URL).GenerateText(ctx, "p"); err == nil {
		t.Fatal("expected error on cancelled context")
	}
}
