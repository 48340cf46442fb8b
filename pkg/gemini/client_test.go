package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bumpsafe/bumpsafe-be/pkg/llm"
)

func TestCompleteSuccess(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("bad request body: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"candidates": [
				{"content": {"parts": [{"text": "SAFETY_LEVEL: safe"}]}, "finishReason": "STOP"}
			]
		}`))
	}))
	defer server.Close()

	client := NewHTTPClient(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "gemini-2.0-flash",
	})

	got, err := client.Complete(context.Background(), llm.Request{
		Prompt:      "Assess brie.",
		Temperature: 0.4,
		MaxTokens:   300,
	})
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if got != "SAFETY_LEVEL: safe" {
		t.Errorf("got %q, want candidate text", got)
	}

	if !strings.Contains(gotPath, "gemini-2.0-flash:generateContent") {
		t.Errorf("path = %q, want generateContent endpoint", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("api key header = %q, want %q", gotKey, "test-key")
	}

	contents, ok := gotBody["contents"].([]interface{})
	if !ok || len(contents) != 1 {
		t.Fatalf("request contents = %v, want one entry", gotBody["contents"])
	}
	first := contents[0].(map[string]interface{})
	parts := first["parts"].([]interface{})
	text := parts[0].(map[string]interface{})["text"].(string)
	if text != "Assess brie." {
		t.Errorf("prompt in body = %q, want %q", text, "Assess brie.")
	}
}

func TestCompleteNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewHTTPClient(Config{APIKey: "k", BaseURL: server.URL})

	_, err := client.Complete(context.Background(), llm.Request{Prompt: "x"})
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error %q should mention status code", err)
	}
}

func TestCompleteEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client := NewHTTPClient(Config{APIKey: "k", BaseURL: server.URL})

	_, err := client.Complete(context.Background(), llm.Request{Prompt: "x"})
	if err == nil {
		t.Fatal("expected error for empty candidates")
	}
}

func TestCompleteMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	client := NewHTTPClient(Config{APIKey: "k", BaseURL: server.URL})

	_, err := client.Complete(context.Background(), llm.Request{Prompt: "x"})
	if err == nil {
		t.Fatal("expected error for malformed response body")
	}
}
