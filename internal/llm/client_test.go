package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// geminiStub returns an httptest server that answers generateContent with the
// given inner JSON payload as the candidate text.
func geminiStub(t *testing.T, innerJSON string, status int) (*httptest.Server, *generateRequest) {
	t.Helper()
	var captured generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("x-goog-api-key"); got != "test-key" {
			t.Errorf("x-goog-api-key = %q, want test-key", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		resp := map[string]any{
			"candidates": []any{
				map[string]any{
					"content": map[string]any{
						"parts": []any{map[string]any{"text": innerJSON}},
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv, &captured
}

func TestAssess(t *testing.T) {
	inner := `{"ra":{"score":4,"explanation":"Accurate resolution."},"ie":{"score":5,"explanation":"Low effort."},"hs":{"score":3,"explanation":"Bumpy handoff."}}`
	srv, captured := geminiStub(t, inner, http.StatusOK)

	client := NewClient("test-key", WithBaseURL(srv.URL), WithModel("gemini-test"))
	a, err := client.Assess(context.Background(), "customer: hello\nai: hi")
	if err != nil {
		t.Fatalf("Assess() error = %v", err)
	}

	if a.RA.Score != 4 || a.IE.Score != 5 || a.HS.Score != 3 {
		t.Errorf("scores = %v/%v/%v, want 4/5/3", a.RA.Score, a.IE.Score, a.HS.Score)
	}
	if a.HS.Explanation != "Bumpy handoff." {
		t.Errorf("HS explanation = %q", a.HS.Explanation)
	}

	// Request carries the system instruction and the structured-output config.
	if captured.SystemInstruction == nil || len(captured.SystemInstruction.Parts) == 0 {
		t.Fatal("request missing system instruction")
	}
	if !strings.Contains(captured.SystemInstruction.Parts[0].Text, "neutral") {
		t.Error("system prompt missing the HS neutral-5 rule")
	}
	if captured.GenerationConfig == nil || captured.GenerationConfig.ResponseMIMEType != "application/json" {
		t.Error("request missing JSON response mime type")
	}
	if captured.GenerationConfig.ResponseSchema == nil {
		t.Fatal("request missing response schema")
	}
	for _, key := range []string{"ra", "ie", "hs"} {
		if _, ok := captured.GenerationConfig.ResponseSchema.Properties[key]; !ok {
			t.Errorf("response schema missing %q", key)
		}
	}
	if len(captured.Contents) != 1 || captured.Contents[0].Parts[0].Text != "customer: hello\nai: hi" {
		t.Error("transcript not forwarded as user content")
	}
}

func TestAssessErrors(t *testing.T) {
	tests := []struct {
		name   string
		inner  string
		status int
	}{
		{"api error", "", http.StatusInternalServerError},
		{"malformed payload", `{"ra":`, http.StatusOK},
		{"score out of range", `{"ra":{"score":9,"explanation":"x"},"ie":{"score":5,"explanation":"x"},"hs":{"score":3,"explanation":"x"}}`, http.StatusOK},
		{"empty explanation", `{"ra":{"score":4,"explanation":""},"ie":{"score":5,"explanation":"x"},"hs":{"score":3,"explanation":"x"}}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := geminiStub(t, tt.inner, tt.status)
			client := NewClient("test-key", WithBaseURL(srv.URL))
			if _, err := client.Assess(context.Background(), "transcript"); err == nil {
				t.Error("Assess() expected error, got nil")
			}
		})
	}
}

func TestAssessNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	t.Cleanup(srv.Close)

	client := NewClient("test-key", WithBaseURL(srv.URL))
	if _, err := client.Assess(context.Background(), "transcript"); err == nil {
		t.Error("Assess() expected error on empty candidates")
	}
}
