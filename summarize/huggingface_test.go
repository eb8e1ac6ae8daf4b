package summarize

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testHF(server *httptest.Server) *HuggingFace {
	h := NewHuggingFace("hf-test-key", 5*time.Second)
	h.endpoint = server.URL
	return h
}

func TestHuggingFaceSummarize(t *testing.T) {
	var gotAuth string
	var gotPayload map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotPayload)
		w.Write([]byte(`[{"summary_text": "Businesses must file new privacy reports."}]`))
	}))
	defer server.Close()

	summary, err := testHF(server).Summarize(context.Background(), "A bill about data privacy.", "privacy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "Businesses must file new privacy reports." {
		t.Errorf("unexpected summary %q", summary)
	}
	if gotAuth != "Bearer hf-test-key" {
		t.Errorf("unexpected auth header %q", gotAuth)
	}

	inputs, _ := gotPayload["inputs"].(string)
	if !strings.Contains(inputs, "compliance officer") || !strings.Contains(inputs, "privacy") {
		t.Errorf("prompt should frame the topic for compliance, got %q", inputs)
	}
}

func TestHuggingFaceTruncatesInput(t *testing.T) {
	var gotPayload map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotPayload)
		w.Write([]byte(`[{"summary_text": "ok"}]`))
	}))
	defer server.Close()

	long := strings.Repeat("x", 5000)
	if _, err := testHF(server).Summarize(context.Background(), long, "general"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inputs, _ := gotPayload["inputs"].(string)
	if strings.Count(inputs, "x") > maxInputChars {
		t.Errorf("input not truncated: %d chars of bill text", strings.Count(inputs, "x"))
	}
}

func TestHuggingFaceErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "model loading"}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	if _, err := testHF(server).Summarize(context.Background(), "text", "topic"); err == nil {
		t.Fatal("expected error on non-200 status")
	}
}

func TestHuggingFaceEmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	if _, err := testHF(server).Summarize(context.Background(), "text", "topic"); err == nil {
		t.Fatal("expected error on empty result")
	}
}
