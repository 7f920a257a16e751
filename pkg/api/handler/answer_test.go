package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type mockResolver struct {
	answer string
	asked  string
}

func (m *mockResolver) Resolve(_ context.Context, question string) string {
	m.asked = question
	return m.answer
}

func TestResolveAnswer(t *testing.T) {
	resolver := &mockResolver{answer: "4"}
	h := NewAnswer(resolver)

	req := httptest.NewRequest(http.MethodGet, "/answer?question=What+is+2%2B2%3F", nil)
	rec := httptest.NewRecorder()

	h.ResolveAnswer(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, but got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	if body["answer"] != "4" {
		t.Errorf("Expected answer '4', but got '%s'", body["answer"])
	}
	if resolver.asked != "What is 2+2?" {
		t.Errorf("Expected the decoded question passed to the resolver, but got '%s'", resolver.asked)
	}
}

func TestResolveAnswer_MissingQuestion(t *testing.T) {
	h := NewAnswer(&mockResolver{answer: "unused"})

	req := httptest.NewRequest(http.MethodGet, "/answer", nil)
	rec := httptest.NewRecorder()

	h.ResolveAnswer(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, but got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	if body["error"] == "" {
		t.Error("Expected an error message in the body, but got none")
	}
}
