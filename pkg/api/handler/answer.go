package handler

import (
	"context"
	"net/http"

	"github.com/dkruglov/voicegpt-telegram-bot/pkg/api/response"
)

type AnswerResolver interface {
	Resolve(ctx context.Context, question string) string
}

type answer struct {
	resolver AnswerResolver
}

func NewAnswer(resolver AnswerResolver) *answer {
	return &answer{resolver: resolver}
}

// ResolveAnswer serves GET /answer?question=... through the same resolver,
// and therefore the same cache, as the voice pipeline.
func (a *answer) ResolveAnswer(w http.ResponseWriter, r *http.Request) {
	question := r.URL.Query().Get("question")
	if question == "" {
		response.Error(w, http.StatusBadRequest, "Question parameter is missing or empty.")
		return
	}

	response.Success(w, map[string]string{
		"answer": a.resolver.Resolve(r.Context(), question),
	})
}
