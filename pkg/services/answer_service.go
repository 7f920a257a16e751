package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/dkruglov/voicegpt-telegram-bot/pkg/domain"
	"github.com/dkruglov/voicegpt-telegram-bot/pkg/logger"
)

const answerCacheTTL = time.Hour

type AnswerCache interface {
	DeriveKey(question string) string
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type AnswerGenerator interface {
	GenerateAnswer(ctx context.Context, question string) (string, error)
}

type answerService struct {
	cache     AnswerCache
	generator AnswerGenerator
}

func NewAnswerService(cache AnswerCache, generator AnswerGenerator) *answerService {
	return &answerService{
		cache:     cache,
		generator: generator,
	}
}

// Resolve returns the answer for a question, consulting the cache first.
// It never fails outward: generation errors degrade to a fixed fallback
// string and cache errors count as misses.
func (a *answerService) Resolve(ctx context.Context, question string) string {
	key := a.cache.DeriveKey(question)

	answer, found, err := a.cache.Get(ctx, key)
	if err != nil {
		slog.ErrorContext(ctx, "reading answer cache", "key", key, logger.Err(err))
	}
	if found {
		slog.InfoContext(ctx, "Answer cache hit", "key", key)
		return answer
	}

	answer, err = a.generator.GenerateAnswer(ctx, question)
	if err != nil {
		slog.ErrorContext(ctx, "generating answer", logger.Err(err))
		return domain.AnswerFallbackMessage
	}

	if err := a.cache.Set(ctx, key, answer, answerCacheTTL); err != nil {
		slog.ErrorContext(ctx, "storing answer in cache", "key", key, logger.Err(err))
	}

	return answer
}
