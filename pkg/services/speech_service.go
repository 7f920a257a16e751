package services

import (
	"context"
	"fmt"

	"github.com/dkruglov/voicegpt-telegram-bot/pkg/domain"
)

type SpeechGenerator interface {
	SynthesizeSpeech(ctx context.Context, text string) ([]byte, error)
}

type speechService struct {
	generator SpeechGenerator
}

func NewSpeechService(generator SpeechGenerator) *speechService {
	return &speechService{generator: generator}
}

// Synthesize voices the answer text and pairs the audio with the text as
// its caption.
func (s *speechService) Synthesize(ctx context.Context, text string) (*domain.AudioReply, error) {
	audio, err := s.generator.SynthesizeSpeech(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("synthesizing speech: %w", err)
	}

	return &domain.AudioReply{Data: audio, Caption: text}, nil
}
