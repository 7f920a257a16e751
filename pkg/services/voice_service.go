package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dkruglov/voicegpt-telegram-bot/pkg/domain"
	"github.com/dkruglov/voicegpt-telegram-bot/pkg/logger"
)

type VoiceFileDownloader interface {
	DownloadFile(ctx context.Context, fileID string) ([]byte, error)
}

type AudioConverter interface {
	ConvertToMP3(ctx context.Context, inputPath string) (string, error)
}

type SpeechTranscriber interface {
	Transcribe(ctx context.Context, audioFilePath string) (string, error)
}

type AnswerResolver interface {
	Resolve(ctx context.Context, question string) string
}

type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) (*domain.AudioReply, error)
}

type voiceService struct {
	downloader  VoiceFileDownloader
	converter   AudioConverter
	transcriber SpeechTranscriber
	resolver    AnswerResolver
	synthesizer SpeechSynthesizer
	responseCh  chan<- domain.Response
}

func NewVoiceService(
	downloader VoiceFileDownloader,
	converter AudioConverter,
	transcriber SpeechTranscriber,
	resolver AnswerResolver,
	synthesizer SpeechSynthesizer,
	responseCh chan<- domain.Response,
) *voiceService {
	return &voiceService{
		downloader:  downloader,
		converter:   converter,
		transcriber: transcriber,
		resolver:    resolver,
		synthesizer: synthesizer,
		responseCh:  responseCh,
	}
}

// GenerateVoiceReply runs the pipeline for one voice message: download the
// audio, transcribe it, resolve the answer, voice the answer, reply. Each
// stage failure is contained to this message and mapped to a fixed reply.
func (v *voiceService) GenerateVoiceReply(ctx context.Context, chatID int64, voiceFileID string) {
	audioPath, err := v.fetchVoiceFile(ctx, voiceFileID)
	if err != nil {
		slog.ErrorContext(ctx, "fetching voice file", "fileID", voiceFileID, logger.Err(err))
		return
	}

	transcript, err := v.transcribeVoiceFile(ctx, audioPath)
	if err != nil {
		slog.ErrorContext(ctx, "transcribing voice file", "fileID", voiceFileID, logger.Err(err))
		v.responseCh <- domain.Response{ChatID: chatID, Text: domain.TranscriptionFailedMessage}
		return
	}

	slog.InfoContext(ctx, "Voice message transcribed", "transcript", transcript)

	answer := v.resolver.Resolve(ctx, transcript)

	reply, err := v.synthesizer.Synthesize(ctx, answer)
	if err != nil {
		slog.ErrorContext(ctx, "voicing answer", logger.Err(err))
		v.responseCh <- domain.Response{ChatID: chatID, Text: domain.SynthesisFailedMessage}
		return
	}

	v.responseCh <- domain.Response{ChatID: chatID, Audio: reply}
}

func (v *voiceService) fetchVoiceFile(ctx context.Context, fileID string) (string, error) {
	voiceData, err := v.downloader.DownloadFile(ctx, fileID)
	if err != nil {
		return "", fmt.Errorf("downloading voice file: %w", err)
	}

	f, err := os.CreateTemp("", "voice-*.ogg")
	if err != nil {
		return "", fmt.Errorf("creating voice temp file: %w", err)
	}

	if _, err := f.Write(voiceData); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("saving voice file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("closing voice file: %w", err)
	}

	return f.Name(), nil
}

// transcribeVoiceFile converts the downloaded audio to mp3 and transcribes
// it. The converter owns cleanup of its input; the mp3 is removed here.
func (v *voiceService) transcribeVoiceFile(ctx context.Context, audioPath string) (string, error) {
	mp3Path, err := v.converter.ConvertToMP3(ctx, audioPath)
	if err != nil {
		return "", fmt.Errorf("converting voice file to MP3: %w", err)
	}
	defer os.Remove(mp3Path)

	transcript, err := v.transcriber.Transcribe(ctx, mp3Path)
	if err != nil {
		return "", fmt.Errorf("transcribing audio file: %w", err)
	}

	return transcript, nil
}
