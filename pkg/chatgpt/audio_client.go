package chatgpt

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// audioClient talks to the Whisper transcription API. It is a separate
// client because transcription is billed against its own API key.
type audioClient struct {
	api *openai.Client
}

func NewAudioClient(token string) *audioClient {
	return &audioClient{
		api: openai.NewClient(token),
	}
}

func (c *audioClient) Transcribe(ctx context.Context, filePath string) (string, error) {
	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filePath,
	}
	resp, err := c.api.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("creating transcription: %v", err)
	}

	return resp.Text, nil
}
