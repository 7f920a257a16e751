package chatgpt

import (
	"context"
	"fmt"
	"io"

	"github.com/sashabaranov/go-openai"
)

type client struct {
	api *openai.Client
}

func NewClient(token string) *client {
	return &client{
		api: openai.NewClient(token),
	}
}

func (c *client) GenerateAnswer(ctx context.Context, question string) (string, error) {
	resp, err := c.api.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:     openai.GPT3Dot5Turbo,
			MaxTokens: 1024,
			Messages: []openai.ChatCompletionMessage{{
				Role:    openai.ChatMessageRoleUser,
				Content: question,
			}},
		},
	)
	if err != nil {
		return "", fmt.Errorf("creating completion: %v", err)
	}

	if len(resp.Choices) > 0 && resp.Choices[0].Message.Content != "" {
		return resp.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("no completion response")
}

func (c *client) SynthesizeSpeech(ctx context.Context, text string) ([]byte, error) {
	resp, err := c.api.CreateSpeech(
		ctx,
		openai.CreateSpeechRequest{
			Model: openai.TTSModel1,
			Input: text,
			Voice: openai.VoiceAlloy,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("creating speech: %v", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("reading speech response: %v", err)
	}

	if len(audio) == 0 {
		return nil, fmt.Errorf("empty speech response")
	}

	return audio, nil
}
