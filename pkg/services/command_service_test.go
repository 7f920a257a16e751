package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dkruglov/voicegpt-telegram-bot/pkg/domain"
)

type mockBalanceProvider struct {
	message string
	err     error
}

func (m *mockBalanceProvider) GetBalanceMessage(_ context.Context) (string, error) {
	return m.message, m.err
}

func TestSendGreeting(t *testing.T) {
	responseCh := make(chan domain.Response, 1)
	s := NewCommandService(nil, responseCh)

	s.SendGreeting(context.Background(), 42, 7)

	resp := <-responseCh
	if resp.Text != domain.GreetingMessage {
		t.Errorf("Expected '%s', but got '%s'", domain.GreetingMessage, resp.Text)
	}
	if resp.ChatID != 42 {
		t.Errorf("Expected chat ID 42, but got %d", resp.ChatID)
	}
	if resp.ReplyToMessageID != 7 {
		t.Errorf("Expected the greeting to reply to message 7, but got %d", resp.ReplyToMessageID)
	}
}

func TestSendBalance(t *testing.T) {
	responseCh := make(chan domain.Response, 1)
	s := NewCommandService(&mockBalanceProvider{message: "Account Balance: $5"}, responseCh)

	s.SendBalance(context.Background(), 42)

	resp := <-responseCh
	if resp.Text != "Account Balance: $5" {
		t.Errorf("Expected the provider message, but got '%s'", resp.Text)
	}
}

func TestSendBalance_ProviderError(t *testing.T) {
	responseCh := make(chan domain.Response, 1)
	s := NewCommandService(&mockBalanceProvider{err: errors.New("unauthorized")}, responseCh)

	s.SendBalance(context.Background(), 42)

	resp := <-responseCh
	if !strings.HasPrefix(resp.Text, "Failed to fetch DigitalOcean balance") {
		t.Errorf("Expected a fetch failure message, but got '%s'", resp.Text)
	}
}

func TestSendBalance_NotConfigured(t *testing.T) {
	responseCh := make(chan domain.Response, 1)
	s := NewCommandService(nil, responseCh)

	s.SendBalance(context.Background(), 42)

	resp := <-responseCh
	if resp.Text != domain.BalanceNotConfiguredMessage {
		t.Errorf("Expected '%s', but got '%s'", domain.BalanceNotConfiguredMessage, resp.Text)
	}
}
