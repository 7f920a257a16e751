package telegram

import (
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type mockVoiceService struct {
	calls  int
	chatID int64
	fileID string
}

func (m *mockVoiceService) GenerateVoiceReply(_ context.Context, chatID int64, voiceFileID string) {
	m.calls++
	m.chatID = chatID
	m.fileID = voiceFileID
}

type mockCommandService struct {
	greetings int
	balances  int
	chatID    int64
	messageID int
}

func (m *mockCommandService) SendGreeting(_ context.Context, chatID int64, messageID int) {
	m.greetings++
	m.chatID = chatID
	m.messageID = messageID
}

func (m *mockCommandService) SendBalance(_ context.Context, chatID int64) {
	m.balances++
	m.chatID = chatID
}

func messageUpdate(msg *tgbotapi.Message) *tgbotapi.Update {
	return &tgbotapi.Update{UpdateID: 1, Message: msg}
}

func TestHandleUpdate_VoiceMessage(t *testing.T) {
	voice := &mockVoiceService{}
	commands := &mockCommandService{}
	h := NewHandler(voice, commands)

	h.HandleUpdate(context.Background(), messageUpdate(&tgbotapi.Message{
		Chat:  &tgbotapi.Chat{ID: 42},
		Voice: &tgbotapi.Voice{FileID: "file-1"},
	}))

	if voice.calls != 1 {
		t.Fatalf("Expected 1 voice pipeline call, but got %d", voice.calls)
	}
	if voice.chatID != 42 || voice.fileID != "file-1" {
		t.Errorf("Expected chat 42 and file file-1, but got %d and %s", voice.chatID, voice.fileID)
	}
	if commands.greetings != 0 || commands.balances != 0 {
		t.Error("Expected no command handling for a voice message")
	}
}

func TestHandleUpdate_StartCommand(t *testing.T) {
	tests := []struct {
		text string
	}{
		{"/start"},
		{"/start@voicegpt_bot"},
		{" /start "},
	}

	for _, test := range tests {
		voice := &mockVoiceService{}
		commands := &mockCommandService{}
		h := NewHandler(voice, commands)

		h.HandleUpdate(context.Background(), messageUpdate(&tgbotapi.Message{
			MessageID: 7,
			Chat:      &tgbotapi.Chat{ID: 42},
			Text:      test.text,
		}))

		if commands.greetings != 1 {
			t.Errorf("For command '%s', expected 1 greeting, but got %d", test.text, commands.greetings)
		}
		if commands.messageID != 7 {
			t.Errorf("For command '%s', expected the greeting to reply to message 7, but got %d", test.text, commands.messageID)
		}
		if voice.calls != 0 {
			t.Errorf("For command '%s', expected no voice pipeline calls, but got %d", test.text, voice.calls)
		}
	}
}

func TestHandleUpdate_BalanceCommand(t *testing.T) {
	voice := &mockVoiceService{}
	commands := &mockCommandService{}
	h := NewHandler(voice, commands)

	h.HandleUpdate(context.Background(), messageUpdate(&tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 42},
		Text: "/balance",
	}))

	if commands.balances != 1 {
		t.Errorf("Expected 1 balance report, but got %d", commands.balances)
	}
}

func TestHandleUpdate_IgnoresOtherInput(t *testing.T) {
	tests := []struct {
		name   string
		update *tgbotapi.Update
	}{
		{"plain text", messageUpdate(&tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 42}, Text: "hello"})},
		{"unknown command", messageUpdate(&tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 42}, Text: "/unknown"})},
		{"no message", &tgbotapi.Update{UpdateID: 1}},
	}

	for _, test := range tests {
		voice := &mockVoiceService{}
		commands := &mockCommandService{}
		h := NewHandler(voice, commands)

		h.HandleUpdate(context.Background(), test.update)

		if voice.calls != 0 || commands.greetings != 0 || commands.balances != 0 {
			t.Errorf("For %s, expected no service calls", test.name)
		}
	}
}
