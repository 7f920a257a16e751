package telegram

import (
	"context"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type VoiceService interface {
	GenerateVoiceReply(ctx context.Context, chatID int64, voiceFileID string)
}

type CommandService interface {
	SendGreeting(ctx context.Context, chatID int64, messageID int)
	SendBalance(ctx context.Context, chatID int64)
}

type handler struct {
	voiceService   VoiceService
	commandService CommandService
}

func NewHandler(voiceService VoiceService, commandService CommandService) *handler {
	return &handler{
		voiceService:   voiceService,
		commandService: commandService,
	}
}

func (h *handler) HandleUpdate(ctx context.Context, update *tgbotapi.Update) {
	if update.Message == nil {
		return
	}

	h.handleMessage(ctx, update.Message)
}

func (h *handler) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	switch {
	case msg.Voice != nil:
		h.voiceService.GenerateVoiceReply(ctx, msg.Chat.ID, msg.Voice.FileID)

	case isCommand(msg.Text):
		h.handleCommand(ctx, msg)

	default:
		slog.InfoContext(ctx, "Ignoring non-voice message", "chatID", msg.Chat.ID)
	}
}

func isCommand(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), "/")
}

func (h *handler) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	cmd := strings.ToLower(strings.TrimSpace(msg.Text))
	cmd = strings.Split(cmd, "@")[0]

	switch cmd {
	case "/start":
		h.commandService.SendGreeting(ctx, msg.Chat.ID, msg.MessageID)

	case "/balance":
		h.commandService.SendBalance(ctx, msg.Chat.ID)

	default:
		slog.WarnContext(ctx, "Unhandled command", "cmd", cmd)
	}
}
