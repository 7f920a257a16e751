package telegram

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dkruglov/voicegpt-telegram-bot/pkg/domain"
	"github.com/dkruglov/voicegpt-telegram-bot/pkg/logger"
)

// audioCaptionLimit is the Telegram cap on caption length.
const audioCaptionLimit = 1024

type client struct {
	token     string
	bot       *tgbotapi.BotAPI
	updatesCh tgbotapi.UpdatesChannel
}

func NewClient(token string) (*client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("creating bot api instance: %v", err)
	}

	slog.Info("authorized on telegram", "account", bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	return &client{
		token:     token,
		bot:       bot,
		updatesCh: bot.GetUpdatesChan(u),
	}, nil
}

func (c *client) GetUpdates() tgbotapi.UpdatesChannel {
	return c.updatesCh
}

// SendResponse delivers a response to its chat. Send failures are logged
// and dropped; there is no channel left to report them on.
func (c *client) SendResponse(ctx context.Context, response *domain.Response) {
	if _, err := c.bot.Send(toChattable(response)); err != nil {
		slog.ErrorContext(ctx, "sending response", "chatID", response.ChatID, logger.Err(err))
	}
}

func toChattable(response *domain.Response) tgbotapi.Chattable {
	if response.Audio != nil {
		audio := tgbotapi.NewAudio(response.ChatID, tgbotapi.FileBytes{
			Name:  "answer.mp3",
			Bytes: response.Audio.Data,
		})
		audio.Caption = truncateCaption(response.Audio.Caption)
		audio.ReplyToMessageID = response.ReplyToMessageID
		return audio
	}

	msg := tgbotapi.NewMessage(response.ChatID, response.Text)
	msg.ReplyToMessageID = response.ReplyToMessageID
	return msg
}

func truncateCaption(text string) string {
	runes := []rune(text)
	if len(runes) <= audioCaptionLimit {
		return text
	}
	return string(runes[:audioCaptionLimit])
}

func (c *client) StartTyping(ctx context.Context, chatID int64) {
	if _, err := c.bot.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)); err != nil {
		slog.ErrorContext(ctx, "sending typing action", "chatID", chatID, logger.Err(err))
	}
}

func (c *client) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := c.bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("getting file: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(c.token), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %v", err)
	}

	resp, err := c.bot.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %v", err)
	}
	defer func(Body io.ReadCloser) {
		if closeErr := Body.Close(); closeErr != nil {
			slog.Error("closing body", logger.Err(closeErr))
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s fetching file", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %v", err)
	}

	return data, nil
}
