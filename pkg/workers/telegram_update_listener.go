package workers

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dkruglov/voicegpt-telegram-bot/pkg/domain"
	"github.com/dkruglov/voicegpt-telegram-bot/pkg/logger"
)

type Handler interface {
	HandleUpdate(ctx context.Context, update *tgbotapi.Update)
}

type TelegramClient interface {
	GetUpdates() tgbotapi.UpdatesChannel
	SendResponse(ctx context.Context, response *domain.Response)
	StartTyping(ctx context.Context, chatID int64)
}

type telegramUpdateListener struct {
	client     TelegramClient
	handler    Handler
	responseCh <-chan domain.Response
	wg         sync.WaitGroup
}

func NewTelegramUpdateListener(
	client TelegramClient,
	handler Handler,
	responseCh <-chan domain.Response,
) (*telegramUpdateListener, error) {
	return &telegramUpdateListener{
		client:     client,
		handler:    handler,
		responseCh: responseCh,
	}, nil
}

func (t *telegramUpdateListener) Name() string { return "telegram_listener_worker" }

func (t *telegramUpdateListener) Start(ctx context.Context) error {
	slog.Info("Starting worker", "name", t.Name())
	defer slog.Info("Worker stopped", "name", t.Name())

	updates := t.client.GetUpdates()

	for {
		select {
		case <-ctx.Done():
			t.drainInFlight(ctx)
			return nil
		case update := <-updates:
			t.wg.Add(1)
			go func(update tgbotapi.Update) {
				defer t.wg.Done()
				defer func() {
					if r := recover(); r != nil {
						slog.Error("Recovered from panic while processing update",
							"updateID", update.UpdateID, "panic", r, "stack", string(debug.Stack()))
					}
				}()
				t.processUpdate(ctx, &update)
			}(update)
		case response := <-t.responseCh:
			t.client.SendResponse(ctx, &response)
		}
	}
}

// drainInFlight keeps pumping outbound responses until every in-flight
// update goroutine has finished, so none of them blocks on the response
// channel during shutdown.
func (t *telegramUpdateListener) drainInFlight(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()

	for {
		select {
		case response := <-t.responseCh:
			t.client.SendResponse(ctx, &response)
		case <-done:
			return
		}
	}
}

func (t *telegramUpdateListener) processUpdate(ctx context.Context, update *tgbotapi.Update) {
	ctx = logger.ContextWithRequestID(ctx, int64(update.UpdateID))

	if update.Message == nil {
		slog.WarnContext(ctx, "Received unknown update type", "update", update)
		return
	}

	chatID, userID := update.Message.Chat.ID, update.Message.From.ID
	slog.InfoContext(ctx, "Processing update", "chatID", chatID, "userID", userID)

	t.client.StartTyping(ctx, chatID)

	t.handler.HandleUpdate(ctx, update)
}
