package services

import (
	"context"
	"fmt"

	"github.com/dkruglov/voicegpt-telegram-bot/pkg/domain"
)

type BalanceProvider interface {
	GetBalanceMessage(ctx context.Context) (string, error)
}

type commandService struct {
	balanceProvider BalanceProvider
	responseCh      chan<- domain.Response
}

func NewCommandService(balanceProvider BalanceProvider, responseCh chan<- domain.Response) *commandService {
	return &commandService{
		balanceProvider: balanceProvider,
		responseCh:      responseCh,
	}
}

// SendGreeting replies to the initiation command with the fixed greeting.
func (c *commandService) SendGreeting(ctx context.Context, chatID int64, messageID int) {
	c.responseCh <- domain.Response{
		ChatID:           chatID,
		ReplyToMessageID: messageID,
		Text:             domain.GreetingMessage,
	}
}

// SendBalance reports the hosting account balance. The provider is optional;
// without one the command reports that balance lookup is not configured.
func (c *commandService) SendBalance(ctx context.Context, chatID int64) {
	if c.balanceProvider == nil {
		c.responseCh <- domain.Response{ChatID: chatID, Text: domain.BalanceNotConfiguredMessage}
		return
	}

	text, err := c.balanceProvider.GetBalanceMessage(ctx)
	if err != nil {
		text = fmt.Sprintf("Failed to fetch DigitalOcean balance: %v", err)
	}

	c.responseCh <- domain.Response{ChatID: chatID, Text: text}
}
