package digitalocean

import (
	"context"
	"fmt"

	"github.com/digitalocean/godo"
)

type client struct {
	api *godo.Client
}

func NewClient(token string) *client {
	return &client{
		api: godo.NewFromToken(token),
	}
}

// GetBalanceMessage reports the hosting account balance as a ready-to-send
// chat message.
func (c *client) GetBalanceMessage(ctx context.Context) (string, error) {
	b, _, err := c.api.Balance.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("fetching balance: %v", err)
	}

	return fmt.Sprintf("Server Balance Info:\n\nMonth-To-Date Usage: $%v\nMonth-To-Date Balance: $%v\nAccount Balance: $%v",
		b.MonthToDateUsage, b.MonthToDateBalance, b.AccountBalance), nil
}
