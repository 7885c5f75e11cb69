// Package notify pushes finished optimization results to external channels.
package notify

import (
	"fmt"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	labmath "github.com/pricelab/pricelab/internal/math"
	"github.com/pricelab/pricelab/internal/task"
)

const maxRetries = 3

// Telegram sends task results to a telegram chat.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegram creates a new telegram notifier.
func NewTelegram(botToken, chatID string) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("could not create telegram bot: %w", err)
	}

	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid chat id '%s': %w", chatID, err)
	}

	return &Telegram{
		bot:    bot,
		chatID: id,
	}, nil
}

// Notify sends the finished task to the configured chat.
func (t *Telegram) Notify(finished task.Task) error {
	msg := tgbotapi.NewMessage(t.chatID, format(finished))

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		if _, err := t.bot.Send(msg); err == nil {
			return nil
		} else {
			lastErr = err
		}
		time.Sleep(time.Second * time.Duration(i+1))
	}
	return fmt.Errorf("could not send message after %d retries: %w", maxRetries, lastErr)
}

func format(finished task.Task) string {
	if finished.Status != task.StatusDone || finished.Result == nil {
		return fmt.Sprintf("optimization for '%s' failed: %s", finished.Product, finished.Error)
	}
	result := finished.Result
	return fmt.Sprintf("optimization for '%s' complete\n"+
		"optimum price: %s\n"+
		"maximum profit: %s\n"+
		"estimated demand: %s units\n"+
		"iterations: %d",
		finished.Product,
		labmath.Format(result.OptimumPrice),
		labmath.Format(result.MaximumProfit),
		labmath.Format(result.EstimatedDemand),
		result.Iterations)
}

// Log is a notifier that only logs the finished task.
func Log(finished task.Task) {
	log.Info().
		Str("id", finished.ID).
		Str("product", finished.Product).
		Str("status", string(finished.Status)).
		Msg("task finished")
}
