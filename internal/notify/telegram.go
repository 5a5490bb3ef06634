package notify

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
	tele "gopkg.in/telebot.v4"
)

// TelegramSender is the part of the telebot API the notifier uses.
type TelegramSender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// TelegramNotifier sends window notifications to a Telegram chat.
type TelegramNotifier struct {
	bot     TelegramSender
	chatID  int64
	limiter *rate.Limiter
	log     zerolog.Logger
}

func NewTelegram(bot TelegramSender, chatID int64, log zerolog.Logger) *TelegramNotifier {
	return &TelegramNotifier{
		bot:     bot,
		chatID:  chatID,
		limiter: rate.NewLimiter(rate.Every(time.Second), 3),
		log:     log.With().Str("component", "notify").Logger(),
	}
}

// Send delivers to the configured chat. A numeric recipient overrides the
// default chat id.
func (n *TelegramNotifier) Send(recipient, subject, body string) error {
	if err := n.limiter.Wait(context.Background()); err != nil {
		return fmt.Errorf("failed to wait for rate limit: %w", err)
	}

	chatID := n.chatID
	if id, err := strconv.ParseInt(recipient, 10, 64); err == nil && id != 0 {
		chatID = id
	}

	text := body
	if subject != "" {
		text = subject + "\n\n" + body
	}

	if _, err := n.bot.Send(tele.ChatID(chatID), text); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}

	n.log.Debug().Int64("chat_id", chatID).Str("subject", subject).Msg("notification sent")
	return nil
}
