package notify

import (
	"context"
	"fmt"
	"restaurant-backend/domain"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is the part of *tgbotapi.BotAPI the notifier needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type telegramNotifier struct {
	api    Sender
	chatID int64
}

// NewTelegramNotifier alerts the staff chat about new reservations.
func NewTelegramNotifier(token string, chatID int64) (Notifier, error) {
	if token == "" || chatID == 0 {
		return nil, domain.ErrNotificationUnavailable
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return NewTelegramNotifierWithSender(api, chatID), nil
}

func NewTelegramNotifierWithSender(api Sender, chatID int64) Notifier {
	return &telegramNotifier{api: api, chatID: chatID}
}

func (t *telegramNotifier) Name() string {
	return "telegram"
}

func (t *telegramNotifier) Notify(ctx context.Context, notice domain.ReservationNotice) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(t.chatID, StaffMessage(notice))
	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}

func StaffMessage(notice domain.ReservationNotice) string {
	r := notice.Reservation
	var b strings.Builder
	b.WriteString("New reservation\n")
	fmt.Fprintf(&b, "%s, %d guests\n", r.Name, r.Guests)
	fmt.Fprintf(&b, "%s at %s\n", r.Date, r.Time)
	fmt.Fprintf(&b, "Phone: %s\nEmail: %s\n", r.Phone, r.Email)
	if r.SpecialRequests != "" {
		fmt.Fprintf(&b, "Requests: %s\n", r.SpecialRequests)
	}
	return b.String()
}
