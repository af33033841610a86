package notify

import (
	"context"
	"errors"
	"restaurant-backend/domain"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func sampleNotice() domain.ReservationNotice {
	return domain.ReservationNotice{Reservation: domain.ReservationResponse{
		ID:              "r-1",
		Name:            "Ada <Lovelace>",
		Email:           "ada@example.com",
		Phone:           "+15551234567",
		Date:            "2026-10-16",
		Time:            "19:00",
		Guests:          4,
		SpecialRequests: "Window seat",
		Status:          domain.ReservationStatusPending,
	}}
}

type countingNotifier struct {
	name  string
	err   error
	delay time.Duration
	calls atomic.Int32
}

func (c *countingNotifier) Name() string { return c.name }

func (c *countingNotifier) Notify(ctx context.Context, _ domain.ReservationNotice) error {
	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	c.calls.Add(1)
	return c.err
}

func TestDispatchReachesEveryNotifier(t *testing.T) {
	ok := &countingNotifier{name: "ok", delay: 10 * time.Millisecond}
	broken := &countingNotifier{name: "broken", err: errors.New("smtp down")}
	d := NewDispatcher(time.Second, ok, broken)

	d.Dispatch(sampleNotice())
	d.Dispatch(sampleNotice())
	d.Wait()

	assert.Equal(t, int32(2), ok.calls.Load())
	assert.Equal(t, int32(2), broken.calls.Load())
}

func TestDispatchTimesOutSlowNotifier(t *testing.T) {
	slow := &countingNotifier{name: "slow", delay: time.Minute}
	d := NewDispatcher(20*time.Millisecond, slow)

	d.Dispatch(sampleNotice())
	d.Wait()

	assert.Zero(t, slow.calls.Load())
}

func TestDispatchWithoutNotifiers(t *testing.T) {
	d := NewDispatcher(0)
	d.Dispatch(sampleNotice())
	d.Wait()
}

func TestMailNotifierSendsToGuest(t *testing.T) {
	var to, subject, body string
	n := NewMailNotifierWithSender(func(toEmail, s, b string) error {
		to, subject, body = toEmail, s, b
		return nil
	})

	require.NoError(t, n.Notify(context.Background(), sampleNotice()))
	assert.Equal(t, "mail", n.Name())
	assert.Equal(t, "ada@example.com", to)
	assert.Equal(t, guestSubject, subject)
	assert.Contains(t, body, "Ada &lt;Lovelace&gt;")
	assert.Contains(t, body, "2026-10-16")
	assert.Contains(t, body, "Window seat")
}

func TestMailNotifierHonoursCancelledContext(t *testing.T) {
	called := false
	n := NewMailNotifierWithSender(func(string, string, string) error {
		called = true
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, n.Notify(ctx, sampleNotice()), context.Canceled)
	assert.False(t, called)
}

type fakeSender struct {
	mu   sync.Mutex
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, f.err
}

func TestTelegramNotifierMessagesStaffChat(t *testing.T) {
	sender := &fakeSender{}
	n := NewTelegramNotifierWithSender(sender, 4242)

	require.NoError(t, n.Notify(context.Background(), sampleNotice()))
	require.Len(t, sender.sent, 1)

	msg, ok := sender.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(4242), msg.ChatID)
	assert.Contains(t, msg.Text, "Ada <Lovelace>, 4 guests")
	assert.Contains(t, msg.Text, "2026-10-16 at 19:00")
	assert.Contains(t, msg.Text, "Requests: Window seat")
}

func TestTelegramNotifierWrapsSendError(t *testing.T) {
	sender := &fakeSender{err: errors.New("forbidden")}
	n := NewTelegramNotifierWithSender(sender, 1)

	err := n.Notify(context.Background(), sampleNotice())
	assert.ErrorContains(t, err, "telegram send: forbidden")
}

func TestNewTelegramNotifierNeedsConfig(t *testing.T) {
	_, err := NewTelegramNotifier("", 0)
	assert.ErrorIs(t, err, domain.ErrNotificationUnavailable)
}
