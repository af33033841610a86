package mailing

import (
	"path/filepath"
	"restaurant-backend/internal/utils"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessage(t *testing.T) {
	cfg := MailConfig{SMTPEmail: "bookings@example.com", SMTPSender: "The Restaurant"}

	msg := BuildMessage(cfg, "guest@example.com", "Your table", "<p>hi</p>")
	assert.Equal(t, []string{`"The Restaurant" <bookings@example.com>`}, msg.GetHeader("From"))
	assert.Equal(t, []string{"guest@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Your table"}, msg.GetHeader("Subject"))
}

func TestBuildMessageWithoutSenderName(t *testing.T) {
	msg := BuildMessage(MailConfig{SMTPEmail: "bookings@example.com"}, "guest@example.com", "s", "b")
	assert.Equal(t, []string{"bookings@example.com"}, msg.GetHeader("From"))
}

func TestSendMailWithoutSMTP(t *testing.T) {
	t.Setenv("SMTP_HOST", "")
	utils.LoadConfigFrom(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.False(t, LoadMailConfig().Enabled())
	assert.ErrorIs(t, SendMail("guest@example.com", "s", "b"), ErrMailNotConfigured)
}
