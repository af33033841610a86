package notify

import (
	"bytes"
	"context"
	"html/template"
	"restaurant-backend/domain"
	"restaurant-backend/internal/utils/mailing"
)

type SendMailFunc func(toEmail string, subject string, body string) error

type mailNotifier struct {
	send SendMailFunc
}

const guestSubject = "We received your reservation"

var guestTemplate = template.Must(template.New("guest").Parse(`<p>Hi {{.Name}},</p>
<p>Thanks for booking a table with us. Your request is <b>{{.Status}}</b> and we will confirm within 2 hours.</p>
<ul>
<li>Date: {{.Date}}</li>
<li>Time: {{.Time}}</li>
<li>Guests: {{.Guests}}</li>
{{if .SpecialRequests}}<li>Requests: {{.SpecialRequests}}</li>{{end}}
</ul>`))

// NewMailNotifier e-mails the guest through SMTP.
func NewMailNotifier() Notifier {
	return NewMailNotifierWithSender(mailing.SendMail)
}

func NewMailNotifierWithSender(send SendMailFunc) Notifier {
	return &mailNotifier{send: send}
}

func (m *mailNotifier) Name() string {
	return "mail"
}

func (m *mailNotifier) Notify(ctx context.Context, notice domain.ReservationNotice) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := GuestMailBody(notice)
	if err != nil {
		return err
	}
	return m.send(notice.Reservation.Email, guestSubject, body)
}

func GuestMailBody(notice domain.ReservationNotice) (string, error) {
	var buf bytes.Buffer
	if err := guestTemplate.Execute(&buf, notice.Reservation); err != nil {
		return "", err
	}
	return buf.String(), nil
}
