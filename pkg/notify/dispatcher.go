package notify

import (
	"context"
	"restaurant-backend/domain"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

const DefaultTimeout = 15 * time.Second

type (
	// Notifier delivers a reservation notice over one channel.
	Notifier interface {
		Name() string
		Notify(ctx context.Context, notice domain.ReservationNotice) error
	}

	Dispatcher interface {
		// Dispatch sends the notice to every channel in the background.
		// Failures are logged and never reach the caller.
		Dispatch(notice domain.ReservationNotice)
		// Wait blocks until every dispatched send has returned.
		Wait()
	}

	dispatcher struct {
		notifiers []Notifier
		timeout   time.Duration
		wg        sync.WaitGroup
	}
)

func NewDispatcher(timeout time.Duration, notifiers ...Notifier) Dispatcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &dispatcher{notifiers: notifiers, timeout: timeout}
}

func (d *dispatcher) Dispatch(notice domain.ReservationNotice) {
	for _, n := range d.notifiers {
		d.wg.Add(1)
		go func(n Notifier) {
			defer d.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
			defer cancel()

			if err := n.Notify(ctx, notice); err != nil {
				log.Errorw("error sending reservation notice", "channel", n.Name(), "reservation", notice.Reservation.ID, "err", err)
				return
			}
			log.Infow("reservation notice sent", "channel", n.Name(), "reservation", notice.Reservation.ID)
		}(n)
	}
}

func (d *dispatcher) Wait() {
	d.wg.Wait()
}
