package services

import (
	"time"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/logging"
	"github.com/sony/gobreaker"
)

// BreakerMailer wraps a Mailer in a circuit breaker so a dead SMTP relay
// stops consuming request time. Email is best-effort everywhere, an open
// breaker is just another delivery failure.
type BreakerMailer struct {
	inner   Mailer
	breaker *gobreaker.CircuitBreaker
}

func NewBreakerMailer(inner Mailer) *BreakerMailer {
	settings := gobreaker.Settings{
		Name:        "smtp-mailer",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Warnf("Event ID: MAILER_BREAKER, Description: Breaker %s moved from %s to %s", name, from, to)
		},
	}
	return &BreakerMailer{inner: inner, breaker: gobreaker.NewCircuitBreaker(settings)}
}

func (m *BreakerMailer) Send(to, subject, body string) error {
	_, err := m.breaker.Execute(func() (interface{}, error) {
		return nil, m.inner.Send(to, subject, body)
	})
	return err
}
