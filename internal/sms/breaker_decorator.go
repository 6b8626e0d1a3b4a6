package sms

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
)

const (
	timeInterval = time.Duration(30) * time.Second
	timeTimeOut  = time.Duration(15) * time.Second

	repeatNumber = 5
)

type sender interface {
	Send(ctx context.Context, to, body string) error
}

// BreakerClient stops hammering the gateway once it fails repeatedly.
type BreakerClient struct {
	name    string
	cb      *gobreaker.CircuitBreaker
	wrapped sender
}

func NewBreakerClient(name string, wrapped sender) *BreakerClient {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    timeInterval,
		Timeout:     timeTimeOut,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= repeatNumber
		},
	}
	return &BreakerClient{
		name:    name,
		cb:      gobreaker.NewCircuitBreaker(settings),
		wrapped: wrapped,
	}
}

func (b *BreakerClient) Send(ctx context.Context, to, body string) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.wrapped.Send(ctx, to, body)
	})
	if err != nil {
		return errors.New(b.name + " unavailable: " + err.Error())
	}
	return nil
}
