package eventing

import (
	"context"
	"sync"

	analyticsevents "ispdesk/internal/analytics/application/events"
	clientevents "ispdesk/internal/clients/application/events"
)

// InMemoryBus is the in-process event bus used by the desk. Handlers run
// synchronously on the publishing goroutine; the first handler error
// stops delivery and is returned to the publisher.
type InMemoryBus struct {
	mu sync.RWMutex

	registeredHandlers []func(context.Context, clientevents.ClientRegistered) error
	removedHandlers    []func(context.Context, clientevents.ClientRemoved) error
	paymentHandlers    []func(context.Context, clientevents.PaymentRecorded) error
	serviceHandlers    []func(context.Context, clientevents.ServiceSubscribed) error
	statsHandlers      []func(context.Context, analyticsevents.StatisticsComputed) error
}

// NewInMemoryBus constructs a new bus.
func NewInMemoryBus() *InMemoryBus {
	return &InMemoryBus{}
}

// SubscribeClientRegistered registers a handler for ClientRegistered.
func (b *InMemoryBus) SubscribeClientRegistered(handler func(context.Context, clientevents.ClientRegistered) error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.registeredHandlers = append(b.registeredHandlers, handler)
}

// PublishClientRegistered publishes a ClientRegistered event.
func (b *InMemoryBus) PublishClientRegistered(ctx context.Context, event clientevents.ClientRegistered) error {
	b.mu.RLock()
	handlers := append([]func(context.Context, clientevents.ClientRegistered) error(nil), b.registeredHandlers...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		if handler == nil {
			continue
		}
		if err := handler(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

// SubscribeClientRemoved registers a handler for ClientRemoved.
func (b *InMemoryBus) SubscribeClientRemoved(handler func(context.Context, clientevents.ClientRemoved) error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.removedHandlers = append(b.removedHandlers, handler)
}

// PublishClientRemoved publishes a ClientRemoved event.
func (b *InMemoryBus) PublishClientRemoved(ctx context.Context, event clientevents.ClientRemoved) error {
	b.mu.RLock()
	handlers := append([]func(context.Context, clientevents.ClientRemoved) error(nil), b.removedHandlers...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		if handler == nil {
			continue
		}
		if err := handler(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

// SubscribePaymentRecorded registers a handler for PaymentRecorded.
func (b *InMemoryBus) SubscribePaymentRecorded(handler func(context.Context, clientevents.PaymentRecorded) error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.paymentHandlers = append(b.paymentHandlers, handler)
}

// PublishPaymentRecorded publishes a PaymentRecorded event.
func (b *InMemoryBus) PublishPaymentRecorded(ctx context.Context, event clientevents.PaymentRecorded) error {
	b.mu.RLock()
	handlers := append([]func(context.Context, clientevents.PaymentRecorded) error(nil), b.paymentHandlers...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		if handler == nil {
			continue
		}
		if err := handler(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

// SubscribeServiceSubscribed registers a handler for ServiceSubscribed.
func (b *InMemoryBus) SubscribeServiceSubscribed(handler func(context.Context, clientevents.ServiceSubscribed) error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.serviceHandlers = append(b.serviceHandlers, handler)
}

// PublishServiceSubscribed publishes a ServiceSubscribed event.
func (b *InMemoryBus) PublishServiceSubscribed(ctx context.Context, event clientevents.ServiceSubscribed) error {
	b.mu.RLock()
	handlers := append([]func(context.Context, clientevents.ServiceSubscribed) error(nil), b.serviceHandlers...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		if handler == nil {
			continue
		}
		if err := handler(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

// SubscribeStatisticsComputed registers a handler for StatisticsComputed.
func (b *InMemoryBus) SubscribeStatisticsComputed(handler func(context.Context, analyticsevents.StatisticsComputed) error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.statsHandlers = append(b.statsHandlers, handler)
}

// PublishStatisticsComputed publishes a StatisticsComputed event.
func (b *InMemoryBus) PublishStatisticsComputed(ctx context.Context, event analyticsevents.StatisticsComputed) error {
	b.mu.RLock()
	handlers := append([]func(context.Context, analyticsevents.StatisticsComputed) error(nil), b.statsHandlers...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		if handler == nil {
			continue
		}
		if err := handler(ctx, event); err != nil {
			return err
		}
	}
	return nil
}
