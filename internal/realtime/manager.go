package realtime

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// SubscriptionManager keeps exactly one subscription per channel key and
// funnels every event to a single handler.
type SubscriptionManager struct {
	broker  Broker
	handler Handler

	mu     sync.Mutex
	subs   map[string]Subscription
	closed bool
}

// NewSubscriptionManager creates a manager with no active subscriptions
func NewSubscriptionManager(broker Broker, handler Handler) *SubscriptionManager {
	return &SubscriptionManager{
		broker:  broker,
		handler: handler,
		subs:    make(map[string]Subscription),
	}
}

// Sync opens subscriptions for desired keys that are missing and closes the ones no longer desired.
// Failures are collected; keys that failed to open stay absent and are retried on the next Sync.
func (m *SubscriptionManager) Sync(ctx context.Context, desired []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return fmt.Errorf("subscription manager closed")
	}

	want := make(map[string]struct{}, len(desired))
	for _, key := range desired {
		want[key] = struct{}{}
	}

	var errs []error
	for key, sub := range m.subs {
		if _, ok := want[key]; ok {
			continue
		}
		if err := sub.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", key, err))
		}
		delete(m.subs, key)
	}

	for key := range want {
		if _, ok := m.subs[key]; ok {
			continue
		}
		sub, err := m.broker.Subscribe(ctx, key, m.handler)
		if err != nil {
			errs = append(errs, fmt.Errorf("subscribe %s: %w", key, err))
			continue
		}
		m.subs[key] = sub
	}

	return errors.Join(errs...)
}

// Keys returns the active channel keys, sorted
func (m *SubscriptionManager) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.subs))
	for key := range m.subs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Close tears down every subscription. Later Syncs fail.
func (m *SubscriptionManager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	m.closed = true

	var errs []error
	for key, sub := range m.subs {
		if err := sub.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", key, err))
		}
		delete(m.subs, key)
	}
	return errors.Join(errs...)
}
