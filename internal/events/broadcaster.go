// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

// Package events carries change notifications from the ledger services to
// the change-feed subscribers. A notification names the table and the action;
// it never carries row data, so subscribers re-fetch rather than patch.
package events

import (
	"sync"

	"github.com/jessleroux/pigeon-raiders/internal/logger"
	"github.com/jessleroux/pigeon-raiders/models"
)

// subscriberBuffer bounds how many undelivered notifications a subscriber may
// accumulate before further notifications to it are dropped. Dropping is safe:
// any single surviving notification triggers the same full re-fetch.
const subscriberBuffer = 8

// Broadcaster is an in-process fan-out of [models.ChangeEvent]. Publish never
// blocks on a slow subscriber.
type Broadcaster struct {
	logger *logger.Logger

	mu          sync.RWMutex
	subscribers map[int]chan models.ChangeEvent
	nextID      int
}

// NewBroadcaster constructs an empty Broadcaster.
func NewBroadcaster(logger *logger.Logger) *Broadcaster {
	logger.Debug().Msg("creating change-event broadcaster")
	return &Broadcaster{
		logger:      logger,
		subscribers: make(map[int]chan models.ChangeEvent),
	}
}

// Subscribe registers a new subscriber and returns its event channel together
// with a cancel function. The cancel function unregisters the subscriber and
// closes the channel; it is safe to call more than once.
func (b *Broadcaster) Subscribe() (<-chan models.ChangeEvent, func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	ch := make(chan models.ChangeEvent, subscriberBuffer)
	b.subscribers[id] = ch
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subscribers, id)
			b.mu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}

// Publish delivers event to every current subscriber. Subscribers whose
// buffer is full miss this event; they will still converge on the next one.
func (b *Broadcaster) Publish(event models.ChangeEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			b.logger.Warn().
				Int("subscriber", id).
				Str("table", event.Table).
				Msg("subscriber buffer full, dropping change event")
		}
	}
}

// SubscriberCount returns the number of active subscribers.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
