// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package service

import (
	"context"
	"sync"
	"time"

	"github.com/jessleroux/pigeon-raiders/internal/adapter"
	"github.com/jessleroux/pigeon-raiders/internal/logger"
	"github.com/jessleroux/pigeon-raiders/models"
)

type clientRefreshJob struct {
	feed              adapter.ChangeFeed
	backendAdapter    adapter.BackendAdapter
	ledger            ClientLedgerService
	reconnectInterval time.Duration
	logger            *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientRefreshJob creates a job that subscribes to the backend change
// feed and refreshes the affected table's mirror on every event. The job is
// idle until Start is called.
func NewClientRefreshJob(feed adapter.ChangeFeed, backendAdapter adapter.BackendAdapter, ledger ClientLedgerService, reconnectInterval time.Duration, logger *logger.Logger) ClientRefreshJob {
	return &clientRefreshJob{
		feed:              feed,
		backendAdapter:    backendAdapter,
		ledger:            ledger,
		reconnectInterval: reconnectInterval,
		logger:            logger,
	}
}

// Start implements ClientRefreshJob. It stops any previously running job,
// then launches a background goroutine that holds a change-feed subscription
// open. A dropped feed is re-dialled after the reconnect interval. If the
// interval is zero or negative it defaults to 5 seconds. The goroutine exits
// when ctx is cancelled or Stop is called.
func (j *clientRefreshJob) Start(ctx context.Context) {
	interval := j.reconnectInterval
	if interval <= 0 {
		interval = 5 * time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		for {
			if jobCtx.Err() != nil {
				return
			}

			events, err := j.feed.Subscribe(jobCtx, j.backendAdapter.Token())
			if err != nil {
				j.logger.Warn().Err(err).Msg("change feed subscription failed, will retry")
			} else {
				j.consume(jobCtx, events)
			}

			select {
			case <-jobCtx.Done():
				return
			case <-time.After(interval):
			}
		}
	}()
}

// consume drains the event channel until it closes, refreshing the affected
// table on each event. A failed refresh is logged and skipped: the next
// event triggers the same full re-fetch anyway.
func (j *clientRefreshJob) consume(ctx context.Context, events <-chan models.ChangeEvent) {
	for event := range events {
		j.logger.Debug().
			Str("table", event.Table).
			Str("action", event.Action).
			Msg("change event received")

		if err := j.ledger.Refresh(ctx, event.Table); err != nil {
			j.logger.Warn().Err(err).Str("table", event.Table).Msg("refresh after change event failed")
		}
	}
}

// Stop implements ClientRefreshJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
