// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jessleroux/pigeon-raiders/internal/config"
	"github.com/jessleroux/pigeon-raiders/internal/logger"
	"github.com/jessleroux/pigeon-raiders/models"
)

const handshakeTimeout = 10 * time.Second

// changeFeedSubscriber dials the backend's websocket change feed and turns
// it into a channel of [models.ChangeEvent]. One subscription covers both
// watched tables; events carry no row data, so consumers re-fetch the
// affected table on every event.
type changeFeedSubscriber struct {
	wsURL  string
	logger *logger.Logger
}

// NewChangeFeedSubscriber constructs a [ChangeFeed] for the backend at
// cfg.HTTPAddress. The http(s) scheme is rewritten to ws(s).
func NewChangeFeedSubscriber(cfg config.ClientAdapter, logger *logger.Logger) ChangeFeed {
	wsURL := strings.TrimRight(cfg.HTTPAddress, "/")
	switch {
	case strings.HasPrefix(wsURL, "https"):
		wsURL = "wss" + strings.TrimPrefix(wsURL, "https")
	case strings.HasPrefix(wsURL, "http"):
		wsURL = "ws" + strings.TrimPrefix(wsURL, "http")
	}
	wsURL += "/api/events"

	return &changeFeedSubscriber{wsURL: wsURL, logger: logger}
}

// Subscribe dials the change feed and starts a reader goroutine. The
// returned channel is closed when the connection drops or ctx is cancelled;
// the caller re-subscribes after its reconnect interval.
func (s *changeFeedSubscriber) Subscribe(ctx context.Context, token string) (<-chan models.ChangeEvent, error) {
	dialer := websocket.Dialer{HandshakeTimeout: handshakeTimeout}

	// The token travels as a query parameter: websocket dials cannot carry
	// an Authorization header from every client environment.
	target := s.wsURL + "?token=" + url.QueryEscape(token)
	conn, resp, err := dialer.DialContext(ctx, target, nil)
	if err != nil {
		return nil, fmt.Errorf("change feed dial: %w", err)
	}
	if resp != nil {
		defer resp.Body.Close()
	}

	events := make(chan models.ChangeEvent)

	// Close the connection when ctx is cancelled so the reader unblocks.
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	go func() {
		defer close(events)
		defer conn.Close()

		for {
			var event models.ChangeEvent
			if err := conn.ReadJSON(&event); err != nil {
				if ctx.Err() == nil {
					s.logger.Warn().Err(err).Msg("change feed connection lost")
				}
				return
			}

			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, nil
}
