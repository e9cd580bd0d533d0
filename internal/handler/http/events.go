// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package http

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jessleroux/pigeon-raiders/internal/logger"
)

const (
	// writeWait bounds how long a single event or ping write may take.
	writeWait = 10 * time.Second

	// pongWait is how long the feed waits for a pong before assuming the
	// subscriber is gone. Pings are sent at a fraction of this interval.
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// changeFeed upgrades the request to a websocket and streams change events
// until the subscriber disconnects. Events carry only the table name and the
// action; subscribers re-fetch the whole table on every event.
func (h *Handler) changeFeed(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an HTTP error response.
		log.Err(err).Str("func", "*Handler.changeFeed").Msg("websocket upgrade failed")
		return
	}

	eventCh, cancel := h.broadcaster.Subscribe()
	defer cancel()

	log.Debug().Msg("change-feed subscriber connected")

	// The read loop exists only to notice the peer going away. Incoming
	// messages are discarded.
	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	pingTicker := time.NewTicker(pingPeriod)
	defer pingTicker.Stop()
	defer conn.Close()

	for {
		select {
		case event := <-eventCh:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(event); err != nil {
				log.Debug().Err(err).Msg("change-feed subscriber write failed, closing")
				return
			}
		case <-pingTicker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			log.Debug().Msg("change-feed subscriber disconnected")
			return
		case <-r.Context().Done():
			return
		}
	}
}
