// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package http

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jessleroux/pigeon-raiders/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeFeed_DeliversPublishedEvents(t *testing.T) {
	h := newTestHandler(t, allowAllSession(testProfile), nil, nil)
	server := httptest.NewServer(h.Init())
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/events?token=any.token"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()

	// wait until the server side registered the subscriber
	require.Eventually(t, func() bool {
		return h.broadcaster.SubscriberCount() == 1
	}, time.Second, 10*time.Millisecond)

	h.broadcaster.Publish(models.ChangeEvent{Table: "demandes", Action: models.ActionInsert})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	var got models.ChangeEvent
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, models.ChangeEvent{Table: "demandes", Action: models.ActionInsert}, got)
}

func TestChangeFeed_RequiresToken(t *testing.T) {
	h := newTestHandler(t, &mockSessionService{}, nil, nil)
	server := httptest.NewServer(h.Init())
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/events"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.Error(t, err)
	if conn != nil {
		conn.Close()
	}
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, 401, resp.StatusCode)
}

func TestChangeFeed_UnsubscribesOnDisconnect(t *testing.T) {
	h := newTestHandler(t, allowAllSession(testProfile), nil, nil)
	server := httptest.NewServer(h.Init())
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/events?token=any.token"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Eventually(t, func() bool {
		return h.broadcaster.SubscriberCount() == 1
	}, time.Second, 10*time.Millisecond)

	conn.Close()

	require.Eventually(t, func() bool {
		return h.broadcaster.SubscriberCount() == 0
	}, time.Second, 10*time.Millisecond)
}
