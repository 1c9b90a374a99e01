package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/shelterdesk/portal/internal/common"
	"github.com/shelterdesk/portal/internal/models"
	"github.com/shelterdesk/portal/internal/session"
)

func newAuthedSession() *session.Store {
	store := session.NewStore()
	store.Set("abc", models.UserProfile{ID: "u1", UserName: "ann"})
	return store
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestNotificationService_Subscribe(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/ws/discussions/d1", r.URL.Path)
		require.Equal(t, "Bearer abc", r.Header.Get("Authorization"))

		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		err = conn.WriteJSON(models.Message{ID: "m1", DiscussionID: "d1", Text: "hello"})
		require.NoError(t, err)

		// Hold the connection open until the client goes away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	svc := NewNotificationService(wsURL(srv), newAuthedSession(), testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := svc.Subscribe(ctx, "d1")
	require.NoError(t, err)
	defer stream.Close()

	select {
	case msg := <-stream.Messages():
		require.Equal(t, "m1", msg.ID)
		require.Equal(t, "hello", msg.Text)
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
	}
}

func TestNotificationService_Subscribe_CancelClosesStream(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	svc := NewNotificationService(wsURL(srv), newAuthedSession(), testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	stream, err := svc.Subscribe(ctx, "d1")
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-stream.Messages():
		require.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not close after cancel")
	}
}

func TestNotificationService_Subscribe_NotAuthenticated(t *testing.T) {
	svc := NewNotificationService("ws://127.0.0.1:1", session.NewStore(), testLogger())

	_, err := svc.Subscribe(context.Background(), "d1")
	require.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestNotificationService_Subscribe_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no", http.StatusUnauthorized)
	}))
	defer srv.Close()

	svc := NewNotificationService(wsURL(srv), newAuthedSession(), testLogger())

	_, err := svc.Subscribe(context.Background(), "d1")
	require.ErrorIs(t, err, common.ErrUnauthorized)
}
