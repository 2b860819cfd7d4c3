package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classquest/classquest-api/internal/domain"
)

func setupEventsServer(t *testing.T, allowed ...string) (*EventsHandler, string, context.CancelFunc) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	h := NewEventsHandler(func() []string { return allowed })
	ctx, cancel := context.WithCancel(context.Background())
	go h.Run(ctx)

	router := gin.New()
	router.GET("/classes/:classCode/events", h.HandleClassEvents)

	srv := httptest.NewServer(router)
	t.Cleanup(func() {
		cancel()
		srv.Close()
	})

	return h, "ws" + strings.TrimPrefix(srv.URL, "http"), cancel
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestEventsHandler_DeliversOnlyOwnClass(t *testing.T) {
	h, base, _ := setupEventsServer(t, "*")

	conn := dial(t, base+"/classes/ABC123/events")
	require.Eventually(t, func() bool { return h.subscriberCount("ABC123") == 1 }, time.Second, 10*time.Millisecond)

	balance := 20
	h.Publish(domain.ClassEvent{Type: domain.EventQuestCreated, ClassCode: "OTHER1", QuestID: 3})
	h.Publish(domain.ClassEvent{Type: domain.EventItemPurchased, ClassCode: "ABC123", StudentID: "s-1", ItemID: 4, Balance: &balance})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var event domain.ClassEvent
	require.NoError(t, json.Unmarshal(payload, &event))
	assert.Equal(t, domain.EventItemPurchased, event.Type)
	assert.Equal(t, "ABC123", event.ClassCode)
	assert.Equal(t, uint(4), event.ItemID)
	require.NotNil(t, event.Balance)
	assert.Equal(t, 20, *event.Balance)
}

func TestEventsHandler_UnregistersOnClose(t *testing.T) {
	h, base, _ := setupEventsServer(t, "*")

	conn := dial(t, base+"/classes/ABC123/events")
	require.Eventually(t, func() bool { return h.subscriberCount("ABC123") == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return h.subscriberCount("ABC123") == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestEventsHandler_ShutdownClosesSubscribers(t *testing.T) {
	h, base, cancel := setupEventsServer(t, "*")

	conn := dial(t, base+"/classes/ABC123/events")
	require.Eventually(t, func() bool { return h.subscriberCount("ABC123") == 1 }, time.Second, 10*time.Millisecond)

	cancel()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
	assert.Zero(t, h.subscriberCount("ABC123"))
}

func TestEventsHandler_RejectsForeignOrigin(t *testing.T) {
	_, base, _ := setupEventsServer(t, "https://school.example")

	header := http.Header{}
	header.Set("Origin", "https://evil.example")
	_, resp, err := websocket.DefaultDialer.Dial(base+"/classes/ABC123/events", header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestOriginAllowed(t *testing.T) {
	tests := []struct {
		name    string
		origin  string
		allowed []string
		want    bool
	}{
		{name: "no origin header", origin: "", allowed: nil, want: true},
		{name: "wildcard", origin: "https://a.example", allowed: []string{"*"}, want: true},
		{name: "exact match", origin: "https://a.example", allowed: []string{"https://a.example"}, want: true},
		{name: "no match", origin: "https://b.example", allowed: []string{"https://a.example"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, originAllowed(tt.origin, tt.allowed))
		})
	}
}
