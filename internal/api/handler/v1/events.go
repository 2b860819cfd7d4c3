package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/classquest/classquest-api/internal/domain"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 16
)

type subscriber struct {
	conn      *websocket.Conn
	send      chan []byte
	classCode string
}

// EventsHandler streams class events to websocket subscribers. Run must be
// started before any subscriber connects.
type EventsHandler struct {
	upgrader websocket.Upgrader

	subscribers      map[string]map[*subscriber]struct{}
	subscribersMutex sync.RWMutex

	broadcast  chan domain.ClassEvent
	register   chan *subscriber
	unregister chan *subscriber
	done       chan struct{}
}

func NewEventsHandler(allowedOrigins func() []string) *EventsHandler {
	return &EventsHandler{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return originAllowed(r.Header.Get("Origin"), allowedOrigins())
			},
		},
		subscribers: make(map[string]map[*subscriber]struct{}),
		broadcast:   make(chan domain.ClassEvent, 256),
		register:    make(chan *subscriber),
		unregister:  make(chan *subscriber),
		done:        make(chan struct{}),
	}
}

func originAllowed(origin string, allowed []string) bool {
	if origin == "" {
		return true
	}
	for _, a := range allowed {
		if a == "*" || a == origin {
			return true
		}
	}
	return false
}

func (h *EventsHandler) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.closeAll()
			return
		case sub := <-h.register:
			h.subscribersMutex.Lock()
			if h.subscribers[sub.classCode] == nil {
				h.subscribers[sub.classCode] = make(map[*subscriber]struct{})
			}
			h.subscribers[sub.classCode][sub] = struct{}{}
			h.subscribersMutex.Unlock()
		case sub := <-h.unregister:
			h.subscribersMutex.Lock()
			h.remove(sub)
			h.subscribersMutex.Unlock()
		case event := <-h.broadcast:
			h.deliver(event)
		}
	}
}

// Publish queues an event for delivery. It never blocks; when the queue is
// full the event is dropped.
func (h *EventsHandler) Publish(event domain.ClassEvent) {
	select {
	case h.broadcast <- event:
	default:
		zap.L().Warn("class event dropped", zap.String("class_code", event.ClassCode), zap.String("type", string(event.Type)))
	}
}

func (h *EventsHandler) deliver(event domain.ClassEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("failed to encode class event", zap.Error(err))
		return
	}

	h.subscribersMutex.Lock()
	defer h.subscribersMutex.Unlock()

	for sub := range h.subscribers[event.ClassCode] {
		select {
		case sub.send <- payload:
		default:
			// Slow subscriber.
			h.remove(sub)
		}
	}
}

// remove must be called with subscribersMutex held.
func (h *EventsHandler) remove(sub *subscriber) {
	subs, ok := h.subscribers[sub.classCode]
	if !ok {
		return
	}
	if _, ok := subs[sub]; !ok {
		return
	}

	delete(subs, sub)
	close(sub.send)
	if len(subs) == 0 {
		delete(h.subscribers, sub.classCode)
	}
}

func (h *EventsHandler) closeAll() {
	h.subscribersMutex.Lock()
	defer h.subscribersMutex.Unlock()

	for _, subs := range h.subscribers {
		for sub := range subs {
			h.remove(sub)
		}
	}
}

func (h *EventsHandler) subscriberCount(classCode string) int {
	h.subscribersMutex.RLock()
	defer h.subscribersMutex.RUnlock()

	return len(h.subscribers[classCode])
}

// HandleClassEvents godoc
// @Summary      Live class events
// @Description  Upgrades to a websocket that receives a JSON message for every join, points adjustment, quest and purchase in the class.
// @Tags         classes
// @Param        classCode  path  string  true  "Class code"
// @Success      101
// @Router       /classes/{classCode}/events [get]
func (h *EventsHandler) HandleClassEvents(ctx *gin.Context) {
	classCode := ctx.Param("classCode")

	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		// Upgrade has already written the error response.
		zap.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	sub := &subscriber{
		conn:      conn,
		send:      make(chan []byte, sendBufferSize),
		classCode: classCode,
	}
	select {
	case h.register <- sub:
	case <-h.done:
		conn.Close()
		return
	}

	go h.writePump(sub)
	h.readPump(sub)
}

// readPump only watches for the client going away; subscribers never send
// anything meaningful.
func (h *EventsHandler) readPump(sub *subscriber) {
	defer func() {
		select {
		case h.unregister <- sub:
		case <-h.done:
		}
		sub.conn.Close()
	}()

	sub.conn.SetReadLimit(maxMessageSize)
	_ = sub.conn.SetReadDeadline(time.Now().Add(pongWait))
	sub.conn.SetPongHandler(func(string) error {
		return sub.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				zap.L().Debug("websocket closed", zap.String("class_code", sub.classCode), zap.Error(err))
			}
			return
		}
	}
}

func (h *EventsHandler) writePump(sub *subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		sub.conn.Close()
	}()

	for {
		select {
		case message, ok := <-sub.send:
			_ = sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = sub.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := sub.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := sub.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
