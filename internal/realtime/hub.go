// Package realtime раздает сообщения V2V подключенным по WebSocket клиентам.
// Сообщения проходят через redis pub/sub, поэтому их видят клиенты всех
// экземпляров сервиса.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
)

const (
	MessagesChannel = "v2v_messages"

	EnvelopeMessage       = "message"
	EnvelopeNetworkStatus = "network_status"

	sendBuffer = 16
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
)

// Envelope - кадр, который получает клиент
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// StatusSource отдает текущее состояние сети V2V
type StatusSource interface {
	NetworkStatus() models.V2VNetworkStatus
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

type Hub struct {
	redis    *redis.Client
	status   StatusSource
	interval time.Duration
	logger   *logrus.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*client]struct{}
}

func NewHub(redisClient *redis.Client, status StatusSource, interval time.Duration, logger *logrus.Logger) *Hub {
	return &Hub{
		redis:    redisClient,
		status:   status,
		interval: interval,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
	}
}

// Broadcast публикует сообщение в канал redis
func (h *Hub) Broadcast(ctx context.Context, msg *models.V2VMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal v2v message: %w", err)
	}
	if err := h.redis.Publish(ctx, MessagesChannel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish v2v message: %w", err)
	}
	return nil
}

// Run слушает канал redis и рассылает статус сети до отмены контекста
func (h *Hub) Run(ctx context.Context) {
	log := h.logger.WithField("component", "realtime_hub")

	pubsub := h.redis.Subscribe(ctx, MessagesChannel)
	defer pubsub.Close()
	messages := pubsub.Channel()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	log.Info("Realtime hub started")
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			log.Info("Realtime hub stopped")
			return
		case m, ok := <-messages:
			if !ok {
				log.Warn("Redis subscription closed")
				return
			}
			h.fanOut(EnvelopeMessage, json.RawMessage(m.Payload))
		case <-ticker.C:
			h.pushStatus()
		}
	}
}

func (h *Hub) pushStatus() {
	frame, err := h.statusFrame(h.ClientCount())
	if err != nil {
		h.logger.WithError(err).Error("Failed to marshal network status")
		return
	}
	h.broadcast(frame)
}

func (h *Hub) statusFrame(liveClients int) ([]byte, error) {
	status := h.status.NetworkStatus()
	status.LiveClients = liveClients
	data, err := json.Marshal(status)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Type: EnvelopeNetworkStatus, Data: data})
}

func (h *Hub) fanOut(kind string, data json.RawMessage) {
	frame, err := json.Marshal(Envelope{Type: kind, Data: data})
	if err != nil {
		h.logger.WithError(err).Error("Failed to marshal envelope")
		return
	}
	h.broadcast(frame)
}

func (h *Hub) broadcast(frame []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- frame:
		default:
			// медленный клиент
			delete(h.clients, c)
			close(c.send)
		}
	}
}

// ClientCount - число подключенных клиентов
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ServeWS переводит соединение на WebSocket. Новый клиент первым кадром
// получает статус сети, остальные клиенты его не получают.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Warn("WebSocket upgrade failed")
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	frame, err := h.statusFrame(h.ClientCount() + 1)
	if err != nil {
		h.logger.WithError(err).Error("Failed to marshal network status")
	} else {
		// канал пуст, пока клиент не зарегистрирован
		c.send <- frame
	}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	live := len(h.clients)
	h.mu.Unlock()
	h.logger.WithField("live_clients", live).Debug("WebSocket client connected")

	go h.writeLoop(c)
	h.readLoop(c)
}

// readLoop читает только управляющие кадры и ждет закрытия
func (h *Hub) readLoop(c *client) {
	defer h.remove(c)

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.WithError(err).Debug("WebSocket read failed")
			}
			return
		}
	}
}

func (h *Hub) writeLoop(c *client) {
	ping := time.NewTicker(pongWait * 9 / 10)
	defer func() {
		ping.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ping.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}
