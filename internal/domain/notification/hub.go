package notification

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const eventsChannel = "notifications:events"

// wireEvent is the envelope published over Redis so every API instance can
// deliver the notification to its own connected dashboards.
type wireEvent struct {
	AdminID          string        `json:"admin_id,omitempty"` // empty means broadcast
	Notification     *Notification `json:"notification"`
	SenderInstanceID string        `json:"sender_instance_id"`
}

// Connection represents one dashboard WebSocket connection
type Connection struct {
	AdminID uuid.UUID
	Conn    *websocket.Conn
	Send    chan []byte
}

// Hub fans notifications out to connected dashboards. Redis Pub/Sub carries
// events between API instances; without Redis delivery is local only.
type Hub struct {
	connections map[uuid.UUID]map[*Connection]bool

	redis  *redis.Client
	pubsub *redis.PubSub

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection

	ctx    context.Context
	cancel context.CancelFunc

	instanceID string
}

// NewHub creates a notification hub. The Redis client may be nil.
func NewHub(redisClient *redis.Client) *Hub {
	ctx, cancel := context.WithCancel(context.Background())

	h := &Hub{
		connections: make(map[uuid.UUID]map[*Connection]bool),
		redis:       redisClient,
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		ctx:         ctx,
		cancel:      cancel,
		instanceID:  uuid.NewString(),
	}

	if redisClient != nil {
		h.pubsub = redisClient.Subscribe(ctx, eventsChannel)
	}

	return h
}

// Run starts the hub (call in goroutine)
func (h *Hub) Run() {
	if h.pubsub != nil {
		go h.runRedisSubscriber()
	}

	for {
		select {
		case <-h.ctx.Done():
			return

		case conn := <-h.register:
			h.mu.Lock()
			if h.connections[conn.AdminID] == nil {
				h.connections[conn.AdminID] = make(map[*Connection]bool)
			}
			h.connections[conn.AdminID][conn] = true
			h.mu.Unlock()
			log.Debug().Str("admin_id", conn.AdminID.String()).Msg("Dashboard connected to notification stream")

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.connections[conn.AdminID]; ok {
				if _, exists := conns[conn]; exists {
					delete(conns, conn)
					close(conn.Send)
				}
				if len(conns) == 0 {
					delete(h.connections, conn.AdminID)
				}
			}
			h.mu.Unlock()
			log.Debug().Str("admin_id", conn.AdminID.String()).Msg("Dashboard disconnected from notification stream")
		}
	}
}

func (h *Hub) runRedisSubscriber() {
	ch := h.pubsub.Channel()

	for {
		select {
		case <-h.ctx.Done():
			return

		case msg, ok := <-ch:
			if !ok {
				return
			}

			var event wireEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				continue
			}
			if event.SenderInstanceID == h.instanceID {
				continue
			}

			h.deliverLocal(&event)
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// Publish delivers a notification to every API instance. A notification with
// a null admin_id goes to all connected dashboards.
func (h *Hub) Publish(n *Notification) {
	event := &wireEvent{
		Notification:     n,
		SenderInstanceID: h.instanceID,
	}
	if n.AdminID.Valid {
		event.AdminID = n.AdminID.UUID.String()
	}

	h.deliverLocal(event)

	if h.redis == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal notification event")
		return
	}
	if err := h.redis.Publish(h.ctx, eventsChannel, payload).Err(); err != nil {
		log.Error().Err(err).Msg("Redis publish failed for notification event")
	}
}

func (h *Hub) deliverLocal(event *wireEvent) {
	data, err := json.Marshal(event.Notification)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if event.AdminID != "" {
		adminID, err := uuid.Parse(event.AdminID)
		if err != nil {
			return
		}
		h.sendTo(h.connections[adminID], data)
		return
	}

	for _, conns := range h.connections {
		h.sendTo(conns, data)
	}
}

func (h *Hub) sendTo(conns map[*Connection]bool, data []byte) {
	for conn := range conns {
		select {
		case conn.Send <- data:
		default:
			// Buffer full, drop this event
			log.Warn().Str("admin_id", conn.AdminID.String()).Msg("Notification send buffer full")
		}
	}
}

// ConnectionCount returns the number of local connections
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	total := 0
	for _, conns := range h.connections {
		total += len(conns)
	}
	return total
}

// Shutdown gracefully shuts down the hub
func (h *Hub) Shutdown() {
	h.cancel()
	if h.pubsub != nil {
		h.pubsub.Close()
	}
}
