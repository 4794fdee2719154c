package notification

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/sawari/sawari-admin-api/internal/domain/admin"
	"github.com/sawari/sawari-admin-api/internal/pkg/response"
	"github.com/sawari/sawari-admin-api/internal/pkg/validator"
)

// WebSocket constants
const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Handler handles notification endpoints and the dashboard event stream
type Handler struct {
	repo     *Repository
	hub      *Hub
	upgrader websocket.Upgrader
}

// NewHandler creates notification handler
func NewHandler(repo *Repository, hub *Hub, allowedOrigins []string) *Handler {
	return &Handler{
		repo: repo,
		hub:  hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")

				// Allow all in development
				if len(allowedOrigins) == 0 {
					return true
				}

				for _, allowed := range allowedOrigins {
					if origin == allowed {
						return true
					}
				}

				log.Warn().Str("origin", origin).Msg("WebSocket origin rejected")
				return false
			},
		},
	}
}

// Routes mounts the notification endpoints behind the given middleware
func (h *Handler) Routes(mws ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	for _, mw := range mws {
		r.Use(mw)
	}

	r.Get("/", h.List)
	r.Post("/", h.Send)
	r.Post("/{id}/read", h.MarkRead)
	r.Get("/ws", h.WebSocket)

	return r
}

// List handles GET /notifications
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	viewer := admin.ViewerFrom(r.Context())
	if viewer == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	notifications, err := h.repo.ListForAdmin(r.Context(), viewer.ID, limit, (page-1)*limit)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, notifications)
}

// Send handles POST /notifications
func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	viewer := admin.ViewerFrom(r.Context())
	if viewer == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req SendRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	n := &Notification{
		ID:        uuid.New(),
		Kind:      req.Kind,
		Title:     req.Title,
		Body:      req.Body,
		CreatedBy: uuid.NullUUID{UUID: viewer.ID, Valid: true},
		CreatedAt: time.Now(),
	}
	if req.AdminID != nil {
		target, err := uuid.Parse(*req.AdminID)
		if err != nil {
			response.BadRequest(w, "Invalid admin ID")
			return
		}
		n.AdminID = uuid.NullUUID{UUID: target, Valid: true}
	}

	if err := h.repo.Create(r.Context(), n); err != nil {
		response.InternalError(w)
		return
	}

	h.hub.Publish(n)
	response.Created(w, n)
}

// MarkRead handles POST /notifications/{id}/read
func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	viewer := admin.ViewerFrom(r.Context())
	if viewer == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid notification ID")
		return
	}

	if err := h.repo.MarkRead(r.Context(), id, viewer.ID); err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, map[string]string{"status": "ok"})
}

// WebSocket handles GET /notifications/ws
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	viewer := admin.ViewerFrom(r.Context())
	if viewer == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	client := &Connection{
		AdminID: viewer.ID,
		Conn:    conn,
		Send:    make(chan []byte, 256),
	}

	h.hub.Register(client)

	go h.wsReader(client)
	go h.wsWriter(client)
}

// wsReader drains control frames. The stream is one-way, incoming messages
// are discarded.
func (h *Handler) wsReader(client *Connection) {
	defer func() {
		h.hub.Unregister(client)
		client.Conn.Close()
	}()

	client.Conn.SetReadLimit(1024)
	client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Error().Err(err).Str("admin_id", client.AdminID.String()).Msg("WebSocket read error")
			}
			break
		}
	}
}

func (h *Handler) wsWriter(client *Connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.Send:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
