package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/rollforge/dicechat/storage"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512

	// gameLogEntryAddEvent is the wire event name under which broadcast chat
	// entries are wrapped, matching the original socket event verbatim.
	gameLogEntryAddEvent = "GameLog.Entry.Add"
)

// hubEvent is the envelope every broadcast message is wrapped in.
type hubEvent struct {
	Event string               `json:"event"`
	Data  storage.ChatLogEntry `json:"data"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// client is a single WebSocket connection subscribed to one room's log.
type client struct {
	hub  *hub
	room string
	conn *websocket.Conn
	send chan []byte
}

// hub fans out rendered chat lines to every client subscribed to a room.
type hub struct {
	rooms      map[string]map[*client]bool
	broadcast  chan roomMessage
	register   chan *client
	unregister chan *client
	metrics    *Metrics
}

type roomMessage struct {
	room string
	data []byte
}

func newHub(metrics *Metrics) *hub {
	return &hub{
		rooms:      make(map[string]map[*client]bool),
		broadcast:  make(chan roomMessage),
		register:   make(chan *client),
		unregister: make(chan *client),
		metrics:    metrics,
	}
}

// run drives the hub's event loop; it must be started in its own goroutine.
func (h *hub) run() {
	for {
		select {
		case c := <-h.register:
			if h.rooms[c.room] == nil {
				h.rooms[c.room] = make(map[*client]bool)
			}
			h.rooms[c.room][c] = true
			if h.metrics != nil {
				h.metrics.wsConnections.Inc()
			}

		case c := <-h.unregister:
			if clients, ok := h.rooms[c.room]; ok {
				if _, ok := clients[c]; ok {
					delete(clients, c)
					close(c.send)
					if h.metrics != nil {
						h.metrics.wsConnections.Dec()
					}
				}
			}

		case msg := <-h.broadcast:
			for c := range h.rooms[msg.room] {
				select {
				case c.send <- msg.data:
				default:
					close(c.send)
					delete(h.rooms[msg.room], c)
				}
			}
		}
	}
}

// Broadcast publishes entry to every client subscribed to room, wrapped in
// the GameLog.Entry.Add event envelope.
func (h *hub) Broadcast(room string, entry storage.ChatLogEntry) {
	data, err := json.Marshal(hubEvent{Event: gameLogEntryAddEvent, Data: entry})
	if err != nil {
		log.Error().Err(err).Str("room", room).Msg("marshal broadcast entry")
		return
	}
	h.broadcast <- roomMessage{room: room, data: data}
}

// writePump relays queued messages and periodic pings to the client's
// connection; it owns the connection's writes and exits when send closes.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards client input beyond keepalive pongs; dicechat rooms are
// push-only over WebSocket, with writes happening via the HTTP chat endpoint.
func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func serveWS(h *hub, w http.ResponseWriter, r *http.Request, room string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Str("room", room).Msg("websocket upgrade failed")
		return
	}
	c := &client{hub: h, room: room, conn: conn, send: make(chan []byte, 16)}
	h.register <- c

	go c.writePump()
	go c.readPump()
}
