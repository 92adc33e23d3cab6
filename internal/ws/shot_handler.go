package ws

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/windcaddy/backend/internal/physics"
	"github.com/windcaddy/backend/internal/session"
	"github.com/windcaddy/backend/internal/viz"
)

// Client command payloads.
type SetParamsData struct {
	Distance      float64 `json:"distance"`
	WindSpeed     float64 `json:"wind_speed"`
	WindDirection float64 `json:"wind_direction"`
}

type SetConditionsData struct {
	Temperature   float64 `json:"temperature"`
	Humidity      float64 `json:"humidity"`
	Pressure      float64 `json:"pressure"`
	WindSpeed     float64 `json:"wind_speed"`
	WindDirection float64 `json:"wind_direction"`
	Altitude      float64 `json:"altitude"`
}

type SelectClubData struct {
	Name string `json:"name"`
}

// ShotHub is the single hub for all shot sessions.
var ShotHub *Hub

func init() {
	ShotHub = NewHub()
	go runShotHub(ShotHub)
}

// HandleWebSocket upgrades a connection for an existing shot session and
// pushes an initial snapshot.
func HandleWebSocket(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session token required"})
		return
	}

	s, err := session.Manager.GetByToken(token)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	client := &Client{
		conn:         conn,
		clientID:     newClientID(),
		sessionToken: s.Token,
		send:         make(chan []byte, 256),
	}

	ShotHub.register <- client

	go client.writePump()
	go client.readPump()
}

func newClientID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return hex.EncodeToString([]byte(time.Now().String()))[:16]
	}
	return hex.EncodeToString(b)
}

// runShotHub handles joins and leaves, pushing a fresh snapshot to every new
// viewer.
func runShotHub(h *Hub) {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.clientID] = client
			if _, exists := h.sessions[client.sessionToken]; !exists {
				h.sessions[client.sessionToken] = make(map[string]*Client)
			}
			h.sessions[client.sessionToken][client.clientID] = client
			h.mu.Unlock()

			log.Printf("[WS] Client %s joined session %s", client.clientID, client.sessionToken)

			client.pushSnapshot("scene_update")

		case client := <-h.unregister:
			h.mu.Lock()
			if cur, ok := h.clients[client.clientID]; ok && cur == client {
				delete(h.clients, client.clientID)
				if room, exists := h.sessions[client.sessionToken]; exists {
					delete(room, client.clientID)
					if len(room) == 0 {
						delete(h.sessions, client.sessionToken)
					}
				}

				log.Printf("[WS] Client %s left session %s", client.clientID, client.sessionToken)

				// Removal from the maps above excludes concurrent sends, so
				// the channel can close even with messages still buffered.
				close(client.send)
			}
			h.mu.Unlock()
		}
	}
}

// readPump reads client commands until the connection drops.
func (c *Client) readPump() {
	defer func() {
		ShotHub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(8192)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error (unexpected) for %s: %v", c.clientID, err)
			} else {
				log.Printf("WebSocket read error for %s: %v", c.clientID, err)
			}
			break
		}

		var msg WSMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}

		c.handleMessage(msg)
	}
}

// handleMessage processes one client command: apply the change, recompute,
// broadcast the new snapshot, persist.
func (c *Client) handleMessage(msg WSMessage) {
	s, err := session.Manager.GetByToken(c.sessionToken)
	if err != nil {
		c.sendError("Session not found")
		return
	}

	switch msg.Type {
	case "set_params":
		var data SetParamsData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("Invalid params data")
			return
		}
		p := viz.Params{Distance: data.Distance, WindSpeed: data.WindSpeed, WindDirection: data.WindDirection}
		if err := s.SetParams(p); err != nil {
			c.sendError(err.Error())
			return
		}

	case "set_conditions":
		var data SetConditionsData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("Invalid conditions data")
			return
		}
		cond := physics.Conditions{
			Temperature:   data.Temperature,
			Humidity:      data.Humidity,
			Pressure:      data.Pressure,
			WindSpeed:     data.WindSpeed,
			WindDirection: data.WindDirection,
			Altitude:      data.Altitude,
		}
		if err := s.SetConditions(cond); err != nil {
			c.sendError(err.Error())
			return
		}

	case "select_club":
		var data SelectClubData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("Invalid club data")
			return
		}
		if data.Name != "" {
			if _, err := session.Manager.Clubs().GetByName(data.Name); err != nil {
				c.sendError("Unknown club: " + data.Name)
				return
			}
		}
		s.SelectClub(data.Name)

	case "get_state":
		c.pushSnapshot("scene_update")
		return

	default:
		c.sendError("Unknown message type")
		return
	}

	// Every applied change triggers a synchronous recompute-and-push for all
	// viewers of the session, then persists the inputs.
	broadcastSnapshot(s.Token)
	session.Manager.SaveToRedis(s)
}

// pushSnapshot recomputes and sends the session state to this client only.
func (c *Client) pushSnapshot(msgType string) {
	snap, err := computeSnapshot(c.sessionToken)
	if err != nil {
		c.sendError(err.Error())
		return
	}

	data, err := json.Marshal(map[string]interface{}{"type": msgType, "snapshot": snap})
	if err != nil {
		log.Printf("[WS] Failed to marshal snapshot for %s: %v", c.sessionToken, err)
		return
	}

	select {
	case c.send <- data:
	default:
		log.Printf("[WS] Dropped snapshot for %s (buffer full)", c.clientID)
	}
}

// broadcastSnapshot recomputes once and pushes to every viewer.
func broadcastSnapshot(sessionToken string) {
	snap, err := computeSnapshot(sessionToken)
	if err != nil {
		log.Printf("[WS] Recompute failed for session %s: %v", sessionToken, err)
		return
	}

	ShotHub.BroadcastToSession(sessionToken, map[string]interface{}{
		"type":     "scene_update",
		"snapshot": snap,
	})
}

func computeSnapshot(sessionToken string) (session.Snapshot, error) {
	s, err := session.Manager.GetByToken(sessionToken)
	if err != nil {
		return session.Snapshot{}, err
	}

	club, err := session.Manager.ResolveClub(s)
	if err != nil {
		log.Printf("[WS] Club lookup failed for session %s: %v", sessionToken, err)
		club = nil
	}

	return s.Recompute(club)
}
