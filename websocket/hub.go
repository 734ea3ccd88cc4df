package websocket

import (
	"log"
	"sync"

	"github.com/cybruGhost/keattractions-sub001/models"
	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// The hub pushes freshly stored support messages to the recipient's open
// connection. Delivery is best-effort: clients without a connection simply
// pick the message up on their next poll.

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan *models.Message)

func init() {
	go RunHub()
}

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Chat client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Chat client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case message := <-Broadcast:
			clientsMu.RLock()
			conn, ok := clients[message.RecipientID]
			clientsMu.RUnlock()
			if !ok {
				continue
			}
			if err := conn.WriteJSON(message); err != nil {
				log.Printf("Error pushing message to client %s: %v", message.RecipientID, err)
				conn.Close()
				clientsMu.Lock()
				delete(clients, message.RecipientID)
				clientsMu.Unlock()
			}
		}
	}
}
