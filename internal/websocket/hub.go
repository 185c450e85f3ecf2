package websocket

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
)

// ErrClientClosed is returned when attempting to send to a closed client
var ErrClientClosed = errors.New("client is closed")

// ClientInterface defines the interface that clients must implement
type ClientInterface interface {
	ID() string
	AccountID() int32
	Send(data []byte) error
	Close() error
}

// Hub manages WebSocket connections organized by business account.
// It is safe for concurrent use.
type Hub struct {
	// accounts maps account ID to a map of client ID to client
	accounts map[int32]map[string]ClientInterface
	mu       sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		accounts: make(map[int32]map[string]ClientInterface),
	}
}

// Register adds a client to the hub under its account
func (h *Hub) Register(client ClientInterface) {
	h.mu.Lock()
	defer h.mu.Unlock()

	accountID := client.AccountID()
	clientID := client.ID()

	if h.accounts[accountID] == nil {
		h.accounts[accountID] = make(map[string]ClientInterface)
	}

	h.accounts[accountID][clientID] = client

	log.Debug().
		Int32("account_id", accountID).
		Str("client_id", clientID).
		Msg("WebSocket client registered")
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(client ClientInterface) {
	h.mu.Lock()
	defer h.mu.Unlock()

	accountID := client.AccountID()
	clientID := client.ID()

	if clients, ok := h.accounts[accountID]; ok {
		if _, exists := clients[clientID]; exists {
			delete(clients, clientID)

			// Clean up empty account maps
			if len(clients) == 0 {
				delete(h.accounts, accountID)
			}

			log.Debug().
				Int32("account_id", accountID).
				Str("client_id", clientID).
				Msg("WebSocket client unregistered")
		}
	}
}

// Broadcast sends an event to all clients watching a specific account
func (h *Hub) Broadcast(accountID int32, event Event) {
	data, err := event.ToJSON()
	if err != nil {
		log.Error().
			Err(err).
			Int32("account_id", accountID).
			Str("event_type", event.Type).
			Msg("Failed to serialize event")
		return
	}

	h.mu.RLock()
	clients, ok := h.accounts[accountID]
	if !ok || len(clients) == 0 {
		h.mu.RUnlock()
		return
	}

	// Copy clients to avoid holding lock during send
	clientsCopy := make([]ClientInterface, 0, len(clients))
	for _, client := range clients {
		clientsCopy = append(clientsCopy, client)
	}
	h.mu.RUnlock()

	// Send to each client asynchronously
	for _, client := range clientsCopy {
		go func(c ClientInterface) {
			if err := c.Send(data); err != nil {
				log.Warn().
					Err(err).
					Int32("account_id", accountID).
					Str("client_id", c.ID()).
					Msg("Failed to send to client")
			}
		}(client)
	}

	log.Debug().
		Int32("account_id", accountID).
		Str("event_type", event.Type).
		Int("client_count", len(clientsCopy)).
		Msg("Event broadcast")
}

// ClientCount returns the number of clients watching an account
func (h *Hub) ClientCount(accountID int32) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.accounts[accountID])
}
