package api

import (
	"sync"
)

// EventType represents the type of event being broadcast
type EventType string

const (
	// EventTypeWindowProgress reports that one more window of a multi-ISA
	// scan has been classified.
	EventTypeWindowProgress EventType = "window_progress"
	// EventTypeWindowResult carries a single window's top candidate.
	EventTypeWindowResult EventType = "window_result"
	// EventTypeScanComplete marks the end of a multi-ISA scan.
	EventTypeScanComplete EventType = "scan_complete"
)

// BroadcastEvent represents a broadcast event sent to WebSocket clients.
// ScanID identifies the /api/v1/classify/multi request the event belongs
// to, the way the teacher's events were scoped to a debug session.
type BroadcastEvent struct {
	Type   EventType              `json:"type"`
	ScanID string                 `json:"scanId"`
	Data   map[string]interface{} `json:"data"`
}

// Subscription represents a client's subscription to events
type Subscription struct {
	ScanID     string
	EventTypes map[EventType]bool
	Channel    chan BroadcastEvent
}

// Broadcaster manages event distribution to multiple WebSocket clients
// It uses a fan-out pattern where events are broadcast to all subscribed clients
type Broadcaster struct {
	mu            sync.RWMutex
	subscriptions map[*Subscription]bool
	broadcast     chan BroadcastEvent
	register      chan *Subscription
	unregister    chan *Subscription
	done          chan struct{}
}

// NewBroadcaster creates and starts a new event broadcaster
func NewBroadcaster() *Broadcaster {
	b := &Broadcaster{
		subscriptions: make(map[*Subscription]bool),
		broadcast:     make(chan BroadcastEvent, 256), // Buffered to prevent blocking
		register:      make(chan *Subscription),
		unregister:    make(chan *Subscription),
		done:          make(chan struct{}),
	}

	go b.run()
	return b
}

// run is the main event loop for the broadcaster
// It handles registration, unregistration, and event broadcasting
func (b *Broadcaster) run() {
	for {
		select {
		case sub := <-b.register:
			b.mu.Lock()
			b.subscriptions[sub] = true
			b.mu.Unlock()

		case sub := <-b.unregister:
			b.mu.Lock()
			if b.subscriptions[sub] {
				delete(b.subscriptions, sub)
				close(sub.Channel)
			}
			b.mu.Unlock()

		case event := <-b.broadcast:
			b.mu.RLock()
			for sub := range b.subscriptions {
				// Filter by scan ID and event type
				if sub.ScanID != "" && sub.ScanID != event.ScanID {
					continue
				}
				if len(sub.EventTypes) > 0 && !sub.EventTypes[event.Type] {
					continue
				}

				// Non-blocking send to avoid slow clients blocking the broadcaster
				select {
				case sub.Channel <- event:
				default:
					// Client is too slow, skip this event
					// In production, we might want to disconnect slow clients
				}
			}
			b.mu.RUnlock()

		case <-b.done:
			// Close all subscriptions
			b.mu.Lock()
			for sub := range b.subscriptions {
				close(sub.Channel)
			}
			b.subscriptions = make(map[*Subscription]bool)
			b.mu.Unlock()
			return
		}
	}
}

// Subscribe creates a new subscription for events
// scanID filters events to a specific scan (empty string = all scans)
// eventTypes filters events by type (empty = all types)
func (b *Broadcaster) Subscribe(scanID string, eventTypes []EventType) *Subscription {
	eventTypeMap := make(map[EventType]bool)
	for _, et := range eventTypes {
		eventTypeMap[et] = true
	}

	sub := &Subscription{
		ScanID:     scanID,
		EventTypes: eventTypeMap,
		Channel:    make(chan BroadcastEvent, 64), // Buffered to handle bursts
	}

	b.register <- sub
	return sub
}

// Unsubscribe removes a subscription and closes its channel
func (b *Broadcaster) Unsubscribe(sub *Subscription) {
	b.unregister <- sub
}

// Broadcast sends an event to all matching subscriptions
func (b *Broadcaster) Broadcast(event BroadcastEvent) {
	select {
	case b.broadcast <- event:
	default:
		// Broadcast channel is full, drop event
		// This prevents blocking the caller if the broadcaster is overwhelmed
	}
}

// BroadcastWindowProgress reports that one more window has been scored.
func (b *Broadcaster) BroadcastWindowProgress(scanID string, windowIndex, totalWindows int) {
	b.Broadcast(BroadcastEvent{
		Type:   EventTypeWindowProgress,
		ScanID: scanID,
		Data: map[string]interface{}{
			"window":       windowIndex,
			"totalWindows": totalWindows,
		},
	})
}

// BroadcastWindowResult sends a single window's top candidate.
func (b *Broadcaster) BroadcastWindowResult(scanID string, windowIndex int, isa string, avgScore float64) {
	b.Broadcast(BroadcastEvent{
		Type:   EventTypeWindowResult,
		ScanID: scanID,
		Data: map[string]interface{}{
			"window":   windowIndex,
			"isa":      isa,
			"avgScore": avgScore,
		},
	})
}

// BroadcastScanComplete marks the end of a multi-ISA scan.
func (b *Broadcaster) BroadcastScanComplete(scanID string, detected int) {
	b.Broadcast(BroadcastEvent{
		Type:   EventTypeScanComplete,
		ScanID: scanID,
		Data: map[string]interface{}{
			"detectedIsaCount": detected,
		},
	})
}

// Close shuts down the broadcaster and closes all subscriptions
func (b *Broadcaster) Close() {
	close(b.done)
}

// SubscriptionCount returns the number of active subscriptions
func (b *Broadcaster) SubscriptionCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscriptions)
}
