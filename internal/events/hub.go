// Package events fans job application changes out to the admin that owns the job.
package events

import (
	"sync"

	"github.com/whenwework/platform-go/internal/domain/jobapplication"
	"go.uber.org/zap"
)

const subscriberBuffer = 32

type Publisher interface {
	Publish(ev jobapplication.Event)
}

type Hub struct {
	mu     sync.RWMutex
	subs   map[uint]map[chan jobapplication.Event]struct{}
	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		subs:   make(map[uint]map[chan jobapplication.Event]struct{}),
		logger: logger,
	}
}

// Subscribe registers a listener for one admin tenant. The returned cancel
// func must be called to release the channel.
func (h *Hub) Subscribe(adminID uint) (<-chan jobapplication.Event, func()) {
	ch := make(chan jobapplication.Event, subscriberBuffer)

	h.mu.Lock()
	if h.subs[adminID] == nil {
		h.subs[adminID] = make(map[chan jobapplication.Event]struct{})
	}
	h.subs[adminID][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[adminID], ch)
			if len(h.subs[adminID]) == 0 {
				delete(h.subs, adminID)
			}
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish never blocks; slow subscribers miss events.
func (h *Hub) Publish(ev jobapplication.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[ev.AdminID] {
		select {
		case ch <- ev:
		default:
			h.logger.Warn("dropping event for slow subscriber",
				zap.Uint("admin_id", ev.AdminID),
				zap.String("type", ev.Type),
			)
		}
	}
}

func (h *Hub) Subscribers(adminID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[adminID])
}

// Nop discards events.
type Nop struct{}

func (Nop) Publish(jobapplication.Event) {}
