// Package receiver implements a local stand-in for the artifact push
// registration backend, serving both the REST webhook and the GraphQL API.
package receiver

import (
	"sync"
	"time"

	"github.com/savaki/artifact-notifier/internal/models"
	"github.com/segmentio/ksuid"
)

// Transport names the endpoint a push arrived on
type Transport string

const (
	TransportREST    Transport = "REST"
	TransportGraphQL Transport = "GRAPHQL"
)

// Push is a notification accepted by the receiver
type Push struct {
	ID           string                          `json:"id"`
	Transport    Transport                       `json:"transport"`
	ReceivedAt   time.Time                       `json:"receivedAt"`
	Notification models.ArtifactPushNotification `json:"notification"`
}

// Store keeps accepted pushes in memory, oldest first
type Store struct {
	mu     sync.RWMutex
	pushes []Push
	now    func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

// Add records n and returns the stored push
func (s *Store) Add(transport Transport, n models.ArtifactPushNotification) Push {
	push := Push{
		ID:           ksuid.New().String(),
		Transport:    transport,
		ReceivedAt:   s.now().UTC(),
		Notification: n,
	}

	s.mu.Lock()
	s.pushes = append(s.pushes, push)
	s.mu.Unlock()

	return push
}

// List returns a copy of every recorded push
func (s *Store) List() []Push {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pushes := make([]Push, len(s.pushes))
	copy(pushes, s.pushes)
	return pushes
}

// Len returns the number of recorded pushes
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pushes)
}
