package sink

import (
	"context"
	"sync"

	"actionkernel/internal/audit"
	"actionkernel/internal/routing"
)

// InMemorySink keeps both audit trails in process. It is meant for tests and
// short-lived hosts; nothing is persisted.
type InMemorySink struct {
	mu      sync.RWMutex
	privacy []audit.Event
	routes  []routing.ContextAuditEvent
}

func NewInMemorySink() *InMemorySink {
	return &InMemorySink{}
}

func (s *InMemorySink) RecordPrivacy(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.privacy = append(s.privacy, event)
	return nil
}

func (s *InMemorySink) RecordRoute(_ context.Context, event routing.ContextAuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes = append(s.routes, event)
	return nil
}

// PrivacyEvents returns a copy of the recorded privacy events in arrival order.
func (s *InMemorySink) PrivacyEvents() []audit.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]audit.Event{}, s.privacy...)
}

// RouteEvents returns a copy of the recorded route events in arrival order.
func (s *InMemorySink) RouteEvents() []routing.ContextAuditEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]routing.ContextAuditEvent{}, s.routes...)
}

func (s *InMemorySink) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.privacy = nil
	s.routes = nil
}
