// Package store holds the canonical in-memory application state: projects
// with their owned tasks, the deal pipeline, chat messages, notifications
// and UI-adjacent workspace state. All mutations serialize on one mutex and
// are applied in lock-acquisition order; reads copy state out so callers
// can never alias store internals. A designated subset of the state is
// written through a Persister after every mutation that touches it.
package store

import (
	"errors"
	"sync"
	"time"
)

// Sentinel errors for mutations against unknown identifiers. The UI may
// race a delete with a stale id; callers decide whether to surface these.
var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrDealNotFound         = errors.New("deal not found")
	ErrMessageNotFound      = errors.New("message not found")
	ErrAttachmentNotFound   = errors.New("attachment not found")
	ErrNotificationNotFound = errors.New("notification not found")
)

// Persister writes and reads the durable snapshot blob.
type Persister interface {
	Save(data []byte) error
	Load() ([]byte, error)
}

// EventSink receives a change event after every committed mutation.
// Implementations must not block.
type EventSink interface {
	Publish(ev ChangeEvent)
}

// ChangeEvent describes one committed store mutation.
type ChangeEvent struct {
	Entity    string `json:"entity"` // project, task, deal, message, notification, workspace
	Action    string `json:"action"` // created, updated, deleted
	ID        int64  `json:"id,omitempty"`
	ProjectID int64  `json:"project_id,omitempty"`
}

// Store is the application state container.
type Store struct {
	mu        sync.RWMutex
	state     state
	persister Persister
	events    EventSink
	now       func() time.Time
	lastID    int64
}

// NewStore creates a store with default empty state. persister may be nil,
// in which case state is session-only.
func NewStore(persister Persister) *Store {
	return &Store{
		state:     defaultState(),
		persister: persister,
		now:       time.Now,
	}
}

// SetEventSink wires a change-event receiver. Call before serving traffic.
func (s *Store) SetEventSink(sink EventSink) {
	s.events = sink
}

// nextIDLocked derives a unique identifier from wall-clock milliseconds,
// bumping past the previous one when two creations land in the same tick.
func (s *Store) nextIDLocked() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) emit(ev ChangeEvent) {
	if s.events != nil {
		s.events.Publish(ev)
	}
}

// Reset discards all state, returning the store to its compiled-in
// defaults, and persists the now-empty snapshot.
func (s *Store) Reset() {
	s.mu.Lock()
	s.state = defaultState()
	s.persistLocked()
	s.mu.Unlock()
	s.emit(ChangeEvent{Entity: "workspace", Action: "reset"})
}
