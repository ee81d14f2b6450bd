package store

import (
	"context"
	"sync"

	"github.com/sketchwall/sketchwall/pkg/canvas"
	"github.com/sketchwall/sketchwall/pkg/observability"
)

// EventKind classifies a board change.
type EventKind string

// Board change kinds.
const (
	EventUpdated EventKind = "updated"
	EventDeleted EventKind = "deleted"
)

// Event describes a committed board change. Board carries the state
// after the change and is nil for deletions.
type Event struct {
	BoardID string        `json:"board_id"`
	Kind    EventKind     `json:"kind"`
	Board   *canvas.Board `json:"board,omitempty"`
}

// Manager wraps a Store with per-board write serialization and change
// notification. All server writes go through the manager, so a
// read-modify-write batch (move a shape, rebind its arrows) commits as
// one update and subscribers see whole-board states, never halves.
type Manager struct {
	store Store

	mu    sync.Mutex
	locks map[string]*sync.Mutex
	subs  map[string]map[chan Event]struct{}
}

// NewManager wraps a store.
func NewManager(store Store) *Manager {
	return &Manager{
		store: store,
		locks: make(map[string]*sync.Mutex),
		subs:  make(map[string]map[chan Event]struct{}),
	}
}

// boardLock returns the write lock for one board, creating it on first
// use. Locks are never discarded; boards number in the hundreds, not
// millions.
func (m *Manager) boardLock(boardID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.locks[boardID]
	if !ok {
		l = &sync.Mutex{}
		m.locks[boardID] = l
	}
	return l
}

// Get retrieves a board.
func (m *Manager) Get(ctx context.Context, boardID string) (*canvas.Board, error) {
	return m.store.Get(ctx, boardID)
}

// List returns board summaries.
func (m *Manager) List(ctx context.Context) ([]BoardInfo, error) {
	return m.store.List(ctx)
}

// Put stores a board and notifies subscribers.
func (m *Manager) Put(ctx context.Context, board *canvas.Board) error {
	if err := checkBoard(board); err != nil {
		return err
	}

	l := m.boardLock(board.ID)
	l.Lock()
	defer l.Unlock()

	if err := m.store.Put(ctx, board); err != nil {
		return err
	}
	observability.Board().OnMutation(ctx, board.ID, string(EventUpdated))
	m.notify(Event{BoardID: board.ID, Kind: EventUpdated, Board: board.Clone()})
	return nil
}

// Delete removes a board and notifies subscribers.
func (m *Manager) Delete(ctx context.Context, boardID string) error {
	l := m.boardLock(boardID)
	l.Lock()
	defer l.Unlock()

	if err := m.store.Delete(ctx, boardID); err != nil {
		return err
	}
	observability.Board().OnMutation(ctx, boardID, string(EventDeleted))
	m.notify(Event{BoardID: boardID, Kind: EventDeleted})
	return nil
}

// Update applies fn to the stored board under the board's write lock
// and persists the result. fn receives a private copy; returning an
// error discards the change. The committed board is returned.
func (m *Manager) Update(ctx context.Context, boardID string, fn func(*canvas.Board) error) (*canvas.Board, error) {
	l := m.boardLock(boardID)
	l.Lock()
	defer l.Unlock()

	board, err := m.store.Get(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if err := fn(board); err != nil {
		return nil, err
	}
	if err := m.store.Put(ctx, board); err != nil {
		return nil, err
	}

	observability.Board().OnMutation(ctx, boardID, string(EventUpdated))
	m.notify(Event{BoardID: boardID, Kind: EventUpdated, Board: board.Clone()})
	return board, nil
}

// Subscribe registers for change events on one board. The returned
// cancel function must be called to release the subscription; it closes
// the channel.
func (m *Manager) Subscribe(boardID string, buffer int) (<-chan Event, func()) {
	ch := make(chan Event, buffer)

	m.mu.Lock()
	if m.subs[boardID] == nil {
		m.subs[boardID] = make(map[chan Event]struct{})
	}
	m.subs[boardID][ch] = struct{}{}
	m.mu.Unlock()

	cancel := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if set, ok := m.subs[boardID]; ok {
			if _, live := set[ch]; live {
				delete(set, ch)
				close(ch)
			}
			if len(set) == 0 {
				delete(m.subs, boardID)
			}
		}
	}
	return ch, cancel
}

// notify fans an event out to the board's subscribers. Sends never
// block; a subscriber that has fallen behind misses the event and must
// re-fetch the board.
func (m *Manager) notify(ev Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delivered, dropped := 0, 0
	for ch := range m.subs[ev.BoardID] {
		select {
		case ch <- ev:
			delivered++
		default:
			dropped++
		}
	}
	observability.Board().OnBroadcast(ev.BoardID, string(ev.Kind), delivered, dropped)
}

// Close closes the underlying store and all subscriber channels.
func (m *Manager) Close() error {
	m.mu.Lock()
	for boardID, set := range m.subs {
		for ch := range set {
			close(ch)
		}
		delete(m.subs, boardID)
	}
	m.mu.Unlock()

	return m.store.Close()
}
