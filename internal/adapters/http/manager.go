package httpadapter

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"svw.info/playsudoku/internal/domain"
	"svw.info/playsudoku/internal/session"
)

// managed wraps a live session with the mutex that serializes the ticker
// against HTTP mutations, and the subscriber set fed by broadcasts.
type managed struct {
	mu   sync.Mutex
	sess *session.Session
	subs map[chan session.View]struct{}
}

// Manager is the uuid-keyed registry of live sessions. One background
// goroutine drives every session's clock; each session's operations are
// serialized by its own mutex so a tick and a mutation never interleave.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*managed
	done     chan struct{}
	stopOnce sync.Once
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*managed),
		done:     make(chan struct{}),
	}
}

// Start launches the once-per-second tick loop.
func (m *Manager) Start() {
	go m.tickLoop()
}

// Stop halts the tick loop. Live sessions stay readable.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() { close(m.done) })
}

func (m *Manager) tickLoop() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.tickAll()
		}
	}
}

func (m *Manager) tickAll() {
	m.mu.RLock()
	list := make([]*managed, 0, len(m.sessions))
	for _, ms := range m.sessions {
		list = append(list, ms)
	}
	m.mu.RUnlock()

	for _, ms := range list {
		ms.mu.Lock()
		ms.sess.Tick()
		if ms.sess.TimerRunning() {
			broadcastLocked(ms)
		}
		ms.mu.Unlock()
	}
}

// Add registers a session and returns its new ID.
func (m *Manager) Add(s *session.Session) string {
	id := uuid.NewString()
	m.mu.Lock()
	m.sessions[id] = &managed{sess: s, subs: make(map[chan session.View]struct{})}
	m.mu.Unlock()
	return id
}

func (m *Manager) get(id string) (*managed, bool) {
	m.mu.RLock()
	ms, ok := m.sessions[id]
	m.mu.RUnlock()
	return ms, ok
}

// Do runs op on the session under its lock, broadcasts the resulting view to
// subscribers, and returns it. ok is false when the ID is unknown.
func (m *Manager) Do(id string, op func(*session.Session)) (session.View, bool) {
	ms, ok := m.get(id)
	if !ok {
		return session.View{}, false
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if op != nil {
		op(ms.sess)
	}
	v := ms.sess.View()
	broadcastLocked(ms)
	return v, true
}

// ViewOf reads the current view without mutating or broadcasting.
func (m *Manager) ViewOf(id string) (session.View, bool) {
	ms, ok := m.get(id)
	if !ok {
		return session.View{}, false
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.sess.View(), true
}

// Snapshot captures the session for persistence under its lock.
func (m *Manager) Snapshot(id, name string) (*domain.SavedGame, bool) {
	ms, ok := m.get(id)
	if !ok {
		return nil, false
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.sess.Snapshot(id, name), true
}

// Subscribe attaches a view channel to the session. The returned cancel
// removes it. Slow subscribers miss intermediate views rather than blocking
// the engine.
func (m *Manager) Subscribe(id string) (<-chan session.View, func(), bool) {
	ms, ok := m.get(id)
	if !ok {
		return nil, nil, false
	}
	ch := make(chan session.View, 8)
	ms.mu.Lock()
	ms.subs[ch] = struct{}{}
	ch <- ms.sess.View()
	ms.mu.Unlock()
	cancel := func() {
		ms.mu.Lock()
		delete(ms.subs, ch)
		ms.mu.Unlock()
	}
	return ch, cancel, true
}

// broadcastLocked fans the current view out to subscribers; the caller holds
// ms.mu.
func broadcastLocked(ms *managed) {
	if len(ms.subs) == 0 {
		return
	}
	v := ms.sess.View()
	for ch := range ms.subs {
		select {
		case ch <- v:
		default: // drop for slow consumers
		}
	}
}
