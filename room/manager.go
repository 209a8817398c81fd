package room

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"

	"github.com/rs/zerolog"

	"stardodge/metrics"
	"stardodge/session"
)

// RoomInfo is returned by the API for the server list.
type RoomInfo struct {
	Code    string `json:"code"`
	Players int    `json:"players"`
}

// Manager holds multiple rooms by code. Rooms are created on first join or
// via CreateRoom, and removed when the last player leaves. All rooms share
// one session manager, so identical options never reload assets.
type Manager struct {
	mu       sync.RWMutex
	rooms    map[string]*Room
	sessions *session.Manager
	opts     session.Options
	log      zerolog.Logger
}

func NewManager(sm *session.Manager, opts session.Options, log zerolog.Logger) *Manager {
	return &Manager{
		rooms:    make(map[string]*Room),
		sessions: sm,
		opts:     opts,
		log:      log,
	}
}

// GetOrCreateRoom returns the room for the given code, creating it if needed.
func (m *Manager) GetOrCreateRoom(code string) (*Room, error) {
	if code == "" {
		return nil, fmt.Errorf("empty room code")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rooms[code]; ok {
		return r, nil
	}
	return m.startRoomLocked(code)
}

func (m *Manager) startRoomLocked(code string) (*Room, error) {
	r, err := New(m.sessions, m.opts, m.log)
	if err != nil {
		return nil, err
	}
	r.Code = code
	r.OnEmpty = func(c string) {
		m.removeRoom(c)
	}
	m.rooms[code] = r
	metrics.ActiveRooms.Inc()
	go r.Run()
	return r, nil
}

func (m *Manager) removeRoom(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rooms[code]; ok {
		r.Stop()
		delete(m.rooms, code)
		metrics.ActiveRooms.Dec()
	}
}

// StopAll shuts every room down; used on server shutdown.
func (m *Manager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for code, r := range m.rooms {
		r.Stop()
		delete(m.rooms, code)
		metrics.ActiveRooms.Dec()
	}
}

const codeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// CreateRoom generates a unique 6-char code, creates the room, and returns the code.
func (m *Manager) CreateRoom() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for {
		code := generateCode(6)
		if _, exists := m.rooms[code]; exists {
			continue
		}
		if _, err := m.startRoomLocked(code); err != nil {
			return "", err
		}
		return code, nil
	}
}

// ListRooms returns all active rooms with code and player count.
func (m *Manager) ListRooms() []RoomInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]RoomInfo, 0, len(m.rooms))
	for code, r := range m.rooms {
		out = append(out, RoomInfo{Code: code, Players: r.NumPlayers()})
	}
	return out
}

func generateCode(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(codeChars)))
	for i := range b {
		idx, _ := rand.Int(rand.Reader, max)
		b[i] = codeChars[idx.Int64()]
	}
	return string(b)
}
