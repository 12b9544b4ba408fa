package game

import (
	"fmt"
	"math/rand"
	"sync"

	game_constants "github.com/YTD26/Big-Five/constants/game"
)

/*
 * 'Registry' is the process-wide mapping from room code to room. It is
 * injected where needed instead of living as a package global, and it only
 * ever exists in memory: rooms do not survive a restart and are not shared
 * across processes.
 */
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]*Room)}
}

// CreateRoom allocates a room under a fresh 6 character uppercase
// alphanumeric code. Collisions are resolved by regenerating, bounded so a
// (practically impossible) exhausted code space cannot spin forever.
func (reg *Registry) CreateRoom() (*Room, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	for attempt := 0; attempt < game_constants.RoomCodeMaxRetries; attempt++ {
		code := generateRoomCode(game_constants.RoomCodeLength)
		if _, taken := reg.rooms[code]; taken {
			continue
		}
		room := NewRoom(code)
		reg.rooms[code] = room
		return room, nil
	}

	return nil, fmt.Errorf("could not allocate a unique room code after %d attempts",
		game_constants.RoomCodeMaxRetries)
}

func (reg *Registry) Find(roomID string) (*Room, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	room, ok := reg.rooms[roomID]
	return room, ok
}

func (reg *Registry) Delete(roomID string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	delete(reg.rooms, roomID)
}

// Rooms returns a snapshot of all live rooms, used by the disconnect sweep.
func (reg *Registry) Rooms() []*Room {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	rooms := make([]*Room, 0, len(reg.rooms))
	for _, room := range reg.rooms {
		rooms = append(rooms, room)
	}
	return rooms
}

func (reg *Registry) Count() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rooms)
}

// Teardown drops every room, for process shutdown.
func (reg *Registry) Teardown() {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.rooms = make(map[string]*Room)
}

// Random room code generation
func generateRoomCode(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = game_constants.RoomCodeCharset[rand.Intn(len(game_constants.RoomCodeCharset))]
	}
	return string(b)
}
