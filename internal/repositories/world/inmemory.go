package world

import (
	"context"
	"fmt"
	"sync"

	"github.com/dvaquero/mazmorra/internal/entities"
	"github.com/dvaquero/mazmorra/internal/errors"
)

// InMemoryRepository implements Repository over a generated world. It
// takes ownership of the world value; all access goes through the lock.
// Rooms are cloned on the way out so callers cannot mutate the store.
type InMemoryRepository struct {
	mu      sync.RWMutex
	world   *entities.World
	byID    map[string]*entities.Room
	visited map[string]bool
}

// NewInMemory creates a repository owning the given world
func NewInMemory(w *entities.World) *InMemoryRepository {
	byID := make(map[string]*entities.Room, len(w.Rooms))
	for _, room := range w.Rooms {
		byID[room.ID] = room
	}

	return &InMemoryRepository{
		world:   w,
		byID:    byID,
		visited: make(map[string]bool),
	}
}

// GetRoom retrieves a room by id
func (r *InMemoryRepository) GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("room ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.byID[input.ID]
	if !ok {
		return nil, errors.NotFoundf("room %s not found", input.ID)
	}

	return &GetRoomOutput{Room: room.Clone()}, nil
}

// GetRoomByCoordinates retrieves a room by grid position
func (r *InMemoryRepository) GetRoomByCoordinates(ctx context.Context, input *GetRoomByCoordinatesInput) (*GetRoomByCoordinatesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	room := r.roomAt(input.X, input.Y)
	if room == nil {
		return nil, errors.NotFoundf("no room at (%d, %d)", input.X, input.Y)
	}

	return &GetRoomByCoordinatesOutput{Room: room.Clone()}, nil
}

// roomAt returns the room at the given coordinates, or nil when out of
// bounds. Callers must hold the lock.
func (r *InMemoryRepository) roomAt(x, y int) *entities.Room {
	if x < 0 || x >= r.world.Width || y < 0 || y >= r.world.Height {
		return nil
	}
	return r.byID[fmt.Sprintf("%d-%d", x, y)]
}

// ListRooms returns every room in generation order
func (r *InMemoryRepository) ListRooms(ctx context.Context, input *ListRoomsInput) (*ListRoomsOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms := make([]*entities.Room, 0, len(r.world.Rooms))
	visited := make(map[string]bool, len(r.world.Rooms))
	for _, room := range r.world.Rooms {
		rooms = append(rooms, room.Clone())
		visited[room.ID] = r.visited[room.ID]
	}

	return &ListRoomsOutput{Rooms: rooms, Visited: visited}, nil
}

// ListVisitedRooms returns the rooms whose ids are in the visited set
func (r *InMemoryRepository) ListVisitedRooms(ctx context.Context, input *ListVisitedRoomsInput) (*ListVisitedRoomsOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms := make([]*entities.Room, 0, len(r.visited))
	for _, room := range r.world.Rooms {
		if r.visited[room.ID] {
			rooms = append(rooms, room.Clone())
		}
	}

	return &ListVisitedRoomsOutput{Rooms: rooms}, nil
}

// MarkVisited adds a room id to the visited set. The room must exist:
// the visited set stays a subset of generated room ids.
func (r *InMemoryRepository) MarkVisited(ctx context.Context, input *MarkVisitedInput) (*MarkVisitedOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.InvalidArgument("room ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[input.RoomID]; !ok {
		return nil, errors.NotFoundf("room %s not found", input.RoomID)
	}

	r.visited[input.RoomID] = true

	return &MarkVisitedOutput{}, nil
}

// IsVisited reports whether a room id is in the visited set
func (r *InMemoryRepository) IsVisited(ctx context.Context, input *IsVisitedInput) (*IsVisitedOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.InvalidArgument("room ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return &IsVisitedOutput{Visited: r.visited[input.RoomID]}, nil
}

// AreAdjacent reports whether two rooms are axis-aligned neighbors.
// A room is never adjacent to itself, and diagonals don't count.
func (r *InMemoryRepository) AreAdjacent(ctx context.Context, input *AreAdjacentInput) (*AreAdjacentOutput, error) {
	if input == nil || input.RoomID1 == "" || input.RoomID2 == "" {
		return nil, errors.InvalidArgument("both room IDs are required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	room1, ok1 := r.byID[input.RoomID1]
	room2, ok2 := r.byID[input.RoomID2]
	if !ok1 || !ok2 {
		return &AreAdjacentOutput{Adjacent: false}, nil
	}

	dx := abs(room1.Coordinates.X - room2.Coordinates.X)
	dy := abs(room1.Coordinates.Y - room2.Coordinates.Y)

	return &AreAdjacentOutput{Adjacent: (dx == 1 && dy == 0) || (dx == 0 && dy == 1)}, nil
}

// AdjacentRooms returns the up-to-four existing neighbors of a room
func (r *InMemoryRepository) AdjacentRooms(ctx context.Context, input *AdjacentRoomsInput) (*AdjacentRoomsOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.InvalidArgument("room ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.byID[input.RoomID]
	if !ok {
		return nil, errors.NotFoundf("room %s not found", input.RoomID)
	}

	x, y := room.Coordinates.X, room.Coordinates.Y
	candidates := [][2]int{{x + 1, y}, {x - 1, y}, {x, y + 1}, {x, y - 1}}

	rooms := make([]*entities.Room, 0, 4)
	for _, c := range candidates {
		if neighbor := r.roomAt(c[0], c[1]); neighbor != nil {
			rooms = append(rooms, neighbor.Clone())
		}
	}

	return &AdjacentRoomsOutput{Rooms: rooms}, nil
}

// FindEnemy scans every room's enemy list for a matching id
func (r *InMemoryRepository) FindEnemy(ctx context.Context, input *FindEnemyInput) (*FindEnemyOutput, error) {
	if input == nil || input.EnemyID == "" {
		return nil, errors.InvalidArgument("enemy ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, room := range r.world.Rooms {
		for i := range room.Enemies {
			if room.Enemies[i].ID == input.EnemyID {
				clone := room.Enemies[i]
				return &FindEnemyOutput{Enemy: &clone, RoomID: room.ID}, nil
			}
		}
	}

	return nil, errors.NotFoundf("enemy %s not found", input.EnemyID)
}

// UpdateEnemy applies a partial attribute update to an enemy in place
func (r *InMemoryRepository) UpdateEnemy(ctx context.Context, input *UpdateEnemyInput) (*UpdateEnemyOutput, error) {
	if input == nil || input.EnemyID == "" {
		return nil, errors.InvalidArgument("enemy ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, room := range r.world.Rooms {
		for i := range room.Enemies {
			if room.Enemies[i].ID == input.EnemyID {
				room.Enemies[i].ApplyUpdate(input.Update)
				clone := room.Enemies[i]
				return &UpdateEnemyOutput{Enemy: &clone}, nil
			}
		}
	}

	return nil, errors.NotFoundf("enemy %s not found", input.EnemyID)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
