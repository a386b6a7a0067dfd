package player

import (
	"context"
	"sync"

	"github.com/dvaquero/mazmorra/internal/entities"
	"github.com/dvaquero/mazmorra/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage.
// Players are cloned on the way in and out so callers never share
// mutable state with the store.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*entities.Player
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*entities.Player),
	}
}

// Create stores a new player
func (r *InMemoryRepository) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if input.Player.ID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Player.ID]; exists {
		return nil, errors.AlreadyExistsf("player %s already exists", input.Player.ID)
	}

	r.store[input.Player.ID] = input.Player.Clone()

	return &CreateOutput{Player: input.Player.Clone()}, nil
}

// Get retrieves a player by ID
func (r *InMemoryRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("player %s not found", input.ID)
	}

	return &GetOutput{Player: p.Clone()}, nil
}

// Save overwrites an existing player
func (r *InMemoryRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if input.Player.ID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Player.ID]; !exists {
		return nil, errors.NotFoundf("player %s not found", input.Player.ID)
	}

	r.store[input.Player.ID] = input.Player.Clone()

	return &SaveOutput{Player: input.Player.Clone()}, nil
}

// Exists reports whether a player id is taken
func (r *InMemoryRepository) Exists(ctx context.Context, input *ExistsInput) (*ExistsOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.store[input.ID]
	return &ExistsOutput{Exists: exists}, nil
}
