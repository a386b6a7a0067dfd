package player

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/dvaquero/mazmorra/internal/entities"
	"github.com/dvaquero/mazmorra/internal/errors"
	redisclient "github.com/dvaquero/mazmorra/internal/redis"
)

const playerKeyPrefix = "player:"

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis-backed player repository
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{client: client}
}

func playerKey(id string) string {
	return playerKeyPrefix + id
}

// Create stores a new player
func (r *redisRepository) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if input.Player.ID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	data, err := json.Marshal(input.Player)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player")
	}

	// SETNX keeps create atomic: a concurrent create of the same id
	// loses cleanly instead of overwriting.
	ok, err := r.client.SetNX(ctx, playerKey(input.Player.ID), data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create player")
	}
	if !ok {
		return nil, errors.AlreadyExistsf("player %s already exists", input.Player.ID)
	}

	return &CreateOutput{Player: input.Player.Clone()}, nil
}

// Get retrieves a player by ID
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	result, err := r.client.Get(ctx, playerKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("player %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get player")
	}

	var p entities.Player
	if err := json.Unmarshal([]byte(result), &p); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal player")
	}
	if p.Inventory == nil {
		p.Inventory = []entities.Item{}
	}

	return &GetOutput{Player: &p}, nil
}

// Save overwrites an existing player
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if input.Player.ID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	key := playerKey(input.Player.ID)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("player %s not found", input.Player.ID)
	}

	data, err := json.Marshal(input.Player)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save player")
	}

	return &SaveOutput{Player: input.Player.Clone()}, nil
}

// Exists reports whether a player id is taken
func (r *redisRepository) Exists(ctx context.Context, input *ExistsInput) (*ExistsOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	n, err := r.client.Exists(ctx, playerKey(input.ID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}

	return &ExistsOutput{Exists: n > 0}, nil
}
