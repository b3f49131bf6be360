package member

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/sylk/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	rosterKeyPrefix = "roster:"
)

// ErrEmptyRosterID is returned when a call does not name a roster
var ErrEmptyRosterID = errors.New("roster ID cannot be empty")

// Config holds configuration for the Redis roster repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed roster repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func rosterKey(rosterID string) string {
	return fmt.Sprintf("%s%s", rosterKeyPrefix, rosterID)
}

// GetRoster retrieves a roster from Redis
func (r *redisRepository) GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error) {
	if input == nil || input.RosterID == "" {
		return nil, ErrEmptyRosterID
	}

	rosterJSON, err := r.client.Get(ctx, rosterKey(input.RosterID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &GetRosterOutput{Members: []models.Member{}}, nil
		}
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}

	members := []models.Member{}
	if err := json.Unmarshal([]byte(rosterJSON), &members); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roster: %w", err)
	}

	return &GetRosterOutput{Members: members}, nil
}

// SaveRoster persists a roster to Redis
func (r *redisRepository) SaveRoster(ctx context.Context, input *SaveRosterInput) error {
	if input == nil || input.RosterID == "" {
		return ErrEmptyRosterID
	}

	rosterJSON, err := json.Marshal(models.CopyMembers(input.Members))
	if err != nil {
		return fmt.Errorf("failed to marshal roster: %w", err)
	}

	if err := r.client.Set(ctx, rosterKey(input.RosterID), rosterJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save roster: %w", err)
	}

	return nil
}

// DeleteRoster removes a roster from Redis
func (r *redisRepository) DeleteRoster(ctx context.Context, input *DeleteRosterInput) error {
	if input == nil || input.RosterID == "" {
		return ErrEmptyRosterID
	}

	if err := r.client.Del(ctx, rosterKey(input.RosterID)).Err(); err != nil {
		return fmt.Errorf("failed to delete roster: %w", err)
	}

	return nil
}
