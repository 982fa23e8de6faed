package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/safebite/backend/internal/types"
)

// KVStore is the minimal key-value surface the profile store needs. Get
// returns ok=false when the key is absent.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// RedisStore adapts a redis client to KVStore.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a RedisStore over an existing client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

// ProfileService reads and writes the two profile strings (allergies,
// symptoms) the engine consumes. The engine does not own the store; absent
// keys read as empty strings and malformed values degrade to an empty
// profile rather than failing.
type ProfileService struct {
	store KVStore
}

// NewProfileService creates a ProfileService over the given store.
func NewProfileService(store KVStore) *ProfileService {
	return &ProfileService{store: store}
}

func allergiesKey(userID uuid.UUID) string {
	return fmt.Sprintf("patient:%s:allergies", userID)
}

func symptomsKey(userID uuid.UUID) string {
	return fmt.Sprintf("patient:%s:symptoms", userID)
}

// LoadProfile reads the stored allergies/symptoms strings and parses them
// into an AllergyProfile. Store errors are the only failures; malformed
// values are logged and treated as empty.
func (s *ProfileService) LoadProfile(ctx context.Context, userID uuid.UUID) (types.AllergyProfile, error) {
	allergies, err := s.loadField(ctx, allergiesKey(userID))
	if err != nil {
		return types.AllergyProfile{}, err
	}
	symptoms, err := s.loadField(ctx, symptomsKey(userID))
	if err != nil {
		return types.AllergyProfile{}, err
	}
	return types.ParseAllergyProfile(allergies, symptoms), nil
}

// RawProfile returns the stored strings verbatim for display and editing.
func (s *ProfileService) RawProfile(ctx context.Context, userID uuid.UUID) (allergies, symptoms string, err error) {
	allergies, err = s.loadField(ctx, allergiesKey(userID))
	if err != nil {
		return "", "", err
	}
	symptoms, err = s.loadField(ctx, symptomsKey(userID))
	if err != nil {
		return "", "", err
	}
	return allergies, symptoms, nil
}

// SaveAllergies replaces the stored allergies string.
func (s *ProfileService) SaveAllergies(ctx context.Context, userID uuid.UUID, allergies string) error {
	return s.saveField(ctx, allergiesKey(userID), allergies)
}

// SaveSymptoms replaces the stored symptoms string.
func (s *ProfileService) SaveSymptoms(ctx context.Context, userID uuid.UUID, symptoms string) error {
	return s.saveField(ctx, symptomsKey(userID), symptoms)
}

// Values are stored JSON-encoded. A value that does not decode as a JSON
// string is malformed; it is logged and read as empty, never propagated.
func (s *ProfileService) loadField(ctx context.Context, key string) (string, error) {
	raw, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if !ok || raw == "" {
		return "", nil
	}

	var value string
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		log.Printf("[ProfileService] malformed value at %s, treating as empty: %v", key, err)
		return "", nil
	}
	return value, nil
}

func (s *ProfileService) saveField(ctx context.Context, key, value string) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, key, string(encoded))
}
