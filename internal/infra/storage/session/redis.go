package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-HospitalBookingService/internal/domain"
)

const keyPrefix = "calendar_session:"

// RedisRepository хранилище сессий в Redis; TTL продлевается при каждом сохранении и чтении
type RedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRepository создает хранилище; ttl <= 0 означает 30 минут
func NewRedisRepository(client *redis.Client, ttl time.Duration) *RedisRepository {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisRepository{client: client, ttl: ttl}
}

// Save сохраняет сессию
func (r *RedisRepository) Save(ctx context.Context, s *domain.CalendarSession) error {
	payload, err := json.Marshal(toRecord(s))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	if err := r.client.Set(ctx, keyPrefix+s.ID, payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - set: %v", ErrStorage, err)
	}

	return nil
}

// Get возвращает сессию по ID, GETEX продлевает TTL ключа
func (r *RedisRepository) Get(ctx context.Context, id string) (*domain.CalendarSession, error) {
	payload, err := r.client.GetEx(ctx, keyPrefix+id, r.ttl).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: id=%s", ErrSessionNotFound, id)
		}
		return nil, fmt.Errorf("%w: Get - get: %v", ErrStorage, err)
	}

	var rec record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return rec.toDomain()
}
