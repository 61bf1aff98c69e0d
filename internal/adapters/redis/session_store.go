package redis_adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mnasyf821-dotcom/palcars/internal/constants"
	"github.com/mnasyf821-dotcom/palcars/internal/contextkeys"
	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
	"github.com/mnasyf821-dotcom/palcars/internal/core/port"

	"github.com/redis/go-redis/v9"
)

// sessionCommands - подмножество команд Redis, нужное хранилищу.
// *redis.Client ему удовлетворяет.
type sessionCommands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// SessionStore - реализация SessionStorePort поверх Redis
type SessionStore struct {
	client sessionCommands
}

func NewSessionStore(client sessionCommands) (*SessionStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil")
	}
	return &SessionStore{client: client}, nil
}

// sessionUser - формат пользователя внутри значения ключа
type sessionUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Avatar string `json:"avatar,omitempty"`
}

func sessionKey(sessionID string) string {
	return constants.SessionKeyPrefix + ":" + sessionID
}

func (s *SessionStore) Save(ctx context.Context, sessionID string, user domain.User, ttl time.Duration) error {
	data, err := json.Marshal(sessionUser{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Phone:  user.Phone,
		Avatar: user.Avatar,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal session user %s: %w", user.ID, err)
	}

	if err := s.client.Set(ctx, sessionKey(sessionID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session to redis: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, sessionID string) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "RedisSessionStore",
		"method":    "Get",
	})

	key := sessionKey(sessionID)
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session from redis: %w", err)
	}

	var stored sessionUser
	if err := json.Unmarshal([]byte(val), &stored); err != nil {
		// Поврежденную запись удаляем, пользователь считается не вошедшим
		logger.Warn("Corrupted session entry, removing it", port.Fields{"error": err.Error()})
		if delErr := s.client.Del(ctx, key).Err(); delErr != nil {
			logger.Error("Failed to remove corrupted session entry", delErr, nil)
		}
		return nil, domain.ErrSessionNotFound
	}

	return &domain.User{
		ID:     stored.ID,
		Name:   stored.Name,
		Email:  stored.Email,
		Phone:  stored.Phone,
		Avatar: stored.Avatar,
	}, nil
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session from redis: %w", err)
	}
	return nil
}
