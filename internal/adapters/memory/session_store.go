package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/mnasyf821-dotcom/palcars/internal/constants"
	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
)

type sessionEntry struct {
	payload   []byte
	expiresAt time.Time
}

// SessionStore хранит сессии в памяти процесса, если Redis не настроен.
// Пользователь хранится сериализованным, как и в Redis.
type SessionStore struct {
	mu      sync.Mutex
	entries map[string]sessionEntry
	now     func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		entries: make(map[string]sessionEntry),
		now:     time.Now,
	}
}

func sessionKey(sessionID string) string {
	return constants.SessionKeyPrefix + ":" + sessionID
}

func (s *SessionStore) Save(ctx context.Context, sessionID string, user domain.User, ttl time.Duration) error {
	payload, err := json.Marshal(newUserRecord(user))
	if err != nil {
		return fmt.Errorf("failed to marshal session user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := sessionEntry{payload: payload}
	if ttl > 0 {
		entry.expiresAt = s.now().Add(ttl)
	}
	s.entries[sessionKey(sessionID)] = entry
	return nil
}

// Get возвращает ErrSessionNotFound для отсутствующей, просроченной или поврежденной записи.
// Поврежденная запись удаляется.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := sessionKey(sessionID)
	entry, ok := s.entries[key]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if !entry.expiresAt.IsZero() && !s.now().Before(entry.expiresAt) {
		delete(s.entries, key)
		return nil, domain.ErrSessionNotFound
	}

	var record userRecord
	if err := json.Unmarshal(entry.payload, &record); err != nil {
		delete(s.entries, key)
		return nil, domain.ErrSessionNotFound
	}
	user := record.toDomain()
	return &user, nil
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionKey(sessionID))
	return nil
}

// userRecord - формат пользователя в хранилище сессий
type userRecord struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Avatar string `json:"avatar,omitempty"`
}

func newUserRecord(u domain.User) userRecord {
	return userRecord{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone, Avatar: u.Avatar}
}

func (r userRecord) toDomain() domain.User {
	return domain.User{ID: r.ID, Name: r.Name, Email: r.Email, Phone: r.Phone, Avatar: r.Avatar}
}
