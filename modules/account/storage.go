package account

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Storage persists users. Implementations return ErrUserNotFound and
// ErrEmailAlreadyExists for the corresponding conditions.
type Storage interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}

// MemoryStorage keeps users in process memory.
type MemoryStorage struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*User
	byEmail map[string]uuid.UUID
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		byID:    make(map[uuid.UUID]*User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (s *MemoryStorage) CreateUser(_ context.Context, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[user.Email]; ok {
		return ErrEmailAlreadyExists
	}
	u := *user
	s.byID[u.ID] = &u
	s.byEmail[u.Email] = u.ID
	return nil
}

func (s *MemoryStorage) GetUserByEmail(_ context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	u := *s.byID[id]
	return &u, nil
}
