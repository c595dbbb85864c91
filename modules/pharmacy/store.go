package pharmacy

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/pharmagarde/pharmagarde/pkg/apperror"
)

// Store persists listings. Lookups of a missing id fail with an error whose
// code is apperror.CodeNotFound.
type Store interface {
	// Create inserts p. Creating an id that already exists is a no-op, so a
	// retried insert whose first attempt reached the store succeeds.
	Create(ctx context.Context, p *Pharmacy) error
	Get(ctx context.Context, id uuid.UUID) (*Pharmacy, error)
	Update(ctx context.Context, id uuid.UUID, info Info) error
	// SetStatus and SetVerified write to only while the stored value is
	// still from, and fail with apperror code "failed-precondition" otherwise.
	SetStatus(ctx context.Context, id uuid.UUID, from, to Status) error
	SetVerified(ctx context.Context, id uuid.UUID, from, to bool) error
	// ListOnDuty returns verified listings on duty, in city when it is not
	// empty, ordered by name.
	ListOnDuty(ctx context.Context, city string) ([]Pharmacy, error)
	// ListAll returns every listing, newest first.
	ListAll(ctx context.Context) ([]Pharmacy, error)
}

func errNotFound(id uuid.UUID) error {
	return apperror.Remote(apperror.CodeNotFound, "pharmacy "+id.String()+" not found", nil)
}

func errChanged(id uuid.UUID) error {
	return apperror.Remote(apperror.KindFailedPrecondition.String(), "pharmacy "+id.String()+" changed concurrently", nil)
}

// MemoryStore keeps listings in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]Pharmacy
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[uuid.UUID]Pharmacy)}
}

func (s *MemoryStore) Create(_ context.Context, p *Pharmacy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[p.ID]; !ok {
		s.items[p.ID] = *p
	}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*Pharmacy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.items[id]
	if !ok {
		return nil, errNotFound(id)
	}
	return &p, nil
}

func (s *MemoryStore) Update(_ context.Context, id uuid.UUID, info Info) error {
	return s.modify(id, func(p *Pharmacy) error {
		p.apply(info)
		return nil
	})
}

func (s *MemoryStore) SetStatus(_ context.Context, id uuid.UUID, from, to Status) error {
	return s.modify(id, func(p *Pharmacy) error {
		if p.Status != from {
			return errChanged(id)
		}
		p.Status = to
		return nil
	})
}

func (s *MemoryStore) SetVerified(_ context.Context, id uuid.UUID, from, to bool) error {
	return s.modify(id, func(p *Pharmacy) error {
		if p.Verified != from {
			return errChanged(id)
		}
		p.Verified = to
		return nil
	})
}

func (s *MemoryStore) modify(id uuid.UUID, fn func(*Pharmacy) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.items[id]
	if !ok {
		return errNotFound(id)
	}
	if err := fn(&p); err != nil {
		return err
	}
	s.items[id] = p
	return nil
}

func (s *MemoryStore) ListOnDuty(_ context.Context, city string) ([]Pharmacy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Pharmacy, 0)
	for _, p := range s.items {
		if p.Status == StatusOnDuty && p.Verified && (city == "" || p.City == city) {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b Pharmacy) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID.String(), b.ID.String()))
	})
	return out, nil
}

func (s *MemoryStore) ListAll(_ context.Context) ([]Pharmacy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Pharmacy, 0, len(s.items))
	for _, p := range s.items {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Pharmacy) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(a.ID.String(), b.ID.String()))
	})
	return out, nil
}
