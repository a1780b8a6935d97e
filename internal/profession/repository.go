package profession

import (
	"github.com/google/uuid"

	"github.com/ib-77/craftingtools/pkg/maybe"
	"github.com/ib-77/craftingtools/pkg/repository"
)

// Repository gives read access to the known professions.
type Repository interface {
	// GetProfessionByID returns None when no profession has the id
	GetProfessionByID(id uuid.UUID) maybe.Maybe[Profession]
	// GetProfessions returns every profession in a stable order
	GetProfessions() []Profession
}

// Store adapts a generic keyed repository to the profession contract.
type Store struct {
	repo repository.Repository[uuid.UUID, Profession]
}

func NewStore(repo repository.Repository[uuid.UUID, Profession]) *Store {
	return &Store{repo: repo}
}

// NewMemoryRepository seeds a read-only in-memory store. It fails if two
// professions share an id.
func NewMemoryRepository(professions ...Profession) (*Store, error) {
	mem, err := repository.NewMemory(Key, professions...)
	if err != nil {
		return nil, err
	}
	return NewStore(mem), nil
}

func Key(p Profession) uuid.UUID {
	return p.ID
}

func (s *Store) GetProfessionByID(id uuid.UUID) maybe.Maybe[Profession] {
	return s.repo.GetByID(id)
}

func (s *Store) GetProfessions() []Profession {
	ps := s.repo.GetAll()
	if ps == nil {
		return []Profession{}
	}
	return ps
}

// Repository returns the generic store behind s.
func (s *Store) Repository() repository.Repository[uuid.UUID, Profession] {
	return s.repo
}
