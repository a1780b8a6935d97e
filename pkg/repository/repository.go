package repository

import (
	"github.com/zeebo/errs"

	"github.com/ib-77/craftingtools/pkg/maybe"
)

// Error is the class of errors returned while building a repository.
var Error = errs.Class("repository")

// ErrDuplicateKey is returned when two seeded entities share a key.
var ErrDuplicateKey = Error.New("duplicate key")

// Repository looks entities up by key and lists them.
//
// GetByID never fails for a missing key: absence is None.
// GetAll returns every entity in a stable order; an empty store gives an
// empty slice.
type Repository[K comparable, E any] interface {
	GetByID(id K) maybe.Maybe[E]
	GetAll() []E
}
