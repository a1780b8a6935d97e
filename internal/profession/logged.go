package profession

import (
	"github.com/google/uuid"

	"github.com/ib-77/craftingtools/internal/logging"
	"github.com/ib-77/craftingtools/pkg/maybe"
)

// LoggedRepository logs every call to the wrapped Repository at debug level
// and misses at info level. Results are passed through unchanged.
type LoggedRepository struct {
	next Repository
	log  *logging.Logger
}

func NewLoggedRepository(next Repository, log *logging.Logger) *LoggedRepository {
	return &LoggedRepository{
		next: next,
		log:  log.With(logging.String("component", "profession-repository")),
	}
}

func (r *LoggedRepository) GetProfessionByID(id uuid.UUID) maybe.Maybe[Profession] {
	m := r.next.GetProfessionByID(id)
	m.Match(
		func(p Profession) {
			r.log.Debug("profession found", logging.Stringer("id", id), logging.String("name", p.Name))
		},
		func() {
			r.log.Info("profession not found", logging.Stringer("id", id))
		},
	)
	return m
}

func (r *LoggedRepository) GetProfessions() []Profession {
	ps := r.next.GetProfessions()
	r.log.Debug("professions listed", logging.Int("count", len(ps)))
	return ps
}
