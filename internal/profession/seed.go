package profession

import (
	"fmt"

	"github.com/zeebo/errs"
	"sigs.k8s.io/yaml"
)

// SeedError is the class of errors returned while loading seed data.
var SeedError = errs.Class("profession seed")

var defaults = []struct{ id, name string }{
	{id: "362B9515-7A5C-44B7-9708-A0FB6E48F5B5", name: "Cook"},
	{id: "C416A1F5-9BCF-4F6D-B6EB-A74FE88EF6AC", name: "Chemist"},
	{id: "685EDF25-910A-49FD-8700-E04C0C19460F", name: "Blacksmith"},
}

// Defaults returns the built-in professions. The ids are fixed.
func Defaults() []Profession {
	ps := make([]Profession, 0, len(defaults))
	for _, d := range defaults {
		ps = append(ps, FromParameters(d.id, d.name).MustUnwrap())
	}
	return ps
}

// DefaultRepository returns an in-memory repository seeded with Defaults.
func DefaultRepository() *Store {
	s, err := NewMemoryRepository(Defaults()...)
	if err != nil {
		panic(err)
	}
	return s
}

type seedFile struct {
	Professions []seedEntry `json:"professions"`
}

type seedEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LoadSeed parses a YAML or JSON document of the form
//
//	professions:
//	  - id: 362B9515-7A5C-44B7-9708-A0FB6E48F5B5
//	    name: Cook
//
// Every entry goes through FromParameters; the first failure is returned.
func LoadSeed(data []byte) ([]Profession, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, SeedError.Wrap(err)
	}

	ps := make([]Profession, 0, len(f.Professions))
	for i, e := range f.Professions {
		r := FromParameters(e.ID, e.Name)
		if r.IsFailure() {
			return nil, SeedError.Wrap(fmt.Errorf("entry %d: %w", i, r.Err()))
		}
		ps = append(ps, r.Value())
	}
	return ps, nil
}
