package model

import (
	"sort"
	"time"
)

// PetType is the kind of animal (cat, dog, ...). Stored in the "types" table.
type PetType struct {
	NamedEntity
}

// Pet belongs to one owner, has one type and a history of visits.
type Pet struct {
	NamedEntity
	BirthDate time.Time `json:"birthDate"`
	Type      *PetType  `json:"type"`
	OwnerID   int       `json:"ownerId"`
	Visits    []*Visit  `json:"visits"`

	// Owner is the back-reference to the owning side; it is not serialized to avoid cycles.
	Owner *Owner `json:"-"`
}

// AddVisit attaches a visit to the pet.
func (p *Pet) AddVisit(v *Visit) {
	v.PetID = p.ID
	p.Visits = append(p.Visits, v)
}

// SortedVisits returns the visits newest first.
func (p *Pet) SortedVisits() []*Visit {
	out := make([]*Visit, len(p.Visits))
	copy(out, p.Visits)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
