package model

import (
	"sort"
	"strings"
)

// Specialty is a veterinary specialty (radiology, surgery, ...).
type Specialty struct {
	NamedEntity
}

// Vet is a veterinarian. Specialties are reference data linked through the
// vet_specialties association table.
type Vet struct {
	Person
	Specialties []Specialty `json:"specialties"`
}

// AddSpecialty links a specialty to the vet, ignoring duplicates by id.
func (v *Vet) AddSpecialty(s Specialty) {
	for _, existing := range v.Specialties {
		if !s.IsNew() && existing.ID == s.ID {
			return
		}
	}
	v.Specialties = append(v.Specialties, s)
}

// NrOfSpecialties returns the number of linked specialties.
func (v *Vet) NrOfSpecialties() int {
	return len(v.Specialties)
}

// SortedSpecialties returns the specialties ordered by name.
func (v *Vet) SortedSpecialties() []Specialty {
	out := make([]Specialty, len(v.Specialties))
	copy(out, v.Specialties)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}
