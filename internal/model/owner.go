package model

import (
	"sort"
	"strings"
)

// Owner is a pet owner. Pets are owned by the owner: saving an owner saves its pets.
type Owner struct {
	Person
	Address   string `json:"address"`
	City      string `json:"city"`
	Telephone string `json:"telephone"`
	Pets      []*Pet `json:"pets"`
}

// AddPet attaches a pet to the owner and sets the pet's back-reference.
func (o *Owner) AddPet(p *Pet) {
	p.Owner = o
	p.OwnerID = o.ID
	o.Pets = append(o.Pets, p)
}

// Pet returns the pet with the given name, compared case-insensitively.
// When ignoreNew is set, pets that have not been stored yet are skipped.
func (o *Owner) Pet(name string, ignoreNew bool) *Pet {
	for _, p := range o.Pets {
		if ignoreNew && p.IsNew() {
			continue
		}
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

// PetByID returns the owner's pet with the given id, or nil.
func (o *Owner) PetByID(id int) *Pet {
	for _, p := range o.Pets {
		if !p.IsNew() && p.ID == id {
			return p
		}
	}
	return nil
}

// SortedPets returns the pets ordered by name without touching the owner's slice.
func (o *Owner) SortedPets() []*Pet {
	out := make([]*Pet, len(o.Pets))
	copy(out, o.Pets)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}
