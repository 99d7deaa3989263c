package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBaseEntity_IsNew(t *testing.T) {
	assert.True(t, BaseEntity{}.IsNew())
	assert.False(t, BaseEntity{ID: 7}.IsNew())
}

func TestPerson_FullName(t *testing.T) {
	assert.Equal(t, "George Franklin", Person{FirstName: "George", LastName: "Franklin"}.FullName())
	assert.Equal(t, "Franklin", Person{LastName: "Franklin"}.FullName())
	assert.Equal(t, "George", Person{FirstName: "George"}.FullName())
}

func TestOwner_AddPetAndLookup(t *testing.T) {
	o := &Owner{Person: Person{BaseEntity: BaseEntity{ID: 3}}}
	stored := &Pet{NamedEntity: NamedEntity{BaseEntity: BaseEntity{ID: 10}, Name: "Leo"}}
	fresh := &Pet{NamedEntity: NamedEntity{Name: "Basil"}}

	o.AddPet(stored)
	o.AddPet(fresh)

	assert.Same(t, o, fresh.Owner)
	assert.Equal(t, 3, fresh.OwnerID)

	assert.Same(t, stored, o.Pet("leo", false))
	assert.Same(t, fresh, o.Pet("BASIL", false))
	assert.Nil(t, o.Pet("basil", true))
	assert.Nil(t, o.Pet("rosy", false))

	assert.Same(t, stored, o.PetByID(10))
	assert.Nil(t, o.PetByID(0))
}

func TestOwner_SortedPets(t *testing.T) {
	o := &Owner{}
	o.AddPet(&Pet{NamedEntity: NamedEntity{Name: "max"}})
	o.AddPet(&Pet{NamedEntity: NamedEntity{Name: "Basil"}})
	o.AddPet(&Pet{NamedEntity: NamedEntity{Name: "jewel"}})

	sorted := o.SortedPets()

	assert.Equal(t, "Basil", sorted[0].Name)
	assert.Equal(t, "jewel", sorted[1].Name)
	assert.Equal(t, "max", sorted[2].Name)
	assert.Equal(t, "max", o.Pets[0].Name)
}

func TestPet_Visits(t *testing.T) {
	p := &Pet{NamedEntity: NamedEntity{BaseEntity: BaseEntity{ID: 8}}}
	older := &Visit{Date: time.Date(2013, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := &Visit{Date: time.Date(2013, 1, 4, 0, 0, 0, 0, time.UTC)}

	p.AddVisit(older)
	p.AddVisit(newer)

	assert.Equal(t, 8, older.PetID)
	sorted := p.SortedVisits()
	assert.Same(t, newer, sorted[0])
	assert.Same(t, older, sorted[1])
}

func TestVet_Specialties(t *testing.T) {
	v := &Vet{}
	surgery := Specialty{NamedEntity: NamedEntity{BaseEntity: BaseEntity{ID: 2}, Name: "surgery"}}
	radiology := Specialty{NamedEntity: NamedEntity{BaseEntity: BaseEntity{ID: 1}, Name: "radiology"}}

	v.AddSpecialty(surgery)
	v.AddSpecialty(radiology)
	v.AddSpecialty(surgery)

	assert.Equal(t, 2, v.NrOfSpecialties())
	sorted := v.SortedSpecialties()
	assert.Equal(t, "radiology", sorted[0].Name)
	assert.Equal(t, "surgery", sorted[1].Name)
}

func TestNewVisit_DatedToday(t *testing.T) {
	v := NewVisit()
	assert.True(t, v.IsNew())
	assert.Equal(t, Today(), v.Date)
	assert.Equal(t, 0, v.Date.Hour())
}
