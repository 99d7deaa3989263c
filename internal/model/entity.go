package model

// Package model contains the clinic domain entities.
// Entities carry no persistence tags; the row mapping lives in repository/sqlstore.

// BaseEntity holds the identifier shared by every entity.
// Identifiers are assigned by the database after insert, so a zero ID means "not stored yet".
type BaseEntity struct {
	ID int `json:"id"`
}

// IsNew reports whether the entity has not been inserted yet.
func (e BaseEntity) IsNew() bool {
	return e.ID == 0
}

// NamedEntity is an entity with a display name (pet types, specialties).
type NamedEntity struct {
	BaseEntity
	Name string `json:"name"`
}

func (e NamedEntity) String() string {
	return e.Name
}

// Person holds the name fields shared by owners and vets.
type Person struct {
	BaseEntity
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// FullName returns "First Last".
func (p Person) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
