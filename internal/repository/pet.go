package repository

import (
	"context"

	"petclinic/internal/model"
)

// PetRepository persists pets and exposes the pet type reference data.
type PetRepository interface {
	// FindPetTypes returns all pet types ordered by name.
	FindPetTypes(ctx context.Context) ([]model.PetType, error)

	// FindByID returns the pet with its type, owner names and visits.
	FindByID(ctx context.Context, id int) (*model.Pet, error)

	// Save inserts or updates the pet, inserting its type when new and cascading to visits.
	Save(ctx context.Context, pet *model.Pet) (*model.Pet, error)
}
