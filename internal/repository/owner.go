package repository

import (
	"context"

	"petclinic/internal/model"
)

// OwnerRepository persists owners together with the pets they own.
type OwnerRepository interface {
	// FindByID returns the owner with its pets, their types and visits.
	FindByID(ctx context.Context, id int) (*model.Owner, error)

	// FindByLastName returns all owners whose last name starts with the given prefix.
	// An empty prefix matches every owner.
	FindByLastName(ctx context.Context, lastName string) ([]model.Owner, error)

	// Save inserts the owner when new, updates it otherwise, and cascades to its pets,
	// their visits and any new pet type. Generated identifiers are written back.
	Save(ctx context.Context, owner *model.Owner) (*model.Owner, error)

	// SaveDetails inserts or updates the owner row only, leaving pets untouched.
	SaveDetails(ctx context.Context, owner *model.Owner) (*model.Owner, error)
}
