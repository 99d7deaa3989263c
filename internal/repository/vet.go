package repository

import (
	"context"

	"petclinic/internal/model"
)

// VetRepository reads vets with their specialties.
type VetRepository interface {
	// FindAll returns every vet with specialties resolved through vet_specialties.
	FindAll(ctx context.Context) ([]model.Vet, error)

	// Save inserts or updates the vet row and rewrites its vet_specialties links.
	// Specialty rows themselves are never written.
	Save(ctx context.Context, vet *model.Vet) (*model.Vet, error)
}
