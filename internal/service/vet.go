package service

import (
	"context"

	"petclinic/internal/model"
	"petclinic/internal/repository"
)

// VetService lists the clinic's veterinarians.
type VetService interface {
	List(ctx context.Context) ([]model.Vet, error)
}

type vetService struct {
	vets repository.VetRepository
}

// NewVetService constructs a new VetService.
func NewVetService(vets repository.VetRepository) VetService {
	return &vetService{vets: vets}
}

func (s *vetService) List(ctx context.Context) ([]model.Vet, error) {
	return s.vets.FindAll(ctx)
}
