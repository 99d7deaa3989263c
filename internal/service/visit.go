package service

import (
	"context"
	"time"

	"petclinic/internal/model"
	"petclinic/internal/repository"
)

// VisitService defines the visit use cases.
type VisitService interface {
	// Add records a visit for the owner's pet.
	Add(ctx context.Context, ownerID, petID int, in VisitInput) (*model.Visit, error)
	// List returns the visits of the owner's pet, oldest first.
	List(ctx context.Context, ownerID, petID int) ([]model.Visit, error)
}

type visitService struct {
	pets   repository.PetRepository
	visits repository.VisitRepository
}

// NewVisitService constructs a new VisitService.
func NewVisitService(pets repository.PetRepository, visits repository.VisitRepository) VisitService {
	return &visitService{pets: pets, visits: visits}
}

func (s *visitService) Add(ctx context.Context, ownerID, petID int, in VisitInput) (*model.Visit, error) {
	if err := validateStruct(in).orNil(); err != nil {
		return nil, err
	}
	if err := s.ownedPet(ctx, ownerID, petID); err != nil {
		return nil, err
	}

	visit := model.NewVisit()
	if in.Date != "" {
		visit.Date, _ = time.Parse(DateLayout, in.Date)
	}
	visit.PetID = petID
	visit.Description = in.Description

	saved, err := s.visits.Save(ctx, visit)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return saved, nil
}

func (s *visitService) List(ctx context.Context, ownerID, petID int) ([]model.Visit, error) {
	if err := s.ownedPet(ctx, ownerID, petID); err != nil {
		return nil, err
	}
	return s.visits.FindByPetID(ctx, petID)
}

func (s *visitService) ownedPet(ctx context.Context, ownerID, petID int) error {
	pet, err := s.pets.FindByID(ctx, petID)
	if err != nil {
		return mapRepoErr(err)
	}
	if pet.OwnerID != ownerID {
		return ErrNotFound
	}
	return nil
}
