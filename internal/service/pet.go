package service

import (
	"context"
	"time"

	"petclinic/internal/model"
	"petclinic/internal/repository"
)

// PetService defines the pet use cases. Pets are always addressed through their owner.
type PetService interface {
	// Types returns the pet types a pet can be registered with.
	Types(ctx context.Context) ([]model.PetType, error)
	// Get returns the pet when it belongs to the owner.
	Get(ctx context.Context, ownerID, petID int) (*model.Pet, error)
	// Create adds a pet to the owner.
	Create(ctx context.Context, ownerID int, in PetInput) (*model.Pet, error)
	// Update changes a pet of the owner.
	Update(ctx context.Context, ownerID, petID int, in PetInput) (*model.Pet, error)
}

type petService struct {
	owners repository.OwnerRepository
	pets   repository.PetRepository
	now    func() time.Time
}

// NewPetService constructs a new PetService.
func NewPetService(owners repository.OwnerRepository, pets repository.PetRepository) PetService {
	return &petService{owners: owners, pets: pets, now: time.Now}
}

func (s *petService) Types(ctx context.Context) ([]model.PetType, error) {
	return s.pets.FindPetTypes(ctx)
}

func (s *petService) Get(ctx context.Context, ownerID, petID int) (*model.Pet, error) {
	pet, err := s.pets.FindByID(ctx, petID)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if pet.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	return pet, nil
}

func (s *petService) Create(ctx context.Context, ownerID int, in PetInput) (*model.Pet, error) {
	owner, err := s.owners.FindByID(ctx, ownerID)
	if err != nil {
		return nil, mapRepoErr(err)
	}

	birth, petType, err := s.check(ctx, in)
	if err != nil {
		return nil, err
	}
	if owner.Pet(in.Name, false) != nil {
		return nil, ErrDuplicatePetName
	}

	pet := &model.Pet{BirthDate: birth, Type: petType, Visits: []*model.Visit{}}
	pet.Name = in.Name
	owner.AddPet(pet)

	saved, err := s.pets.Save(ctx, pet)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return saved, nil
}

func (s *petService) Update(ctx context.Context, ownerID, petID int, in PetInput) (*model.Pet, error) {
	owner, err := s.owners.FindByID(ctx, ownerID)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	pet := owner.PetByID(petID)
	if pet == nil {
		return nil, ErrNotFound
	}

	birth, petType, err := s.check(ctx, in)
	if err != nil {
		return nil, err
	}
	if other := owner.Pet(in.Name, false); other != nil && other.ID != petID {
		return nil, ErrDuplicatePetName
	}

	pet.Name = in.Name
	pet.BirthDate = birth
	pet.Type = petType

	saved, err := s.pets.Save(ctx, pet)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return saved, nil
}

// check validates the payload and resolves its birth date and type.
func (s *petService) check(ctx context.Context, in PetInput) (time.Time, *model.PetType, error) {
	verr := validateStruct(in)
	if err := verr.orNil(); err != nil {
		return time.Time{}, nil, err
	}

	birth, _ := time.Parse(DateLayout, in.BirthDate)
	if birth.After(s.now()) {
		verr.add("birthDate", "must not be in the future")
	}

	types, err := s.pets.FindPetTypes(ctx)
	if err != nil {
		return time.Time{}, nil, err
	}
	var petType *model.PetType
	for i := range types {
		if types[i].ID == in.TypeID {
			petType = &types[i]
			break
		}
	}
	if petType == nil {
		verr.add("typeId", "is not a known pet type")
	}

	if err := verr.orNil(); err != nil {
		return time.Time{}, nil, err
	}
	return birth, petType, nil
}
