package service

import (
	"context"

	"petclinic/internal/model"
	"petclinic/internal/repository"
)

// OwnerService defines the owner use cases.
type OwnerService interface {
	// Find returns owners whose last name starts with lastName; an empty value lists everyone.
	Find(ctx context.Context, lastName string) ([]model.Owner, error)
	// Get returns an owner with pets and visits.
	Get(ctx context.Context, id int) (*model.Owner, error)
	// Create registers a new owner.
	Create(ctx context.Context, in OwnerInput) (*model.Owner, error)
	// Update changes the owner's details, leaving pets untouched.
	Update(ctx context.Context, id int, in OwnerInput) (*model.Owner, error)
}

type ownerService struct {
	owners repository.OwnerRepository
}

// NewOwnerService constructs a new OwnerService.
func NewOwnerService(owners repository.OwnerRepository) OwnerService {
	return &ownerService{owners: owners}
}

func (s *ownerService) Find(ctx context.Context, lastName string) ([]model.Owner, error) {
	owners, err := s.owners.FindByLastName(ctx, lastName)
	if err != nil {
		return nil, err
	}
	return owners, nil
}

func (s *ownerService) Get(ctx context.Context, id int) (*model.Owner, error) {
	owner, err := s.owners.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return owner, nil
}

func (s *ownerService) Create(ctx context.Context, in OwnerInput) (*model.Owner, error) {
	if err := validateStruct(in).orNil(); err != nil {
		return nil, err
	}
	owner := &model.Owner{Pets: []*model.Pet{}}
	applyOwner(owner, in)
	saved, err := s.owners.Save(ctx, owner)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return saved, nil
}

func (s *ownerService) Update(ctx context.Context, id int, in OwnerInput) (*model.Owner, error) {
	if err := validateStruct(in).orNil(); err != nil {
		return nil, err
	}
	owner := &model.Owner{}
	owner.ID = id
	applyOwner(owner, in)
	if _, err := s.owners.SaveDetails(ctx, owner); err != nil {
		return nil, mapRepoErr(err)
	}
	return s.Get(ctx, id)
}

func applyOwner(o *model.Owner, in OwnerInput) {
	o.FirstName = in.FirstName
	o.LastName = in.LastName
	o.Address = in.Address
	o.City = in.City
	o.Telephone = in.Telephone
}
