package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"petclinic/internal/model"
)

type MockPetRepository struct {
	mock.Mock
}

func (m *MockPetRepository) FindPetTypes(ctx context.Context) ([]model.PetType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PetType), args.Error(1)
}

func (m *MockPetRepository) FindByID(ctx context.Context, id int) (*model.Pet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pet), args.Error(1)
}

func (m *MockPetRepository) Save(ctx context.Context, pet *model.Pet) (*model.Pet, error) {
	args := m.Called(ctx, pet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pet), args.Error(1)
}
