package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"petclinic/internal/model"
)

type MockVetRepository struct {
	mock.Mock
}

func (m *MockVetRepository) FindAll(ctx context.Context) ([]model.Vet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vet), args.Error(1)
}

func (m *MockVetRepository) Save(ctx context.Context, vet *model.Vet) (*model.Vet, error) {
	args := m.Called(ctx, vet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vet), args.Error(1)
}
