package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"petclinic/internal/model"
)

type MockVisitRepository struct {
	mock.Mock
}

func (m *MockVisitRepository) Save(ctx context.Context, visit *model.Visit) (*model.Visit, error) {
	args := m.Called(ctx, visit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Visit), args.Error(1)
}

func (m *MockVisitRepository) FindByPetID(ctx context.Context, petID int) ([]model.Visit, error) {
	args := m.Called(ctx, petID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Visit), args.Error(1)
}
