package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"petclinic/internal/model"
	"petclinic/internal/service"
	"petclinic/internal/storage"
)

type MockOwnerService struct {
	mock.Mock
}

func (m *MockOwnerService) Find(ctx context.Context, lastName string) ([]model.Owner, error) {
	args := m.Called(ctx, lastName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Owner), args.Error(1)
}

func (m *MockOwnerService) Get(ctx context.Context, id int) (*model.Owner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Owner), args.Error(1)
}

func (m *MockOwnerService) Create(ctx context.Context, in service.OwnerInput) (*model.Owner, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Owner), args.Error(1)
}

func (m *MockOwnerService) Update(ctx context.Context, id int, in service.OwnerInput) (*model.Owner, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Owner), args.Error(1)
}

type MockPetService struct {
	mock.Mock
}

func (m *MockPetService) Types(ctx context.Context) ([]model.PetType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PetType), args.Error(1)
}

func (m *MockPetService) Get(ctx context.Context, ownerID, petID int) (*model.Pet, error) {
	args := m.Called(ctx, ownerID, petID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pet), args.Error(1)
}

func (m *MockPetService) Create(ctx context.Context, ownerID int, in service.PetInput) (*model.Pet, error) {
	args := m.Called(ctx, ownerID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pet), args.Error(1)
}

func (m *MockPetService) Update(ctx context.Context, ownerID, petID int, in service.PetInput) (*model.Pet, error) {
	args := m.Called(ctx, ownerID, petID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pet), args.Error(1)
}

type MockVisitService struct {
	mock.Mock
}

func (m *MockVisitService) Add(ctx context.Context, ownerID, petID int, in service.VisitInput) (*model.Visit, error) {
	args := m.Called(ctx, ownerID, petID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Visit), args.Error(1)
}

func (m *MockVisitService) List(ctx context.Context, ownerID, petID int) ([]model.Visit, error) {
	args := m.Called(ctx, ownerID, petID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Visit), args.Error(1)
}

type MockVetService struct {
	mock.Mock
}

func (m *MockVetService) List(ctx context.Context) ([]model.Vet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vet), args.Error(1)
}

type MockPhotoService struct {
	mock.Mock
}

func (m *MockPhotoService) Upload(ctx context.Context, ownerID, petID int, r io.Reader, contentType string, size int64) (*storage.ObjectInfo, error) {
	args := m.Called(ctx, ownerID, petID, r, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.ObjectInfo), args.Error(1)
}

func (m *MockPhotoService) URL(ctx context.Context, ownerID, petID int) (string, error) {
	args := m.Called(ctx, ownerID, petID)
	return args.String(0), args.Error(1)
}

func (m *MockPhotoService) Delete(ctx context.Context, ownerID, petID int) error {
	args := m.Called(ctx, ownerID, petID)
	return args.Error(0)
}
