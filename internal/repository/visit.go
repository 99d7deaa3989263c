package repository

import (
	"context"

	"petclinic/internal/model"
)

// VisitRepository persists visits independently of their pet.
type VisitRepository interface {
	Save(ctx context.Context, visit *model.Visit) (*model.Visit, error)
	FindByPetID(ctx context.Context, petID int) ([]model.Visit, error)
}
