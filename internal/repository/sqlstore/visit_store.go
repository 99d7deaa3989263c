package sqlstore

import (
	"context"

	"github.com/jmoiron/sqlx"

	"petclinic/internal/model"
	"petclinic/internal/repository"
)

// VisitStore is the SQL implementation of repository.VisitRepository.
type VisitStore struct {
	db *sqlx.DB
}

// NewVisitStore creates a new VisitStore.
func NewVisitStore(db *sqlx.DB) *VisitStore {
	return &VisitStore{db: db}
}

var _ repository.VisitRepository = (*VisitStore)(nil)

// Save inserts the visit when new, updates it otherwise.
func (s *VisitStore) Save(ctx context.Context, visit *model.Visit) (*model.Visit, error) {
	if err := saveVisit(ctx, s.db, visit); err != nil {
		return nil, err
	}
	return visit, nil
}

// FindByPetID returns the visits of a pet, oldest first. Visits on the same day keep insertion order.
func (s *VisitStore) FindByPetID(ctx context.Context, petID int) ([]model.Visit, error) {
	var rows []visitRow
	q := s.db.Rebind(`
		SELECT id, pet_id, visit_date, description
		FROM visits
		WHERE pet_id = ?
		ORDER BY visit_date, id`)
	if err := s.db.SelectContext(ctx, &rows, q, petID); err != nil {
		return nil, translate(err, "select visits by pet")
	}
	out := make([]model.Visit, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r.toModel())
	}
	return out, nil
}

func saveVisit(ctx context.Context, q sqlx.ExtContext, v *model.Visit) error {
	v.Date = calendarDate(v.Date)
	if v.IsNew() {
		id, err := insertReturningID(ctx, q, `
			INSERT INTO visits (pet_id, visit_date, description)
			VALUES (?, ?, ?)
			RETURNING id`,
			v.PetID, v.Date, v.Description)
		if err != nil {
			return translate(err, "insert visit")
		}
		v.ID = id
		return nil
	}

	err := updateByID(ctx, q, `
		UPDATE visits
		SET pet_id = ?, visit_date = ?, description = ?
		WHERE id = ?`,
		v.PetID, v.Date, v.Description, v.ID)
	return translate(err, "update visit")
}
