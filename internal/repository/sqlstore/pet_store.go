package sqlstore

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"petclinic/internal/model"
	"petclinic/internal/repository"
)

// PetStore is the SQL implementation of repository.PetRepository.
type PetStore struct {
	db *sqlx.DB
}

// NewPetStore creates a new PetStore.
func NewPetStore(db *sqlx.DB) *PetStore {
	return &PetStore{db: db}
}

var _ repository.PetRepository = (*PetStore)(nil)

// FindPetTypes returns every pet type ordered by name.
func (s *PetStore) FindPetTypes(ctx context.Context) ([]model.PetType, error) {
	var rows []namedRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT id, name FROM types ORDER BY name, id`); err != nil {
		return nil, translate(err, "select pet types")
	}
	out := make([]model.PetType, 0, len(rows))
	for _, r := range rows {
		t := model.PetType{}
		t.ID = r.ID
		t.Name = r.Name
		out = append(out, t)
	}
	return out, nil
}

// FindByID fetches a pet with its type, its owner's names and its visits.
func (s *PetStore) FindByID(ctx context.Context, id int) (*model.Pet, error) {
	var row petRow
	q := s.db.Rebind(`
		SELECT p.id, p.name, p.birth_date, p.owner_id,
		       t.id AS type_id, t.name AS type_name,
		       o.first_name AS owner_first_name, o.last_name AS owner_last_name
		FROM pets p
		JOIN types t ON t.id = p.type_id
		LEFT JOIN owners o ON o.id = p.owner_id
		WHERE p.id = ?`)
	if err := s.db.GetContext(ctx, &row, q, id); err != nil {
		return nil, translate(err, "select pet")
	}

	pet := row.toModel()
	if row.OwnerID.Valid {
		owner := &model.Owner{}
		owner.ID = pet.OwnerID
		owner.FirstName = row.OwnerFirstName.String
		owner.LastName = row.OwnerLastName.String
		pet.Owner = owner
	}
	if err := loadVisits(ctx, s.db, []*model.Pet{pet}); err != nil {
		return nil, err
	}
	return pet, nil
}

// Save inserts or updates the pet, inserting a new type and cascading to visits in one transaction.
func (s *PetStore) Save(ctx context.Context, pet *model.Pet) (*model.Pet, error) {
	if pet.OwnerID == 0 && pet.Owner != nil {
		pet.OwnerID = pet.Owner.ID
	}
	if err := runInTx(ctx, s.db, func(tx *sqlx.Tx) error {
		return savePet(ctx, tx, pet)
	}); err != nil {
		return nil, err
	}
	return pet, nil
}

// savePet writes the pet row, its type when new, and its visits.
func savePet(ctx context.Context, q sqlx.ExtContext, p *model.Pet) error {
	if p.Type == nil {
		return errors.Wrapf(repository.ErrInvalidReference, "save pet %q: type is required", p.Name)
	}
	if p.Type.IsNew() {
		id, err := insertReturningID(ctx, q, `INSERT INTO types (name) VALUES (?) RETURNING id`, p.Type.Name)
		if err != nil {
			return translate(err, "insert pet type")
		}
		p.Type.ID = id
	}

	p.BirthDate = calendarDate(p.BirthDate)
	if p.IsNew() {
		id, err := insertReturningID(ctx, q, `
			INSERT INTO pets (name, birth_date, type_id, owner_id)
			VALUES (?, ?, ?, ?)
			RETURNING id`,
			p.Name, p.BirthDate, p.Type.ID, nullableID(p.OwnerID))
		if err != nil {
			return translate(err, "insert pet")
		}
		p.ID = id
	} else {
		err := updateByID(ctx, q, `
			UPDATE pets
			SET name = ?, birth_date = ?, type_id = ?, owner_id = ?
			WHERE id = ?`,
			p.Name, p.BirthDate, p.Type.ID, nullableID(p.OwnerID), p.ID)
		if err != nil {
			return translate(err, "update pet")
		}
	}

	for _, v := range p.Visits {
		v.PetID = p.ID
		if err := saveVisit(ctx, q, v); err != nil {
			return err
		}
	}
	return nil
}
