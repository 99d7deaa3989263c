package sqlstore

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"petclinic/internal/model"
	"petclinic/internal/repository"
)

// VetStore is the SQL implementation of repository.VetRepository.
// Specialties are linked through vet_specialties and are never written by this store.
type VetStore struct {
	db *sqlx.DB
}

// NewVetStore creates a new VetStore.
func NewVetStore(db *sqlx.DB) *VetStore {
	return &VetStore{db: db}
}

var _ repository.VetRepository = (*VetStore)(nil)

// FindAll returns all vets ordered by last name, each with its specialties ordered by name.
func (s *VetStore) FindAll(ctx context.Context) ([]model.Vet, error) {
	var rows []vetRow
	if err := s.db.SelectContext(ctx, &rows, `
		SELECT id, first_name, last_name
		FROM vets
		ORDER BY last_name, first_name, id`); err != nil {
		return nil, translate(err, "select vets")
	}
	if len(rows) == 0 {
		return []model.Vet{}, nil
	}

	var links []vetSpecialtyRow
	if err := s.db.SelectContext(ctx, &links, `
		SELECT vs.vet_id, s.id, s.name
		FROM vet_specialties vs
		JOIN specialties s ON s.id = vs.specialty_id
		ORDER BY s.name, s.id`); err != nil {
		return nil, translate(err, "select vet specialties")
	}

	vets := make([]model.Vet, 0, len(rows))
	index := make(map[int]int, len(rows))
	for i, r := range rows {
		vets = append(vets, r.toModel())
		index[r.ID] = i
	}
	for _, l := range links {
		i, ok := index[l.VetID]
		if !ok {
			continue
		}
		sp := model.Specialty{}
		sp.ID = l.ID
		sp.Name = l.Name
		vets[i].Specialties = append(vets[i].Specialties, sp)
	}
	return vets, nil
}

// Save writes the vet row and replaces its vet_specialties links in one transaction.
// Every specialty must already be stored.
func (s *VetStore) Save(ctx context.Context, vet *model.Vet) (*model.Vet, error) {
	for _, sp := range vet.Specialties {
		if sp.IsNew() {
			return nil, errors.Wrapf(repository.ErrInvalidReference, "save vet: specialty %q is not stored", sp.Name)
		}
	}

	err := runInTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if vet.IsNew() {
			id, err := insertReturningID(ctx, tx, `
				INSERT INTO vets (first_name, last_name)
				VALUES (?, ?)
				RETURNING id`,
				vet.FirstName, vet.LastName)
			if err != nil {
				return translate(err, "insert vet")
			}
			vet.ID = id
		} else {
			err := updateByID(ctx, tx, `UPDATE vets SET first_name = ?, last_name = ? WHERE id = ?`,
				vet.FirstName, vet.LastName, vet.ID)
			if err != nil {
				return translate(err, "update vet")
			}
			if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM vet_specialties WHERE vet_id = ?`), vet.ID); err != nil {
				return translate(err, "delete vet specialties")
			}
		}

		for _, sp := range vet.Specialties {
			if _, err := tx.ExecContext(ctx, tx.Rebind(`INSERT INTO vet_specialties (vet_id, specialty_id) VALUES (?, ?)`),
				vet.ID, sp.ID); err != nil {
				return translate(err, "insert vet specialty")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return vet, nil
}
