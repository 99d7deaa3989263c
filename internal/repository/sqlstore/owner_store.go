package sqlstore

import (
	"context"

	"github.com/jmoiron/sqlx"

	"petclinic/internal/model"
	"petclinic/internal/repository"
)

const ownerColumns = `id, first_name, last_name, address, city, telephone`

// OwnerStore is the SQL implementation of repository.OwnerRepository.
// Owners are the aggregate root for pets: saving an owner cascades to its pets and their visits.
type OwnerStore struct {
	db *sqlx.DB
}

// NewOwnerStore creates a new OwnerStore.
func NewOwnerStore(db *sqlx.DB) *OwnerStore {
	return &OwnerStore{db: db}
}

var _ repository.OwnerRepository = (*OwnerStore)(nil)

// FindByID fetches a single owner with pets, pet types and visits.
func (s *OwnerStore) FindByID(ctx context.Context, id int) (*model.Owner, error) {
	var row ownerRow
	q := s.db.Rebind(`SELECT ` + ownerColumns + ` FROM owners WHERE id = ?`)
	if err := s.db.GetContext(ctx, &row, q, id); err != nil {
		return nil, translate(err, "select owner")
	}

	owner := row.toModel()
	if err := loadPets(ctx, s.db, []*model.Owner{owner}); err != nil {
		return nil, err
	}
	return owner, nil
}

// FindByLastName returns owners whose last name starts with lastName, ordered by last name.
func (s *OwnerStore) FindByLastName(ctx context.Context, lastName string) ([]model.Owner, error) {
	var rows []ownerRow
	q := s.db.Rebind(`SELECT ` + ownerColumns + ` FROM owners WHERE last_name LIKE ? ESCAPE '\' ORDER BY last_name, id`)
	if err := s.db.SelectContext(ctx, &rows, q, likePrefix(lastName)); err != nil {
		return nil, translate(err, "select owners by last name")
	}

	// Pets are loaded through pointers into out so their back-references land on the returned owners.
	out := make([]model.Owner, len(rows))
	owners := make([]*model.Owner, len(rows))
	for i, r := range rows {
		out[i] = *r.toModel()
		owners[i] = &out[i]
	}
	if err := loadPets(ctx, s.db, owners); err != nil {
		return nil, err
	}
	return out, nil
}

// Save inserts or updates the owner and cascades to pets, pet types and visits in one transaction.
func (s *OwnerStore) Save(ctx context.Context, owner *model.Owner) (*model.Owner, error) {
	err := runInTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := saveOwnerRow(ctx, tx, owner); err != nil {
			return err
		}
		for _, p := range owner.Pets {
			p.Owner = owner
			p.OwnerID = owner.ID
			if err := savePet(ctx, tx, p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return owner, nil
}

// SaveDetails writes the owner columns only; pets are neither read nor written.
func (s *OwnerStore) SaveDetails(ctx context.Context, owner *model.Owner) (*model.Owner, error) {
	if err := saveOwnerRow(ctx, s.db, owner); err != nil {
		return nil, err
	}
	return owner, nil
}

func saveOwnerRow(ctx context.Context, q sqlx.ExtContext, o *model.Owner) error {
	if o.IsNew() {
		id, err := insertReturningID(ctx, q, `
			INSERT INTO owners (first_name, last_name, address, city, telephone)
			VALUES (?, ?, ?, ?, ?)
			RETURNING id`,
			o.FirstName, o.LastName, o.Address, o.City, o.Telephone)
		if err != nil {
			return translate(err, "insert owner")
		}
		o.ID = id
		return nil
	}

	err := updateByID(ctx, q, `
		UPDATE owners
		SET first_name = ?, last_name = ?, address = ?, city = ?, telephone = ?
		WHERE id = ?`,
		o.FirstName, o.LastName, o.Address, o.City, o.Telephone, o.ID)
	return translate(err, "update owner")
}

// loadPets attaches pets (with types and visits) to the given owners using one query per level.
func loadPets(ctx context.Context, q sqlx.ExtContext, owners []*model.Owner) error {
	if len(owners) == 0 {
		return nil
	}
	byID := make(map[int]*model.Owner, len(owners))
	ids := make([]int, 0, len(owners))
	for _, o := range owners {
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}

	var rows []petRow
	err := selectIn(ctx, q, &rows, `
		SELECT p.id, p.name, p.birth_date, p.owner_id, t.id AS type_id, t.name AS type_name
		FROM pets p
		JOIN types t ON t.id = p.type_id
		WHERE p.owner_id IN (?)
		ORDER BY p.name, p.id`, ids)
	if err != nil {
		return translate(err, "select pets")
	}

	pets := make([]*model.Pet, 0, len(rows))
	for _, r := range rows {
		p := r.toModel()
		if o, ok := byID[p.OwnerID]; ok {
			o.AddPet(p)
		}
		pets = append(pets, p)
	}
	return loadVisits(ctx, q, pets)
}

// loadVisits attaches visits to the given pets, oldest first.
func loadVisits(ctx context.Context, q sqlx.ExtContext, pets []*model.Pet) error {
	if len(pets) == 0 {
		return nil
	}
	byID := make(map[int]*model.Pet, len(pets))
	ids := make([]int, 0, len(pets))
	for _, p := range pets {
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	var rows []visitRow
	err := selectIn(ctx, q, &rows, `
		SELECT id, pet_id, visit_date, description
		FROM visits
		WHERE pet_id IN (?)
		ORDER BY visit_date, id`, ids)
	if err != nil {
		return translate(err, "select visits")
	}
	for _, r := range rows {
		if p, ok := byID[r.PetID]; ok {
			p.AddVisit(r.toModel())
		}
	}
	return nil
}
