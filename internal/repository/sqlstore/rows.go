package sqlstore

import (
	"database/sql"
	"time"

	"petclinic/internal/model"
)

// Row structs bind table columns to entity fields. They are the only place
// where column names meet the domain model.

type ownerRow struct {
	ID        int    `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Address   string `db:"address"`
	City      string `db:"city"`
	Telephone string `db:"telephone"`
}

func (r ownerRow) toModel() *model.Owner {
	o := &model.Owner{
		Address:   r.Address,
		City:      r.City,
		Telephone: r.Telephone,
		Pets:      []*model.Pet{},
	}
	o.ID = r.ID
	o.FirstName = r.FirstName
	o.LastName = r.LastName
	return o
}

// petRow also carries the joined type columns and, for single pet loads, the owner names.
type petRow struct {
	ID             int            `db:"id"`
	Name           string         `db:"name"`
	BirthDate      time.Time      `db:"birth_date"`
	OwnerID        sql.NullInt64  `db:"owner_id"`
	TypeID         int            `db:"type_id"`
	TypeName       string         `db:"type_name"`
	OwnerFirstName sql.NullString `db:"owner_first_name"`
	OwnerLastName  sql.NullString `db:"owner_last_name"`
}

func (r petRow) toModel() *model.Pet {
	p := &model.Pet{
		BirthDate: r.BirthDate,
		OwnerID:   int(r.OwnerID.Int64),
		Visits:    []*model.Visit{},
	}
	p.ID = r.ID
	p.Name = r.Name
	t := &model.PetType{}
	t.ID = r.TypeID
	t.Name = r.TypeName
	p.Type = t
	return p
}

type visitRow struct {
	ID          int       `db:"id"`
	PetID       int       `db:"pet_id"`
	Date        time.Time `db:"visit_date"`
	Description string    `db:"description"`
}

func (r visitRow) toModel() *model.Visit {
	v := &model.Visit{PetID: r.PetID, Date: r.Date, Description: r.Description}
	v.ID = r.ID
	return v
}

type vetRow struct {
	ID        int    `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
}

func (r vetRow) toModel() model.Vet {
	v := model.Vet{Specialties: []model.Specialty{}}
	v.ID = r.ID
	v.FirstName = r.FirstName
	v.LastName = r.LastName
	return v
}

// vetSpecialtyRow is one vet_specialties link resolved to its specialty.
type vetSpecialtyRow struct {
	VetID int    `db:"vet_id"`
	ID    int    `db:"id"`
	Name  string `db:"name"`
}

type namedRow struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

// calendarDate truncates t to midnight UTC of its own calendar day, the value
// a DATE column holds on every dialect.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func nullableID(id int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(id), Valid: id != 0}
}
