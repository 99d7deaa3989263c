package sqlstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petclinic/internal/model"
	"petclinic/internal/repository"
)

var (
	ownerCols = []string{"id", "first_name", "last_name", "address", "city", "telephone"}
	petCols   = []string{"id", "name", "birth_date", "owner_id", "type_id", "type_name"}
	visitCols = []string{"id", "pet_id", "visit_date", "description"}
)

func TestOwnerStore_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found with pets and visits", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewOwnerStore(db)
		birth := time.Date(2012, 9, 4, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery("SELECT (.+) FROM owners WHERE id = ?").
			WithArgs(6).
			WillReturnRows(sqlmock.NewRows(ownerCols).
				AddRow(6, "Jean", "Coleman", "105 N. Lake St.", "Monona", "6085552654"))
		mock.ExpectQuery("SELECT (.+) FROM pets p JOIN types t ON t.id = p.type_id WHERE p.owner_id IN").
			WithArgs(6).
			WillReturnRows(sqlmock.NewRows(petCols).
				AddRow(8, "Max", birth, 6, 1, "cat").
				AddRow(7, "Samantha", birth, 6, 1, "cat"))
		mock.ExpectQuery("SELECT (.+) FROM visits WHERE pet_id IN").
			WithArgs(8, 7).
			WillReturnRows(sqlmock.NewRows(visitCols).
				AddRow(1, 7, time.Date(2013, 1, 1, 0, 0, 0, 0, time.UTC), "rabies shot").
				AddRow(2, 8, time.Date(2013, 1, 2, 0, 0, 0, 0, time.UTC), "rabies shot").
				AddRow(3, 8, time.Date(2013, 1, 3, 0, 0, 0, 0, time.UTC), "neutered"))

		owner, err := repo.FindByID(ctx, 6)

		require.NoError(t, err)
		assert.Equal(t, "Coleman", owner.LastName)
		require.Len(t, owner.Pets, 2)
		assert.Equal(t, "Max", owner.Pets[0].Name)
		assert.Equal(t, "cat", owner.Pets[0].Type.Name)
		assert.Same(t, owner, owner.Pets[0].Owner)
		assert.Len(t, owner.Pets[0].Visits, 2)
		assert.Len(t, owner.Pets[1].Visits, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("owner without pets", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewOwnerStore(db)

		mock.ExpectQuery("SELECT (.+) FROM owners WHERE id = ?").
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows(ownerCols).AddRow(1, "George", "Franklin", "110 W. Liberty St.", "Madison", "6085551023"))
		mock.ExpectQuery("SELECT (.+) FROM pets").
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows(petCols))

		owner, err := repo.FindByID(ctx, 1)

		require.NoError(t, err)
		assert.Empty(t, owner.Pets)
		assert.NotNil(t, owner.Pets)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewOwnerStore(db)

		mock.ExpectQuery("SELECT (.+) FROM owners WHERE id = ?").
			WithArgs(404).
			WillReturnRows(sqlmock.NewRows(ownerCols))

		owner, err := repo.FindByID(ctx, 404)

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, owner)
	})

	t.Run("pets query error", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewOwnerStore(db)

		mock.ExpectQuery("SELECT (.+) FROM owners WHERE id = ?").
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows(ownerCols).AddRow(1, "George", "Franklin", "", "", ""))
		mock.ExpectQuery("SELECT (.+) FROM pets").WillReturnError(errors.New("db fail"))

		_, err := repo.FindByID(ctx, 1)

		assert.ErrorContains(t, err, "select pets: db fail")
	})
}

func TestOwnerStore_FindByLastName(t *testing.T) {
	ctx := context.Background()

	t.Run("prefix match", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewOwnerStore(db)

		mock.ExpectQuery(`SELECT (.+) FROM owners WHERE last_name LIKE \? ESCAPE (.+) ORDER BY last_name, id`).
			WithArgs("Dav%").
			WillReturnRows(sqlmock.NewRows(ownerCols).
				AddRow(2, "Betty", "Davis", "638 Cardinal Ave.", "Sun Prairie", "6085551749").
				AddRow(4, "Harold", "Davis", "563 Friendly St.", "Windsor", "6085553198"))
		mock.ExpectQuery("SELECT (.+) FROM pets").
			WithArgs(2, 4).
			WillReturnRows(sqlmock.NewRows(petCols).
				AddRow(2, "Basil", time.Now(), 2, 6, "hamster").
				AddRow(5, "Iggy", time.Now(), 4, 3, "lizard"))
		mock.ExpectQuery("SELECT (.+) FROM visits").
			WithArgs(2, 5).
			WillReturnRows(sqlmock.NewRows(visitCols))

		owners, err := repo.FindByLastName(ctx, "Dav")

		require.NoError(t, err)
		require.Len(t, owners, 2)
		assert.Equal(t, "Betty", owners[0].FirstName)
		require.Len(t, owners[0].Pets, 1)
		assert.Equal(t, "Basil", owners[0].Pets[0].Name)
		require.Len(t, owners[1].Pets, 1)
		assert.Equal(t, "Iggy", owners[1].Pets[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no match skips association queries", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewOwnerStore(db)

		mock.ExpectQuery("SELECT (.+) FROM owners WHERE last_name LIKE").
			WithArgs("Daviss%").
			WillReturnRows(sqlmock.NewRows(ownerCols))

		owners, err := repo.FindByLastName(ctx, "Daviss")

		require.NoError(t, err)
		assert.Empty(t, owners)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOwnerStore_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("insert cascades to new pet and visit", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewOwnerStore(db)

		owner := &model.Owner{Address: "1 Main St.", City: "Madison", Telephone: "6085550000"}
		owner.FirstName = "Sam"
		owner.LastName = "Schultz"
		pet := &model.Pet{BirthDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), Type: &model.PetType{}}
		pet.Name = "Rex"
		pet.Type.ID = 2
		pet.Type.Name = "dog"
		visit := &model.Visit{Date: time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC), Description: "checkup"}
		pet.AddVisit(visit)
		owner.AddPet(pet)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO owners (.+) RETURNING id").
			WithArgs("Sam", "Schultz", "1 Main St.", "Madison", "6085550000").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
		mock.ExpectQuery("INSERT INTO pets (.+) RETURNING id").
			WithArgs("Rex", pet.BirthDate, 2, 11).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(14))
		mock.ExpectQuery("INSERT INTO visits (.+) RETURNING id").
			WithArgs(14, visit.Date, "checkup").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
		mock.ExpectCommit()

		saved, err := repo.Save(ctx, owner)

		require.NoError(t, err)
		assert.Equal(t, 11, saved.ID)
		assert.Equal(t, 14, pet.ID)
		assert.Equal(t, 11, pet.OwnerID)
		assert.Equal(t, 5, visit.ID)
		assert.Equal(t, 14, visit.PetID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update with new pet type", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewOwnerStore(db)

		owner := &model.Owner{Address: "a", City: "c", Telephone: "1"}
		owner.ID = 3
		owner.FirstName = "Eduardo"
		owner.LastName = "Rodriquez"
		pet := &model.Pet{BirthDate: time.Date(2011, 4, 17, 0, 0, 0, 0, time.UTC), Type: &model.PetType{}}
		pet.ID = 3
		pet.Name = "Rosy"
		pet.Type.Name = "ferret"
		owner.AddPet(pet)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE owners SET (.+) WHERE id = ?").
			WithArgs("Eduardo", "Rodriquez", "a", "c", "1", 3).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO types (.+) RETURNING id").
			WithArgs("ferret").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectExec("UPDATE pets SET (.+) WHERE id = ?").
			WithArgs("Rosy", pet.BirthDate, 7, 3, 3).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		_, err := repo.Save(ctx, owner)

		require.NoError(t, err)
		assert.Equal(t, 7, pet.Type.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing owner rolls back", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewOwnerStore(db)

		owner := &model.Owner{}
		owner.ID = 404

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE owners SET").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		saved, err := repo.Save(ctx, owner)

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, saved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("pet without type rolls back", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewOwnerStore(db)

		owner := &model.Owner{}
		owner.ID = 1
		pet := &model.Pet{}
		pet.Name = "Nameless"
		owner.AddPet(pet)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE owners SET").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectRollback()

		_, err := repo.Save(ctx, owner)

		assert.ErrorIs(t, err, repository.ErrInvalidReference)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOwnerStore_SaveDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("insert", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewOwnerStore(db)

		owner := &model.Owner{Address: "a", City: "c", Telephone: "1"}
		owner.FirstName = "F"
		owner.LastName = "L"
		owner.AddPet(&model.Pet{})

		mock.ExpectQuery("INSERT INTO owners").
			WithArgs("F", "L", "a", "c", "1").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))

		saved, err := repo.SaveDetails(ctx, owner)

		require.NoError(t, err)
		assert.Equal(t, 12, saved.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewOwnerStore(db)

		owner := &model.Owner{Address: "a", City: "c", Telephone: "1"}
		owner.ID = 12
		owner.FirstName = "F"
		owner.LastName = "L"

		mock.ExpectExec("UPDATE owners SET").
			WithArgs("F", "L", "a", "c", "1", 12).
			WillReturnResult(sqlmock.NewResult(0, 1))

		_, err := repo.SaveDetails(ctx, owner)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
