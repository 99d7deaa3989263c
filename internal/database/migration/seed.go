package migration

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

type seedOwner struct {
	FirstName, LastName, Address, City, Telephone string
}

type seedPet struct {
	Name      string
	BirthDate string
	Type      string
	Owner     int // index into seedOwners
}

type seedVisit struct {
	Pet         int // index into seedPets
	Date        string
	Description string
}

var (
	seedSpecialties = []string{"radiology", "surgery", "dentistry"}

	seedVets = []struct {
		FirstName, LastName string
		Specialties         []string
	}{
		{"James", "Carter", nil},
		{"Helen", "Leary", []string{"radiology"}},
		{"Linda", "Douglas", []string{"surgery", "dentistry"}},
		{"Rafael", "Ortega", []string{"surgery"}},
		{"Henry", "Stevens", []string{"radiology"}},
		{"Sharon", "Jenkins", nil},
	}

	seedTypes = []string{"cat", "dog", "lizard", "snake", "bird", "hamster"}

	seedOwners = []seedOwner{
		{"George", "Franklin", "110 W. Liberty St.", "Madison", "6085551023"},
		{"Betty", "Davis", "638 Cardinal Ave.", "Sun Prairie", "6085551749"},
		{"Eduardo", "Rodriquez", "2693 Commerce St.", "McFarland", "6085558763"},
		{"Harold", "Davis", "563 Friendly St.", "Windsor", "6085553198"},
		{"Peter", "McTavish", "2387 S. Fair Way", "Madison", "6085552765"},
		{"Jean", "Coleman", "105 N. Lake St.", "Monona", "6085552654"},
		{"Jeff", "Black", "1450 Oak Blvd.", "Monona", "6085555387"},
		{"Maria", "Escobito", "345 Maple St.", "Madison", "6085557683"},
		{"David", "Schroeder", "2749 Blackhawk Trail", "Madison", "6085559435"},
		{"Carlos", "Estaban", "2335 Independence La.", "Waunakee", "6085555487"},
	}

	seedPets = []seedPet{
		{"Leo", "2010-09-07", "cat", 0},
		{"Basil", "2012-08-06", "hamster", 1},
		{"Rosy", "2011-04-17", "dog", 2},
		{"Jewel", "2010-03-07", "dog", 2},
		{"Iggy", "2010-11-30", "lizard", 3},
		{"George", "2010-01-20", "snake", 4},
		{"Samantha", "2012-09-04", "cat", 5},
		{"Max", "2012-09-04", "cat", 5},
		{"Lucky", "2011-08-06", "bird", 6},
		{"Mulligan", "2007-02-24", "dog", 7},
		{"Freddy", "2010-03-09", "bird", 8},
		{"Lucky", "2010-06-24", "dog", 9},
		{"Sly", "2012-06-08", "cat", 9},
	}

	seedVisits = []seedVisit{
		{6, "2013-01-01", "rabies shot"},
		{7, "2013-01-02", "rabies shot"},
		{7, "2013-01-03", "neutered"},
		{6, "2013-01-04", "spayed"},
	}
)

// Seed loads the clinic's reference and sample data when the vets table is empty.
// It runs in a single transaction.
func Seed(ctx context.Context, db *sqlx.DB, log zerolog.Logger) error {
	log = log.With().Str("component", "database").Str("event", "db_seed").Logger()

	var vets int
	if err := db.GetContext(ctx, &vets, `SELECT COUNT(*) FROM vets`); err != nil {
		return fmt.Errorf("count vets: %w", err)
	}
	if vets > 0 {
		log.Info().Str("status", "skipped").Msg("data already present, skipping seed")
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := seed(ctx, tx); err != nil {
		log.Error().Str("status", "error").Err(err).Send()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}

	log.Info().
		Str("status", "success").
		Int("owners", len(seedOwners)).
		Int("pets", len(seedPets)).
		Int("vets", len(seedVets)).
		Send()
	return nil
}

func seed(ctx context.Context, tx *sqlx.Tx) error {
	insertID := func(query string, args ...any) (int, error) {
		var id int
		err := tx.QueryRowxContext(ctx, tx.Rebind(query), args...).Scan(&id)
		return id, err
	}

	specialtyIDs := make(map[string]int, len(seedSpecialties))
	for _, name := range seedSpecialties {
		id, err := insertID(`INSERT INTO specialties (name) VALUES (?) RETURNING id`, name)
		if err != nil {
			return fmt.Errorf("seed specialty %s: %w", name, err)
		}
		specialtyIDs[name] = id
	}

	for _, v := range seedVets {
		id, err := insertID(`INSERT INTO vets (first_name, last_name) VALUES (?, ?) RETURNING id`, v.FirstName, v.LastName)
		if err != nil {
			return fmt.Errorf("seed vet %s: %w", v.LastName, err)
		}
		for _, s := range v.Specialties {
			if _, err := tx.ExecContext(ctx, tx.Rebind(`INSERT INTO vet_specialties (vet_id, specialty_id) VALUES (?, ?)`), id, specialtyIDs[s]); err != nil {
				return fmt.Errorf("seed vet specialty %s/%s: %w", v.LastName, s, err)
			}
		}
	}

	typeIDs := make(map[string]int, len(seedTypes))
	for _, name := range seedTypes {
		id, err := insertID(`INSERT INTO types (name) VALUES (?) RETURNING id`, name)
		if err != nil {
			return fmt.Errorf("seed type %s: %w", name, err)
		}
		typeIDs[name] = id
	}

	ownerIDs := make([]int, len(seedOwners))
	for i, o := range seedOwners {
		id, err := insertID(`INSERT INTO owners (first_name, last_name, address, city, telephone) VALUES (?, ?, ?, ?, ?) RETURNING id`,
			o.FirstName, o.LastName, o.Address, o.City, o.Telephone)
		if err != nil {
			return fmt.Errorf("seed owner %s: %w", o.LastName, err)
		}
		ownerIDs[i] = id
	}

	petIDs := make([]int, len(seedPets))
	for i, p := range seedPets {
		birth, err := time.Parse(time.DateOnly, p.BirthDate)
		if err != nil {
			return err
		}
		id, err := insertID(`INSERT INTO pets (name, birth_date, type_id, owner_id) VALUES (?, ?, ?, ?) RETURNING id`,
			p.Name, birth, typeIDs[p.Type], ownerIDs[p.Owner])
		if err != nil {
			return fmt.Errorf("seed pet %s: %w", p.Name, err)
		}
		petIDs[i] = id
	}

	for _, v := range seedVisits {
		date, err := time.Parse(time.DateOnly, v.Date)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(`INSERT INTO visits (pet_id, visit_date, description) VALUES (?, ?, ?)`),
			petIDs[v.Pet], date, v.Description); err != nil {
			return fmt.Errorf("seed visit %s: %w", v.Description, err)
		}
	}
	return nil
}
