package seeds

import (
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	instructors "skysports_backend/internals/seeds/classes/instructors"
	sports "skysports_backend/internals/seeds/classes/sports"
	users "skysports_backend/internals/seeds/users"
)

// RunAllSeeds loads the JSON fixtures under dir. Rows that already exist are
// skipped, so running twice is harmless.
func RunAllSeeds(db *gorm.DB, dir string) error {
	//* Users
	n, err := users.SeedUsersFromJSON(db, filepath.Join(dir, "data_users.json"))
	if err != nil {
		return err
	}
	log.Info().Int("inserted", n).Msg("seeded users")

	//* Catalogue
	n, err = sports.SeedSportsFromJSON(db, filepath.Join(dir, "data_sports.json"))
	if err != nil {
		return err
	}
	log.Info().Int("inserted", n).Msg("seeded sports")

	n, err = instructors.SeedInstructorsFromJSON(db, filepath.Join(dir, "data_instructors.json"))
	if err != nil {
		return err
	}
	log.Info().Int("inserted", n).Msg("seeded instructors")
	return nil
}
