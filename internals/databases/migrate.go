package database

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	instructorModel "skysports_backend/internals/features/classes/instructors/model"
	selectedClassModel "skysports_backend/internals/features/classes/selected_classes/model"
	sportModel "skysports_backend/internals/features/classes/sports/model"
	topClassModel "skysports_backend/internals/features/classes/top_classes/model"
	paymentModel "skysports_backend/internals/features/finance/payments/model"
	userModel "skysports_backend/internals/features/users/user/model"
)

// AutoMigrate creates or extends every table the API reads. Only run when
// DB_AUTO_MIGRATE is on; production schemas are managed by hand.
func AutoMigrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return err
	}
	err := db.AutoMigrate(
		&userModel.UserModel{},
		&topClassModel.TopClassModel{},
		&instructorModel.InstructorModel{},
		&sportModel.SportModel{},
		&selectedClassModel.SelectedClassModel{},
		&paymentModel.PaymentModel{},
	)
	if err != nil {
		return err
	}
	log.Info().Msg("✅ schema migrated")
	return nil
}
