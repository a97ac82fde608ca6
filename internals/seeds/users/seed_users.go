package users

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"skysports_backend/internals/constants"
	"skysports_backend/internals/features/users/user/model"
)

type UserSeed struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Photo string `json:"photo"`
	Role  string `json:"role"`
}

// SeedUsersFromJSON inserts users whose email is not taken yet and returns
// how many were added.
func SeedUsersFromJSON(db *gorm.DB, filePath string) (int, error) {
	log.Info().Str("file", filePath).Msg("📥 reading user seeds")

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("read user seeds: %w", err)
	}
	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		return 0, fmt.Errorf("decode user seeds: %w", err)
	}

	inserted := 0
	for _, data := range inputs {
		email := strings.TrimSpace(data.Email)
		if email == "" {
			continue
		}
		if data.Role != "" && !constants.IsKnownRole(data.Role) {
			log.Warn().Str("email", email).Str("role", data.Role).Msg("unknown role in seed, skipped")
			continue
		}

		var count int64
		if err := db.Model(&model.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return inserted, err
		}
		if count > 0 {
			log.Debug().Str("email", email).Msg("user exists, skipped")
			continue
		}

		u := model.UserModel{Name: data.Name, Email: email, PhotoURL: data.Photo, Role: data.Role}
		if err := db.Create(&u).Error; err != nil {
			return inserted, fmt.Errorf("insert user %s: %w", email, err)
		}
		inserted++
	}
	return inserted, nil
}
