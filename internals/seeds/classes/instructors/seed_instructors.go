package instructors

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"skysports_backend/internals/features/classes/instructors/model"
)

type InstructorSeed struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Picture  string   `json:"picture"`
	Students int      `json:"students"`
	Classes  []string `json:"classes"`
}

func SeedInstructorsFromJSON(db *gorm.DB, filePath string) (int, error) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("read instructor seeds: %w", err)
	}
	var inputs []InstructorSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		return 0, fmt.Errorf("decode instructor seeds: %w", err)
	}

	inserted := 0
	for _, data := range inputs {
		var count int64
		if err := db.Model(&model.InstructorModel{}).Where("email = ?", data.Email).Count(&count).Error; err != nil {
			return inserted, err
		}
		if count > 0 {
			log.Debug().Str("email", data.Email).Msg("instructor exists, skipped")
			continue
		}
		row := model.InstructorModel{
			Name:     data.Name,
			Email:    data.Email,
			Picture:  data.Picture,
			Students: data.Students,
			Classes:  pq.StringArray(data.Classes),
		}
		if err := db.Create(&row).Error; err != nil {
			return inserted, fmt.Errorf("insert instructor %s: %w", data.Email, err)
		}
		inserted++
	}
	return inserted, nil
}
