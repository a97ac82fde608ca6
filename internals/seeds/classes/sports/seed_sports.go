package sports

import (
	"encoding/json"
	"fmt"
	"os"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skysports_backend/internals/features/classes/sports/model"
)

type SportSeed struct {
	Name        string `json:"name"`
	Picture     string `json:"picture"`
	Description string `json:"description"`
}

// SeedSportsFromJSON upserts by name without touching existing rows.
func SeedSportsFromJSON(db *gorm.DB, filePath string) (int, error) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("read sport seeds: %w", err)
	}
	var inputs []SportSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		return 0, fmt.Errorf("decode sport seeds: %w", err)
	}
	if len(inputs) == 0 {
		return 0, nil
	}

	rows := make([]model.SportModel, 0, len(inputs))
	for _, s := range inputs {
		rows = append(rows, model.SportModel{Name: s.Name, Picture: s.Picture, Description: s.Description})
	}
	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&rows)
	return int(res.RowsAffected), res.Error
}
