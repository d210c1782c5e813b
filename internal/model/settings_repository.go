package model

import (
	"errors"
	"log"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	SettingMaxGuests    = "maxGuests"
	SettingMaxPromoters = "maxPromoters"
)

type SettingsRepository struct {
	DB *gorm.DB
}

// Limits is the typed view over the two admission caps. A nil field
// means the corresponding cap is not configured (uncapped).
type Limits struct {
	MaxGuests    *int
	MaxPromoters *int
}

func (s *SettingsRepository) All() (map[string]string, error) {
	var settings []Setting

	res := s.DB.Find(&settings)
	if res.Error != nil {
		log.Printf("error listing settings: %s\n", res.Error)
		return nil, res.Error
	}

	values := make(map[string]string, len(settings))
	for _, setting := range settings {
		values[setting.Key] = setting.Value
	}
	return values, nil
}

func (s *SettingsRepository) Get(key string) (string, error) {
	var setting Setting

	res := s.DB.Where("key_name = ?", key).First(&setting)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return "", nil
	}
	return setting.Value, res.Error
}

// SetAll upserts every pair of the given map inside one transaction.
func (s *SettingsRepository) SetAll(values map[string]string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			res := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key_name"}},
				DoUpdates: clause.AssignmentColumns([]string{"value"}),
			}).Create(&Setting{Key: key, Value: value})
			if res.Error != nil {
				log.Printf("error saving setting %s: %s\n", key, res.Error)
				return res.Error
			}
		}
		return nil
	})
}

// Limits parses the admission caps once, at the boundary. Absent or
// non-numeric values mean uncapped.
func (s *SettingsRepository) Limits() (Limits, error) {
	var limits Limits

	maxGuests, err := s.Get(SettingMaxGuests)
	if err != nil {
		return limits, err
	}
	limits.MaxGuests = parseLimit(maxGuests)

	maxPromoters, err := s.Get(SettingMaxPromoters)
	if err != nil {
		return limits, err
	}
	limits.MaxPromoters = parseLimit(maxPromoters)

	return limits, nil
}

func parseLimit(value string) *int {
	if value == "" {
		return nil
	}
	limit, err := strconv.Atoi(value)
	if err != nil || limit < 0 {
		return nil
	}
	return &limit
}
