package guestlist

import (
	"github.com/doorlist/doorlist/internal/model"
	"gorm.io/gorm"
)

// CapacityGate answers whether a new guest or promoter may be created
// given the configured caps. Methods take the caller's transaction so
// the count and the subsequent insert cannot race past the cap.
type CapacityGate struct{}

func (g CapacityGate) CanRegisterGuest(tx *gorm.DB) (bool, error) {
	limits, err := (&model.SettingsRepository{DB: tx}).Limits()
	if err != nil {
		return false, err
	}
	if limits.MaxGuests == nil {
		return true, nil
	}

	// Rejected guests free their slot, so they are excluded from the cap.
	var count int64
	err = tx.Model(&model.Guest{}).Where("status <> ?", model.StatusRejected).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count < int64(*limits.MaxGuests), nil
}

func (g CapacityGate) CanCreatePromoter(tx *gorm.DB) (bool, error) {
	limits, err := (&model.SettingsRepository{DB: tx}).Limits()
	if err != nil {
		return false, err
	}
	if limits.MaxPromoters == nil {
		return true, nil
	}

	var count int64
	if err = tx.Model(&model.Promoter{}).Count(&count).Error; err != nil {
		return false, err
	}
	return count < int64(*limits.MaxPromoters), nil
}
