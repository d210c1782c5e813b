package guestlist

import (
	"time"

	"github.com/doorlist/doorlist/internal/model"
	"gorm.io/gorm"
)

type Outcome string

const (
	OutcomeAdmitted    Outcome = "ADMITTED"
	OutcomeAlreadyUsed Outcome = "ALREADY_USED"
	OutcomeNotApproved Outcome = "NOT_APPROVED"
	OutcomePromoter    Outcome = "PROMOTER"
	OutcomeUnknown     Outcome = "UNKNOWN"
)

// ScanResult is what a single scan attempt resolved to. Guest is set
// for the three guest outcomes, Promoter for OutcomePromoter.
type ScanResult struct {
	Outcome  Outcome
	Guest    *model.Guest
	Promoter *model.Promoter
}

// CheckInService resolves scanned QR payloads to guests or promoters.
// Admission is the only mutation, and it is a single conditional
// update, so two concurrent scans of the same code admit exactly once.
type CheckInService struct {
	db *gorm.DB
}

func NewCheckInService(db *gorm.DB) *CheckInService {
	return &CheckInService{db: db}
}

func (s *CheckInService) Resolve(scannedCode string) (ScanResult, error) {
	guests := &model.GuestRepository{DB: s.db}

	guest, err := guests.FindByID(scannedCode)
	if err != nil {
		return ScanResult{}, err
	}
	if guest != nil {
		if guest.Status != model.StatusApproved {
			return ScanResult{Outcome: OutcomeNotApproved, Guest: guest}, nil
		}

		now := time.Now().UTC()
		res := s.db.Model(&model.Guest{}).
			Where("id = ? AND is_used = ?", scannedCode, false).
			Updates(map[string]interface{}{"is_used": true, "used_at": now})
		if res.Error != nil {
			return ScanResult{}, res.Error
		}
		if res.RowsAffected == 0 {
			// Lost the race or was used before; re-read for the real used_at.
			if guest, err = guests.FindByID(scannedCode); err != nil {
				return ScanResult{}, err
			}
			return ScanResult{Outcome: OutcomeAlreadyUsed, Guest: guest}, nil
		}

		guest.IsUsed = true
		guest.UsedAt = &now
		return ScanResult{Outcome: OutcomeAdmitted, Guest: guest}, nil
	}

	promoter, err := (&model.PromoterRepository{DB: s.db}).FindByID(scannedCode)
	if err != nil {
		return ScanResult{}, err
	}
	if promoter != nil {
		return ScanResult{Outcome: OutcomePromoter, Promoter: promoter}, nil
	}

	return ScanResult{Outcome: OutcomeUnknown}, nil
}
