package guestlist

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/doorlist/doorlist/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Sender interface {
	From() string
	Send(address, subject, body string) error
}

type Config struct {
	EventName string
}

// GuestService owns the guest lifecycle: registration, the
// PENDING/APPROVED/REJECTED state machine, check-in overrides and
// deletion. Ledger credits and decrements run inside the same
// transaction as the status change that caused them.
type GuestService struct {
	db     *gorm.DB
	gate   CapacityGate
	sender Sender
	config Config
}

func NewGuestService(db *gorm.DB, sender Sender, config Config) *GuestService {
	return &GuestService{
		db:     db,
		gate:   CapacityGate{},
		sender: sender,
		config: config,
	}
}

type GuestForm struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Instagram    string `json:"instagram"`
	PromoterCode string `json:"promoterCode"`
}

// Register admits a new guest in PENDING status. The capacity check,
// the duplicate email check and the insert share one transaction so
// concurrent registrations cannot slip past the cap.
func (s *GuestService) Register(form GuestForm) (*model.Guest, error) {
	guest := model.Guest{
		ID:        uuid.NewString(),
		FirstName: sanitize(form.FirstName),
		LastName:  sanitize(form.LastName),
		Email:     strings.ToLower(sanitize(form.Email)),
		Instagram: sanitize(form.Instagram),
		Status:    model.StatusPending,
	}

	if errs := guest.Validate(); len(errs) > 0 {
		return nil, ValidationError{Fields: errs}
	}

	code := strings.ToUpper(sanitize(form.PromoterCode))

	err := s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := s.gate.CanRegisterGuest(tx)
		if err != nil {
			return err
		}
		if !ok {
			return ErrCapacityExceeded
		}

		existing, err := (&model.GuestRepository{DB: tx}).FindByEmail(guest.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrDuplicateEmail
		}

		// Unknown promoter codes are dropped silently, not rejected.
		if code != "" {
			promoter, err := (&model.PromoterRepository{DB: tx}).FindByCode(code)
			if err != nil {
				return err
			}
			if promoter != nil {
				guest.InvitedBy = promoter.Code
			}
		}

		return tx.Create(&guest).Error
	})
	if err != nil {
		return nil, err
	}

	return &guest, nil
}

// Approve moves a guest to APPROVED, assigns its id as QR payload and
// credits the referring promoter. Re-approving an APPROVED guest is a
// no-op, and a guest credits its promoter at most once in its
// lifetime, so approve/reject cycles cannot inflate the ledger.
func (s *GuestService) Approve(id string) (*model.Guest, error) {
	var guest model.Guest
	var transitioned bool

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&guest).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		res := tx.Model(&model.Guest{}).
			Where("id = ? AND status <> ?", id, model.StatusApproved).
			Updates(map[string]interface{}{"status": model.StatusApproved, "qr_code": id})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		transitioned = true
		guest.Status = model.StatusApproved
		guest.QrCode = id

		if guest.InvitedBy == "" {
			return nil
		}

		// The credited_at marker guarantees at most one credit per guest.
		now := time.Now().UTC()
		res = tx.Model(&model.Guest{}).
			Where("id = ? AND credited_at IS NULL", id).
			Update("credited_at", now)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		guest.CreditedAt = &now

		return credit(tx, guest.InvitedBy, 1)
	})
	if err != nil {
		return nil, err
	}

	// Dispatch happens after commit; a failed email never reverses the
	// approval. A no-op re-approval sends nothing.
	if transitioned {
		s.notify(guest, fmt.Sprintf("You are in | %s", s.config.EventName))
	}

	return &guest, nil
}

// Reject moves a guest to REJECTED regardless of its prior status. It
// never touches the referral ledger, even when the guest was APPROVED
// and credited; only deletion reverses a credit.
func (s *GuestService) Reject(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var guest model.Guest
		if err := tx.Where("id = ?", id).First(&guest).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		return tx.Model(&model.Guest{}).Where("id = ?", id).
			Update("status", model.StatusRejected).Error
	})
}

// Delete removes a guest. If the guest ever credited its promoter, the
// credit is reversed in the same transaction; clearing the marker
// first makes concurrent deletes decrement at most once.
func (s *GuestService) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var guest model.Guest
		if err := tx.Where("id = ?", id).First(&guest).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		res := tx.Model(&model.Guest{}).
			Where("id = ? AND credited_at IS NOT NULL", id).
			Update("credited_at", nil)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 1 && guest.InvitedBy != "" {
			if err := credit(tx, guest.InvitedBy, -1); err != nil {
				return err
			}
		}

		return tx.Where("id = ?", id).Delete(&model.Guest{}).Error
	})
}

// ManualCheckIn marks a guest as entered without requiring APPROVED
// status; it is the door staff's override for edge cases. A guest
// already checked in stays untouched, so used_at is written once.
func (s *GuestService) ManualCheckIn(id string) error {
	guest, err := (&model.GuestRepository{DB: s.db}).FindByID(id)
	if err != nil {
		return err
	}
	if guest == nil {
		return ErrNotFound
	}

	return s.db.Model(&model.Guest{}).
		Where("id = ? AND is_used = ?", id, false).
		Updates(map[string]interface{}{"is_used": true, "used_at": time.Now().UTC()}).Error
}

// UpdateProfile edits identity fields only; status, check-in state and
// the ledger are untouched.
func (s *GuestService) UpdateProfile(id string, form GuestForm) error {
	updated := model.Guest{
		FirstName: sanitize(form.FirstName),
		LastName:  sanitize(form.LastName),
		Email:     strings.ToLower(sanitize(form.Email)),
		Instagram: sanitize(form.Instagram),
	}

	if errs := updated.Validate(); len(errs) > 0 {
		return ValidationError{Fields: errs}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var guest model.Guest
		if err := tx.Where("id = ?", id).First(&guest).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		existing, err := (&model.GuestRepository{DB: tx}).FindByEmail(updated.Email)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != id {
			return ErrDuplicateEmail
		}

		return tx.Model(&model.Guest{}).Where("id = ?", id).Updates(map[string]interface{}{
			"first_name": updated.FirstName,
			"last_name":  updated.LastName,
			"email":      updated.Email,
			"instagram":  updated.Instagram,
		}).Error
	})
}

// ResendQr sends the guest's QR pass again to its email address.
func (s *GuestService) ResendQr(id string) error {
	guest, err := (&model.GuestRepository{DB: s.db}).FindByID(id)
	if err != nil {
		return err
	}
	if guest == nil {
		return ErrNotFound
	}

	s.notify(*guest, fmt.Sprintf("Your QR code | %s", s.config.EventName))
	return nil
}

func (s *GuestService) notify(guest model.Guest, subject string) {
	go func() {
		body := fmt.Sprintf(
			`<div style="text-align:center;"><h1>%s</h1><p>Hi %s, you are on the list.</p>`+
				`<img src="https://api.qrserver.com/v1/create-qr-code/?size=250x250&data=%s" /></div>`,
			s.config.EventName, guest.FirstName, guest.ID,
		)
		if err := s.sender.Send(guest.Email, subject, body); err != nil {
			log.Printf("error sending email to %s: %s\n", guest.Email, err)
		}
	}()
}
