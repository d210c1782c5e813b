package guestlist

import (
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/doorlist/doorlist/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PromoterService owns the referral side of the ledger: promoter
// creation, code renames with their cascade over guests, deletion and
// dashboard login.
type PromoterService struct {
	db   *gorm.DB
	gate CapacityGate
}

func NewPromoterService(db *gorm.DB) *PromoterService {
	return &PromoterService{db: db, gate: CapacityGate{}}
}

type PromoterForm struct {
	FirstName     string             `json:"firstName"`
	LastName      string             `json:"lastName"`
	Code          string             `json:"code"`
	Password      string             `json:"password"`
	RewardsConfig []model.RewardTier `json:"rewardsConfig"`
}

func (s *PromoterService) Create(form PromoterForm) (*model.Promoter, error) {
	promoter := model.Promoter{
		ID:            uuid.NewString(),
		FirstName:     sanitize(form.FirstName),
		LastName:      sanitize(form.LastName),
		Code:          strings.ToUpper(sanitize(form.Code)),
		Password:      form.Password,
		RewardsConfig: form.RewardsConfig,
	}

	if errs := promoter.Validate(); len(errs) > 0 {
		return nil, ValidationError{Fields: errs}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := s.gate.CanCreatePromoter(tx)
		if err != nil {
			return err
		}
		if !ok {
			return ErrCapacityExceeded
		}

		existing, err := (&model.PromoterRepository{DB: tx}).FindByCode(promoter.Code)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrDuplicateCode
		}

		return tx.Create(&promoter).Error
	})
	if err != nil {
		return nil, err
	}

	return &promoter, nil
}

// Update edits a promoter. When the code changes, every guest
// referencing the old code is repointed to the new one in the same
// transaction, so no guest is ever left with a stale reference.
func (s *PromoterService) Update(id string, form PromoterForm) error {
	updated := model.Promoter{
		FirstName:     sanitize(form.FirstName),
		LastName:      sanitize(form.LastName),
		Code:          strings.ToUpper(sanitize(form.Code)),
		Password:      form.Password,
		RewardsConfig: form.RewardsConfig,
	}

	if errs := updated.Validate(); len(errs) > 0 {
		return ValidationError{Fields: errs}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var promoter model.Promoter
		if err := tx.Where("id = ?", id).First(&promoter).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var conflicting int64
		err := tx.Model(&model.Promoter{}).
			Where("code = ? AND id <> ?", updated.Code, id).
			Count(&conflicting).Error
		if err != nil {
			return err
		}
		if conflicting > 0 {
			return ErrCodeConflict
		}

		err = tx.Model(&model.Promoter{ID: id}).
			Select("first_name", "last_name", "code", "password", "rewards_config").
			Updates(updated).Error
		if err != nil {
			return err
		}

		if promoter.Code != updated.Code {
			err = tx.Model(&model.Guest{}).
				Where("invited_by = ?", promoter.Code).
				Update("invited_by", updated.Code).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete removes a promoter. Guests keep their invited_by value even
// when it now points at a code with no owner.
func (s *PromoterService) Delete(id string) error {
	res := s.db.Where("id = ?", id).Delete(&model.Promoter{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Login authenticates a promoter by code and password for the
// dashboard.
func (s *PromoterService) Login(code, password string) (*model.Promoter, error) {
	promoter, err := (&model.PromoterRepository{DB: s.db}).FindByCode(strings.ToUpper(sanitize(code)))
	if err != nil {
		return nil, err
	}
	if promoter == nil {
		return nil, ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(promoter.Password), []byte(password)) != 1 {
		return nil, ErrInvalidCredentials
	}
	return promoter, nil
}
