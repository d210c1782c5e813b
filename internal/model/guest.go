package model

import (
	"net/mail"
	"time"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type Guest struct {
	ID         string     `gorm:"primarykey" json:"id"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"-"`
	FirstName  string     `gorm:"not null" json:"firstName"`
	LastName   string     `gorm:"not null" json:"lastName"`
	Email      string     `gorm:"type:text collate nocase; not null; uniqueIndex" json:"email"`
	Instagram  string     `json:"instagram"`
	Status     string     `gorm:"not null; default:PENDING; index" json:"status"`
	QrCode     string     `json:"qrCode"`
	IsUsed     bool       `gorm:"not null; default:false" json:"isUsed"`
	UsedAt     *time.Time `json:"usedAt"`
	InvitedBy  string     `gorm:"index" json:"invitedBy"`
	CreditedAt *time.Time `json:"-"`
}

// Validate checks all guest's fields to ensure they are in the required format
func (g Guest) Validate() map[string]string {
	errs := map[string]string{}

	if g.FirstName == "" {
		errs["firstname"] = "First name cannot be empty"
	}

	if len(g.FirstName) > 50 {
		errs["firstname"] = "First name cannot be longer than 50 characters"
	}

	if g.LastName == "" {
		errs["lastname"] = "Last name cannot be empty"
	}

	if len(g.LastName) > 50 {
		errs["lastname"] = "Last name cannot be longer than 50 characters"
	}

	if _, err := mail.ParseAddress(g.Email); err != nil {
		errs["email"] = "Incorrect email address"
	}

	if len(g.Email) > 100 {
		errs["email"] = "Email cannot be longer than 100 characters"
	}

	if len(g.Instagram) > 50 {
		errs["instagram"] = "Instagram handle cannot be longer than 50 characters"
	}

	return errs
}
