package model

import (
	"time"
)

type Promoter struct {
	ID            string       `gorm:"primarykey" json:"id"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"-"`
	FirstName     string       `gorm:"not null" json:"firstName"`
	LastName      string       `gorm:"not null" json:"lastName"`
	Code          string       `gorm:"type:text collate nocase; not null; uniqueIndex" json:"code"`
	Password      string       `json:"-"`
	InvitesCount  int          `gorm:"not null; default:0" json:"invitesCount"`
	RewardsConfig []RewardTier `gorm:"serializer:json; type:text" json:"rewardsConfig"`
}

// RewardTier is a reward unlocked once a promoter reaches the given
// number of credited invites. Tiers are stored ascending by threshold.
type RewardTier struct {
	Threshold int    `json:"threshold"`
	Reward    string `json:"reward"`
}

// Validate checks all promoter's fields to ensure they are in the required format
func (p Promoter) Validate() map[string]string {
	errs := map[string]string{}

	if p.FirstName == "" {
		errs["firstname"] = "First name cannot be empty"
	}

	if p.LastName == "" {
		errs["lastname"] = "Last name cannot be empty"
	}

	if p.Code == "" {
		errs["code"] = "Code cannot be empty"
	}

	if len(p.Code) > 30 {
		errs["code"] = "Code cannot be longer than 30 characters"
	}

	if p.Password == "" {
		errs["password"] = "Password cannot be empty"
	}

	prev := -1
	for _, tier := range p.RewardsConfig {
		if tier.Threshold < 0 {
			errs["rewards"] = "Reward thresholds must be zero or positive"
			break
		}
		if tier.Threshold <= prev {
			errs["rewards"] = "Reward thresholds must be strictly ascending"
			break
		}
		prev = tier.Threshold
	}

	return errs
}

// NextTier returns the first reward tier the promoter has not reached
// yet, or nil if every tier is already unlocked.
func (p Promoter) NextTier() *RewardTier {
	for i, tier := range p.RewardsConfig {
		if p.InvitesCount < tier.Threshold {
			return &p.RewardsConfig[i]
		}
	}
	return nil
}
