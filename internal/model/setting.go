package model

import "time"

// Setting is a single key/value pair of the event configuration. All
// values are stored as strings; typed readings happen at the boundary.
type Setting struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Key       string `gorm:"column:key_name; uniqueIndex; not null"`
	Value     string
}
