package guestlist

import (
	"github.com/doorlist/doorlist/internal/model"
	"gorm.io/gorm"
)

// credit adjusts a promoter's invite counter in place. The counter is
// floored at zero, so a stray decrement can never drive it negative.
// A delta against a code with no promoter row is a no-op.
func credit(tx *gorm.DB, code string, delta int) error {
	return tx.Model(&model.Promoter{}).
		Where("code = ?", code).
		Update("invites_count", gorm.Expr("MAX(invites_count + ?, 0)", delta)).Error
}
