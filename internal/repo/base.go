package repo

import (
	"context"

	"gorm.io/gorm"
)

// Base is the shared foundation for table-owning repositories. It keeps the
// GORM handle private so domain code always goes through DB and picks up the
// request context.
type Base struct {
	db *gorm.DB
}

func NewBase(db *gorm.DB) Base {
	return Base{db: db}
}

// DB returns the connection bound to the supplied context.
func (b Base) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.db
	}
	return b.db.WithContext(ctx)
}
