package repo

import (
	"errors"

	"gorm.io/gorm"
)

// GormRepo is the single persistence gateway. Handlers never see *gorm.DB;
// services call these methods and translate storage errors into their own
// taxonomy.
type GormRepo struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}

var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrUserAlreadyExist  = errors.New("user already exist")
)

// NotFound reports whether err is the storage-level missing-row error.
func NotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
