package mysql

import (
	"errors"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"commune/internal/repository"
)

var DB *gorm.DB

func InitDB(dsn string) error {
	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	return err
}

// wrap maps gorm's not-found sentinel to the repository one.
func wrap(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}
	return err
}
