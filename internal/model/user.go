package model

import (
	"time"

	"gorm.io/gorm"

	"commune/internal/pkg"
)

type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:64;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:64;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns the id and hashes the password before the row is
// persisted. The password field never holds plaintext past this point.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = pkg.NewID()
	}
	hash, err := pkg.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hash
	return nil
}
