package model

import (
	"time"

	"gorm.io/gorm"

	"commune/internal/pkg"
)

type Community struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:64;not null" json:"name"`
	Slug      string    `gorm:"size:64;not null;index" json:"slug"`
	UserID    string    `gorm:"size:36;not null;index" json:"user"` // owner
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Community) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = pkg.NewID()
	}
	if c.Slug == "" {
		c.Slug = pkg.Slugify(c.Name)
	}
	return nil
}
