package model

import (
	"time"

	"gorm.io/gorm"

	"commune/internal/pkg"
)

// Well-known role names used as authorization predicates. Lookup by these
// names is assumed unambiguous.
const (
	RoleCommunityAdmin     = "Community Admin"
	RoleCommunityModerator = "Community Moderator"
)

type Role struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:64;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Role) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = pkg.NewID()
	}
	return nil
}
