package model

import (
	"time"

	"gorm.io/gorm"

	"commune/internal/pkg"
)

// Member records that a user holds a role in a community. The
// (community, user, role) triple is checked for duplicates before insert,
// not constrained in the schema.
type Member struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	CommunityID string    `gorm:"size:36;not null;index" json:"community"`
	UserID      string    `gorm:"size:36;not null;index" json:"user"`
	RoleID      string    `gorm:"size:36;not null;index" json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = pkg.NewID()
	}
	return nil
}
