package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedbackEntry is append-only: the storefront never updates or deletes one.
type FeedbackEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null"             json:"name"`
	Email     string    `json:"email,omitempty"`
	Rating    int       `gorm:"not null"             json:"rating"`
	Comment   string    `gorm:"not null"             json:"comment"`
	Product   string    `json:"product,omitempty"`
	CreatedAt time.Time `gorm:"index"                json:"created_at"`
}

func (f *FeedbackEntry) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

func (FeedbackEntry) TableName() string {
	return "feedback"
}
