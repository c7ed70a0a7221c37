package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JournalModel is embedded by append-only records whose ID is assigned by
// the service rather than the store.
type JournalModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

// BeforeCreate generates the UUID unless the caller already set one.
func (m *JournalModel) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}
