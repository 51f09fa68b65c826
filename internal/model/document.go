package model

import "time"

// Document is an uploaded PDF plus its extracted plain text. The text is
// opaque to the rest of the system: it is stored as-is and never indexed.
// The original file lives in object storage under ObjectKey.
type Document struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Name      string    `gorm:"size:256;not null" json:"name"`
	Size      int64     `gorm:"not null" json:"size"`
	ObjectKey string    `gorm:"size:256;not null" json:"-"`
	Content   string    `gorm:"type:longtext" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
