package model

import "time"

// Chat belongs to exactly one folder and references at most one document
// (DocumentID 0 = none). UpdatedAt advances on every mutation of its
// message list and on rename.
type Chat struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	FolderID   uint      `gorm:"not null;index" json:"folder_id"`
	Title      string    `gorm:"size:128;not null" json:"title"`
	DocumentID uint      `gorm:"index" json:"document_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"last_updated"`
}
