package model

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Source records where an assistant answer was framed to come from.
// User messages carry SourceNone. Set once at creation, never revised.
type Source string

const (
	SourceNone Source = ""
	SourcePDF  Source = "pdf"
	SourceWeb  Source = "web"
)

type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ChatID    uint      `gorm:"not null;index" json:"chat_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Role      string    `gorm:"size:16;not null;index" json:"role"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Source    Source    `gorm:"size:8" json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
