package app

import (
	"context"
	"io"
	"time"

	"studydesk/internal/model"
)

// Storage is injected through these interfaces so tests can run the
// services against in-memory fakes. The gorm repositories in
// internal/repository are the production implementations.

type UserStore interface {
	Create(user *model.User) error
	GetByEmail(email string) (*model.User, error)
	GetByID(id uint) (*model.User, error)
	Update(user *model.User) error
}

type FolderStore interface {
	Create(folder *model.Folder) error
	ListByUserID(userID uint) ([]model.Folder, error)
	GetByIDAndUserID(folderID, userID uint) (*model.Folder, error)
}

type DocumentStore interface {
	Create(doc *model.Document) error
	ListByUserID(userID uint) ([]model.Document, error)
	GetByIDAndUserID(documentID, userID uint) (*model.Document, error)
}

type ChatStore interface {
	Create(chat *model.Chat) error
	CountByUserID(userID uint) (int64, error)
	ListByUserID(userID uint) ([]model.Chat, error)
	ListByUserIDAndFolderID(userID, folderID uint) ([]model.Chat, error)
	GetByIDAndUserID(chatID, userID uint) (*model.Chat, error)
	Rename(chatID, userID uint, title string) error
	Touch(chatID uint) error
	DeleteByIDAndUserID(chatID, userID uint) error
}

type MessageStore interface {
	ListByChatID(chatID uint, limit int) ([]model.Message, error)
	DeleteByChatID(chatID uint) error
}

// AsyncMessagePublisher hands a message to the persist queue; the worker
// in internal/worker writes it to MySQL.
type AsyncMessagePublisher interface {
	Publish(ctx context.Context, msg model.Message) error
}

type HistoryCache interface {
	GetHistory(ctx context.Context, chatID uint) ([]model.Message, bool, error)
	SetHistory(ctx context.Context, chatID uint, messages []model.Message) error
	DeleteHistory(ctx context.Context, chatID uint) error
	MarkDirty(ctx context.Context, chatID uint) error
	IsDirty(ctx context.Context, chatID uint) (bool, error)
}

type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) error
	PresignGet(ctx context.Context, key string, expires time.Duration) (string, error)
}
