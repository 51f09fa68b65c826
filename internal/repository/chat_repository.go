package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"studydesk/internal/model"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) Create(chat *model.Chat) error {
	if err := r.db.Create(chat).Error; err != nil {
		return fmt.Errorf("create chat failed: %w", err)
	}
	return nil
}

func (r *ChatRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Chat{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count chats failed: %w", err)
	}
	return count, nil
}

func (r *ChatRepository) ListByUserID(userID uint) ([]model.Chat, error) {
	var chats []model.Chat
	if err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&chats).Error; err != nil {
		return nil, fmt.Errorf("list chats failed: %w", err)
	}
	return chats, nil
}

func (r *ChatRepository) ListByUserIDAndFolderID(userID, folderID uint) ([]model.Chat, error) {
	var chats []model.Chat
	if err := r.db.Where("user_id = ? AND folder_id = ?", userID, folderID).Order("id ASC").Find(&chats).Error; err != nil {
		return nil, fmt.Errorf("list chats by folder failed: %w", err)
	}
	return chats, nil
}

func (r *ChatRepository) GetByIDAndUserID(chatID, userID uint) (*model.Chat, error) {
	var chat model.Chat
	if err := r.db.Where("id = ? AND user_id = ?", chatID, userID).First(&chat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get chat failed: %w", err)
	}
	return &chat, nil
}

func (r *ChatRepository) Rename(chatID, userID uint, title string) error {
	err := r.db.Model(&model.Chat{}).
		Where("id = ? AND user_id = ?", chatID, userID).
		Updates(map[string]interface{}{"title": title, "updated_at": time.Now()}).Error
	if err != nil {
		return fmt.Errorf("rename chat failed: %w", err)
	}
	return nil
}

// Touch advances UpdatedAt; called whenever the chat's message list changes.
func (r *ChatRepository) Touch(chatID uint) error {
	err := r.db.Model(&model.Chat{}).
		Where("id = ?", chatID).
		Update("updated_at", time.Now()).Error
	if err != nil {
		return fmt.Errorf("touch chat failed: %w", err)
	}
	return nil
}

func (r *ChatRepository) DeleteByIDAndUserID(chatID, userID uint) error {
	if err := r.db.Where("id = ? AND user_id = ?", chatID, userID).Delete(&model.Chat{}).Error; err != nil {
		return fmt.Errorf("delete chat failed: %w", err)
	}
	return nil
}
