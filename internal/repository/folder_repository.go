package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"studydesk/internal/model"
)

type FolderRepository struct {
	db *gorm.DB
}

func NewFolderRepository(db *gorm.DB) *FolderRepository {
	return &FolderRepository{db: db}
}

func (r *FolderRepository) Create(folder *model.Folder) error {
	if err := r.db.Create(folder).Error; err != nil {
		return fmt.Errorf("create folder failed: %w", err)
	}
	return nil
}

func (r *FolderRepository) ListByUserID(userID uint) ([]model.Folder, error) {
	var folders []model.Folder
	if err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&folders).Error; err != nil {
		return nil, fmt.Errorf("list folders failed: %w", err)
	}
	return folders, nil
}

func (r *FolderRepository) GetByIDAndUserID(folderID, userID uint) (*model.Folder, error) {
	var folder model.Folder
	if err := r.db.Where("id = ? AND user_id = ?", folderID, userID).First(&folder).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get folder failed: %w", err)
	}
	return &folder, nil
}
