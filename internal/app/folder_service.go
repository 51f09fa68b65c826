package app

import (
	"strings"

	"studydesk/internal/model"
)

type FolderService struct {
	folderRepo FolderStore
}

func NewFolderService(folderRepo FolderStore) *FolderService {
	return &FolderService{folderRepo: folderRepo}
}

func (s *FolderService) Create(userID uint, name string) (*model.Folder, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	folder := &model.Folder{UserID: userID, Name: name}
	if err := s.folderRepo.Create(folder); err != nil {
		return nil, err
	}
	return folder, nil
}

func (s *FolderService) List(userID uint) ([]model.Folder, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.folderRepo.ListByUserID(userID)
}
