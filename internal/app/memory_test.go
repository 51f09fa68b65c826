package app

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"studydesk/internal/model"
)

// In-memory store fakes backing the service tests.

type memUserStore struct {
	mu     sync.Mutex
	nextID uint
	users  []model.User
}

func newMemUserStore() *memUserStore { return &memUserStore{nextID: 1} }

func (s *memUserStore) Create(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = s.nextID
	s.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	s.users = append(s.users, *user)
	return nil
}

func (s *memUserStore) GetByEmail(email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (s *memUserStore) GetByID(id uint) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (s *memUserStore) Update(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == user.ID {
			user.UpdatedAt = time.Now()
			s.users[i] = *user
			return nil
		}
	}
	return nil
}

func (s *memUserStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

type memFolderStore struct {
	mu      sync.Mutex
	nextID  uint
	folders []model.Folder
}

func newMemFolderStore() *memFolderStore { return &memFolderStore{nextID: 1} }

func (s *memFolderStore) Create(folder *model.Folder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	folder.ID = s.nextID
	s.nextID++
	folder.CreatedAt = time.Now()
	s.folders = append(s.folders, *folder)
	return nil
}

func (s *memFolderStore) ListByUserID(userID uint) ([]model.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Folder
	for _, f := range s.folders {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *memFolderStore) GetByIDAndUserID(folderID, userID uint) (*model.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.folders {
		if s.folders[i].ID == folderID && s.folders[i].UserID == userID {
			f := s.folders[i]
			return &f, nil
		}
	}
	return nil, nil
}

type memDocumentStore struct {
	mu     sync.Mutex
	nextID uint
	docs   []model.Document
}

func newMemDocumentStore() *memDocumentStore { return &memDocumentStore{nextID: 1} }

func (s *memDocumentStore) Create(doc *model.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc.ID = s.nextID
	s.nextID++
	doc.CreatedAt = time.Now()
	s.docs = append(s.docs, *doc)
	return nil
}

func (s *memDocumentStore) ListByUserID(userID uint) ([]model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Document
	for _, d := range s.docs {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *memDocumentStore) GetByIDAndUserID(documentID, userID uint) (*model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.docs {
		if s.docs[i].ID == documentID && s.docs[i].UserID == userID {
			d := s.docs[i]
			return &d, nil
		}
	}
	return nil, nil
}

type memChatStore struct {
	mu     sync.Mutex
	nextID uint
	chats  []model.Chat
}

func newMemChatStore() *memChatStore { return &memChatStore{nextID: 1} }

func (s *memChatStore) Create(chat *model.Chat) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	chat.ID = s.nextID
	s.nextID++
	chat.CreatedAt = time.Now()
	chat.UpdatedAt = chat.CreatedAt
	s.chats = append(s.chats, *chat)
	return nil
}

func (s *memChatStore) CountByUserID(userID uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, c := range s.chats {
		if c.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (s *memChatStore) ListByUserID(userID uint) ([]model.Chat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Chat
	for _, c := range s.chats {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *memChatStore) ListByUserIDAndFolderID(userID, folderID uint) ([]model.Chat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Chat
	for _, c := range s.chats {
		if c.UserID == userID && c.FolderID == folderID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *memChatStore) GetByIDAndUserID(chatID, userID uint) (*model.Chat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.chats {
		if s.chats[i].ID == chatID && s.chats[i].UserID == userID {
			c := s.chats[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (s *memChatStore) Rename(chatID, userID uint, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.chats {
		if s.chats[i].ID == chatID && s.chats[i].UserID == userID {
			s.chats[i].Title = title
			s.chats[i].UpdatedAt = time.Now()
		}
	}
	return nil
}

func (s *memChatStore) Touch(chatID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.chats {
		if s.chats[i].ID == chatID {
			s.chats[i].UpdatedAt = time.Now()
		}
	}
	return nil
}

func (s *memChatStore) DeleteByIDAndUserID(chatID, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.chats[:0]
	for _, c := range s.chats {
		if !(c.ID == chatID && c.UserID == userID) {
			kept = append(kept, c)
		}
	}
	s.chats = kept
	return nil
}

// memMessageStore doubles as the publisher target: the sync publisher
// below writes straight into it, standing in for queue plus worker.
type memMessageStore struct {
	mu       sync.Mutex
	nextID   uint
	messages []model.Message
}

func newMemMessageStore() *memMessageStore { return &memMessageStore{nextID: 1} }

func (s *memMessageStore) append(msg model.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg.ID = s.nextID
	s.nextID++
	s.messages = append(s.messages, msg)
}

func (s *memMessageStore) ListByChatID(chatID uint, limit int) ([]model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Message
	for _, m := range s.messages {
		if m.ChatID == chatID {
			out = append(out, m)
		}
	}
	if limit > 0 && limit < len(out) {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (s *memMessageStore) DeleteByChatID(chatID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.messages[:0]
	for _, m := range s.messages {
		if m.ChatID != chatID {
			kept = append(kept, m)
		}
	}
	s.messages = kept
	return nil
}

func (s *memMessageStore) countByChatID(chatID uint) int {
	out, _ := s.ListByChatID(chatID, 0)
	return len(out)
}

type syncPublisher struct {
	store *memMessageStore
}

func (p *syncPublisher) Publish(_ context.Context, msg model.Message) error {
	p.store.append(msg)
	return nil
}

type memObjectStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemObjectStore() *memObjectStore {
	return &memObjectStore{objects: make(map[string][]byte)}
}

func (s *memObjectStore) Put(_ context.Context, key, _ string, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.objects[key] = data
	s.mu.Unlock()
	return nil
}

func (s *memObjectStore) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://objects.test/" + strings.TrimPrefix(key, "/"), nil
}
