package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"studydesk/internal/assistant"
	"studydesk/internal/model"
)

type ChatService struct {
	chatRepo     ChatStore
	messageRepo  MessageStore
	folderRepo   FolderStore
	docRepo      DocumentStore
	publisher    AsyncMessagePublisher
	historyCache HistoryCache
	responder    assistant.Responder
	scheduler    *ReplyScheduler
	replyDelay   time.Duration
	logger       *zap.Logger

	// current chat per user: a transient pointer, deliberately not
	// persisted and lost on restart.
	mu      sync.Mutex
	current map[uint]uint
}

type CreateChatInput struct {
	UserID     uint
	FolderID   uint
	Title      string
	DocumentID uint
}

func NewChatService(
	chatRepo ChatStore,
	messageRepo MessageStore,
	folderRepo FolderStore,
	docRepo DocumentStore,
	publisher AsyncMessagePublisher,
	historyCache HistoryCache,
	responder assistant.Responder,
	replyDelay time.Duration,
	logger *zap.Logger,
) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{
		chatRepo:     chatRepo,
		messageRepo:  messageRepo,
		folderRepo:   folderRepo,
		docRepo:      docRepo,
		publisher:    publisher,
		historyCache: historyCache,
		responder:    responder,
		scheduler:    NewReplyScheduler(),
		replyDelay:   replyDelay,
		logger:       logger,
		current:      make(map[uint]uint),
	}
}

// CreateChat creates a chat in the given folder and makes it the user's
// current chat. The default title is "New Chat N" where N counts the
// user's whole chat set, not the folder.
func (s *ChatService) CreateChat(input CreateChatInput) (*model.Chat, error) {
	if input.UserID == 0 || input.FolderID == 0 {
		return nil, ErrInvalidInput
	}

	folder, err := s.folderRepo.GetByIDAndUserID(input.FolderID, input.UserID)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, ErrFolderNotFound
	}

	if input.DocumentID != 0 {
		doc, err := s.docRepo.GetByIDAndUserID(input.DocumentID, input.UserID)
		if err != nil {
			return nil, err
		}
		if doc == nil {
			return nil, ErrDocumentNotFound
		}
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		count, err := s.chatRepo.CountByUserID(input.UserID)
		if err != nil {
			return nil, err
		}
		title = fmt.Sprintf("New Chat %d", count+1)
	}

	chat := &model.Chat{
		UserID:     input.UserID,
		FolderID:   input.FolderID,
		Title:      title,
		DocumentID: input.DocumentID,
	}
	if err := s.chatRepo.Create(chat); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current[input.UserID] = chat.ID
	s.mu.Unlock()

	return chat, nil
}

// Select makes the chat the user's current one.
func (s *ChatService) Select(userID, chatID uint) (*model.Chat, error) {
	if userID == 0 || chatID == 0 {
		return nil, ErrInvalidInput
	}
	chat, err := s.chatRepo.GetByIDAndUserID(chatID, userID)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, ErrChatNotFound
	}

	s.mu.Lock()
	s.current[userID] = chatID
	s.mu.Unlock()
	return chat, nil
}

// Deselect clears the user's current chat. Also invoked on logout.
func (s *ChatService) Deselect(userID uint) {
	s.mu.Lock()
	delete(s.current, userID)
	s.mu.Unlock()
}

// Current returns the user's current chat, or nil when none is selected.
func (s *ChatService) Current(userID uint) (*model.Chat, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}

	s.mu.Lock()
	chatID := s.current[userID]
	s.mu.Unlock()
	if chatID == 0 {
		return nil, nil
	}

	chat, err := s.chatRepo.GetByIDAndUserID(chatID, userID)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		// the selected chat disappeared; drop the stale pointer
		s.Deselect(userID)
		return nil, nil
	}
	return chat, nil
}

// ListByFolder returns the folder's chats in store order; callers sort by
// last_updated as needed.
func (s *ChatService) ListByFolder(userID, folderID uint) ([]model.Chat, error) {
	if userID == 0 || folderID == 0 {
		return nil, ErrInvalidInput
	}
	folder, err := s.folderRepo.GetByIDAndUserID(folderID, userID)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, ErrFolderNotFound
	}
	return s.chatRepo.ListByUserIDAndFolderID(userID, folderID)
}

func (s *ChatService) List(userID uint) ([]model.Chat, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.chatRepo.ListByUserID(userID)
}

func (s *ChatService) Rename(userID, chatID uint, title string) (*model.Chat, error) {
	if userID == 0 || chatID == 0 {
		return nil, ErrInvalidInput
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrInvalidInput
	}

	chat, err := s.chatRepo.GetByIDAndUserID(chatID, userID)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, ErrChatNotFound
	}

	if err := s.chatRepo.Rename(chatID, userID, title); err != nil {
		return nil, err
	}
	return s.chatRepo.GetByIDAndUserID(chatID, userID)
}

// Delete removes the chat and its messages, cancels any pending assistant
// reply for it, and clears the current-chat pointer iff it referenced the
// deleted chat.
func (s *ChatService) Delete(userID, chatID uint) error {
	if userID == 0 || chatID == 0 {
		return ErrInvalidInput
	}

	chat, err := s.chatRepo.GetByIDAndUserID(chatID, userID)
	if err != nil {
		return err
	}
	if chat == nil {
		return ErrChatNotFound
	}

	s.scheduler.Cancel(chatID)

	if err := s.messageRepo.DeleteByChatID(chatID); err != nil {
		return err
	}
	if err := s.chatRepo.DeleteByIDAndUserID(chatID, userID); err != nil {
		return err
	}

	s.mu.Lock()
	if s.current[userID] == chatID {
		delete(s.current, userID)
	}
	s.mu.Unlock()

	if s.historyCache != nil {
		_ = s.historyCache.DeleteHistory(context.Background(), chatID)
	}
	return nil
}

// SendMessage appends the user's message to the current chat and schedules
// exactly one assistant reply after the configured delay. A newer send to
// the same chat supersedes a still-pending reply.
func (s *ChatService) SendMessage(ctx context.Context, userID uint, content string) (*model.Message, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrMessageEmpty
	}

	s.mu.Lock()
	chatID := s.current[userID]
	s.mu.Unlock()
	if chatID == 0 {
		return nil, ErrNoCurrentChat
	}

	chat, err := s.chatRepo.GetByIDAndUserID(chatID, userID)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		s.Deselect(userID)
		return nil, ErrChatNotFound
	}

	userMessage := &model.Message{
		ChatID:    chat.ID,
		UserID:    userID,
		Role:      model.RoleUser,
		Content:   content,
		Source:    model.SourceNone,
		CreatedAt: time.Now(),
	}

	if s.historyCache != nil {
		_ = s.historyCache.MarkDirty(ctx, chat.ID)
		_ = s.historyCache.DeleteHistory(ctx, chat.ID)
	}
	if err := s.publisher.Publish(ctx, *userMessage); err != nil {
		return nil, ErrMessageEnqueue
	}
	if err := s.chatRepo.Touch(chat.ID); err != nil {
		return nil, err
	}

	s.scheduleReply(chat.ID, userID, chat.DocumentID, content)
	return userMessage, nil
}

func (s *ChatService) scheduleReply(chatID, userID, documentID uint, question string) {
	s.scheduler.Schedule(chatID, s.replyDelay, func(ctx context.Context) {
		var doc *model.Document
		if documentID != 0 {
			loaded, err := s.docRepo.GetByIDAndUserID(documentID, userID)
			if err != nil {
				s.logger.Warn("load chat document failed", zap.Uint("chat_id", chatID), zap.Error(err))
			} else {
				doc = loaded
			}
		}

		reply, err := s.responder.Respond(ctx, question, doc)
		if err != nil {
			if ctx.Err() == nil {
				s.logger.Error("assistant respond failed", zap.Uint("chat_id", chatID), zap.Error(err))
			}
			return
		}

		message := model.Message{
			ChatID:    chatID,
			UserID:    userID,
			Role:      model.RoleAssistant,
			Content:   reply.Content,
			Source:    reply.Source,
			CreatedAt: time.Now(),
		}

		if s.historyCache != nil {
			_ = s.historyCache.MarkDirty(ctx, chatID)
			_ = s.historyCache.DeleteHistory(ctx, chatID)
		}
		if err := s.publisher.Publish(ctx, message); err != nil {
			s.logger.Error("enqueue assistant message failed", zap.Uint("chat_id", chatID), zap.Error(err))
			return
		}
		if err := s.chatRepo.Touch(chatID); err != nil {
			s.logger.Warn("touch chat failed", zap.Uint("chat_id", chatID), zap.Error(err))
		}
	})
}

// History serves the chat's messages, preferring the redis cache when it
// is populated and not marked dirty by in-flight persistence.
func (s *ChatService) History(ctx context.Context, userID, chatID uint, limit int) ([]model.Message, error) {
	if userID == 0 || chatID == 0 {
		return nil, ErrInvalidInput
	}

	chat, err := s.chatRepo.GetByIDAndUserID(chatID, userID)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, ErrChatNotFound
	}

	if s.historyCache != nil {
		dirty, err := s.historyCache.IsDirty(ctx, chatID)
		if err == nil && !dirty {
			if cached, hit, cacheErr := s.historyCache.GetHistory(ctx, chatID); cacheErr == nil && hit {
				return trimMessages(cached, limit), nil
			}
		}
	}

	messages, err := s.messageRepo.ListByChatID(chatID, limit)
	if err != nil {
		return nil, err
	}
	if s.historyCache != nil {
		if dirty, dirtyErr := s.historyCache.IsDirty(ctx, chatID); dirtyErr == nil && !dirty {
			_ = s.historyCache.SetHistory(ctx, chatID, messages)
		}
	}
	return messages, nil
}

// Close cancels pending assistant replies and waits for running ones.
func (s *ChatService) Close() {
	s.scheduler.Close()
}

func trimMessages(messages []model.Message, limit int) []model.Message {
	if limit <= 0 || limit >= len(messages) {
		return messages
	}
	return messages[len(messages)-limit:]
}
