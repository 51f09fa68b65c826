package app

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"studydesk/internal/model"
	"studydesk/internal/pkg/pdfextract"
)

type DocumentService struct {
	docRepo  DocumentStore
	objects  ObjectStore
	maxBytes int64
}

type UploadInput struct {
	UserID   uint
	Filename string
	Data     []byte
}

func NewDocumentService(docRepo DocumentStore, objects ObjectStore, maxBytes int64) *DocumentService {
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	return &DocumentService{
		docRepo:  docRepo,
		objects:  objects,
		maxBytes: maxBytes,
	}
}

// Upload rejects non-PDF input before any processing, extracts the plain
// text, stores the original bytes in the object store and persists the
// document record. The document is not attached to any chat.
func (s *DocumentService) Upload(ctx context.Context, input UploadInput) (*model.Document, error) {
	if input.UserID == 0 || strings.TrimSpace(input.Filename) == "" {
		return nil, ErrInvalidInput
	}
	if int64(len(input.Data)) > s.maxBytes {
		return nil, ErrFileTooLarge
	}
	if !strings.EqualFold(filepath.Ext(input.Filename), ".pdf") || !pdfextract.IsPDF(input.Data) {
		return nil, ErrUnsupportedFile
	}

	text, err := pdfextract.ExtractText(input.Data)
	if err != nil {
		return nil, ErrUnsupportedFile
	}

	key := "documents/" + uuid.New().String() + ".pdf"
	if err := s.objects.Put(ctx, key, "application/pdf", bytes.NewReader(input.Data)); err != nil {
		return nil, err
	}

	doc := &model.Document{
		UserID:    input.UserID,
		Name:      filepath.Base(input.Filename),
		Size:      int64(len(input.Data)),
		ObjectKey: key,
		Content:   text,
	}
	if err := s.docRepo.Create(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *DocumentService) List(userID uint) ([]model.Document, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.docRepo.ListByUserID(userID)
}

func (s *DocumentService) GetByID(userID, documentID uint) (*model.Document, error) {
	if userID == 0 || documentID == 0 {
		return nil, ErrInvalidInput
	}
	doc, err := s.docRepo.GetByIDAndUserID(documentID, userID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrDocumentNotFound
	}
	return doc, nil
}

// DownloadURL returns a presigned link to the original PDF.
func (s *DocumentService) DownloadURL(ctx context.Context, userID, documentID uint, expires time.Duration) (string, error) {
	doc, err := s.GetByID(userID, documentID)
	if err != nil {
		return "", err
	}
	return s.objects.PresignGet(ctx, doc.ObjectKey, expires)
}
