package app

import "errors"

// Every service operation fails with one of these sentinels (possibly
// wrapped); handlers map them to HTTP codes with errors.Is.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrEmailExists       = errors.New("email already in use")
	ErrInvalidCredential = errors.New("invalid email or password")
	ErrUserNotFound      = errors.New("user not found")
	ErrFolderNotFound    = errors.New("folder not found")
	ErrDocumentNotFound  = errors.New("document not found")
	ErrChatNotFound      = errors.New("chat not found")
	ErrNoCurrentChat     = errors.New("no chat selected")
	ErrMessageEmpty      = errors.New("message content is empty")
	ErrMessageEnqueue    = errors.New("message enqueue failed")
	ErrUnsupportedFile   = errors.New("unsupported file type")
	ErrFileTooLarge      = errors.New("file too large")
)
