package response

import "github.com/gin-gonic/gin"

const (
	CodeOK                 = 0
	CodeBadRequest         = 40000
	CodeEmailExists        = 40001
	CodeUnsupportedFile    = 40002
	CodeFileTooLarge       = 40003
	CodeNoCurrentChat      = 40004
	CodeUnauthorized       = 40100
	CodeInvalidCredentials = 40101
	CodeChatNotFound       = 40401
	CodeFolderNotFound     = 40402
	CodeDocumentNotFound   = 40403
	CodeInternalServer     = 50000
)

type APIResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(200, APIResponse{
		Code:    CodeOK,
		Message: "ok",
		Data:    data,
	})
}

func Error(c *gin.Context, httpStatus, code int, message string) {
	c.JSON(httpStatus, APIResponse{
		Code:    code,
		Message: message,
	})
}
