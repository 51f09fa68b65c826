package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studydesk/internal/app"
	"studydesk/internal/transport/http/response"
)

type FolderHandler struct {
	folderService *app.FolderService
}

type CreateFolderRequest struct {
	Name string `json:"name" binding:"required,min=1,max=128"`
}

func NewFolderHandler(folderService *app.FolderService) *FolderHandler {
	return &FolderHandler{folderService: folderService}
}

func (h *FolderHandler) Create(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	var req CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	folder, err := h.folderService.Create(userID, req.Name)
	if err != nil {
		if errors.Is(err, app.ErrInvalidInput) {
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		} else {
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "create folder failed")
		}
		return
	}

	response.OK(c, folder)
}

func (h *FolderHandler) List(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	folders, err := h.folderService.List(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list folders failed")
		return
	}

	response.OK(c, folders)
}
