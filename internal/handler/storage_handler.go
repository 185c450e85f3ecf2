package handler

import (
	"net/http"

	"github.com/bukukas/bukukas-backend/internal/middleware"
	"github.com/bukukas/bukukas-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// StorageHandler handles cloud storage reference HTTP requests
type StorageHandler struct {
	storageService *service.StorageService
}

// NewStorageHandler creates a new StorageHandler
func NewStorageHandler(storageService *service.StorageService) *StorageHandler {
	return &StorageHandler{storageService: storageService}
}

// SaveReferenceRequest represents the save reference request body
type SaveReferenceRequest struct {
	FileType   string         `json:"fileType"`
	StorageURL string         `json:"storageUrl"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// PresignUploadRequest represents the presign upload request body
type PresignUploadRequest struct {
	FileType    string `json:"fileType"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
}

// SaveReference handles POST /accounts/:accountId/storage/references
func (h *StorageHandler) SaveReference(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	accountID := parseAccountID(c)
	if accountID == 0 {
		return NewValidationError(c, "Invalid account ID", nil)
	}

	var req SaveReferenceRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	ref, err := h.storageService.SaveReference(userID, accountID, service.SaveReferenceInput{
		FileType:   req.FileType,
		StorageURL: req.StorageURL,
		Metadata:   req.Metadata,
	})
	if err != nil {
		return NewDomainError(c, err)
	}

	return c.JSON(http.StatusCreated, ref)
}

// PresignUpload handles POST /accounts/:accountId/storage/presign
func (h *StorageHandler) PresignUpload(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	accountID := parseAccountID(c)
	if accountID == 0 {
		return NewValidationError(c, "Invalid account ID", nil)
	}

	var req PresignUploadRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	result, err := h.storageService.PresignUpload(userID, accountID, req.FileType, req.FileName, req.ContentType)
	if err != nil {
		return NewDomainError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
