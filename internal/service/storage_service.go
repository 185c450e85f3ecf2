package service

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/bukukas/bukukas-backend/internal/domain"
	"github.com/bukukas/bukukas-backend/internal/repository/storage"
	"github.com/google/uuid"
)

// presignExpiry bounds how long a client has to complete an upload
const presignExpiry = 15 * time.Minute

// StorageService records references to files clients upload directly to
// cloud storage
type StorageService struct {
	accountRepo domain.AccountRepository
	refRepo     domain.StorageRefRepository
	receipts    storage.ReceiptStore
}

// NewStorageService creates a new StorageService
func NewStorageService(accountRepo domain.AccountRepository, refRepo domain.StorageRefRepository, receipts storage.ReceiptStore) *StorageService {
	return &StorageService{accountRepo: accountRepo, refRepo: refRepo, receipts: receipts}
}

// SaveReferenceInput is the payload for recording an uploaded file
type SaveReferenceInput struct {
	FileType   string
	StorageURL string
	Metadata   map[string]any
}

// SaveReference records that a file now lives at the given storage URL
func (s *StorageService) SaveReference(userID uuid.UUID, accountID int32, input SaveReferenceInput) (*domain.StorageRef, error) {
	if _, err := assertOwnership(s.accountRepo, accountID, userID); err != nil {
		return nil, err
	}

	fileType := strings.TrimSpace(input.FileType)
	if fileType == "" {
		return nil, domain.Validation("fileType is required")
	}
	storageURL := strings.TrimSpace(input.StorageURL)
	if storageURL == "" {
		return nil, domain.Validation("storageUrl is required")
	}

	ref := &domain.StorageRef{
		AccountID:  accountID,
		FileType:   fileType,
		StorageURL: storageURL,
		Metadata:   input.Metadata,
	}
	if err := s.refRepo.Save(ref); err != nil {
		return nil, err
	}
	return ref, nil
}

// PresignResult carries both the temporary upload URL and the permanent
// object URL the client should save a reference for afterwards
type PresignResult struct {
	UploadURL  string `json:"uploadUrl"`
	StorageURL string `json:"storageUrl"`
	ObjectPath string `json:"objectPath"`
	ExpiresIn  int64  `json:"expiresIn"`
}

// PresignUpload hands out a short-lived URL for a direct client upload
func (s *StorageService) PresignUpload(userID uuid.UUID, accountID int32, fileType, fileName, contentType string) (*PresignResult, error) {
	if _, err := assertOwnership(s.accountRepo, accountID, userID); err != nil {
		return nil, err
	}
	if s.receipts == nil {
		return nil, domain.Storage(errors.New("receipt store not configured"))
	}

	fileType = strings.TrimSpace(fileType)
	if fileType == "" {
		return nil, domain.Validation("fileType is required")
	}
	if strings.TrimSpace(contentType) == "" {
		return nil, domain.Validation("contentType is required")
	}

	objectPath := storage.GenerateObjectPath(accountID, fileType, filepath.Ext(fileName))

	ctx := context.Background()
	uploadURL, err := s.receipts.PresignUpload(ctx, objectPath, contentType, presignExpiry)
	if err != nil {
		return nil, domain.Storage(err)
	}

	return &PresignResult{
		UploadURL:  uploadURL,
		StorageURL: s.receipts.ObjectURL(objectPath),
		ObjectPath: objectPath,
		ExpiresIn:  int64(presignExpiry.Seconds()),
	}, nil
}
