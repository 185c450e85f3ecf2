package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/bukukas/bukukas-backend/internal/domain"
	"github.com/bukukas/bukukas-backend/internal/service"
	"github.com/bukukas/bukukas-backend/internal/testutil"
	"github.com/labstack/echo/v4"
)

type stubReceiptStore struct{}

func (s *stubReceiptStore) PresignUpload(ctx context.Context, objectPath, contentType string, expiry time.Duration) (string, error) {
	return "https://upload.example.com/" + objectPath, nil
}

func (s *stubReceiptStore) ObjectURL(objectPath string) string {
	return "https://files.example.com/" + objectPath
}

func TestSaveReference_Created(t *testing.T) {
	e := echo.New()
	f := newAccountFixture(t)
	refs := testutil.NewMockStorageRefRepository()
	handler := NewStorageHandler(service.NewStorageService(f.accounts, refs, &stubReceiptStore{}))

	body := `{"fileType": "receipt", "storageUrl": "https://files.example.com/1/receipt/abc.jpg", "metadata": {"size": 1024}}`
	c, rec := newAccountRequest(e, http.MethodPost, "/api/v1/accounts/1/storage/references", body, f.account.ID)
	setupAuthContext(c, f.userID, "")

	if err := handler.SaveReference(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var response domain.StorageRef
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.ID == 0 {
		t.Error("Expected reference ID to be assigned")
	}
	if response.FileType != "receipt" {
		t.Errorf("Expected file type 'receipt', got %s", response.FileType)
	}
}

func TestSaveReference_MissingURL(t *testing.T) {
	e := echo.New()
	f := newAccountFixture(t)
	refs := testutil.NewMockStorageRefRepository()
	handler := NewStorageHandler(service.NewStorageService(f.accounts, refs, &stubReceiptStore{}))

	body := `{"fileType": "receipt"}`
	c, rec := newAccountRequest(e, http.MethodPost, "/api/v1/accounts/1/storage/references", body, f.account.ID)
	setupAuthContext(c, f.userID, "")

	if err := handler.SaveReference(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestPresignUpload_Success(t *testing.T) {
	e := echo.New()
	f := newAccountFixture(t)
	refs := testutil.NewMockStorageRefRepository()
	handler := NewStorageHandler(service.NewStorageService(f.accounts, refs, &stubReceiptStore{}))

	body := `{"fileType": "receipt", "fileName": "photo.jpg", "contentType": "image/jpeg"}`
	c, rec := newAccountRequest(e, http.MethodPost, "/api/v1/accounts/1/storage/presign", body, f.account.ID)
	setupAuthContext(c, f.userID, "")

	if err := handler.PresignUpload(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response service.PresignResult
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.UploadURL == "" || response.StorageURL == "" {
		t.Errorf("Expected both upload and storage URLs, got %+v", response)
	}
}
