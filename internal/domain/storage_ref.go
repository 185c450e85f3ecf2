package domain

import "time"

// StorageRef records where a client-uploaded file lives in cloud storage.
// The API never handles file bytes, only references.
type StorageRef struct {
	ID         int64          `json:"id"`
	AccountID  int32          `json:"accountId"`
	FileType   string         `json:"fileType"`
	StorageURL string         `json:"storageUrl"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

type StorageRefRepository interface {
	Save(ref *StorageRef) error
}
