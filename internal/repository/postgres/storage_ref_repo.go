package postgres

import (
	"context"
	"encoding/json"

	"github.com/bukukas/bukukas-backend/internal/domain"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StorageRefRepository implements domain.StorageRefRepository using PostgreSQL
type StorageRefRepository struct {
	pool *pgxpool.Pool
}

// NewStorageRefRepository creates a new StorageRefRepository
func NewStorageRefRepository(pool *pgxpool.Pool) *StorageRefRepository {
	return &StorageRefRepository{pool: pool}
}

// Save persists a cloud storage reference for an account
func (r *StorageRefRepository) Save(ref *domain.StorageRef) error {
	ctx := context.Background()

	var metadata []byte
	if ref.Metadata != nil {
		var err error
		metadata, err = json.Marshal(ref.Metadata)
		if err != nil {
			return domain.Storage(err)
		}
	}

	var createdAt pgtype.Timestamptz
	err := r.pool.QueryRow(ctx,
		`INSERT INTO cloud_storage_refs (account_id, file_type, storage_url, metadata)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		ref.AccountID, ref.FileType, ref.StorageURL, metadata,
	).Scan(&ref.ID, &createdAt)
	if err != nil {
		return domain.Storage(err)
	}
	ref.CreatedAt = createdAt.Time
	return nil
}
