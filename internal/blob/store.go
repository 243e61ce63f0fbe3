package blob

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Store archives raw uploaded bytes
type Store interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// DocumentKey is the object key of a document's original bytes
func DocumentKey(orgID, documentID uuid.UUID) string {
	return fmt.Sprintf("organizations/%s/documents/%s", orgID, documentID)
}

// NopStore discards everything; used when no object storage is configured
type NopStore struct{}

func (NopStore) Put(context.Context, string, string, []byte) error { return nil }
func (NopStore) Delete(context.Context, string) error               { return nil }
