// Package service provides domain services for UserHub.
package service

// Record collections used by the services.
const (
	CollectionUsers  = "users"
	CollectionTokens = "tokens"
)

// RecordStore defines the persistence interface for domain records.
// It is satisfied by storage/filestore.
type RecordStore interface {
	// Create persists a new document; it fails if the key is occupied.
	Create(collection, key string, doc any) error

	// Read loads the document at key into out. Content that cannot be
	// parsed yields an empty document, not an error.
	Read(collection, key string, out any) error

	// Update replaces the document at an existing key.
	Update(collection, key string, doc any) error

	// Delete removes the document at key.
	Delete(collection, key string) error
}
