// Package filestore provides per-record JSON file persistence for UserHub.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/yndnr/userhub-go/pkg/crypto/adaptive"
)

const fileExtension = ".json"

var (
	// ErrExists indicates an exclusive create hit an occupied key.
	ErrExists = errors.New("filestore: record already exists")

	// ErrNotFound indicates the record does not exist or could not be read.
	ErrNotFound = errors.New("filestore: record not found")

	// ErrInvalidName indicates a collection or key that cannot form a file name.
	ErrInvalidName = errors.New("filestore: invalid collection or key")
)

// Config configures the store.
type Config struct {
	// BaseDir is the root of the data directory tree.
	BaseDir string

	// Collections are created under BaseDir at startup.
	Collections []string

	// Cipher, when non-nil, seals documents at rest.
	Cipher adaptive.Cipher

	// Logger for store diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// Store persists one JSON document per (collection, key) pair.
type Store struct {
	baseDir string
	cipher  adaptive.Cipher
	logger  *slog.Logger
}

// New creates a store rooted at cfg.BaseDir and ensures the collection
// directories exist.
func New(cfg Config) (*Store, error) {
	if cfg.BaseDir == "" {
		return nil, fmt.Errorf("filestore: base dir is required")
	}
	if err := os.MkdirAll(cfg.BaseDir, 0750); err != nil {
		return nil, fmt.Errorf("filestore: create base dir: %w", err)
	}
	for _, c := range cfg.Collections {
		if !validName(c) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidName, c)
		}
		if err := os.MkdirAll(filepath.Join(cfg.BaseDir, c), 0750); err != nil {
			return nil, fmt.Errorf("filestore: create collection dir %s: %w", c, err)
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		baseDir: cfg.BaseDir,
		cipher:  cfg.Cipher,
		logger:  logger,
	}, nil
}

// Create persists a new document at (collection, key).
//
// Create has exclusive semantics: it fails with ErrExists if a document
// already occupies the key, and never overwrites silently.
func (s *Store) Create(collection, key string, doc any) error {
	path, err := s.recordPath(collection, key)
	if err != nil {
		return err
	}

	data, err := s.seal(collection, key, doc)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0640)
	if err != nil {
		if os.IsExist(err) {
			return ErrExists
		}
		return fmt.Errorf("filestore: create %s/%s: %w", collection, key, err)
	}

	if err := writeAndClose(f, data); err != nil {
		return fmt.Errorf("filestore: write %s/%s: %w", collection, key, err)
	}
	return nil
}

// Read loads the document at (collection, key) into out, which must be a
// non-nil pointer.
//
// A missing or unreadable file yields ErrNotFound. Stored content that
// fails to deserialize is not an error: out is left as an empty document,
// mirroring the permissive parse contract used for inbound payloads.
func (s *Store) Read(collection, key string, out any) error {
	path, err := s.recordPath(collection, key)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ErrNotFound
	}

	data, ok := s.open(collection, key, data)
	if !ok {
		// Undecryptable content is treated like malformed content.
		zero(out)
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		s.logger.Warn("malformed stored document",
			"collection", collection,
			"key", key,
			"error", err)
		zero(out)
	}
	return nil
}

// Update replaces the document at (collection, key) with doc.
//
// The key must already hold a document; Update fails with ErrNotFound
// otherwise. The previous content is replaced entirely (truncate then
// write); merging partial updates is the caller's responsibility.
func (s *Store) Update(collection, key string, doc any) error {
	path, err := s.recordPath(collection, key)
	if err != nil {
		return err
	}

	data, err := s.seal(collection, key, doc)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0640)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("filestore: open %s/%s for update: %w", collection, key, err)
	}

	if err := writeAndClose(f, data); err != nil {
		return fmt.Errorf("filestore: update %s/%s: %w", collection, key, err)
	}
	return nil
}

// Delete removes the document at (collection, key).
//
// Delete fails with ErrNotFound if no document occupies the key.
func (s *Store) Delete(collection, key string) error {
	path, err := s.recordPath(collection, key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("filestore: delete %s/%s: %w", collection, key, err)
	}
	return nil
}

// recordPath builds the file path for (collection, key) after validating
// that neither can escape the data directory.
func (s *Store) recordPath(collection, key string) (string, error) {
	if !validName(collection) || !validName(key) {
		return "", fmt.Errorf("%w: %q/%q", ErrInvalidName, collection, key)
	}
	return filepath.Join(s.baseDir, collection, key+fileExtension), nil
}

func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, "/\\")
}

func writeAndClose(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// seal marshals doc and, when a cipher is configured, encrypts it bound to
// its record path.
func (s *Store) seal(collection, key string, doc any) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("filestore: marshal %s/%s: %w", collection, key, err)
	}
	if s.cipher != nil {
		data, err = s.cipher.Encrypt(data, additionalData(collection, key))
		if err != nil {
			return nil, fmt.Errorf("filestore: encrypt %s/%s: %w", collection, key, err)
		}
	}
	return data, nil
}

// open reverses seal. The boolean is false when configured decryption fails.
func (s *Store) open(collection, key string, data []byte) ([]byte, bool) {
	if s.cipher == nil {
		return data, true
	}
	plain, err := s.cipher.Decrypt(data, additionalData(collection, key))
	if err != nil {
		s.logger.Warn("undecryptable stored document",
			"collection", collection,
			"key", key,
			"error", err)
		return nil, false
	}
	return plain, true
}

func additionalData(collection, key string) []byte {
	return []byte(collection + "/" + key)
}

// zero resets a pointer target to its empty value.
func zero(out any) {
	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return
	}
	v.Elem().Set(reflect.Zero(v.Elem().Type()))
}
