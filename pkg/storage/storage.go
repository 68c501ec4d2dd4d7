// Package storage persists named blobs — most importantly the session
// snapshots the cart store writes on every mutation.
//
// Three drivers are available:
//   - "memory" — in-process map, used by tests
//   - "local"  — local filesystem (default)
//   - "s3"     — S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//
// Quick start:
//
//	storage.Connect()
//	storage.Put("sessions/abc.json", data)
//	data, err := storage.Get("sessions/abc.json")
package storage

import (
	"errors"
)

// ErrNotFound is returned by Get for a blob that does not exist.
var ErrNotFound = errors.New("storage: blob not found")

// Blobs is the driver interface: a flat namespace of named byte blobs.
type Blobs interface {
	// Put writes content under name, replacing any existing blob.
	Put(name string, content []byte) error

	// Get returns the blob's content, or ErrNotFound.
	Get(name string) ([]byte, error)

	// Exists reports whether a blob exists under name.
	Exists(name string) bool

	// Delete removes a blob. Deleting an absent blob is not an error.
	Delete(name string) error

	// List returns the names of all blobs under prefix.
	List(prefix string) ([]string, error)
}
