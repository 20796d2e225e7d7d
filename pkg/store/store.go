// Package store persists saved forests for the HTTP server.
//
// A saved forest keeps the raw notation text, not the parsed tree: the
// parser is cheap and deterministic, so re-parsing on read is simpler
// than versioning a serialized structure. Two backends are provided:
//
//   - memory: in-process map, for development and tests
//   - mongo: MongoDB collection, for multi-instance deployments
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a forest does not exist.
	ErrNotFound = errors.New("forest not found")

	// ErrEmptyNotation is returned by [New] for blank notation text.
	ErrEmptyNotation = errors.New("notation must not be empty")
)

// Forest is a saved notation document.
type Forest struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name,omitempty" bson:"name,omitempty"`
	Notation  string    `json:"notation" bson:"notation"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Store is the interface for forest persistence backends.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get retrieves a forest by ID. Returns ErrNotFound if absent.
	Get(ctx context.Context, id string) (*Forest, error)

	// Put stores a forest, replacing any existing document with the same ID.
	Put(ctx context.Context, f *Forest) error

	// Delete removes a forest. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id string) error

	// List returns all forests ordered by creation time, newest first.
	List(ctx context.Context) ([]*Forest, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// New creates a forest document with a fresh ID and creation time.
func New(name, notation string) (*Forest, error) {
	if notation == "" {
		return nil, ErrEmptyNotation
	}
	return &Forest{
		ID:        uuid.NewString(),
		Name:      name,
		Notation:  notation,
		CreatedAt: time.Now().UTC(),
	}, nil
}
