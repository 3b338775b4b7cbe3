// Package storage defines the Storage interface, the contract every
// database backend satisfies to work with this application.
//
// The service layer depends only on this interface, so the backend is
// picked once in main.go (sqlite, postgres or memory) and tests can hand
// the service an in-memory store.
package storage

import (
	"context"
	"errors"

	"github.com/aanand-mishra/school-api/internal/types"
)

// ErrNotFound is returned by FindByID when no row has the given id.
var ErrNotFound = errors.New("storage: student not found")

// Storage is the id-keyed record store behind the student service.
type Storage interface {
	// FindByID returns the student with the given id, or ErrNotFound.
	FindByID(ctx context.Context, id string) (types.Student, error)

	// FindAll returns every student in insertion order.
	// Returns an empty slice (not nil) if there are none.
	FindAll(ctx context.Context) ([]types.Student, error)

	// Save inserts the student, or overwrites name and active if a row
	// with the same id already exists.
	Save(ctx context.Context, student types.Student) (types.Student, error)

	// Delete removes the student's row. Deleting a missing row is not an
	// error at this level; the service checks existence first.
	Delete(ctx context.Context, student types.Student) error

	// Close releases the underlying connection pool.
	Close() error
}
