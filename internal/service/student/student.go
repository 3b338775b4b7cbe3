// Package student holds the business rules for the Student resource:
// existence checks before mutation, the active-only listing, and the
// partial-update merge. It keeps no state between calls; everything
// lives in the storage.Storage it is constructed with.
package student

import (
	"context"
	"errors"
	"fmt"

	"github.com/aanand-mishra/school-api/internal/storage"
	"github.com/aanand-mishra/school-api/internal/types"
)

var (
	// ErrAlreadyExists is returned when creating a student whose id is
	// already stored.
	ErrAlreadyExists = errors.New("student already exists")

	// ErrNotFound is returned when an operation addresses an unknown id.
	ErrNotFound = errors.New("student not found")
)

// Service implements the student operations on top of a storage.Storage.
type Service struct {
	store storage.Storage
}

// New returns a Service backed by store.
func New(store storage.Storage) *Service {
	return &Service{store: store}
}

// CreateStudent stores s unchanged and returns its id.
func (s *Service) CreateStudent(ctx context.Context, student types.Student) (string, error) {
	_, err := s.find(ctx, student.ID)
	switch {
	case err == nil:
		return "", ErrAlreadyExists
	case !errors.Is(err, ErrNotFound):
		return "", err
	}

	saved, err := s.store.Save(ctx, student)
	if err != nil {
		return "", fmt.Errorf("create student %s: %w", student.ID, err)
	}
	return saved.ID, nil
}

// UpdateStudent overwrites name and active of the stored student.
// The id is never changed.
func (s *Service) UpdateStudent(ctx context.Context, id string, patch types.StudentPatch) error {
	existing, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if _, err := s.store.Save(ctx, existing.Apply(patch)); err != nil {
		return fmt.Errorf("update student %s: %w", id, err)
	}
	return nil
}

// ListActiveStudents returns the active students in storage order.
func (s *Service) ListActiveStudents(ctx context.Context) ([]types.Student, error) {
	all, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	active := make([]types.Student, 0, len(all))
	for _, st := range all {
		if st.Active {
			active = append(active, st)
		}
	}
	return active, nil
}

// GetStudent returns the student with the given id whether or not it is
// active.
func (s *Service) GetStudent(ctx context.Context, id string) (types.Student, error) {
	return s.find(ctx, id)
}

// DeleteStudent removes the student with the given id.
func (s *Service) DeleteStudent(ctx context.Context, id string) error {
	existing, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, existing); err != nil {
		return fmt.Errorf("delete student %s: %w", id, err)
	}
	return nil
}

// find maps storage.ErrNotFound to ErrNotFound and wraps anything else.
func (s *Service) find(ctx context.Context, id string) (types.Student, error) {
	st, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.Student{}, ErrNotFound
		}
		return types.Student{}, fmt.Errorf("find student %s: %w", id, err)
	}
	return st, nil
}
