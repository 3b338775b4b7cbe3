// Package memory provides an in-process implementation of
// storage.Storage. Rows are kept in insertion order, like the SQL
// backends. It backs the "memory" storage driver and the tests.
package memory

import (
	"context"
	"sync"

	"github.com/aanand-mishra/school-api/internal/storage"
	"github.com/aanand-mishra/school-api/internal/types"
)

// Memory is safe for concurrent use.
type Memory struct {
	mu    sync.RWMutex
	order []string
	rows  map[string]types.Student
}

// New returns an empty store.
func New() *Memory {
	return &Memory{rows: make(map[string]types.Student)}
}

func (m *Memory) FindByID(_ context.Context, id string) (types.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.rows[id]
	if !ok {
		return types.Student{}, storage.ErrNotFound
	}
	return s, nil
}

func (m *Memory) FindAll(_ context.Context) ([]types.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	students := make([]types.Student, 0, len(m.order))
	for _, id := range m.order {
		students = append(students, m.rows[id])
	}
	return students, nil
}

func (m *Memory) Save(_ context.Context, student types.Student) (types.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rows[student.ID]; !ok {
		m.order = append(m.order, student.ID)
	}
	m.rows[student.ID] = student
	return student, nil
}

func (m *Memory) Delete(_ context.Context, student types.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rows[student.ID]; !ok {
		return nil
	}
	delete(m.rows, student.ID)
	for i, id := range m.order {
		if id == student.ID {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *Memory) Close() error { return nil }
