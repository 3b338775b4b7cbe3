// Package types holds the shared data structures used across the
// application. Handlers, service, and storage all import types without
// depending on each other.
package types

// Student represents a student record.
//
// The ID is supplied by the caller on creation and never changes after
// that. The validate tag is only checked when a student is created.
type Student struct {
	ID     string `json:"id"     validate:"required"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// StudentPatch is the body of an update request. Only name and active
// are meaningful; the id always comes from the URL path.
type StudentPatch struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// Apply returns a copy of s with the patch fields written over it.
// The ID is kept.
func (s Student) Apply(p StudentPatch) Student {
	s.Name = p.Name
	s.Active = p.Active
	return s
}
