package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudentApply(t *testing.T) {
	orig := Student{ID: "1", Name: "David", Active: true}

	got := orig.Apply(StudentPatch{Name: "Marcos", Active: false})

	assert.Equal(t, Student{ID: "1", Name: "Marcos", Active: false}, got)
	// the receiver is a value, the original is untouched
	assert.Equal(t, "David", orig.Name)
	assert.True(t, orig.Active)
}
