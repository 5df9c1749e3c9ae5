package server

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapErrorf(t *testing.T) {
	orig := errors.New("routing: start vertex not found")
	err := WrapErrorf(orig, ErrNotFound, "vertex %q not found", "A")

	assert.ErrorIs(t, err, orig)
	assert.Equal(t, ErrNotFound, CodeOf(err))
	assert.Equal(t, `vertex "A" not found: routing: start vertex not found`, err.Error())

	var ierr *Error
	assert.ErrorAs(t, fmt.Errorf("compose: %w", err), &ierr)
	assert.Equal(t, `vertex "A" not found`, ierr.Message())
}

func TestNewErrorf(t *testing.T) {
	err := NewErrorf(ErrBadParamInput, "bad")
	assert.Equal(t, "bad", err.Error())
	assert.Equal(t, ErrBadParamInput, CodeOf(err))
	assert.Equal(t, ErrUnknown, CodeOf(errors.New("x")))
}
