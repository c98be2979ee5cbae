package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorUnwrap(t *testing.T) {
	sentinel := errors.New("boom")
	err := NewError(sentinel, "c0de")

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, "boom", err.GetMessage())
	assert.Equal(t, "c0de", err.GetCode())
}

func TestErrorWithoutCause(t *testing.T) {
	err := &Error{Code: "c0de"}

	assert.Equal(t, "", err.Error())
	assert.Nil(t, err.Unwrap())
}
