package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cqlgo/core"
)

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("no hosts available")
	err := core.WrapError(core.ErrConnection, cause, "connect to %v", []string{"10.0.0.1"})

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection error")
	assert.Contains(t, err.Error(), "connect to [10.0.0.1]")
	assert.Contains(t, err.Error(), "no hosts available")

	var cerr *core.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, core.ErrConnection, cerr.Kind)
}

func TestNewError(t *testing.T) {
	err := core.NewError(core.ErrInvalidQuery, "empty statement")

	assert.Nil(t, errors.Unwrap(err))
	assert.Equal(t, "invalid query: empty statement", err.Error())
}
