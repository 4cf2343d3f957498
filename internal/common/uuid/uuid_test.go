package uuid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRandom(t *testing.T) {
	id, err := NewRandom()
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.True(t, IsUUIDv7(id))
}

func TestNewString(t *testing.T) {
	s := NewString()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	assert.True(t, IsUUIDv7(id))
	assert.NotEqual(t, s, NewString())
}
