package memzero

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3}
	Zero(b)
	assert.Equal(t, []byte{0, 0, 0}, b)
	Zero(nil)
}

func TestZeroMany(t *testing.T) {
	a, b := []byte("key"), []byte("salt")
	Zero(a, nil, b)
	assert.Equal(t, make([]byte, 3), a)
	assert.Equal(t, make([]byte, 4), b)
}
