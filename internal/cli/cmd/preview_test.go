package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIDGenerator_Sequence(t *testing.T) {
	next := newIDGenerator()

	ids := make([]string, 0, 28)
	for range 28 {
		ids = append(ids, next())
	}

	assert.Equal(t, []string{"a0", "b0", "c0"}, ids[:3])
	assert.Equal(t, "z0", ids[25])
	assert.Equal(t, []string{"a1", "b1"}, ids[26:])

	other := newIDGenerator()
	assert.Equal(t, "a0", other(), "generators do not share a counter")
}
