package mainloop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoalescerMergesBurstIntoSingleTick(t *testing.T) {
	queue := make([]func(), 0, 8)
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	value := 0
	for i := 1; i <= 5; i++ {
		v := i
		c.Post("config-reload", func() { value = v })
	}

	require.Len(t, queue, 1)
	assert.True(t, c.Pending("config-reload"))
	assert.Equal(t, 4, c.Merged("config-reload"))
	queue[0]()

	assert.Equal(t, 5, value)
	assert.False(t, c.Pending("config-reload"))
	assert.Zero(t, c.Merged("config-reload"))
}

func TestCoalescerKeysAreIndependent(t *testing.T) {
	loop := New()
	c := NewCoalescer(loop.Post)

	var ran []string
	c.Post("a", func() { ran = append(ran, "a") })
	c.Post("b", func() { ran = append(ran, "b") })
	c.Post("", func() { ran = append(ran, "empty") })
	c.Post("a", nil)

	assert.Equal(t, 2, loop.RunOnce())
	assert.Equal(t, []string{"a", "b"}, ran)
}

func TestCoalescerDropsWorkAfterDestroy(t *testing.T) {
	queue := make([]func(), 0, 4)
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	ran := false
	c.Post("theme", func() { ran = true })
	c.Destroy()

	require.Len(t, queue, 1)
	queue[0]()
	assert.False(t, ran)

	c.Post("theme", func() { ran = true })
	assert.Len(t, queue, 1)
}

func TestNewCoalescerPanicsOnNilPost(t *testing.T) {
	assert.Panics(t, func() { _ = NewCoalescer(nil) })
}
