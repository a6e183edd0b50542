package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWallet(t *testing.T) {
	w := New("a", "b", "a", "")
	assert.Equal(t, []string{"a", "b"}, w.IDs())

	assert.False(t, w.Add("a"))
	assert.True(t, w.Add("c"))
	assert.Equal(t, 3, w.Len())

	assert.True(t, w.Remove("b"))
	assert.False(t, w.Remove("b"))
	assert.Equal(t, []string{"a", "c"}, w.IDs())
}

func TestToggleTwiceRestores(t *testing.T) {
	w := New("a", "b")
	before := w.IDs()

	assert.True(t, w.Toggle("x"))
	assert.False(t, w.Toggle("x"))
	assert.Equal(t, before, w.IDs())

	assert.False(t, w.Toggle("a"))
	assert.False(t, w.Contains("a"))
}

func TestIDsIsCopy(t *testing.T) {
	w := New("a")
	ids := w.IDs()
	ids[0] = "z"
	assert.True(t, w.Contains("a"))
}
