package cursor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dj-lumiere/razorforge-lang-sub007/pkg/cursor"
)

func TestNewPositionsAtFirstByte(t *testing.T) {
	c := cursor.New("abc")
	assert.Equal(t, byte('a'), c.Current())
	assert.Equal(t, 1, c.Line())
	assert.Equal(t, 1, c.Column())
	assert.Equal(t, 0, c.Offset())
}

func TestAdvanceTracksLineAndColumn(t *testing.T) {
	c := cursor.New("ab\ncd")

	c.Advance() // -> 'b'
	assert.Equal(t, byte('b'), c.Current())
	assert.Equal(t, 2, c.Column())

	c.Advance() // -> '\n'
	assert.Equal(t, byte('\n'), c.Current())

	c.Advance() // -> 'c', new line
	assert.Equal(t, byte('c'), c.Current())
	assert.Equal(t, 2, c.Line())
	assert.Equal(t, 1, c.Column())
}

func TestPeekDoesNotAdvance(t *testing.T) {
	c := cursor.New("xyz")
	require.Equal(t, byte('y'), c.Peek(1))
	require.Equal(t, byte('z'), c.Peek(2))
	assert.Equal(t, byte(0), c.Peek(3))
	assert.Equal(t, byte('x'), c.Current(), "Peek must not move the cursor")
}

func TestMatchConsumesOnSuccess(t *testing.T) {
	c := cursor.New("==")
	require.True(t, c.Match('='))
	assert.Equal(t, byte('='), c.Current())
	assert.Equal(t, 1, c.Offset())
}

func TestMatchLeavesCursorOnFailure(t *testing.T) {
	c := cursor.New("ab")
	require.False(t, c.Match('z'))
	assert.Equal(t, byte('a'), c.Current())
	assert.Equal(t, 0, c.Offset())
}

func TestAtEndOnEmptyInput(t *testing.T) {
	c := cursor.New("")
	assert.True(t, c.AtEnd())
	assert.Equal(t, byte(0), c.Current())
}

func TestAtEndAfterConsumingAllBytes(t *testing.T) {
	c := cursor.New("a")
	assert.False(t, c.AtEnd())
	c.Advance()
	assert.True(t, c.AtEnd())
	assert.Equal(t, byte(0), c.Current())
}

func TestSliceReturnsConsumedRange(t *testing.T) {
	c := cursor.New("hello world")
	start := c.Offset()
	for c.Current() != ' ' {
		c.Advance()
	}
	assert.Equal(t, "hello", c.Slice(start))
}

func TestRestReturnsUnconsumedSuffix(t *testing.T) {
	c := cursor.New("foo(bar)")
	for c.Current() != '(' {
		c.Advance()
	}
	assert.Equal(t, "(bar)", c.Rest())
}

func TestUTF8BytesPassThrough(t *testing.T) {
	// "é" is two UTF-8 bytes; the cursor walks bytes, not runes, but must
	// still reach EOF cleanly and report the right byte count.
	src := "é"
	c := cursor.New(src)
	count := 0
	for !c.AtEnd() {
		c.Advance()
		count++
	}
	assert.Equal(t, len(src), count)
}
