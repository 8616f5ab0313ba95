package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dj-lumiere/razorforge-lang-sub007/internal/source"
)

func TestDecodePlainUTF8PassesThrough(t *testing.T) {
	text, err := source.Decode([]byte("let x = 1\n"))
	require.NoError(t, err)
	assert.Equal(t, "let x = 1\n", text)
}

func TestDecodeUTF16LittleEndianBOM(t *testing.T) {
	raw := []byte{0xFF, 0xFE, 'x', 0, '=', 0, '1', 0}
	text, err := source.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "x=1", text)
}

func TestDecodeUTF16BigEndianBOM(t *testing.T) {
	raw := []byte{0xFE, 0xFF, 0, 'x', 0, '=', 0, '1'}
	text, err := source.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "x=1", text)
}
