package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUTF8(t *testing.T) {
	text, err := Decode([]byte("name,city\nzoë,oslo"))
	require.NoError(t, err)
	assert.Equal(t, "name,city\nzoë,oslo", text)
}

func TestDecodeStripsBOM(t *testing.T) {
	text, err := Decode(append([]byte{0xEF, 0xBB, 0xBF}, []byte("a,b")...))
	require.NoError(t, err)
	assert.Equal(t, "a,b", text)
}

func TestDecodeWindows1252Fallback(t *testing.T) {
	// "café" in Windows-1252 / Latin-1: é = 0xE9, not valid UTF-8.
	text, err := Decode([]byte{'c', 'a', 'f', 0xE9})
	require.NoError(t, err)
	assert.Equal(t, "café", text)
}

func TestDecodeCP1252Specific(t *testing.T) {
	// 0x93/0x94 are curly quotes in CP1252 but undefined in ISO-8859-1.
	text, err := Decode([]byte{0x93, 'h', 'i', 0x94})
	require.NoError(t, err)
	assert.Equal(t, "“hi”", text)
}
