package rdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTXTRoundTrip(t *testing.T) {
	buf := append([]byte{byte(len("hello world"))}, []byte("hello world")...)
	txt, err := decodeTXT(buf)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(txt.Text))

	out := encodeTXT(nil, txt)
	assert.Equal(t, buf, out)
}

func TestDecodeTXTEmptyString(t *testing.T) {
	txt, err := decodeTXT([]byte{0})
	require.NoError(t, err)
	assert.Empty(t, txt.Text)
}

func TestDecodeTXTIgnoresTrailingBytes(t *testing.T) {
	// Only the first length-prefixed string is decoded; RDATA bytes past
	// it are dropped, and re-encoding emits just the decoded string.
	buf := []byte{3, 'f', 'o', 'o', 'x', 'y'}
	txt, err := decodeTXT(buf)
	require.NoError(t, err)
	assert.Equal(t, "foo", string(txt.Text))

	out := encodeTXT(nil, txt)
	assert.Equal(t, []byte{3, 'f', 'o', 'o'}, out)
}

func TestDecodeTXTMissingLengthOctet(t *testing.T) {
	_, err := decodeTXT(nil)
	require.Error(t, err)
}

func TestDecodeTXTOverrunsRData(t *testing.T) {
	buf := []byte{5, 'a', 'b'}
	_, err := decodeTXT(buf)
	require.Error(t, err)
}
