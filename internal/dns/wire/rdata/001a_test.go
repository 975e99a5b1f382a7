package rdata

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAEncodeRoundTrip(t *testing.T) {
	raw := []byte{192, 168, 0, 1}
	a, err := decodeA(raw)
	require.NoError(t, err)
	assert.True(t, net.IPv4(192, 168, 0, 1).Equal(a.IP))

	out := encodeA(nil, a)
	assert.Equal(t, raw, out)
}

func TestDecodeARejectsWrongLength(t *testing.T) {
	_, err := decodeA([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestDecodeViaDispatch(t *testing.T) {
	raw := []byte{8, 8, 8, 8}
	rd, err := Decode(TypeA, raw, raw, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, TypeA, rd.Type)
	assert.True(t, net.IPv4(8, 8, 8, 8).Equal(rd.A.IP))

	out := Encode(rd, nil, nil)
	assert.Equal(t, raw, out)
}
