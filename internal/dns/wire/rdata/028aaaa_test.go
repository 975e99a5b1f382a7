package rdata

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAAAAEncodeRoundTrip(t *testing.T) {
	want := net.ParseIP("2001:db8::ff00:42:8329").To16()
	a, err := decodeAAAA(want)
	require.NoError(t, err)
	assert.True(t, net.ParseIP("2001:db8::ff00:42:8329").Equal(a.IP))

	out := encodeAAAA(nil, a)
	assert.Equal(t, []byte(want), out)
}

func TestDecodeAAAARejectsWrongLength(t *testing.T) {
	_, err := decodeAAAA([]byte{1, 2, 3})
	require.Error(t, err)
}
