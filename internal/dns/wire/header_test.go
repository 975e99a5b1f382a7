package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{
		ID: 0xBEEF,
		Flags: Flags{
			QueryResponse:      true,
			OpCode:             OpQuery,
			AuthoritativeAns:   true,
			RecursionDesired:   true,
			RecursionAvailable: true,
			RCode:              RCodeNoError,
		},
		QDCount: 1,
		ANCount: 2,
		NSCount: 0,
		ARCount: 1,
	}
	buf := h.Serialize(nil)
	require.Len(t, buf, headerSize)

	got, err := ParseHeader(buf)
	require.NoError(t, err)
	assert.Equal(t, h, got)
}

func TestHeaderTooShort(t *testing.T) {
	_, err := ParseHeader(make([]byte, 11))
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, KindHeaderLength, pe.Kind)
}

func TestHeaderRejectsReservedOpCode(t *testing.T) {
	buf := make([]byte, headerSize)
	// Opcode field is bits 11-14 of the flags word; 15 is reserved.
	buf[2] = 0b0111_1000
	_, err := ParseHeader(buf)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, KindHeaderFlag, pe.Kind)
	assert.Equal(t, "opcode", pe.Field)
}

func TestHeaderRejectsReservedRCode(t *testing.T) {
	buf := make([]byte, headerSize)
	buf[3] = 0b0000_1111 // rcode = 15, reserved
	_, err := ParseHeader(buf)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, KindHeaderFlag, pe.Kind)
	assert.Equal(t, "rcode", pe.Field)
}

func TestFlagsPackBitLayout(t *testing.T) {
	f := Flags{
		QueryResponse:    true,
		OpCode:           OpStatus,
		AuthoritativeAns: true,
		Truncated:        true,
		RecursionDesired: true,
		RCode:            RCodeServFail,
	}
	raw := f.pack()
	// QR(1) Opcode(2=0010) AA TC RD ... RCode(0010)
	assert.Equal(t, uint16(0b1_0010_1_1_1_0_0_0_0_0010), raw)
}
