package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNameUncompressed(t *testing.T) {
	buf := []byte{
		5, 'h', 'e', 'l', 'l', 'o',
		5, 'w', 'o', 'r', 'l', 'd',
		3, 'c', 'o', 'm',
		0,
	}
	name, n, err := parseName(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 17, n)
	assert.Equal(t, "hello.world.com.", name.String())
}

func TestParseNameBackwardJump(t *testing.T) {
	buf := []byte{
		5, 'w', 'o', 'r', 'l', 'd',
		3, 'c', 'o', 'm',
		0, 1, 1, 1,
		5, 'h', 'e', 'l', 'l', 'o',
		0xC0, 0x00, 1, 1, 1, 1, 1, 1,
	}
	name, n, err := parseName(buf, 14)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, "hello.world.com.", name.String())
}

func TestParseNameForwardJumpRejected(t *testing.T) {
	buf := []byte{
		5, 'h', 'e', 'l', 'l', 'o',
		0xC0, 0x0A, 1, 0,
		5, 'w', 'o', 'r', 'l', 'd',
		3, 'c', 'o', 'm',
		0,
	}
	_, _, err := parseName(buf, 0)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, KindInvalidJump, pe.Kind)
}

func TestParseNameExcessiveJumps(t *testing.T) {
	// Each pointer points to the previous pointer, six deep: the sixth jump
	// exceeds the five-jump maximum.
	buf := make([]byte, 0, 32)
	buf = append(buf, 0) // offset 0: root
	for i := 0; i < 6; i++ {
		target := len(buf) - 2
		if i == 0 {
			target = 0
		}
		buf = append(buf, 0xC0|byte(target>>8), byte(target))
	}
	_, _, err := parseName(buf, len(buf)-2)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, KindExcessiveJumps, pe.Kind)
}

func TestParseNameLabelTooLong(t *testing.T) {
	// A length octet of 64 sets the reserved 0b01 prefix: a label longer
	// than 63 octets cannot be encoded on the wire and is rejected as a
	// prefix error.
	buf := []byte{64}
	buf = append(buf, make([]byte, 64)...)
	_, _, err := parseName(buf, 0)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, KindLabelPrefix, pe.Kind)
}

func TestParseNameReservedPrefix(t *testing.T) {
	buf := []byte{0b01_000000, 0}
	_, _, err := parseName(buf, 0)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, KindLabelPrefix, pe.Kind)
}

func TestParseNameOutOfBounds(t *testing.T) {
	buf := []byte{5, 'h', 'e'} // claims 5 bytes, only 2 present
	_, _, err := parseName(buf, 0)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, KindLabelLength, pe.Kind)
}

func TestNameSerializeRoundTrip(t *testing.T) {
	buf := []byte{
		5, 'h', 'e', 'l', 'l', 'o',
		5, 'w', 'o', 'r', 'l', 'd',
		3, 'c', 'o', 'm',
		0,
	}
	name, _, err := parseName(buf, 0)
	require.NoError(t, err)

	out := name.Serialize(nil)
	assert.Equal(t, buf, out)
}

func TestNameFromText(t *testing.T) {
	name, err := FromText("example.com")
	require.NoError(t, err)
	assert.Equal(t, "example.com.", name.String())
	assert.Equal(t, 2, name.LabelCount())
	tld, ok := name.TLD()
	require.True(t, ok)
	assert.Equal(t, "com", tld)
}

func TestNameFromTextRejectsLeadingDigit(t *testing.T) {
	_, err := FromText("1example.com")
	require.Error(t, err)
}

func TestNameFromTextRoot(t *testing.T) {
	name, err := FromText("")
	require.NoError(t, err)
	assert.Equal(t, "", name.String())
	_, ok := name.TLD()
	assert.False(t, ok)
}

func TestNameWireAcceptsDigitsFirstLabel(t *testing.T) {
	// On-wire decoding is forgiving of a digits-first label; only
	// FromText enforces the ASCII-alpha-first rule.
	buf := []byte{3, '1', '2', '3', 3, 'c', 'o', 'm', 0}
	name, _, err := parseName(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, "123.com.", name.String())
}

func TestIsSubdomainLattice(t *testing.T) {
	root := NewName()
	example, err := FromText("example.com")
	require.NoError(t, err)
	sub, err := FromText("www.example.com")
	require.NoError(t, err)
	other, err := FromText("other.net")
	require.NoError(t, err)

	assert.True(t, root.IsSubdomain(example))
	assert.True(t, example.IsSubdomain(example))
	assert.True(t, example.IsSubdomain(sub))
	assert.False(t, sub.IsSubdomain(example))
	assert.False(t, example.IsSubdomain(other))
}

func TestIterHierarchyAndHuman(t *testing.T) {
	name, err := FromText("www.example.com")
	require.NoError(t, err)

	var hierarchy []string
	for l := range name.IterHierarchy() {
		hierarchy = append(hierarchy, l)
	}
	assert.Equal(t, []string{"com", "example", "www"}, hierarchy)

	var human []string
	for l := range name.IterHuman() {
		human = append(human, l)
	}
	assert.Equal(t, []string{"www", "example", "com"}, human)
}
