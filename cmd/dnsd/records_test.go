package main

import (
	"strings"
	"testing"

	"github.com/haukened/dnswire/internal/dns/wire"
	"github.com/haukened/dnswire/internal/dns/wire/rdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
# comment lines and blanks are ignored

example.com A 93.184.216.34
example.com MX 10 mail.example.com
www.example.com CNAME example.com
example.com TXT hello world
`

func TestLoadRecords(t *testing.T) {
	rs, err := loadRecords(strings.NewReader(sample))
	require.NoError(t, err)

	name, err := wire.FromText("example.com")
	require.NoError(t, err)

	a := rs.lookup(name, wire.QType(rdata.TypeA))
	require.Len(t, a, 1)
	assert.Equal(t, "93.184.216.34", a[0].RData.A.IP.String())

	mx := rs.lookup(name, wire.QType(rdata.TypeMX))
	require.Len(t, mx, 1)
	assert.Equal(t, uint16(10), mx[0].RData.MX.Preference)
	assert.Equal(t, "mail.example.com.", mx[0].RData.MX.Exchange.String())

	txt := rs.lookup(name, wire.QType(rdata.TypeTXT))
	require.Len(t, txt, 1)
	assert.Equal(t, "hello world", string(txt[0].RData.TXT.Text))
}

func TestLoadRecordsMalformedLine(t *testing.T) {
	_, err := loadRecords(strings.NewReader("example.com A"))
	require.Error(t, err)
}

func TestLoadRecordsUnsupportedType(t *testing.T) {
	_, err := loadRecords(strings.NewReader("example.com SRV something"))
	require.Error(t, err)
}

func TestLoadRecordsInvalidIP(t *testing.T) {
	_, err := loadRecords(strings.NewReader("example.com A not-an-ip"))
	require.Error(t, err)
}

func TestLookupMiss(t *testing.T) {
	rs, err := loadRecords(strings.NewReader(sample))
	require.NoError(t, err)

	name, err := wire.FromText("nowhere.test")
	require.NoError(t, err)
	assert.Empty(t, rs.lookup(name, wire.QType(rdata.TypeA)))
}

func TestEmbeddedDefaultRecordsParse(t *testing.T) {
	_, err := loadRecords(strings.NewReader(defaultRecords))
	require.NoError(t, err)
}
