// Package rdata decodes and encodes the RDATA portion of resource records
// whose format this module understands. Every record type not listed in
// the registry below is left as Unknown, carrying its raw bytes through
// unexamined — an unrecognized type is a value, never a decode error.
package rdata

import (
	"fmt"
	"strings"
)

// Type is a DNS resource record TYPE code (RFC 1035 §3.2.2). It is a plain
// uint16, not an enum with a closed set of values: codes this package does
// not implement a decoder for still round-trip as RData.Unknown.
type Type uint16

const (
	TypeA     Type = 1
	TypeNS    Type = 2
	TypeCNAME Type = 5
	TypeMX    Type = 15
	TypeTXT   Type = 16
	TypeAAAA  Type = 28
)

func (t Type) String() string {
	switch t {
	case TypeA:
		return "A"
	case TypeNS:
		return "NS"
	case TypeCNAME:
		return "CNAME"
	case TypeMX:
		return "MX"
	case TypeTXT:
		return "TXT"
	case TypeAAAA:
		return "AAAA"
	default:
		return fmt.Sprintf("TYPE%d", uint16(t))
	}
}

// Labels is a domain name carried inside RDATA (NS, CNAME, MX), stored as
// an ordered label slice in the same hierarchical, TLD-first order as the
// wire package's Name — never flattened to a dotted string. A wire label
// may contain a literal '.' byte (the wire policy accepts any byte
// sequence subject only to length limits); joining labels with "." and
// re-splitting on "." would merge or misplace label boundaries for such
// input, breaking the round-trip property this package exists to
// preserve. String renders the name leaf-first with a trailing dot purely
// for display (logging, tests); it is never parsed back.
type Labels []string

// String renders l leaf-first, e.g. Labels{"com", "example", "ns"} ->
// "ns.example.com.".
func (l Labels) String() string {
	if len(l) == 0 {
		return ""
	}
	var b strings.Builder
	for i := len(l) - 1; i >= 0; i-- {
		b.WriteString(l[i])
		b.WriteByte('.')
	}
	return b.String()
}

// NameReader decodes a (possibly compressed) domain name starting at pos in
// a full packet buffer, returning its labels and the number of bytes the
// caller should advance its own cursor by. It lets this package depend on
// name decoding without importing the wire package, which depends on this
// one for the other half of resource record handling.
type NameReader func(buf []byte, pos int) (labels Labels, consumed int, err error)

// NameWriter appends the wire form of a label sequence to dst.
type NameWriter func(dst []byte, labels Labels) []byte

// RData is a decoded resource-record body. Exactly one of A, AAAA, NS,
// CNAME, MX, TXT or Unknown is meaningful, selected by Type.
type RData struct {
	Type Type

	A       A
	AAAA    AAAA
	NS      NS
	CNAME   CNAME
	MX      MX
	TXT     TXT
	Unknown []byte
}

// Decode parses the RDATA found in rdBuf (exactly RDLENGTH bytes, already
// sliced out of the packet by the caller) into an RData. fullPacket and
// rdOffset are only consulted for types whose RDATA may contain a
// compression pointer (NS, CNAME, MX): the pointer's target is resolved
// against the whole packet, never just rdBuf.
func Decode(t Type, rdBuf []byte, fullPacket []byte, rdOffset int, readName NameReader) (RData, error) {
	switch t {
	case TypeA:
		v, err := decodeA(rdBuf)
		return RData{Type: t, A: v}, err
	case TypeAAAA:
		v, err := decodeAAAA(rdBuf)
		return RData{Type: t, AAAA: v}, err
	case TypeNS:
		v, err := decodeName(fullPacket, rdOffset, readName)
		return RData{Type: t, NS: NS{Name: v}}, err
	case TypeCNAME:
		v, err := decodeName(fullPacket, rdOffset, readName)
		return RData{Type: t, CNAME: CNAME{Name: v}}, err
	case TypeMX:
		v, err := decodeMX(fullPacket, rdOffset, readName)
		return RData{Type: t, MX: v}, err
	case TypeTXT:
		v, err := decodeTXT(rdBuf)
		return RData{Type: t, TXT: v}, err
	default:
		raw := make([]byte, len(rdBuf))
		copy(raw, rdBuf)
		return RData{Type: t, Unknown: raw}, nil
	}
}

// Encode appends the wire RDATA for r to dst (not including RDLENGTH, which
// the caller computes from how much the returned slice grew).
func Encode(r RData, dst []byte, writeName NameWriter) []byte {
	switch r.Type {
	case TypeA:
		return encodeA(dst, r.A)
	case TypeAAAA:
		return encodeAAAA(dst, r.AAAA)
	case TypeNS:
		return writeName(dst, r.NS.Name)
	case TypeCNAME:
		return writeName(dst, r.CNAME.Name)
	case TypeMX:
		return encodeMX(dst, r.MX, writeName)
	case TypeTXT:
		return encodeTXT(dst, r.TXT)
	default:
		return append(dst, r.Unknown...)
	}
}

func decodeName(fullPacket []byte, pos int, readName NameReader) (Labels, error) {
	name, _, err := readName(fullPacket, pos)
	return name, err
}
