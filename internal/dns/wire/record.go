package wire

import (
	"errors"
	"fmt"

	"github.com/haukened/dnswire/internal/dns/wire/rdata"
)

// Class is a DNS resource record CLASS code (RFC 1035 §3.2.4).
type Class uint16

const (
	ClassIN  Class = 1
	ClassCS  Class = 2
	ClassCH  Class = 3
	ClassHS  Class = 4
	ClassAny Class = 255
)

func (c Class) String() string {
	switch c {
	case ClassIN:
		return "IN"
	case ClassCS:
		return "CS"
	case ClassCH:
		return "CH"
	case ClassHS:
		return "HS"
	case ClassAny:
		return "ANY"
	default:
		return fmt.Sprintf("CLASS%d", uint16(c))
	}
}

// QType is a question type: every value representable by rdata.Type, plus
// the wildcard All (255). Unknown codes are never a parse error — they
// decode as themselves, since QType is "forgiving on codes, strict on
// lengths" per the wire's error policy.
type QType uint16

const QTypeAll QType = 255

func (q QType) String() string {
	if q == QTypeAll {
		return "ALL"
	}
	return rdata.Type(q).String()
}

// Question is a single entry in a packet's question section.
type Question struct {
	Name  Name
	QType QType
	Class Class
}

func parseQuestion(buf []byte, pos int) (Question, int, error) {
	name, nameSize, err := parseName(buf, pos)
	if err != nil {
		return Question{}, 0, err
	}
	pos += nameSize
	qtype, err := readU16(buf, pos)
	if err != nil {
		return Question{}, 0, err
	}
	class, err := readU16(buf, pos+2)
	if err != nil {
		return Question{}, 0, err
	}
	return Question{
		Name:  name,
		QType: QType(qtype),
		Class: Class(class),
	}, nameSize + 4, nil
}

// Serialize appends the question's wire representation to dst.
func (q Question) Serialize(dst []byte) []byte {
	dst = q.Name.Serialize(dst)
	dst = writeU16(dst, uint16(q.QType))
	dst = writeU16(dst, uint16(q.Class))
	return dst
}

// ResourceRecord is a preamble (name, type, class, ttl, rdlength) paired
// with its decoded RDATA.
type ResourceRecord struct {
	Name  Name
	Type  rdata.Type
	Class Class
	TTL   int32
	RData rdata.RData
}

func parseResourceRecord(buf []byte, pos int) (ResourceRecord, int, error) {
	start := pos
	name, nameSize, err := parseName(buf, pos)
	if err != nil {
		return ResourceRecord{}, 0, err
	}
	pos += nameSize

	rrtype, err := readU16(buf, pos)
	if err != nil {
		return ResourceRecord{}, 0, err
	}
	class, err := readU16(buf, pos+2)
	if err != nil {
		return ResourceRecord{}, 0, err
	}
	ttl, err := readI32(buf, pos+4)
	if err != nil {
		return ResourceRecord{}, 0, err
	}
	rdlen, err := readU16(buf, pos+8)
	if err != nil {
		return ResourceRecord{}, 0, err
	}
	pos += 10

	rdBuf, err := readBytes(buf, pos, int(rdlen))
	if err != nil {
		return ResourceRecord{}, 0, err
	}

	rd, err := rdata.Decode(rdata.Type(rrtype), rdBuf, buf, pos, readNameLabels)
	if err != nil {
		var pe *ParseError
		if !errors.As(err, &pe) {
			err = errRDataBounds(pos, err)
		}
		return ResourceRecord{}, 0, err
	}

	return ResourceRecord{
		Name:  name,
		Type:  rdata.Type(rrtype),
		Class: Class(class),
		TTL:   ttl,
		RData: rd,
	}, pos - start + int(rdlen), nil
}

// Serialize appends the record's wire representation to dst. RDLENGTH is
// recomputed from the serialized RDATA, never trusted from a caller-set
// field.
func (r ResourceRecord) Serialize(dst []byte) []byte {
	dst = r.Name.Serialize(dst)
	dst = writeU16(dst, uint16(r.Type))
	dst = writeU16(dst, uint16(r.Class))
	dst = writeI32(dst, r.TTL)

	rdlenPos := len(dst)
	dst = writeU16(dst, 0) // placeholder, patched below

	rdStart := len(dst)
	dst = rdata.Encode(r.RData, dst, writeNameLabels)
	rdlen := len(dst) - rdStart

	dst[rdlenPos] = byte(rdlen >> 8)
	dst[rdlenPos+1] = byte(rdlen)
	return dst
}

// readNameLabels adapts this package's compression-aware Name parser to
// the rdata.NameReader contract, without either package importing the
// other in both directions. It hands back n's labels directly — never a
// dotted string — so a label containing a literal '.' byte is preserved
// as a single label rather than corrupted into two.
func readNameLabels(buf []byte, pos int) (rdata.Labels, int, error) {
	n, consumed, err := parseName(buf, pos)
	if err != nil {
		return nil, 0, err
	}
	return rdata.Labels(n.labels), consumed, nil
}

// writeNameLabels serializes a label sequence directly, in the same
// leaf-first wire order Name.Serialize uses, without ever rejoining the
// labels into a string first. Labels reaching here may have been decoded
// permissively off the wire (any byte sequence, length limits only), so
// no charset validation runs here.
func writeNameLabels(dst []byte, labels rdata.Labels) []byte {
	for i := len(labels) - 1; i >= 0; i-- {
		label := labels[i]
		dst = append(dst, byte(len(label)))
		dst = append(dst, label...)
	}
	return append(dst, 0)
}
