package wire

// Packet is a full DNS message: the fixed header plus its four ordered
// record sections. After a successful Parse, the header's count fields
// equal the corresponding slice lengths; Serialize trusts the slices, not
// the counts, recomputing them on the way out.
type Packet struct {
	Header     Header
	Questions  []Question
	Answers    []ResourceRecord
	Authority  []ResourceRecord
	Additional []ResourceRecord
}

// ParsePacket decodes a full DNS message from buf. Trailing bytes past the
// last record are ignored silently; a truncated section surfaces as that
// section's own bounds error.
func ParsePacket(buf []byte) (Packet, error) {
	header, err := ParseHeader(buf)
	if err != nil {
		return Packet{}, err
	}
	pos := headerSize

	questions := make([]Question, 0, header.QDCount)
	for i := 0; i < int(header.QDCount); i++ {
		q, n, err := parseQuestion(buf, pos)
		if err != nil {
			return Packet{}, err
		}
		questions = append(questions, q)
		pos += n
	}

	answers, pos, err := parseRecords(buf, pos, int(header.ANCount))
	if err != nil {
		return Packet{}, err
	}
	authority, pos, err := parseRecords(buf, pos, int(header.NSCount))
	if err != nil {
		return Packet{}, err
	}
	additional, _, err := parseRecords(buf, pos, int(header.ARCount))
	if err != nil {
		return Packet{}, err
	}

	return Packet{
		Header:     header,
		Questions:  questions,
		Answers:    answers,
		Authority:  authority,
		Additional: additional,
	}, nil
}

func parseRecords(buf []byte, pos, count int) ([]ResourceRecord, int, error) {
	records := make([]ResourceRecord, 0, count)
	for i := 0; i < count; i++ {
		rr, n, err := parseResourceRecord(buf, pos)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, rr)
		pos += n
	}
	return records, pos, nil
}

// Serialize renders the full packet to its wire representation. The
// header's count fields are recomputed from the section slice lengths
// rather than trusted from p.Header, so mutating a section (e.g. a
// service appending an answer) never desynchronizes the counts.
func (p Packet) Serialize() []byte {
	h := p.Header
	h.QDCount = uint16(len(p.Questions))
	h.ANCount = uint16(len(p.Answers))
	h.NSCount = uint16(len(p.Authority))
	h.ARCount = uint16(len(p.Additional))

	dst := h.Serialize(make([]byte, 0, headerSize))
	for _, q := range p.Questions {
		dst = q.Serialize(dst)
	}
	for _, rr := range p.Answers {
		dst = rr.Serialize(dst)
	}
	for _, rr := range p.Authority {
		dst = rr.Serialize(dst)
	}
	for _, rr := range p.Additional {
		dst = rr.Serialize(dst)
	}
	return dst
}
