package wire

import (
	"iter"
	"strings"

	"golang.org/x/net/idna"
)

const (
	maxJumps     = 5
	maxLabelSize = 63
	maxNameSize  = 255
)

// idnaProfile normalizes human-typed Unicode domains (e.g. "café.example")
// to their ASCII-compatible (punycode) form before label validation runs.
// Wire-decoded names never go through this — see Name.String's companion
// parseName, which accepts raw label bytes without an IDNA round trip.
var idnaProfile = idna.New(idna.MapForLookup(), idna.Transitional(true))

// Name is a domain name stored as an ordered sequence of labels in
// hierarchical order: the TLD first, the most specific label last. This
// is the reverse of the order labels are encountered on the wire, and
// makes IsSubdomain a simple prefix check.
type Name struct {
	labels []string
}

// NewName returns the root (empty) name.
func NewName() Name {
	return Name{}
}

// FromText parses a human-typed domain name such as "example.com" into a
// Name. The input is normalized through IDNA first, then split on '.' and
// validated label-by-label: the first octet of each label must be ASCII
// alphabetic and the rest must be alphanumeric or '-'. This is stricter
// than what the wire parser accepts; names decoded off the wire are not
// re-validated against this rule.
func FromText(s string) (Name, error) {
	ascii, err := idnaProfile.ToASCII(s)
	if err != nil {
		// Not every input is a valid IDNA domain (e.g. it may already be
		// pure ASCII with wildcard-ish characters tests use); fall back to
		// the raw string and let label validation below reject anything
		// that truly doesn't belong on the wire.
		ascii = s
	}
	ascii = strings.TrimSuffix(ascii, ".")
	if ascii == "" {
		return NewName(), nil
	}
	parts := strings.Split(ascii, ".")
	n := NewName()
	for i := len(parts) - 1; i >= 0; i-- {
		if err := validateTextLabel(parts[i]); err != nil {
			return Name{}, err
		}
		n.labels = append(n.labels, parts[i])
	}
	return n, nil
}

func validateTextLabel(label string) error {
	if len(label) == 0 || len(label) > maxLabelSize {
		return errLabelLength(-1, len(label))
	}
	first := label[0]
	if !isASCIIAlpha(first) {
		return errLabelPrefix(-1, first)
	}
	for i := 1; i < len(label); i++ {
		c := label[i]
		if !isASCIIAlpha(c) && !isASCIIDigit(c) && c != '-' {
			return errLabelPrefix(-1, c)
		}
	}
	return nil
}

func isASCIIAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isASCIIDigit(c byte) bool { return c >= '0' && c <= '9' }

// String renders the name with a trailing dot, e.g. "example.com.". The
// root name renders as "".
func (n Name) String() string {
	if len(n.labels) == 0 {
		return ""
	}
	var b strings.Builder
	for label := range n.IterHuman() {
		b.WriteString(label)
		b.WriteByte('.')
	}
	return b.String()
}

// TLD returns the outermost (first) label, or false for the root name.
func (n Name) TLD() (string, bool) {
	if len(n.labels) == 0 {
		return "", false
	}
	return n.labels[0], true
}

// LabelCount returns the number of labels in the name.
func (n Name) LabelCount() int {
	return len(n.labels)
}

// Labels returns a copy of n's labels in hierarchical (TLD-first) order,
// the same representation the rdata package's NS/CNAME/MX types use for
// the names embedded in their RDATA (see rdata.Labels).
func (n Name) Labels() []string {
	out := make([]string, len(n.labels))
	copy(out, n.labels)
	return out
}

// IsSubdomain reports whether n's labels are a hierarchical prefix of
// other's labels, i.e. other is n or a descendant of n. The root name is a
// subdomain of (a prefix of) every name, including itself.
func (n Name) IsSubdomain(other Name) bool {
	if len(n.labels) > len(other.labels) {
		return false
	}
	for i, label := range n.labels {
		if other.labels[i] != label {
			return false
		}
	}
	return true
}

// IterHierarchy iterates labels TLD-first (the order they are stored in).
func (n Name) IterHierarchy() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, l := range n.labels {
			if !yield(l) {
				return
			}
		}
	}
}

// IterHuman iterates labels leaf-first, the order a human reads a domain name.
func (n Name) IterHuman() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := len(n.labels) - 1; i >= 0; i-- {
			if !yield(n.labels[i]) {
				return
			}
		}
	}
}

// Serialize appends the name's wire representation (leaf-first
// length-prefixed labels, zero-terminated) to dst. No output-side
// compression is ever emitted.
func (n Name) Serialize(dst []byte) []byte {
	for label := range n.IterHuman() {
		dst = append(dst, byte(len(label)))
		dst = append(dst, label...)
	}
	return append(dst, 0)
}

// parseName decodes a domain name from buf starting at pos, following
// compression pointers per RFC 1035 §4.1.4. It returns the name and the
// number of bytes the caller must advance pos by in the *outer* stream —
// bytes reached by following a pointer do not count, only the literal
// bytes walked before the first jump plus the two pointer bytes (or the
// one-byte terminator if no jump occurred).
func parseName(buf []byte, pos int) (Name, int, error) {
	start := pos
	var hierarchy []string // leaf-first as encountered; reversed before return
	consumed := 0
	jumps := 0
	total := 0

	for {
		b, err := readU8(buf, pos)
		if err != nil {
			return Name{}, 0, err
		}

		switch b >> 6 {
		case 0b00: // literal label (0 == terminator)
			size := int(b & 0x3F)
			if size == 0 {
				if jumps == 0 {
					consumed++
				}
				return reverseName(hierarchy), consumed, nil
			}
			if size > maxLabelSize {
				return Name{}, 0, errLabelLength(pos, size)
			}
			if pos+1+size > len(buf) {
				return Name{}, 0, errLabelLength(pos, size)
			}
			total += size + 1
			if total > maxNameSize {
				return Name{}, 0, errNameLength(total)
			}
			label, err := readLabelText(buf, pos+1, size)
			if err != nil {
				return Name{}, 0, err
			}
			hierarchy = append(hierarchy, label)
			if jumps == 0 {
				consumed += size + 1
			}
			pos += size + 1
		case 0b11: // compression pointer
			ptr, err := readU16(buf, pos)
			if err != nil {
				return Name{}, 0, err
			}
			target := int(ptr &^ 0xC000)
			if target >= pos {
				return Name{}, 0, errInvalidJump(pos)
			}
			if jumps == 0 {
				consumed += 2
			}
			jumps++
			if jumps > maxJumps {
				return Name{}, 0, errExcessiveJumps(start, jumps)
			}
			pos = target
		default: // 0b01, 0b10: reserved prefixes
			return Name{}, 0, errLabelPrefix(pos, b)
		}
	}
}

func readLabelText(buf []byte, pos, size int) (string, error) {
	b, err := readBytes(buf, pos, size)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func reverseName(hierarchyLeafFirst []string) Name {
	n := len(hierarchyLeafFirst)
	labels := make([]string, n)
	for i, l := range hierarchyLeafFirst {
		labels[n-1-i] = l
	}
	return Name{labels: labels}
}
