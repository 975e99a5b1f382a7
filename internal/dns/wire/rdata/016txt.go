package rdata

import "fmt"

// TXT is the RDATA of a TXT record: a single length-prefixed character
// string. The content is carried as raw bytes; this package makes no
// assumption that it is printable text.
type TXT struct {
	Text []byte
}

func decodeTXT(rdBuf []byte) (TXT, error) {
	if len(rdBuf) == 0 {
		return TXT{}, fmt.Errorf("rdata: TXT is missing its length octet")
	}
	size := int(rdBuf[0])
	if 1+size > len(rdBuf) {
		return TXT{}, fmt.Errorf("rdata: TXT length %d overruns RDATA (%d bytes remain)", size, len(rdBuf)-1)
	}
	text := make([]byte, size)
	copy(text, rdBuf[1:1+size])
	return TXT{Text: text}, nil
}

func encodeTXT(dst []byte, txt TXT) []byte {
	dst = append(dst, byte(len(txt.Text)))
	return append(dst, txt.Text...)
}
