package rdata

import (
	"fmt"
	"net"
)

// AAAA is the RDATA of an AAAA record: a single IPv6 host address.
type AAAA struct {
	IP net.IP
}

func decodeAAAA(rdBuf []byte) (AAAA, error) {
	if len(rdBuf) != net.IPv6len {
		return AAAA{}, fmt.Errorf("rdata: AAAA record must be %d bytes, got %d", net.IPv6len, len(rdBuf))
	}
	ip := make(net.IP, net.IPv6len)
	copy(ip, rdBuf)
	return AAAA{IP: ip}, nil
}

func encodeAAAA(dst []byte, a AAAA) []byte {
	v6 := a.IP.To16()
	if v6 == nil {
		v6 = make(net.IP, net.IPv6len)
	}
	return append(dst, v6...)
}
