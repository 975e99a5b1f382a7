package rdata

import (
	"fmt"
	"net"
)

// A is the RDATA of an A record: a single IPv4 host address.
type A struct {
	IP net.IP
}

func decodeA(rdBuf []byte) (A, error) {
	if len(rdBuf) != net.IPv4len {
		return A{}, fmt.Errorf("rdata: A record must be %d bytes, got %d", net.IPv4len, len(rdBuf))
	}
	ip := make(net.IP, net.IPv4len)
	copy(ip, rdBuf)
	return A{IP: ip}, nil
}

func encodeA(dst []byte, a A) []byte {
	v4 := a.IP.To4()
	if v4 == nil {
		v4 = make(net.IP, net.IPv4len)
	}
	return append(dst, v4...)
}
