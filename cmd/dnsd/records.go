package main

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"

	"github.com/haukened/dnswire/internal/dns/wire"
	"github.com/haukened/dnswire/internal/dns/wire/rdata"
)

// recordSet is a static, process-lifetime answer table keyed by (name,
// type): nothing in it ever expires or is evicted, and there is no
// upstream to consult on a miss.
type recordSet struct {
	entries map[string][]wire.ResourceRecord
}

func newRecordSet() *recordSet {
	return &recordSet{entries: make(map[string][]wire.ResourceRecord)}
}

func recordKey(name string, t rdata.Type) string {
	return strings.ToLower(name) + "|" + t.String()
}

func (rs *recordSet) lookup(name wire.Name, qtype wire.QType) []wire.ResourceRecord {
	key := recordKey(strings.TrimSuffix(name.String(), "."), rdata.Type(qtype))
	return rs.entries[key]
}

func (rs *recordSet) add(rr wire.ResourceRecord) {
	key := recordKey(strings.TrimSuffix(rr.Name.String(), "."), rr.Type)
	rs.entries[key] = append(rs.entries[key], rr)
}

// loadRecords reads flat "name type value" lines (blank lines and lines
// starting with '#' are ignored) into a recordSet. This is not a zone-file
// format: it exists only to exercise every RDATA codec from a runnable
// binary, per record per line, TTL fixed at 300 seconds.
func loadRecords(r io.Reader) (*recordSet, error) {
	const defaultTTL = 300

	rs := newRecordSet()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("records line %d: expected \"name type value\", got %q", lineNo, line)
		}
		name, typeName, value := fields[0], strings.ToUpper(fields[1]), strings.Join(fields[2:], " ")

		n, err := wire.FromText(name)
		if err != nil {
			return nil, fmt.Errorf("records line %d: invalid name %q: %w", lineNo, name, err)
		}

		rr, err := buildRecord(n, typeName, value, defaultTTL)
		if err != nil {
			return nil, fmt.Errorf("records line %d: %w", lineNo, err)
		}
		rs.add(rr)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rs, nil
}

func buildRecord(name wire.Name, typeName, value string, ttl int32) (wire.ResourceRecord, error) {
	switch typeName {
	case "A":
		ip := net.ParseIP(value).To4()
		if ip == nil {
			return wire.ResourceRecord{}, fmt.Errorf("invalid A value %q", value)
		}
		return wire.ResourceRecord{Name: name, Type: rdata.TypeA, Class: wire.ClassIN, TTL: ttl,
			RData: rdata.RData{Type: rdata.TypeA, A: rdata.A{IP: ip}}}, nil
	case "AAAA":
		ip := net.ParseIP(value).To16()
		if ip == nil {
			return wire.ResourceRecord{}, fmt.Errorf("invalid AAAA value %q", value)
		}
		return wire.ResourceRecord{Name: name, Type: rdata.TypeAAAA, Class: wire.ClassIN, TTL: ttl,
			RData: rdata.RData{Type: rdata.TypeAAAA, AAAA: rdata.AAAA{IP: ip}}}, nil
	case "CNAME":
		target, err := wire.FromText(value)
		if err != nil {
			return wire.ResourceRecord{}, fmt.Errorf("invalid CNAME value %q: %w", value, err)
		}
		return wire.ResourceRecord{Name: name, Type: rdata.TypeCNAME, Class: wire.ClassIN, TTL: ttl,
			RData: rdata.RData{Type: rdata.TypeCNAME, CNAME: rdata.CNAME{Name: rdata.Labels(target.Labels())}}}, nil
	case "NS":
		target, err := wire.FromText(value)
		if err != nil {
			return wire.ResourceRecord{}, fmt.Errorf("invalid NS value %q: %w", value, err)
		}
		return wire.ResourceRecord{Name: name, Type: rdata.TypeNS, Class: wire.ClassIN, TTL: ttl,
			RData: rdata.RData{Type: rdata.TypeNS, NS: rdata.NS{Name: rdata.Labels(target.Labels())}}}, nil
	case "MX":
		parts := strings.Fields(value)
		if len(parts) != 2 {
			return wire.ResourceRecord{}, fmt.Errorf("invalid MX value %q (want \"preference exchange\")", value)
		}
		pref, err := strconv.ParseUint(parts[0], 10, 16)
		if err != nil {
			return wire.ResourceRecord{}, fmt.Errorf("invalid MX preference %q: %w", parts[0], err)
		}
		exchange, err := wire.FromText(parts[1])
		if err != nil {
			return wire.ResourceRecord{}, fmt.Errorf("invalid MX exchange %q: %w", parts[1], err)
		}
		return wire.ResourceRecord{Name: name, Type: rdata.TypeMX, Class: wire.ClassIN, TTL: ttl,
			RData: rdata.RData{Type: rdata.TypeMX, MX: rdata.MX{Preference: uint16(pref), Exchange: rdata.Labels(exchange.Labels())}}}, nil
	case "TXT":
		if len(value) > 255 {
			return wire.ResourceRecord{}, fmt.Errorf("TXT value is %d bytes, maximum is 255", len(value))
		}
		return wire.ResourceRecord{Name: name, Type: rdata.TypeTXT, Class: wire.ClassIN, TTL: ttl,
			RData: rdata.RData{Type: rdata.TypeTXT, TXT: rdata.TXT{Text: []byte(value)}}}, nil
	default:
		return wire.ResourceRecord{}, fmt.Errorf("unsupported record type %q", typeName)
	}
}
