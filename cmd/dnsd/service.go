package main

import (
	"net"

	"github.com/haukened/dnswire/internal/dns/common/log"
	"github.com/haukened/dnswire/internal/dns/wire"
)

// staticService answers every question from an in-memory recordSet. A
// question with no matching records still gets a reply, with RCode set to
// NXDomain and no answers; it never recurses and never consults anything
// beyond rs.
type staticService struct {
	rs *recordSet
}

func (s staticService) Run(src *net.UDPAddr, query wire.Packet) (wire.Packet, bool) {
	reply := wire.Packet{
		Header: wire.Header{
			ID: query.Header.ID,
			Flags: wire.Flags{
				QueryResponse:      true,
				OpCode:             query.Header.Flags.OpCode,
				RecursionDesired:   query.Header.Flags.RecursionDesired,
				RecursionAvailable: false,
				RCode:              wire.RCodeNoError,
			},
		},
		Questions: query.Questions,
	}

	for _, q := range query.Questions {
		matches := s.rs.lookup(q.Name, q.QType)
		reply.Answers = append(reply.Answers, matches...)
	}

	if len(reply.Answers) == 0 {
		reply.Header.Flags.RCode = wire.RCodeNXDomain
	}

	log.Debug("answered query", map[string]any{
		"client":  src.String(),
		"id":      query.Header.ID,
		"answers": len(reply.Answers),
	})

	return reply, true
}
