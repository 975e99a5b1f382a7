package rdata

// NS is the RDATA of an NS record: the name of an authoritative nameserver,
// held as Labels rather than a dotted string (see Labels' doc comment).
type NS struct {
	Name Labels
}
