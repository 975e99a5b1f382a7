package rdata

// CNAME is the RDATA of a CNAME record: the canonical name this alias
// points to, held as Labels rather than a dotted string (see Labels' doc
// comment).
type CNAME struct {
	Name Labels
}
