package category

import (
	"strings"

	"github.com/google/uuid"
)

// RefKind discriminates the forms a raw category reference can take.
type RefKind int

const (
	RefEmpty RefKind = iota
	RefByID
	RefByName
)

// Ref is a category reference decided once at the request boundary instead of
// being re-sniffed inside every component. Clients send either a concrete
// category id, a free-form name, or nothing at all.
type Ref struct {
	Kind RefKind
	ID   uuid.UUID
	Name string
}

// ParseRef classifies a raw reference string. Empty strings and the literal
// "undefined"/"null" some clients send mean "no category".
func ParseRef(raw string) Ref {
	v := strings.TrimSpace(raw)
	if v == "" || v == "undefined" || v == "null" {
		return Ref{Kind: RefEmpty}
	}

	if id, err := uuid.Parse(v); err == nil {
		return Ref{Kind: RefByID, ID: id}
	}

	return Ref{Kind: RefByName, Name: v}
}
