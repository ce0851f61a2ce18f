// Package attribute classifies SVG attribute names into a closed set of kinds.
//
// Parsers call Lookup once per attribute and dispatch on the returned
// Attribute instead of comparing strings:
//
//	if a, ok := attribute.Lookup(name); ok {
//		switch a {
//		case attribute.Fill:
//			...
//		}
//	}
//
// Matching is exact and case-sensitive. Qualified names such as "xlink:href"
// are matched verbatim; no namespace resolution happens here.
//
// The constants, their spellings and the lookup table are generated from
// attributes.cue. The table is a compile-time array that is never written,
// so every function in this package is safe for concurrent use.
package attribute

//go:generate go run ../cmd/svgattr generate -o attribute_gen.go attributes.cue

import (
	"strconv"

	"github.com/roach88/svgattr/internal/phash"
)

// Attribute identifies a recognized attribute kind. Values are dense and start at zero.
type Attribute uint8

// String returns the canonical spelling of a.
func (a Attribute) String() string {
	if a.Valid() {
		return names[a]
	}
	return "Attribute(" + strconv.Itoa(int(a)) + ")"
}

// Valid reports whether a is one of the generated constants.
func (a Attribute) Valid() bool {
	return int(a) < Count
}

// All returns every Attribute in ascending order.
func All() []Attribute {
	all := make([]Attribute, Count)
	for i := range all {
		all[i] = Attribute(i)
	}
	return all
}

// Lookup returns the Attribute whose canonical spelling is exactly name.
// The boolean is false for any other string, including the empty string.
func Lookup(name string) (Attribute, bool) {
	if len(name) == 0 || len(name) > maxNameLen {
		return 0, false
	}
	i := table[phash.Sum(tableSeed, name)&tableMask]
	if i == 0 || names[i-1] != name {
		return 0, false
	}
	return Attribute(i - 1), true
}

// LookupBytes is Lookup for a name held in a byte slice. It does not allocate.
func LookupBytes(name []byte) (Attribute, bool) {
	if len(name) == 0 || len(name) > maxNameLen {
		return 0, false
	}
	i := table[phash.SumBytes(tableSeed, name)&tableMask]
	if i == 0 || names[i-1] != string(name) {
		return 0, false
	}
	return Attribute(i - 1), true
}

// FromName stores the Attribute for name in out and reports whether name was
// recognized. out is left unchanged when it was not.
func FromName(name string, out *Attribute) bool {
	a, ok := Lookup(name)
	if ok {
		*out = a
	}
	return ok
}
