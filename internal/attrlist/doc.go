// Package attrlist loads and validates the source list of canonical attribute
// spellings.
//
// The source list is a CUE file with a single ordered `attributes` list of
// {name, ident} entries. It is the only place the attribute vocabulary is
// written down: the generator derives both the Attribute constants and the
// lookup table from it, so the two can never drift apart.
//
// Loading is fail-fast and returns a *LoadError. Validation collects every
// problem it finds and returns them as ValidationError values.
package attrlist
