// Package catalog defines the photo catalog data model and the pure lookup
// and formatting rules the operations are built from.
//
// A catalog is two ordered collections: photos and albums, each persisted as
// one JSON array document. The package owns the JSON shapes (including the
// raw-preserving codecs for loosely typed fields like date and resolution),
// the linear lookup semantics (first match wins, album names matched
// case-insensitively on trimmed text), and the display formatting for dates,
// delimited lists, and resolutions.
//
// Nothing here touches disk; see internal/store for document persistence.
package catalog
