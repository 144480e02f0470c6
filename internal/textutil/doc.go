// Package textutil provides small text helpers shared across Shoebox.
//
// Its main job is canonical case folding: album names and tags are matched
// case-insensitively throughout the catalog, and every comparison routes
// through the same fold so "Beach", "BEACH", and "beach" are one value.
package textutil
