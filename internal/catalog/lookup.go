package catalog

import "shoebox/internal/textutil"

// FindPhotoByID scans the collection in storage order and returns the first
// photo whose ID matches. A nil or empty collection yields no match.
func FindPhotoByID(photos []Photo, id int64) (*Photo, bool) {
	for i := range photos {
		if photos[i].ID == id {
			return &photos[i], true
		}
	}
	return nil, false
}

// FindAlbumByName scans the collection in storage order and returns the
// first album whose name matches after trimming and case folding both sides.
// The whole name must match; this is not a substring search.
func FindAlbumByName(albums []Album, name string) (*Album, bool) {
	want := textutil.CanonicalName(name)
	for i := range albums {
		if textutil.CanonicalName(albums[i].Name) == want {
			return &albums[i], true
		}
	}
	return nil, false
}
