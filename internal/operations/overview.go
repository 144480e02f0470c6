package operations

import (
	"shoebox/internal/catalog"
	"shoebox/internal/textutil"
)

// AlbumSummary pairs an album with the number of photos referencing it.
type AlbumSummary struct {
	Album      catalog.Album
	PhotoCount int
}

// Overview is a read-only snapshot of the catalog: collection sizes, the
// number of distinct tags (case-insensitive), and per-album photo counts in
// album storage order.
type Overview struct {
	PhotoCount int
	AlbumCount int
	TagCount   int
	Albums     []AlbumSummary
}

// BuildOverview loads both documents and summarizes them. No mutation.
func (r *Runner) BuildOverview() (*Overview, error) {
	photos, err := r.store.LoadPhotos()
	if err != nil {
		return nil, err
	}
	albums, err := r.store.LoadAlbums()
	if err != nil {
		return nil, err
	}

	distinctTags := make(map[string]struct{})
	for i := range photos {
		for _, tag := range photos[i].Tags {
			distinctTags[textutil.Fold(tag)] = struct{}{}
		}
	}

	summaries := make([]AlbumSummary, 0, len(albums))
	for _, album := range albums {
		count := 0
		for i := range photos {
			if photos[i].InAlbum(album.ID) {
				count++
			}
		}
		summaries = append(summaries, AlbumSummary{Album: album, PhotoCount: count})
	}

	return &Overview{
		PhotoCount: len(photos),
		AlbumCount: len(albums),
		TagCount:   len(distinctTags),
		Albums:     summaries,
	}, nil
}
