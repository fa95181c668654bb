package selection

import (
	"github.com/KirkDiggler/custom-lobby/internal/entities/lol"
	"github.com/KirkDiggler/custom-lobby/internal/errors"
)

// CategoryIndex maps each role tag to the catalog indices carrying it.
// It is derived from one catalog and never modified; rebuild it when the
// catalog changes.
type CategoryIndex struct {
	size     int
	byTag    map[lol.Tag][]int
	itemTags [][]lol.Tag
}

// BuildIndex parses every champion's tags and groups champions by tag, in
// catalog order. An unrecognised tag or a repeated champion ID is a DataError.
func BuildIndex(catalog *lol.Catalog) (*CategoryIndex, error) {
	if catalog == nil {
		return nil, errors.InvalidArgument("catalog is required")
	}

	idx := &CategoryIndex{
		size:     catalog.Len(),
		byTag:    make(map[lol.Tag][]int),
		itemTags: make([][]lol.Tag, catalog.Len()),
	}

	seen := make(map[string]bool, catalog.Len())
	for i := range catalog.Champions {
		champ := &catalog.Champions[i]
		if seen[champ.ID] {
			return nil, &DataError{Item: champ.ID, Reason: "duplicate champion id"}
		}
		seen[champ.ID] = true

		tags, err := championTags(champ)
		if err != nil {
			return nil, err
		}
		idx.itemTags[i] = tags
		for _, t := range tags {
			idx.byTag[t] = append(idx.byTag[t], i)
		}
	}

	return idx, nil
}

// championTags parses and de-duplicates a champion's published tags.
func championTags(champ *lol.Champion) ([]lol.Tag, error) {
	tags := make([]lol.Tag, 0, len(champ.Tags))
	for _, raw := range champ.Tags {
		tag, err := lol.ParseTag(raw)
		if err != nil {
			return nil, &DataError{Item: champ.ID, Tag: raw, Reason: "malformed tag"}
		}
		dup := false
		for _, have := range tags {
			if have == tag {
				dup = true
				break
			}
		}
		if !dup {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

// Len is the size of the indexed catalog
func (x *CategoryIndex) Len() int {
	return x.size
}

// Items returns the indices of champions carrying tag, ascending.
// The slice is shared and must not be modified.
func (x *CategoryIndex) Items(tag lol.Tag) []int {
	return x.byTag[tag]
}

// Tags returns the parsed tags of the champion at index i
func (x *CategoryIndex) Tags(i int) []lol.Tag {
	return x.itemTags[i]
}
