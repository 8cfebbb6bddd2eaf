package outline

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// maxNesting caps outline recursion. Malformed files can nest absurdly or
// self-reference; past this depth a branch is abandoned, not an error.
const maxNesting = 32

// item is one outline entry in the arena. first and next are arena indices,
// -1 when the corresponding link is absent.
type item struct {
	title []byte
	dest  types.Object
	act   types.Object
	first int
	next  int
}

// Extract walks the document's outline and returns the flattened pre-order
// record sequence. It returns ErrNoOutline when the document has no usable
// outline; any other error means the catalog itself could not be resolved.
// Per-item failures (bad references, undecodable titles) skip the affected
// branch instead of failing the walk.
func Extract(src Source) ([]Record, error) {
	catalog, err := src.Catalog()
	if err != nil {
		return nil, fmt.Errorf("resolve catalog: %w", err)
	}
	rootObj, found := catalog.Find("Outlines")
	if !found {
		return nil, ErrNoOutline
	}
	root, err := resolveDict(src, rootObj)
	if err != nil || root == nil {
		return nil, ErrNoOutline
	}
	firstObj, found := root.Find("First")
	if !found {
		return nil, ErrNoOutline
	}

	b := &arena{src: src, visited: map[types.IndirectRef]bool{}}
	head := b.load(firstObj, 0)
	if head < 0 {
		return nil, ErrNoOutline
	}

	var recs []Record
	b.flatten(head, 0, &recs)
	if len(recs) == 0 {
		return nil, ErrNoOutline
	}
	return recs, nil
}

// arena materializes the outline's linked dictionaries into indexed items so
// each reference is resolved exactly once and revisits are detectable.
type arena struct {
	src     Source
	items   []item
	visited map[types.IndirectRef]bool
}

// load resolves the item referenced by obj along with its children and
// sibling chain, returning the arena index of the head or -1. A reference
// seen before, a resolution failure, or nesting past maxNesting ends that
// branch silently.
func (b *arena) load(obj types.Object, depth int) int {
	if depth >= maxNesting {
		return -1
	}
	if ref, ok := obj.(types.IndirectRef); ok {
		if b.visited[ref] {
			return -1
		}
		b.visited[ref] = true
	}
	d, err := resolveDict(b.src, obj)
	if err != nil || d == nil {
		return -1
	}

	idx := len(b.items)
	b.items = append(b.items, item{first: -1, next: -1})
	b.items[idx].title = rawTitle(b.src, d)
	if v, found := d.Find("Dest"); found {
		b.items[idx].dest = v
	}
	if v, found := d.Find("A"); found {
		b.items[idx].act = v
	}
	if v, found := d.Find("First"); found {
		b.items[idx].first = b.load(v, depth+1)
	}
	if v, found := d.Find("Next"); found {
		b.items[idx].next = b.load(v, depth)
	}
	return idx
}

// flatten emits records pre-order: an item, then its child subtree, then its
// siblings. Titleless items are dropped but their children still appear.
func (b *arena) flatten(idx, depth int, out *[]Record) {
	for ; idx >= 0; idx = b.items[idx].next {
		it := b.items[idx]
		if title := decodeTitle(it.title); title != "" {
			*out = append(*out, Record{
				Title: title,
				Page:  resolvePage(b.src, it.dest, it.act),
				Depth: depth,
			})
		}
		if it.first >= 0 {
			b.flatten(it.first, depth+1, out)
		}
	}
}

// rawTitle extracts the undecoded Title bytes from an outline item dict.
func rawTitle(src Source, d types.Dict) []byte {
	obj, found := d.Find("Title")
	if !found {
		return nil
	}
	if ref, ok := obj.(types.IndirectRef); ok {
		r, err := src.Resolve(ref)
		if err != nil {
			return nil
		}
		obj = r
	}
	switch s := obj.(type) {
	case types.StringLiteral:
		bb, err := types.Unescape(s.Value())
		if err != nil {
			return nil
		}
		return bb
	case types.HexLiteral:
		bb, err := s.Bytes()
		if err != nil {
			return nil
		}
		return bb
	}
	return nil
}

// resolveDict dereferences obj and returns it as a dict, or nil if it is
// anything else.
func resolveDict(src Source, obj types.Object) (types.Dict, error) {
	o, err := src.Resolve(obj)
	if err != nil {
		return nil, err
	}
	d, ok := o.(types.Dict)
	if !ok {
		return nil, nil
	}
	return d, nil
}
