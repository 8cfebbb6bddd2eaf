package outline

import (
	"regexp"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

var namedPageDest = regexp.MustCompile(`^p(\d+)$`)

// resolvePage maps an outline item's target to a 1-based page number.
// Producers encode destinations three ways: an explicit destination array on
// the item, a GoTo action holding one, or a named destination following the
// "pN" convention some publishers use. 0 means the page could not be
// determined; nothing here ever fails the walk.
func resolvePage(src Source, dest, act types.Object) int {
	if dest == nil && act != nil {
		a, err := src.Resolve(act)
		if err != nil {
			return 0
		}
		d, ok := a.(types.Dict)
		if !ok {
			return 0
		}
		dest, _ = d.Find("D")
	}
	if dest == nil {
		return 0
	}
	if ref, ok := dest.(types.IndirectRef); ok {
		o, err := src.Resolve(ref)
		if err != nil {
			return 0
		}
		dest = o
	}

	switch v := dest.(type) {
	case types.Array:
		return matchPage(src, v)
	case types.StringLiteral:
		bb, err := types.Unescape(v.Value())
		if err != nil {
			return 0
		}
		return namedPage(string(bb))
	case types.HexLiteral:
		bb, err := v.Bytes()
		if err != nil {
			return 0
		}
		return namedPage(string(bb))
	case types.Name:
		return namedPage(v.Value())
	}
	return 0
}

// matchPage takes the array form [page fit ...] and scans the document page
// list for the referenced page.
func matchPage(src Source, arr types.Array) int {
	if len(arr) == 0 {
		return 0
	}
	ref, ok := arr[0].(types.IndirectRef)
	if !ok {
		return 0
	}
	pages, err := src.Pages()
	if err != nil {
		return 0
	}
	for i, p := range pages {
		if p == ref {
			return i + 1
		}
	}
	return 0
}

// namedPage parses the "pN" named-destination convention. Arbitrary named
// destinations (name-tree lookups) are out of scope and yield no page.
func namedPage(s string) int {
	m := namedPageDest.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
