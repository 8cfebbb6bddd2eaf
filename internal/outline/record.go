package outline

import "errors"

// ErrNoOutline reports a document without a usable outline: the catalog has
// no Outlines entry, the outline root has no children, or every item lacks a
// title. Callers render it as an informational line, not a failure.
var ErrNoOutline = errors.New("document has no outline")

// Record is one flattened outline entry.
type Record struct {
	Title string `json:"title"`
	Page  int    `json:"page,omitempty"` // 1-based; 0 when unresolvable
	Depth int    `json:"depth"`          // 0 for top-level entries
}
