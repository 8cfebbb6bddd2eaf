package render

import (
	"strings"

	"github.com/outlinekit/pdfoutline/internal/outline"
)

// Tree renders the outline with box-drawing connectors under the document
// name.
func Tree(name string, recs []outline.Record, opts Options) string {
	var b strings.Builder
	b.WriteString(name + "\n")

	vis := opts.Visible(recs)
	if len(vis) == 0 {
		b.WriteString(NoOutlineMessage + "\n")
		return b.String()
	}
	barSeg := "│" + strings.Repeat(" ", opts.indent()+1)
	blankSeg := strings.Repeat(" ", opts.indent()+2)
	for i, r := range vis {
		for level := 0; level < r.Depth; level++ {
			if pending(vis, i, level) {
				b.WriteString(barSeg)
			} else {
				b.WriteString(blankSeg)
			}
		}
		if lastSibling(vis, i) {
			b.WriteString("└── ")
		} else {
			b.WriteString("├── ")
		}
		b.WriteString(r.Title)
		b.WriteString(pageSuffix(r))
		b.WriteByte('\n')
	}
	return b.String()
}

// lastSibling reports whether vis[i] is the final visible entry at its depth
// before the sequence returns to a shallower level.
func lastSibling(vis []outline.Record, i int) bool {
	for j := i + 1; j < len(vis); j++ {
		switch {
		case vis[j].Depth < vis[i].Depth:
			return true
		case vis[j].Depth == vis[i].Depth:
			return false
		}
	}
	return true
}

// pending reports whether the ancestor column at level still has a sibling
// coming after vis[i], which keeps that column's vertical bar running.
func pending(vis []outline.Record, i, level int) bool {
	for j := i + 1; j < len(vis); j++ {
		if vis[j].Depth < level {
			return false
		}
		if vis[j].Depth == level {
			return true
		}
	}
	return false
}
