// Package render turns flattened outline records into display text.
package render

import (
	"fmt"
	"strings"

	"github.com/outlinekit/pdfoutline/internal/outline"
)

// NoOutlineMessage is printed under the document name when there are no
// outline entries to show.
const NoOutlineMessage = "No outline/chapters found in this PDF."

const defaultIndent = 2

// Options control rendering. MaxDepth is a 1-based level count; 0 means
// unlimited. Indent is the per-level indent width in spaces.
type Options struct {
	MaxDepth int
	Indent   int
}

func (o Options) indent() int {
	if o.Indent <= 0 {
		return defaultIndent
	}
	return o.Indent
}

// Visible drops records below the MaxDepth cutoff. Depth is 0-based, so a
// record is visible when Depth+1 <= MaxDepth.
func (o Options) Visible(recs []outline.Record) []outline.Record {
	if o.MaxDepth <= 0 {
		return recs
	}
	out := make([]outline.Record, 0, len(recs))
	for _, r := range recs {
		if r.Depth+1 <= o.MaxDepth {
			out = append(out, r)
		}
	}
	return out
}

// Markdown renders the outline as a nested list under a level-1 heading with
// the document name.
func Markdown(name string, recs []outline.Record, opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", name)

	vis := opts.Visible(recs)
	if len(vis) == 0 {
		b.WriteString(NoOutlineMessage + "\n")
		return b.String()
	}
	unit := strings.Repeat(" ", opts.indent())
	for _, r := range vis {
		b.WriteString(strings.Repeat(unit, r.Depth))
		b.WriteString("- ")
		b.WriteString(r.Title)
		b.WriteString(pageSuffix(r))
		b.WriteByte('\n')
	}
	return b.String()
}

func pageSuffix(r outline.Record) string {
	if r.Page == 0 {
		return ""
	}
	return fmt.Sprintf(" (p.%d)", r.Page)
}
