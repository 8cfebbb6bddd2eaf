package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"

	"github.com/outlinekit/pdfoutline/internal/outline"
)

// HTML converts the markdown rendering into a standalone HTML page.
func HTML(name string, recs []outline.Record, opts Options) (string, error) {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(name, recs, opts)), &body); err != nil {
		return "", fmt.Errorf("convert outline to html: %w", err)
	}
	var b bytes.Buffer
	fmt.Fprintf(&b, "<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>%s</title></head>\n<body>\n", html.EscapeString(name))
	b.Write(body.Bytes())
	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}
