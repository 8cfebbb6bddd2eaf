// Package pdfdoc wraps pdfcpu's decoded object model behind the small
// capability surface the outline extractor needs.
package pdfdoc

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Document is a read-only handle on a parsed PDF. It implements
// outline.Source. pdfcpu dereferences objects lazily from the underlying
// reader, so the file stays open for the Document's lifetime.
type Document struct {
	f     *os.File
	ctx   *model.Context
	pages []types.IndirectRef
}

// Open parses and validates the PDF at path. Callers must Close the returned
// Document.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	ctx, err := api.ReadContext(f, conf)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("malformed PDF: %w", err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		f.Close()
		return nil, fmt.Errorf("malformed PDF: %w", err)
	}
	return &Document{f: f, ctx: ctx}, nil
}

func (d *Document) Close() error { return d.f.Close() }

// Catalog returns the document catalog dictionary.
func (d *Document) Catalog() (types.Dict, error) { return d.ctx.Catalog() }

// Resolve dereferences o if it is an indirect reference.
func (d *Document) Resolve(o types.Object) (types.Object, error) {
	return d.ctx.Dereference(o)
}

// Pages returns the page object references in file order, walking the page
// tree once and caching the result.
func (d *Document) Pages() ([]types.IndirectRef, error) {
	if d.pages != nil {
		return d.pages, nil
	}
	catalog, err := d.ctx.Catalog()
	if err != nil {
		return nil, err
	}
	rootObj, found := catalog.Find("Pages")
	if !found {
		return nil, fmt.Errorf("catalog has no page tree")
	}
	var pages []types.IndirectRef
	seen := map[types.IndirectRef]bool{}
	if err := d.collectPages(rootObj, seen, &pages); err != nil {
		return nil, err
	}
	d.pages = pages
	return pages, nil
}

// collectPages walks a page-tree node. Interior nodes carry Kids, leaves are
// the pages themselves. The seen set breaks reference cycles in corrupt
// files.
func (d *Document) collectPages(obj types.Object, seen map[types.IndirectRef]bool, pages *[]types.IndirectRef) error {
	ref, ok := obj.(types.IndirectRef)
	if !ok {
		return nil
	}
	if seen[ref] {
		return nil
	}
	seen[ref] = true

	o, err := d.ctx.Dereference(ref)
	if err != nil {
		return err
	}
	dict, ok := o.(types.Dict)
	if !ok {
		return nil
	}
	kidsObj, found := dict.Find("Kids")
	if !found {
		*pages = append(*pages, ref)
		return nil
	}
	ko, err := d.ctx.Dereference(kidsObj)
	if err != nil {
		return err
	}
	kids, ok := ko.(types.Array)
	if !ok {
		return nil
	}
	for _, kid := range kids {
		if err := d.collectPages(kid, seen, pages); err != nil {
			return err
		}
	}
	return nil
}
