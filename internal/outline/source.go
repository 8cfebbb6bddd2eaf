package outline

import "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

// Source is the slice of a decoded PDF the extractor needs: the document
// catalog, an indirect-reference resolver, and the pages in file order.
// pdfdoc.Document implements it over pdfcpu; tests use an in-memory graph.
type Source interface {
	// Catalog returns the document catalog dictionary.
	Catalog() (types.Dict, error)

	// Resolve dereferences o if it is an indirect reference and returns any
	// other object unchanged.
	Resolve(o types.Object) (types.Object, error)

	// Pages lists the document's page object references in file order.
	Pages() ([]types.IndirectRef, error)
}
