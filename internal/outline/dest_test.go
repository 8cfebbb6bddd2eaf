package outline

import (
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

func pagesSource(n int) *fakeSource {
	src := &fakeSource{objects: map[int]types.Object{}}
	for i := 0; i < n; i++ {
		src.pages = append(src.pages, ref(100+i))
	}
	return src
}

func TestResolvePage_NamedDestinations(t *testing.T) {
	src := pagesSource(0)
	tests := []struct {
		dest string
		want int
	}{
		{"p1", 1},
		{"p12", 12},
		{"p007", 7},
		{"page1", 0},
		{"p", 0},
		{"", 0},
		{"p3x", 0},
		{"xp3", 0},
	}
	for _, tt := range tests {
		if got := resolvePage(src, types.StringLiteral(tt.dest), nil); got != tt.want {
			t.Errorf("resolvePage(%q) = %d, want %d", tt.dest, got, tt.want)
		}
	}
}

func TestResolvePage_ArrayForm(t *testing.T) {
	src := pagesSource(3)

	if got := resolvePage(src, types.Array{ref(101), types.Name("Fit")}, nil); got != 2 {
		t.Errorf("expected page 2, got %d", got)
	}
	// First element references no page in the document.
	if got := resolvePage(src, types.Array{ref(999), types.Name("Fit")}, nil); got != 0 {
		t.Errorf("expected no page for unmatched reference, got %d", got)
	}
	if got := resolvePage(src, types.Array{}, nil); got != 0 {
		t.Errorf("expected no page for empty array, got %d", got)
	}
	// First element is not a reference.
	if got := resolvePage(src, types.Array{types.Integer(1)}, nil); got != 0 {
		t.Errorf("expected no page for non-reference element, got %d", got)
	}
}

func TestResolvePage_IndirectDestination(t *testing.T) {
	src := pagesSource(2)
	src.objects[50] = types.Array{ref(100), types.Name("XYZ")}

	if got := resolvePage(src, ref(50), nil); got != 1 {
		t.Errorf("expected page 1 via indirect destination, got %d", got)
	}
}

func TestResolvePage_ActionForm(t *testing.T) {
	src := pagesSource(2)
	src.objects[60] = types.Dict{
		"S": types.Name("GoTo"),
		"D": types.Array{ref(101), types.Name("Fit")},
	}

	// Action referenced indirectly.
	if got := resolvePage(src, nil, ref(60)); got != 2 {
		t.Errorf("expected page 2 via action, got %d", got)
	}
	// Direct action dict.
	if got := resolvePage(src, nil, src.objects[60]); got != 2 {
		t.Errorf("expected page 2 via direct action dict, got %d", got)
	}
	// Action without a destination.
	if got := resolvePage(src, nil, types.Dict{"S": types.Name("JavaScript")}); got != 0 {
		t.Errorf("expected no page for action without D, got %d", got)
	}
	// Action resolves to something that is not a dict.
	src.objects[61] = types.Integer(4)
	if got := resolvePage(src, nil, ref(61)); got != 0 {
		t.Errorf("expected no page for non-dict action, got %d", got)
	}
}

func TestResolvePage_DestWinsOverAction(t *testing.T) {
	src := pagesSource(2)
	src.objects[60] = types.Dict{"D": types.Array{ref(101), types.Name("Fit")}}

	dest := types.Array{ref(100), types.Name("Fit")}
	if got := resolvePage(src, dest, ref(60)); got != 1 {
		t.Errorf("expected direct destination to win, got %d", got)
	}
}

func TestResolvePage_Garbage(t *testing.T) {
	src := pagesSource(1)
	if got := resolvePage(src, nil, nil); got != 0 {
		t.Errorf("expected no page for missing dest and action, got %d", got)
	}
	if got := resolvePage(src, types.Integer(3), nil); got != 0 {
		t.Errorf("expected no page for integer destination, got %d", got)
	}
	if got := resolvePage(src, ref(999), nil); got != 0 {
		t.Errorf("expected no page for dangling reference, got %d", got)
	}
}
