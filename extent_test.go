package bsgrid

import (
	"errors"
	"reflect"
	"testing"
)

func mustExtent(t *testing.T, bounds ...Range) Extent {
	t.Helper()
	e, err := FromBounds(bounds)
	if err != nil {
		t.Fatalf("unexpected error constructing extent: %v", err)
	}
	return e
}

func TestFromBoundsRejectsInvalidInput(t *testing.T) {
	if _, err := FromBounds(nil); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("expected ErrInvalidDimension for empty bounds, got %v", err)
	}
	if _, err := FromBounds([]Range{{Lo: 3, Hi: 1}}); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("expected ErrInvalidDimension for lo > hi, got %v", err)
	}
}

func TestFromFlatRejectsOddLength(t *testing.T) {
	if _, err := FromFlat([]int{0, 5, 0}); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("expected ErrInvalidDimension for odd flat sequence, got %v", err)
	}
	if _, err := FromFlat(nil); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("expected ErrInvalidDimension for empty flat sequence, got %v", err)
	}
}

func TestFromBufferTakesLeadingBounds(t *testing.T) {
	buf := []int{0, 5, 0, 3, 0, 1, 99, 99}
	e, err := FromBuffer(buf, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Dim() != 3 {
		t.Fatalf("expected dimension 3, got %d", e.Dim())
	}
	if got := e.Bound(2); got != (Range{Lo: 0, Hi: 1}) {
		t.Errorf("expected bound [0,1] in dimension 2, got %v", got)
	}
	if _, err := FromBuffer(buf[:5], 3); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("expected ErrInvalidDimension for short buffer, got %v", err)
	}
	if _, err := FromBuffer(buf, 0); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("expected ErrInvalidDimension for nd = 0, got %v", err)
	}
}

func TestDerivedSizesAndStrides(t *testing.T) {
	e := mustExtent(t, Range{0, 4}, Range{2, 4}, Range{-1, 0})
	wantSize := []int{5, 3, 2}
	wantStride := []int{1, 5, 15}
	for d := 0; d < e.Dim(); d++ {
		if e.Size(d) != wantSize[d] {
			t.Errorf("size[%d] = %d, want %d", d, e.Size(d), wantSize[d])
		}
		if e.Stride(d) != wantStride[d] {
			t.Errorf("stride[%d] = %d, want %d", d, e.Stride(d), wantStride[d])
		}
	}
	if e.NodeCount() != 30 {
		t.Errorf("NodeCount = %d, want 30", e.NodeCount())
	}
}

func TestNodeCountIsSizeProduct(t *testing.T) {
	cases := []struct {
		bounds []Range
		want   int
	}{
		{[]Range{{0, 0}}, 1},
		{[]Range{{0, 2}, {0, 1}}, 6},
		{[]Range{{1, 10}, {1, 10}, {1, 10}}, 1000},
		{[]Range{{-3, 3}, {5, 5}}, 7},
	}
	for _, c := range cases {
		e := mustExtent(t, c.bounds...)
		if got := e.NodeCount(); got != c.want {
			t.Errorf("NodeCount(%v) = %d, want %d", e, got, c.want)
		}
	}
	if (Extent{}).NodeCount() != 0 {
		t.Errorf("expected empty extent to cover no nodes")
	}
}

func TestFlattenRoundTrip(t *testing.T) {
	flats := [][]int{
		{0, 5},
		{0, 5, 0, 3},
		{-2, 2, 7, 7, 0, 100},
	}
	for _, flat := range flats {
		e, err := FromFlat(flat)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := e.Flatten(); !reflect.DeepEqual(got, flat) {
			t.Errorf("Flatten(FromFlat(%v)) = %v", flat, got)
		}
	}
}

func TestSetBoundsResynchronizesDerivedFields(t *testing.T) {
	e := mustExtent(t, Range{0, 4}, Range{0, 4})
	shrunk, err := e.SetBounds(0, Range{0, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shrunk.Stride(1) != 2 {
		t.Errorf("stride[1] = %d after SetBounds, want 2", shrunk.Stride(1))
	}
	if e.Stride(1) != 5 {
		t.Errorf("receiver mutated: stride[1] = %d, want 5", e.Stride(1))
	}
	if _, err := e.SetBounds(0, Range{2, 1}); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("expected ErrInvalidDimension for lo > hi, got %v", err)
	}
	if _, err := e.SetBounds(2, Range{0, 1}); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds for dimension 2, got %v", err)
	}
}

func TestActiveDimensionCount(t *testing.T) {
	cases := []struct {
		bounds []Range
		want   int
	}{
		{[]Range{{0, 2}, {0, 1}, {0, 3}}, 3},
		{[]Range{{0, 2}, {0, 1}, {5, 5}}, 2},
		{[]Range{{0, 2}, {7, 7}, {5, 5}}, 1},
		{[]Range{{1, 1}, {7, 7}, {5, 5}}, 0},
	}
	for _, c := range cases {
		e := mustExtent(t, c.bounds...)
		if got := e.ActiveDimensionCount(); got != c.want {
			t.Errorf("ActiveDimensionCount(%v) = %d, want %d", e, got, c.want)
		}
	}
}

func TestNodeNumber(t *testing.T) {
	e := mustExtent(t, Range{0, 2}, Range{0, 1}) // 3×2 nodes, strides 1 and 3
	cases := []struct {
		coord []int
		want  int
	}{
		{[]int{0, 0}, 1},
		{[]int{2, 0}, 3},
		{[]int{0, 1}, 4},
		{[]int{2, 1}, 6},
	}
	for _, c := range cases {
		got, err := e.NodeNumber(c.coord)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != c.want {
			t.Errorf("NodeNumber(%v) = %d, want %d", c.coord, got, c.want)
		}
	}
	if _, err := e.NodeNumber([]int{0, 0, 0}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
	if _, err := (Extent{}).NodeNumber([]int{}); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("expected ErrInvalidDimension for empty extent, got %v", err)
	}
}

func TestNodeNumberIsTranslationCovariant(t *testing.T) {
	// Shifting an extent and its query coordinate by the same offset must
	// not change the node number.
	e := mustExtent(t, Range{0, 3}, Range{0, 2}, Range{0, 1})
	shifted := mustExtent(t, Range{10, 13}, Range{-5, -3}, Range{100, 101})
	n1, err := e.NodeNumber([]int{2, 1, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n2, err := shifted.NodeNumber([]int{12, -4, 101})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n1 != n2 {
		t.Errorf("node numbers differ under translation: %d vs %d", n1, n2)
	}
}

func TestContains(t *testing.T) {
	e := mustExtent(t, Range{0, 5}, Range{0, 5})
	in, err := e.Contains([]int{5, 0})
	if err != nil || !in {
		t.Errorf("expected boundary coordinate to be contained, got %v, %v", in, err)
	}
	in, err = e.Contains([]int{6, 0})
	if err != nil || in {
		t.Errorf("expected coordinate outside bounds, got %v, %v", in, err)
	}
	if _, err := e.Contains([]int{0}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestExtentString(t *testing.T) {
	e := mustExtent(t, Range{0, 5}, Range{-1, 3})
	if got := e.String(); got != "[0,5]×[-1,3]" {
		t.Errorf("String() = %q", got)
	}
}
