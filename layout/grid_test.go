package layout

import (
	"math"
	"testing"

	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/page"
)

func TestNewGridDefaults(t *testing.T) {
	g := NewGrid()
	if g.PagesPerRow != 2 {
		t.Errorf("PagesPerRow = %d, want 2", g.PagesPerRow)
	}
	if g.PagesFirstRow != 1 {
		t.Errorf("PagesFirstRow = %d, want 1", g.PagesFirstRow)
	}
	if !g.FitAllColumns {
		t.Error("FitAllColumns = false, want true")
	}
}

func TestGridRowMembership(t *testing.T) {
	// Three columns, one page in the first row, seven pages. The rows
	// must come out as [p0], [p1 p2 p3], [p4 p5 p6].
	l := newTestLayout(&Grid{PagesPerRow: 3, PagesFirstRow: 1},
		model.Size{Width: 100, Height: 200},
		model.Size{Width: 110, Height: 190},
		model.Size{Width: 120, Height: 180},
		model.Size{Width: 130, Height: 170},
		model.Size{Width: 140, Height: 160},
		model.Size{Width: 150, Height: 150},
		model.Size{Width: 160, Height: 140},
	)
	l.Update()

	// Column strides (after padding with two empty slots): column 0
	// holds p1 and p4, column 1 holds p2 and p5, column 2 holds p0, p3
	// and p6. Column widths are the stride maxima: 140, 150, 160.
	// Row heights are 200, 190, 160.
	wantPos := []model.Point{
		{X: 342, Y: 6},   // p0: column 2, centered in 160
		{X: 21, Y: 214},  // p1: column 0, centered in 140
		{X: 169, Y: 219}, // p2: column 1, centered in 150
		{X: 327, Y: 224}, // p3: column 2, centered in 160
		{X: 6, Y: 412},   // p4
		{X: 154, Y: 417}, // p5
		{X: 312, Y: 422}, // p6
	}

	for i, want := range wantPos {
		got := l.Page(i).Geometry().Pos
		if math.Abs(got.X-want.X) > tol || math.Abs(got.Y-want.Y) > tol {
			t.Errorf("page %d pos = %+v, want %+v", i, got, want)
		}
	}
}

func TestGridSingleRow(t *testing.T) {
	// With no more pages than columns, the column count shrinks to the
	// page count and no padding happens.
	l := newTestLayout(&Grid{PagesPerRow: 4, PagesFirstRow: 1},
		model.Size{Width: 100, Height: 100},
		model.Size{Width: 100, Height: 100},
	)
	l.Update()

	g0 := l.Page(0).Geometry()
	g1 := l.Page(1).Geometry()
	if g0.Pos != (model.Point{X: 6, Y: 6}) {
		t.Errorf("page 0 pos = %+v, want {6, 6}", g0.Pos)
	}
	if g1.Pos != (model.Point{X: 114, Y: 6}) {
		t.Errorf("page 1 pos = %+v, want {114, 6}", g1.Pos)
	}
}

func TestGridZeroValue(t *testing.T) {
	// A composite-literal Grid with no fields set falls back to a
	// single column instead of dividing by zero.
	l := newTestLayout(&Grid{},
		model.Size{Width: 100, Height: 150},
		model.Size{Width: 100, Height: 150},
		model.Size{Width: 100, Height: 150},
	)
	l.Update()

	wantPos := []model.Point{
		{X: 6, Y: 6},
		{X: 6, Y: 164},
		{X: 6, Y: 322},
	}
	for i, want := range wantPos {
		got := l.Page(i).Geometry().Pos
		if math.Abs(got.X-want.X) > tol || math.Abs(got.Y-want.Y) > tol {
			t.Errorf("page %d pos = %+v, want %+v", i, got, want)
		}
	}
	if l.Size() != (model.Size{Width: 112, Height: 478}) {
		t.Errorf("Size() = %+v, want {112, 478}", l.Size())
	}

	want := (500.0 - 12) / 100
	if got := l.ZoomFitWidth(500); math.Abs(got-want) > tol {
		t.Errorf("ZoomFitWidth(500) = %v, want %v", got, want)
	}

	fitAll := newTestLayout(&Grid{FitAllColumns: true},
		model.Size{Width: 100, Height: 150},
	)
	if got := fitAll.ZoomFitWidth(500); math.IsInf(got, 0) || math.Abs(got-want) > tol {
		t.Errorf("ZoomFitWidth(500) with FitAllColumns = %v, want %v", got, want)
	}
}

func TestGridEmptyLayout(t *testing.T) {
	l := New(NewGrid())
	l.Update()
	if l.Size() != (model.Size{Width: 12, Height: 12}) {
		t.Errorf("Size() = %+v, want margins only {12, 12}", l.Size())
	}
}

func TestGridZoomFitWidth(t *testing.T) {
	sizes := []model.Size{
		{Width: 100, Height: 200},
		{Width: 110, Height: 190},
		{Width: 120, Height: 180},
		{Width: 130, Height: 170},
		{Width: 140, Height: 160},
		{Width: 150, Height: 150},
		{Width: 160, Height: 140},
	}

	t.Run("all columns", func(t *testing.T) {
		l := newTestLayout(&Grid{PagesPerRow: 3, PagesFirstRow: 1, FitAllColumns: true}, sizes...)
		// (500 - 12 - 2*8) / 3 = 157.33 per column, widest page 160.
		want := (500.0 - 12 - 16) / 3 / 160
		if got := l.ZoomFitWidth(500); math.Abs(got-want) > tol {
			t.Errorf("ZoomFitWidth(500) = %v, want %v", got, want)
		}
	})

	t.Run("single column", func(t *testing.T) {
		l := newTestLayout(&Grid{PagesPerRow: 3, PagesFirstRow: 1}, sizes...)
		// Without FitAllColumns the widest page gets the full width.
		want := (500.0 - 12) / 160
		if got := l.ZoomFitWidth(500); math.Abs(got-want) > tol {
			t.Errorf("ZoomFitWidth(500) = %v, want %v", got, want)
		}
	})

	t.Run("fewer pages than columns", func(t *testing.T) {
		l := newTestLayout(&Grid{PagesPerRow: 3, PagesFirstRow: 1, FitAllColumns: true},
			model.Size{Width: 100, Height: 100},
			model.Size{Width: 100, Height: 100},
		)
		// Only two columns are used: (500 - 12 - 8) / 2 = 240.
		want := 240.0 / 100
		if got := l.ZoomFitWidth(500); math.Abs(got-want) > tol {
			t.Errorf("ZoomFitWidth(500) = %v, want %v", got, want)
		}
	})
}

func TestGridFitBothIsConsistent(t *testing.T) {
	l := newTestLayout(&Grid{PagesPerRow: 2, PagesFirstRow: 1, FitAllColumns: true},
		model.Size{Width: 100, Height: 150},
		model.Size{Width: 100, Height: 150},
		model.Size{Width: 100, Height: 150},
	)

	size := model.Size{Width: 400, Height: 300}
	l.Fit(size, FitBoth)
	first := l.ZoomFactor
	l.Update()
	l.Fit(size, FitBoth)
	if l.ZoomFactor != first {
		t.Errorf("Fit() drifted on a grid: %v -> %v", first, l.ZoomFactor)
	}
}

func TestGridPageSetSizes(t *testing.T) {
	// A grid drives the page sets from its row parameters, one row per
	// set, ignoring the layout's own fields.
	l := New(&Grid{PagesPerRow: 3, PagesFirstRow: 1})
	for i := 0; i < 7; i++ {
		l.Append(page.NewBase(100, 100))
	}
	l.PagesPerSet = 99 // must be ignored

	sets := l.PageSets()
	want := []PageSetRun{{Count: 1, Length: 1}, {Count: 2, Length: 3}}
	if len(sets) != len(want) {
		t.Fatalf("PageSets() = %+v, want %+v", sets, want)
	}
	for i := range want {
		if sets[i] != want[i] {
			t.Errorf("PageSets()[%d] = %+v, want %+v", i, sets[i], want[i])
		}
	}

	l.ContinuousMode = false
	l.CurrentPageSet = 1
	display := l.DisplayPages()
	if len(display) != 3 || display[0] != l.Page(1) {
		t.Errorf("DisplayPages() for set 1 = %d pages starting at %d",
			len(display), l.IndexOf(display[0]))
	}
}
