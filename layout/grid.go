package layout

import (
	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/page"
)

// Grid positions pages in rows of a fixed column count. The first row
// may hold fewer pages, which is the usual way to present book spreads
// with a single cover page. Each column is as wide as its widest page,
// each row as high as its highest, and every page is centered within
// its cell.
//
// A Grid also derives the layout's page-set sizes from its row
// parameters, so paged browsing steps one row at a time.
type Grid struct {
	// PagesPerRow is the number of columns. Default 2.
	PagesPerRow int

	// PagesFirstRow is the number of pages in the first row. Default 1.
	PagesFirstRow int

	// FitAllColumns makes fit-width divide the available width over
	// all used columns. When false, fit-width sizes a single page,
	// as in the stacked layouts. Default true.
	FitAllColumns bool
}

// NewGrid creates a grid with the default two columns and a single page
// in the first row
func NewGrid() *Grid {
	return &Grid{
		PagesPerRow:   2,
		PagesFirstRow: 1,
		FitAllColumns: true,
	}
}

func (g *Grid) pageSetSizes() (firstSet, perSet int) {
	return g.PagesFirstRow, g.PagesPerRow
}

// zoomFitWidth divides the available width over the used columns before
// asking the widest page, when FitAllColumns is set
func (g *Grid) zoomFitWidth(l *Layout, width float64) float64 {
	width -= l.Margins.Horizontal()
	if g.FitAllColumns {
		ncols := g.PagesPerRow
		if ncols < 1 {
			ncols = 1
		}
		if count := l.Count(); count < ncols {
			ncols = count
		}
		width = (width - l.Spacing*float64(ncols-1)) / float64(ncols)
	}
	return l.WidestPage().ZoomForWidth(width, l.Rotation, l.DPIX)
}

// Position arranges the pages in rows. When the page count exceeds the
// column count, the sequence is left-padded with empty slots so the
// first row holds exactly PagesFirstRow pages; otherwise everything
// fits in a single row.
func (g *Grid) Position(l *Layout) {
	cols := g.PagesPerRow
	if cols < 1 {
		cols = 1
	}
	var cells []*page.Geometry // nil entries are empty slots
	if l.Count() > cols {
		pad := ((cols-g.PagesFirstRow)%cols + cols) % cols
		cells = make([]*page.Geometry, pad, pad+l.Count())
	} else {
		cols = l.Count()
		cells = make([]*page.Geometry, 0, l.Count())
	}
	for _, p := range l.Pages() {
		cells = append(cells, p.Geometry())
	}
	if cols == 0 {
		return
	}

	// Column widths follow the widest page in each column stride.
	colWidths := make([]float64, cols)
	colOffsets := make([]float64, cols)
	offset := l.Margins.Left
	for col := 0; col < cols; col++ {
		var width float64
		for i := col; i < len(cells); i += cols {
			if cells[i] != nil && cells[i].Width > width {
				width = cells[i].Width
			}
		}
		colWidths[col] = width
		colOffsets[col] = offset
		offset += width + l.Spacing
	}

	// Rows stack downward, each as high as its highest page, with
	// every page centered in its cell.
	top := l.Margins.Top
	for start := 0; start < len(cells); start += cols {
		end := start + cols
		if end > len(cells) {
			end = len(cells)
		}
		row := cells[start:end]

		var height float64
		for _, cell := range row {
			if cell != nil && cell.Height > height {
				height = cell.Height
			}
		}
		for n, cell := range row {
			if cell == nil {
				continue
			}
			cell.Pos = model.Point{
				X: colOffsets[n] + (colWidths[n]-cell.Width)/2,
				Y: top + (height-cell.Height)/2,
			}
		}
		top += height + l.Spacing
	}
}
