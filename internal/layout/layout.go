// Package layout places fixed-size cells on a sequence of fixed-size pages.
//
// Cells are laid out row-major: left to right within a row and top to bottom
// within a page. When the next row would fall below the bottom edge of the
// page, exactly one new page is started and placement resumes at its top-left
// cell.
package layout

import (
	"errors"
	"fmt"
	"math"

	"pdf-stitcher/internal/region"
)

// ErrLayoutOverflow is returned for a configuration that cannot place a single cell.
var ErrLayoutOverflow = errors.New("layout overflow")

// A4 page size in points.
const (
	A4Width  = 595.0
	A4Height = 842.0
)

// Config describes the output page and its grid. Columns == 0 derives the
// column count from the page width.
type Config struct {
	PageWidth  float64 `json:"pageWidth" yaml:"pageWidth"`
	PageHeight float64 `json:"pageHeight" yaml:"pageHeight"`
	MarginLeft float64 `json:"marginLeft" yaml:"marginLeft"`
	MarginTop  float64 `json:"marginTop" yaml:"marginTop"`
	GapX       float64 `json:"gapX" yaml:"gapX"`
	GapY       float64 `json:"gapY" yaml:"gapY"`
	CellWidth  float64 `json:"cellWidth" yaml:"cellWidth"`
	CellHeight float64 `json:"cellHeight" yaml:"cellHeight"`
	Columns    int     `json:"columns" yaml:"columns"`
}

// Grid returns an A4 grid with 20pt margins and 10pt gaps.
func Grid(cellWidth, cellHeight float64, columns int) Config {
	return Config{
		PageWidth:  A4Width,
		PageHeight: A4Height,
		MarginLeft: 20,
		MarginTop:  20,
		GapX:       10,
		GapY:       10,
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		Columns:    columns,
	}
}

// OnePerPage returns a layout that gives every item a whole page of its own.
func OnePerPage(pageWidth, pageHeight float64) Config {
	return Config{
		PageWidth:  pageWidth,
		PageHeight: pageHeight,
		CellWidth:  pageWidth,
		CellHeight: pageHeight,
		Columns:    1,
	}
}

func overflow(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrLayoutOverflow, fmt.Sprintf(format, args...))
}

// Validate rejects configurations that would never place a cell or would loop forever.
func (c Config) Validate() error {
	for _, v := range []float64{c.PageWidth, c.PageHeight, c.MarginLeft, c.MarginTop, c.GapX, c.GapY, c.CellWidth, c.CellHeight} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return overflow("non-finite layout value")
		}
	}
	switch {
	case c.PageWidth <= 0 || c.PageHeight <= 0:
		return overflow("page size %.2f x %.2f", c.PageWidth, c.PageHeight)
	case c.CellWidth <= 0 || c.CellHeight <= 0:
		return overflow("cell size %.2f x %.2f", c.CellWidth, c.CellHeight)
	case c.CellWidth+c.GapX <= 0:
		return overflow("cell width plus horizontal gap must be positive")
	case c.CellHeight+c.GapY <= 0:
		return overflow("cell height plus vertical gap must be positive")
	case c.Columns < 0:
		return overflow("columns must not be negative (got %d)", c.Columns)
	case c.MarginLeft < 0 || c.MarginTop < 0:
		return overflow("margins must not be negative (left %.2f, top %.2f)", c.MarginLeft, c.MarginTop)
	}

	if c.yStart() < 0 {
		return overflow("cell height %.2f does not fit below top margin %.2f on a %.2f page", c.CellHeight, c.MarginTop, c.PageHeight)
	}
	if right := c.MarginLeft + float64(c.ColumnCount()-1)*(c.CellWidth+c.GapX) + c.CellWidth; right > c.PageWidth {
		return overflow("%d columns span to x=%.2f on a %.2f wide page", c.ColumnCount(), right, c.PageWidth)
	}
	return nil
}

// ColumnCount returns Columns, or the number of cells that fit across the page.
func (c Config) ColumnCount() int {
	if c.Columns > 0 {
		return c.Columns
	}
	n := int(math.Floor((c.PageWidth - c.MarginLeft) / (c.CellWidth + c.GapX)))
	if n < 1 {
		return 1
	}
	return n
}

// RowCount returns the number of rows that fit on one page.
func (c Config) RowCount() int {
	if c.yStart() < 0 {
		return 0
	}
	return int(math.Floor(c.yStart()/(c.CellHeight+c.GapY))) + 1
}

func (c Config) yStart() float64 {
	return c.PageHeight - c.MarginTop - c.CellHeight
}

// cell returns the cell rectangle at row, col in page space.
func (c Config) cell(row, col int) region.Rectangle {
	x := c.MarginLeft + float64(col)*(c.CellWidth+c.GapX)
	y := c.yStart() - float64(row)*(c.CellHeight+c.GapY)
	return region.Rect(x, y, c.CellWidth, c.CellHeight)
}
