package layout

import (
	"fmt"

	"pdf-stitcher/internal/region"
)

// State of a Packer between two placements.
type State int

const (
	Placing State = iota
	PageFull
)

func (s State) String() string {
	switch s {
	case Placing:
		return "placing"
	case PageFull:
		return "page-full"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Cursor is the position of the next cell.
type Cursor struct {
	Page   int `json:"page"`
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Placement is where one item lands.
type Placement struct {
	Index   int              `json:"index"`
	Page    int              `json:"page"`
	Row     int              `json:"row"`
	Column  int              `json:"column"`
	Rect    region.Rectangle `json:"rect"`
	NewPage bool             `json:"newPage,omitempty"`
}

// Packer hands out placements for one pack run. It is not safe for
// concurrent use; create one per run.
type Packer struct {
	cfg     Config
	columns int
	cursor  Cursor
	state   State
	placed  int
}

// NewPacker validates cfg and positions the cursor on the first cell of page 0.
func NewPacker(cfg Config) (*Packer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Packer{cfg: cfg, columns: cfg.ColumnCount()}, nil
}

// Next returns the placement for the next item and advances the cursor.
func (p *Packer) Next() Placement {
	rect := p.cfg.cell(p.cursor.Row, p.cursor.Column)
	newPage := false

	p.state = Placing
	if rect.Y0 < 0 {
		p.state = PageFull
	}
	if p.state == PageFull {
		p.cursor = Cursor{Page: p.cursor.Page + 1}
		rect = p.cfg.cell(0, 0)
		newPage = true
		p.state = Placing
	}

	pl := Placement{
		Index:   p.placed,
		Page:    p.cursor.Page,
		Row:     p.cursor.Row,
		Column:  p.cursor.Column,
		Rect:    rect,
		NewPage: newPage,
	}
	p.placed++

	p.cursor.Column++
	if p.cursor.Column == p.columns {
		p.cursor.Column = 0
		p.cursor.Row++
	}
	return pl
}

// Pages returns the number of pages started so far.
func (p *Packer) Pages() int { return p.cursor.Page + 1 }

// Columns returns the column count fixed for this run.
func (p *Packer) Columns() int { return p.columns }

// Cursor returns the position of the next cell.
func (p *Packer) Cursor() Cursor { return p.cursor }

// Plan places n items and returns their placements and the page count.
func Plan(cfg Config, n int) ([]Placement, int, error) {
	if n < 0 {
		return nil, 0, fmt.Errorf("negative item count %d", n)
	}
	p, err := NewPacker(cfg)
	if err != nil {
		return nil, 0, err
	}
	out := make([]Placement, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, p.Next())
	}
	return out, p.Pages(), nil
}
