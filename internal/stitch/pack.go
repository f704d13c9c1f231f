package stitch

import (
	"fmt"

	"pdf-stitcher/internal/layout"
	"pdf-stitcher/internal/region"
)

// Placed records where an item ended up. Dest is the cell shrunk to the
// region's aspect ratio.
type Placed struct {
	layout.Placement
	Name string           `json:"name,omitempty"`
	Dest region.Rectangle `json:"dest"`
}

// Skipped is an input left out under SkipUnreadable.
type Skipped struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Result is a packed document.
type Result struct {
	PDF        []byte
	Pages      int
	Placements []Placed
	Skipped    []Skipped
}

// Pack places items in order on cfg's grid and renders the output document.
func Pack(r Renderer, items []Region, cfg layout.Config) (*Result, error) {
	packer, err := layout.NewPacker(cfg)
	if err != nil {
		return nil, err
	}

	out := r.NewDocument()
	page := out.NewPage(cfg.PageWidth, cfg.PageHeight)
	placed := make([]Placed, 0, len(items))

	for i, it := range items {
		pl := packer.Next()
		if pl.NewPage {
			page = out.NewPage(cfg.PageWidth, cfg.PageHeight)
		}

		dest := region.Center(it.Width, it.Height, pl.Rect, true)
		if err := out.Project(page, dest, it.Source, it.Page, it.Clip); err != nil {
			return nil, &ItemError{Index: i, Name: it.Name, Err: fmt.Errorf("place: %w", err)}
		}
		placed = append(placed, Placed{Placement: pl, Name: it.Name, Dest: dest})
	}

	data, err := out.Serialize()
	if err != nil {
		return nil, err
	}
	return &Result{PDF: data, Pages: packer.Pages(), Placements: placed}, nil
}
