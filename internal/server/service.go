// Package server exposes the stitcher over HTTP: the stitch.v1 Connect service
// for programmatic use and a multipart upload endpoint that answers with the
// stitched PDF as a download.
package server

import (
	"pdf-stitcher/gen/go/stitcher"
	"pdf-stitcher/internal/layout"
	"pdf-stitcher/internal/region"
	"pdf-stitcher/internal/stitch"
)

// RegionSpec converts a wire region.
func RegionSpec(r *stitcher.Region) region.Spec {
	return region.Spec{
		OriginX: r.GetX(),
		OriginY: r.GetY(),
		Width:   r.GetW(),
		Height:  r.GetH(),
		OffsetX: r.GetOffsetX(),
		OffsetY: r.GetOffsetY(),
	}
}

// RegionMessage is the inverse of RegionSpec.
func RegionMessage(s region.Spec) *stitcher.Region {
	return &stitcher.Region{
		X:       s.OriginX,
		Y:       s.OriginY,
		W:       s.Width,
		H:       s.Height,
		OffsetX: s.OffsetX,
		OffsetY: s.OffsetY,
	}
}

// LayoutConfig converts a wire layout.
func LayoutConfig(l *stitcher.Layout) layout.Config {
	return layout.Config{
		PageWidth:  l.GetPageWidth(),
		PageHeight: l.GetPageHeight(),
		MarginLeft: l.GetMarginLeft(),
		MarginTop:  l.GetMarginTop(),
		GapX:       l.GetGapX(),
		GapY:       l.GetGapY(),
		CellWidth:  l.GetCellWidth(),
		CellHeight: l.GetCellHeight(),
		Columns:    int(l.GetColumns()),
	}
}

// LayoutMessage is the inverse of LayoutConfig.
func LayoutMessage(c layout.Config) *stitcher.Layout {
	return &stitcher.Layout{
		PageWidth:  c.PageWidth,
		PageHeight: c.PageHeight,
		MarginLeft: c.MarginLeft,
		MarginTop:  c.MarginTop,
		GapX:       c.GapX,
		GapY:       c.GapY,
		CellWidth:  c.CellWidth,
		CellHeight: c.CellHeight,
		Columns:    int32(c.Columns),
	}
}

func rectMessage(r region.Rectangle) *stitcher.Rect {
	return &stitcher.Rect{X0: r.X0, Y0: r.Y0, X1: r.X1, Y1: r.Y1}
}

func placementMessages(placed []stitch.Placed) []*stitcher.Placement {
	out := make([]*stitcher.Placement, 0, len(placed))
	for _, p := range placed {
		out = append(out, &stitcher.Placement{
			Index:   int32(p.Index),
			Page:    int32(p.Page),
			Row:     int32(p.Row),
			Column:  int32(p.Column),
			Cell:    rectMessage(p.Rect),
			NewPage: p.NewPage,
			Name:    p.Name,
			Dest:    rectMessage(p.Dest),
		})
	}
	return out
}

func skippedMessages(skipped []stitch.Skipped) []*stitcher.Skipped {
	if len(skipped) == 0 {
		return nil
	}
	out := make([]*stitcher.Skipped, 0, len(skipped))
	for _, s := range skipped {
		out = append(out, &stitcher.Skipped{Index: int32(s.Index), Name: s.Name, Reason: s.Reason})
	}
	return out
}
