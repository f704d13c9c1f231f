package stitch

import (
	"fmt"

	"pdf-stitcher/internal/region"
)

// PageSize is a page size in points.
type PageSize struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Region is an extracted region ready for packing. A nil Clip means the
// whole page of Source is the region.
type Region struct {
	Name   string
	Source Source
	Page   int
	Clip   *region.Rectangle
	Width  float64
	Height float64
}

// Extractor locates the configured region on the first page of a source.
//
// In direct mode the region is only a clip rectangle on the original source.
// With Cropped set, a single-page document sized to the region is built, and
// with FitToPage set as well that crop is scaled down to fit and centered on a
// page of the given size.
type Extractor struct {
	Spec      region.Spec
	Mode      region.ConversionMode
	Cropped   bool
	FitToPage *PageSize
}

// Rect resolves the region on page 0 of src.
func (e Extractor) Rect(src Source) (region.Rectangle, error) {
	if src.PageCount() == 0 {
		return region.Rectangle{}, fmt.Errorf("%w: document has no pages", ErrUnreadableSource)
	}
	w, h, err := src.PageSize(0)
	if err != nil {
		return region.Rectangle{}, fmt.Errorf("%w: %w", ErrUnreadableSource, err)
	}
	return region.Resolve(e.Spec, e.Mode, w, h)
}

// Extract resolves the region on src and materializes it as configured.
func (e Extractor) Extract(r Renderer, src Source) (Region, error) {
	rect, err := e.Rect(src)
	if err != nil {
		return Region{}, err
	}
	if !e.Cropped {
		return Region{Source: src, Clip: &rect, Width: rect.Width(), Height: rect.Height()}, nil
	}

	w, h := rect.Width(), rect.Height()
	cropped, err := materialize(r, w, h, region.Rect(0, 0, w, h), src, &rect)
	if err != nil {
		return Region{}, fmt.Errorf("crop: %w", err)
	}
	if e.FitToPage == nil {
		return Region{Source: cropped, Width: w, Height: h}, nil
	}

	tw, th := e.FitToPage.Width, e.FitToPage.Height
	placed, _ := region.FitToPage(w, h, tw, th)
	fitted, err := materialize(r, tw, th, placed, cropped, nil)
	if err != nil {
		return Region{}, fmt.Errorf("fit to page: %w", err)
	}
	return Region{Source: fitted, Width: tw, Height: th}, nil
}

// materialize renders page 0 of src (clipped) into dest on a fresh w x h
// single-page document and opens the result.
func materialize(r Renderer, w, h float64, dest region.Rectangle, src Source, clip *region.Rectangle) (Source, error) {
	out := r.NewDocument()
	page := out.NewPage(w, h)
	if err := out.Project(page, dest, src, 0, clip); err != nil {
		return nil, err
	}
	data, err := out.Serialize()
	if err != nil {
		return nil, err
	}
	return r.Open(data)
}
