package stitch

import (
	"errors"
	"fmt"

	"pdf-stitcher/internal/region"
)

// fakeRenderer records projections instead of rendering. Serialized outputs
// are "fake <pages> <w> <h>" and open as sources of that size.
type fakeRenderer struct {
	outputs []*fakeOutput
}

type fakeSource struct {
	pages         int
	width, height float64
}

func (s *fakeSource) PageCount() int { return s.pages }

func (s *fakeSource) PageSize(i int) (float64, float64, error) {
	if i < 0 || i >= s.pages {
		return 0, 0, fmt.Errorf("page %d out of range", i)
	}
	return s.width, s.height, nil
}

func fakeDoc(pages int, w, h float64) []byte {
	return []byte(fmt.Sprintf("fake %d %g %g", pages, w, h))
}

func (f *fakeRenderer) Open(data []byte) (Source, error) {
	s := &fakeSource{}
	if _, err := fmt.Sscanf(string(data), "fake %d %g %g", &s.pages, &s.width, &s.height); err != nil {
		return nil, errors.New("not a fake document")
	}
	return s, nil
}

func (f *fakeRenderer) NewDocument() Output {
	o := &fakeOutput{}
	f.outputs = append(f.outputs, o)
	return o
}

type fakeProjection struct {
	page int
	dest region.Rectangle
	src  Source
	clip *region.Rectangle
}

type fakeOutput struct {
	pages       []PageSize
	projections []fakeProjection
}

func (o *fakeOutput) NewPage(w, h float64) int {
	o.pages = append(o.pages, PageSize{Width: w, Height: h})
	return len(o.pages) - 1
}

func (o *fakeOutput) Project(page int, dest region.Rectangle, src Source, srcPage int, clip *region.Rectangle) error {
	if page >= len(o.pages) {
		return fmt.Errorf("page %d out of range", page)
	}
	o.projections = append(o.projections, fakeProjection{page: page, dest: dest, src: src, clip: clip})
	return nil
}

func (o *fakeOutput) Serialize() ([]byte, error) {
	return fakeDoc(len(o.pages), o.pages[0].Width, o.pages[0].Height), nil
}
