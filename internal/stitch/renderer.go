package stitch

import (
	"fmt"

	"pdf-stitcher/internal/compose"
	"pdf-stitcher/internal/region"
)

// Source is an opened input document.
type Source interface {
	PageCount() int
	PageSize(index int) (width, height float64, err error)
}

// Output is a document under construction. It is serialized exactly once.
type Output interface {
	NewPage(width, height float64) int
	Project(page int, dest region.Rectangle, src Source, srcPage int, clip *region.Rectangle) error
	Serialize() ([]byte, error)
}

// Renderer opens sources and creates outputs.
type Renderer interface {
	Open(data []byte) (Source, error)
	NewDocument() Output
}

// PDF adapts a compose.Renderer to Renderer.
func PDF(r *compose.Renderer) Renderer {
	return pdfRenderer{r: r}
}

type pdfRenderer struct {
	r *compose.Renderer
}

func (p pdfRenderer) Open(data []byte) (Source, error) {
	doc, err := p.r.Open(data)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (p pdfRenderer) NewDocument() Output {
	return pdfOutput{p.r.NewDocument()}
}

type pdfOutput struct {
	*compose.Output
}

func (o pdfOutput) Project(page int, dest region.Rectangle, src Source, srcPage int, clip *region.Rectangle) error {
	doc, ok := src.(*compose.Document)
	if !ok {
		return fmt.Errorf("source %T was not opened by this renderer", src)
	}
	return o.Output.Project(page, dest, doc, srcPage, clip)
}
