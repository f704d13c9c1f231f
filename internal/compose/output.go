package compose

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	pdfcpu "github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/sirupsen/logrus"

	"pdf-stitcher/internal/region"
)

// ErrSerialized is returned when an Output is used after Serialize.
var ErrSerialized = errors.New("output already serialized")

// page-level entries that make no sense once a carrier page is reused as output
var droppedPageKeys = []string{"Rotate", "Annots", "Thumb", "B", "BleedBox", "TrimBox", "ArtBox"}

type sourceKey struct {
	doc  *Document
	page int
}

type projection struct {
	dest region.Rectangle
	clip region.Rectangle
	src  sourceKey
}

type outputPage struct {
	width, height float64
	items         []projection
}

// Output collects pages and projections and renders them once in Serialize.
type Output struct {
	r     *Renderer
	pages []*outputPage
	done  bool
}

// NewDocument starts an empty output document.
func (r *Renderer) NewDocument() *Output {
	return &Output{r: r}
}

// NewPage appends a width x height page and returns its index.
func (o *Output) NewPage(width, height float64) int {
	o.pages = append(o.pages, &outputPage{width: width, height: height})
	return len(o.pages) - 1
}

// PageCount returns the number of pages added so far.
func (o *Output) PageCount() int { return len(o.pages) }

// Project copies page srcPage of src, clipped to clip (the whole visible page
// when clip is nil), into dest on output page page. Both rectangles are in the
// respective page's coordinate space with the origin at the lower left.
func (o *Output) Project(page int, dest region.Rectangle, src *Document, srcPage int, clip *region.Rectangle) error {
	if o.done {
		return ErrSerialized
	}
	if page < 0 || page >= len(o.pages) {
		return fmt.Errorf("output page %d out of range [0, %d)", page, len(o.pages))
	}
	if src == nil {
		return errors.New("nil source document")
	}
	if dest.Empty() {
		return fmt.Errorf("empty destination rectangle %s", dest)
	}

	w, h, err := src.PageSize(srcPage)
	if err != nil {
		return err
	}
	c := region.Rect(0, 0, w, h)
	if clip != nil {
		c = *clip
	}
	if c.Empty() {
		return fmt.Errorf("empty clip rectangle %s", c)
	}

	p := o.pages[page]
	p.items = append(p.items, projection{dest: dest, clip: c, src: sourceKey{doc: src, page: srcPage}})
	return nil
}

// Serialize renders all pages into a PDF. Pages are built on top of carrier
// pages: every referenced source page is extracted and merged into one
// context, converted into a Form XObject, and the first N merged pages are
// rewritten as the N output pages. Surplus carriers are removed.
func (o *Output) Serialize() ([]byte, error) {
	if o.done {
		return nil, ErrSerialized
	}
	o.done = true

	if len(o.pages) == 0 {
		return nil, errors.New("output has no pages")
	}

	var sources []sourceKey
	index := map[sourceKey]int{}
	for _, p := range o.pages {
		for _, it := range p.items {
			if _, ok := index[it.src]; !ok {
				index[it.src] = len(sources)
				sources = append(sources, it.src)
			}
		}
	}
	if len(sources) == 0 {
		return nil, errors.New("output has no content")
	}

	ctx, err := o.mergeCarriers(sources)
	if err != nil {
		return nil, err
	}

	forms := make([]types.IndirectRef, len(sources))
	for i := range sources {
		ref, err := formFromPage(ctx, i+1)
		if err != nil {
			return nil, fmt.Errorf("source %d: %w", i, err)
		}
		forms[i] = *ref
	}

	for i, p := range o.pages {
		if err := writeOutputPage(ctx, i+1, p, index, forms); err != nil {
			return nil, fmt.Errorf("output page %d: %w", i, err)
		}
	}

	var buf bytes.Buffer
	if err := pdfapi.WriteContext(ctx, &buf); err != nil {
		return nil, err
	}

	data := buf.Bytes()
	if ctx.PageCount > len(o.pages) {
		var trimmed bytes.Buffer
		surplus := []string{fmt.Sprintf("%d-", len(o.pages)+1)}
		if err := pdfapi.RemovePages(bytes.NewReader(data), &trimmed, surplus, model.NewDefaultConfiguration()); err != nil {
			return nil, err
		}
		data = trimmed.Bytes()
	}

	o.r.log.WithFields(logrus.Fields{
		"pages":   len(o.pages),
		"sources": len(sources),
		"bytes":   len(data),
	}).Debug("serialized output")
	return data, nil
}

// mergeCarriers returns a context whose page i+1 is sources[i]; when there are
// more output pages than sources, copies of the first source pad the context.
func (o *Output) mergeCarriers(sources []sourceKey) (*model.Context, error) {
	segments := make([][]byte, 0, len(o.pages))
	for _, s := range sources {
		seg, err := extractPage(s.doc.ctx, s.page+1)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	for len(segments) < len(o.pages) {
		segments = append(segments, segments[0])
	}

	merged := segments[0]
	if len(segments) > 1 {
		readers := make([]io.ReadSeeker, len(segments))
		for i, data := range segments {
			readers[i] = bytes.NewReader(data)
		}
		var out bytes.Buffer
		if err := pdfapi.MergeRaw(readers, &out, false, model.NewDefaultConfiguration()); err != nil {
			return nil, err
		}
		merged = out.Bytes()
	}

	ctx, err := pdfapi.ReadValidateAndOptimize(bytes.NewReader(merged), model.NewDefaultConfiguration())
	if err != nil {
		return nil, err
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, err
	}
	if ctx.PageCount != len(segments) {
		return nil, fmt.Errorf("merged %d pages, want %d", ctx.PageCount, len(segments))
	}
	return ctx, nil
}

func extractPage(ctxSrc *model.Context, pageNr int) ([]byte, error) {
	ctxPage, err := pdfcpu.ExtractPages(ctxSrc, []int{pageNr}, false)
	if err != nil {
		return nil, err
	}
	if err := ctxPage.EnsurePageCount(); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := pdfapi.WriteContext(ctxPage, &out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// formFromPage wraps the content of page pageNr into a Form XObject whose
// coordinate space is the page as displayed: origin at the lower left of the
// visible box, rotation applied.
func formFromPage(ctx *model.Context, pageNr int) (*types.IndirectRef, error) {
	pageDict, _, inh, err := ctx.PageDict(pageNr, false)
	if err != nil {
		return nil, err
	}
	if pageDict == nil {
		return nil, fmt.Errorf("page %d missing", pageNr)
	}
	g, err := geometry(inh, pageNr)
	if err != nil {
		return nil, err
	}

	var content []byte
	if pageDict["Contents"] != nil {
		if content, err = ctx.PageContent(pageDict, pageNr); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	buf.WriteString("q ")
	if g.rotate != 0 {
		buf.Write(model.ContentBytesForPageRotation(g.rotate, g.box.Width(), g.box.Height()))
	}
	fmt.Fprintf(&buf, "1 0 0 1 %.5f %.5f cm\n", -g.box.LL.X, -g.box.LL.Y)
	buf.Write(content)
	buf.WriteString("\nQ")

	sd, err := ctx.NewStreamDictForBuf(buf.Bytes())
	if err != nil {
		return nil, err
	}
	w, h := g.displaySize()
	sd.Dict["Type"] = types.Name("XObject")
	sd.Dict["Subtype"] = types.Name("Form")
	sd.Dict["BBox"] = types.RectForWidthAndHeight(0, 0, w, h).Array()
	if inh.Resources != nil {
		sd.Dict["Resources"] = inh.Resources
	}
	if err := sd.Encode(); err != nil {
		return nil, err
	}
	return ctx.IndRefForNewObject(*sd)
}

// writeOutputPage turns carrier page pageNr into output page p.
func writeOutputPage(ctx *model.Context, pageNr int, p *outputPage, index map[sourceKey]int, forms []types.IndirectRef) error {
	pageDict, _, _, err := ctx.PageDict(pageNr, false)
	if err != nil {
		return err
	}
	if pageDict == nil {
		return fmt.Errorf("carrier page %d missing", pageNr)
	}

	box := types.RectForWidthAndHeight(0, 0, p.width, p.height)
	pageDict["MediaBox"] = box.Array()
	pageDict["CropBox"] = box.Array()
	for _, k := range droppedPageKeys {
		pageDict.Delete(k)
	}

	xobjects := types.Dict{}
	var buf bytes.Buffer
	for _, it := range p.items {
		i := index[it.src]
		name := fmt.Sprintf("Fm%d", i)
		xobjects[name] = forms[i]
		buf.Write(projectionContent(it, name))
	}
	pageDict["Resources"] = types.Dict{"XObject": xobjects}

	sd, err := ctx.NewStreamDictForBuf(buf.Bytes())
	if err != nil {
		return err
	}
	if err := sd.Encode(); err != nil {
		return err
	}
	ref, err := ctx.IndRefForNewObject(*sd)
	if err != nil {
		return err
	}
	pageDict["Contents"] = *ref
	return nil
}

// projectionContent clips to dest and maps clip onto dest.
func projectionContent(it projection, form string) []byte {
	sx := it.dest.Width() / it.clip.Width()
	sy := it.dest.Height() / it.clip.Height()
	tx := it.dest.X0 - sx*it.clip.X0
	ty := it.dest.Y0 - sy*it.clip.Y0

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "q %.5f %.5f %.5f %.5f re W n ", it.dest.X0, it.dest.Y0, it.dest.Width(), it.dest.Height())
	fmt.Fprintf(&buf, "%.5f 0 0 %.5f %.5f %.5f cm /%s Do Q\n", sx, sy, tx, ty, form)
	return buf.Bytes()
}
