// Package compose projects rectangular regions of PDF pages onto new pages
// using pdfcpu. Content is carried over as Form XObjects, so vector data is
// never rasterized.
package compose

import (
	"bytes"
	"errors"
	"fmt"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	pdfcpu "github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/sirupsen/logrus"
)

var (
	// ErrUnreadable is returned when a buffer cannot be opened as a PDF.
	ErrUnreadable = errors.New("unreadable PDF")
	// ErrWrongPassword is returned for encrypted input opened with the wrong password.
	ErrWrongPassword = errors.New("wrong PDF password")
)

// Renderer opens documents and creates output documents.
type Renderer struct {
	password string
	log      logrus.FieldLogger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPassword sets the user and owner password used to open encrypted input.
func WithPassword(password string) Option {
	return func(r *Renderer) { r.password = password }
}

// WithLogger sets the logger. The default is the logrus standard logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(r *Renderer) { r.log = l }
}

func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) config() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	if r.password != "" {
		conf.UserPW = r.password
		conf.OwnerPW = r.password
	}
	return conf
}

// Document is an opened PDF.
type Document struct {
	ctx *model.Context
}

// Open parses data as a PDF document.
func (r *Renderer) Open(data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty buffer", ErrUnreadable)
	}

	ctx, err := pdfapi.ReadValidateAndOptimize(bytes.NewReader(data), r.config())
	if err != nil {
		if errors.Is(err, pdfcpu.ErrWrongPassword) {
			return nil, fmt.Errorf("%w: %w", ErrUnreadable, ErrWrongPassword)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	r.log.WithFields(logrus.Fields{
		"bytes": len(data),
		"pages": ctx.PageCount,
	}).Debug("opened document")
	return &Document{ctx: ctx}, nil
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int { return d.ctx.PageCount }

// PageSize returns the visible size of the page at the zero-based index, as
// displayed (width and height swap for pages rotated by 90 or 270 degrees).
func (d *Document) PageSize(index int) (float64, float64, error) {
	pg, err := d.page(index)
	if err != nil {
		return 0, 0, err
	}
	w, h := pg.displaySize()
	return w, h, nil
}

type pageGeometry struct {
	box    *types.Rectangle
	rotate int
}

func (g pageGeometry) displaySize() (float64, float64) {
	if g.rotate == 90 || g.rotate == 270 {
		return g.box.Height(), g.box.Width()
	}
	return g.box.Width(), g.box.Height()
}

func (d *Document) page(index int) (pageGeometry, error) {
	if index < 0 || index >= d.ctx.PageCount {
		return pageGeometry{}, fmt.Errorf("page %d out of range [0, %d)", index, d.ctx.PageCount)
	}
	_, _, inh, err := d.ctx.PageDict(index+1, false)
	if err != nil {
		return pageGeometry{}, err
	}
	return geometry(inh, index+1)
}

func geometry(inh *model.InheritedPageAttrs, pageNr int) (pageGeometry, error) {
	if inh == nil {
		return pageGeometry{}, fmt.Errorf("page %d has no attributes", pageNr)
	}
	box := inh.CropBox
	if box == nil {
		box = inh.MediaBox
	}
	if box == nil {
		return pageGeometry{}, fmt.Errorf("page %d has no media box", pageNr)
	}
	rot := inh.Rotate % 360
	if rot < 0 {
		rot += 360
	}
	return pageGeometry{box: box, rotate: rot}, nil
}
