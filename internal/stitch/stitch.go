// Package stitch cuts a fixed region out of the first page of every input
// document and packs the regions onto a grid of output pages.
package stitch

import (
	"context"
	"errors"
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"

	"pdf-stitcher/internal/layout"
)

var (
	// ErrUnreadableSource is returned for input that is not a document or has no first page.
	ErrUnreadableSource = errors.New("unreadable source")
	// ErrNoInputs is returned when there is nothing to pack.
	ErrNoInputs = errors.New("no inputs")
)

// ItemError ties a failure to the input that caused it.
type ItemError struct {
	Index int
	Name  string
	Err   error
}

func (e *ItemError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("input %d: %v", e.Index+1, e.Err)
	}
	return fmt.Sprintf("input %d (%s): %v", e.Index+1, e.Name, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }

// Policy decides what happens to a batch when an input cannot be read.
type Policy int

const (
	// AbortBatch fails the whole batch on the first unreadable input.
	AbortBatch Policy = iota
	// SkipUnreadable leaves unreadable inputs out and reports them in Result.Skipped.
	SkipUnreadable
)

// Input is one uploaded document.
type Input struct {
	Name string
	Data []byte
}

// Options configure a batch.
type Options struct {
	Extractor Extractor
	Layout    layout.Config
	Policy    Policy
	Logger    logrus.FieldLogger
}

// Stitch extracts the region from every input in order and packs them into
// one document. Invalid regions and layouts always abort the batch.
func Stitch(ctx context.Context, r Renderer, inputs []Input, opts Options) (*Result, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}
	if err := opts.Extractor.Spec.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Layout.Validate(); err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	batch, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("nanoid: %w", err)
	}
	log = log.WithFields(logrus.Fields{
		"batch":  batch,
		"inputs": len(inputs),
		"mode":   opts.Extractor.Mode.String(),
	})

	var (
		items   = make([]Region, 0, len(inputs))
		skipped []Skipped
	)
	for i, in := range inputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ilog := log.WithFields(logrus.Fields{"index": i, "name": in.Name})
		ilog.Debug("processing")

		it, err := extractOne(r, in, opts.Extractor)
		if err != nil {
			if opts.Policy == SkipUnreadable && errors.Is(err, ErrUnreadableSource) {
				ilog.WithError(err).Warn("skipping unreadable input")
				skipped = append(skipped, Skipped{Index: i, Name: in.Name, Reason: err.Error()})
				continue
			}
			return nil, &ItemError{Index: i, Name: in.Name, Err: err}
		}
		it.Name = in.Name
		items = append(items, it)

		ilog.WithField("progress", fmt.Sprintf("%d/%d", i+1, len(inputs))).Info("extracted region")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: all %d inputs were unreadable", ErrNoInputs, len(inputs))
	}

	res, err := Pack(r, items, opts.Layout)
	if err != nil {
		var ie *ItemError
		if errors.As(err, &ie) {
			ie.Index = inputIndex(ie.Index, skipped)
		}
		return nil, err
	}
	for i := range res.Placements {
		res.Placements[i].Index = inputIndex(i, skipped)
	}
	res.Skipped = skipped

	log.WithFields(logrus.Fields{
		"pages":   res.Pages,
		"skipped": len(skipped),
		"bytes":   len(res.PDF),
	}).Info("stitched")
	return res, nil
}

func extractOne(r Renderer, in Input, e Extractor) (Region, error) {
	src, err := r.Open(in.Data)
	if err != nil {
		return Region{}, fmt.Errorf("%w: %w", ErrUnreadableSource, err)
	}
	return e.Extract(r, src)
}

// inputIndex maps the position of a packed item back to its input index.
func inputIndex(packed int, skipped []Skipped) int {
	idx := packed
	for _, s := range skipped {
		if s.Index <= idx {
			idx++
		}
	}
	return idx
}
