package compose

import (
	"bytes"
	"testing"

	lpdf "github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdf-stitcher/internal/pdftest"
	"pdf-stitcher/internal/region"
)

// countPages reads data with an independent parser.
func countPages(t *testing.T, data []byte) int {
	t.Helper()
	r, err := lpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	return r.NumPage()
}

func TestOpenRejectsGarbage(t *testing.T) {
	r := NewRenderer()

	_, err := r.Open([]byte("definitely not a pdf"))
	assert.ErrorIs(t, err, ErrUnreadable)

	_, err = r.Open(nil)
	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestPageSize(t *testing.T) {
	r := NewRenderer()

	doc, err := r.Open(pdftest.A4())
	require.NoError(t, err)
	assert.Equal(t, 1, doc.PageCount())

	w, h, err := doc.PageSize(0)
	require.NoError(t, err)
	assert.InDelta(t, 595, w, 0.01)
	assert.InDelta(t, 842, h, 0.01)

	_, _, err = doc.PageSize(1)
	assert.Error(t, err)

	rotated, err := r.Open(pdftest.Build(pdftest.Page{Width: 595, Height: 842, Rotate: 90}))
	require.NoError(t, err)
	w, h, err = rotated.PageSize(0)
	require.NoError(t, err)
	assert.InDelta(t, 842, w, 0.01)
	assert.InDelta(t, 595, h, 0.01)
}

func TestProjectValidates(t *testing.T) {
	r := NewRenderer()
	doc, err := r.Open(pdftest.A4())
	require.NoError(t, err)

	out := r.NewDocument()
	p := out.NewPage(100, 100)

	assert.Error(t, out.Project(p+1, region.Rect(0, 0, 10, 10), doc, 0, nil))
	assert.Error(t, out.Project(p, region.Rectangle{}, doc, 0, nil))
	assert.Error(t, out.Project(p, region.Rect(0, 0, 10, 10), nil, 0, nil))
	assert.Error(t, out.Project(p, region.Rect(0, 0, 10, 10), doc, 3, nil))

	empty := region.Rectangle{X0: 5, Y0: 5, X1: 5, Y1: 9}
	assert.Error(t, out.Project(p, region.Rect(0, 0, 10, 10), doc, 0, &empty))
}

func TestSerializeCrop(t *testing.T) {
	r := NewRenderer()
	doc, err := r.Open(pdftest.A4())
	require.NoError(t, err)

	clip := region.Rectangle{X0: 68.035, Y0: 426.2579, X1: 170.085, Y1: 660.1179}
	out := r.NewDocument()
	p := out.NewPage(clip.Width(), clip.Height())
	require.NoError(t, out.Project(p, region.Rect(0, 0, clip.Width(), clip.Height()), doc, 0, &clip))

	data, err := out.Serialize()
	require.NoError(t, err)
	assert.Equal(t, 1, countPages(t, data))

	cropped, err := r.Open(data)
	require.NoError(t, err)
	w, h, err := cropped.PageSize(0)
	require.NoError(t, err)
	assert.InDelta(t, 102.05, w, 0.01)
	assert.InDelta(t, 233.86, h, 0.01)
}

func TestSerializeDropsSurplusCarriers(t *testing.T) {
	r := NewRenderer()
	var docs []*Document
	for i := 0; i < 3; i++ {
		doc, err := r.Open(pdftest.A4())
		require.NoError(t, err)
		docs = append(docs, doc)
	}

	out := r.NewDocument()
	first := out.NewPage(595, 842)
	clip := region.Rect(0, 0, 200, 300)
	require.NoError(t, out.Project(first, region.Rect(20, 500, 100, 150), docs[0], 0, &clip))
	require.NoError(t, out.Project(first, region.Rect(130, 500, 100, 150), docs[1], 0, &clip))
	second := out.NewPage(595, 842)
	require.NoError(t, out.Project(second, region.Rect(20, 500, 100, 150), docs[2], 0, &clip))

	data, err := out.Serialize()
	require.NoError(t, err)
	assert.Equal(t, 2, countPages(t, data))

	res, err := r.Open(data)
	require.NoError(t, err)
	w, h, err := res.PageSize(1)
	require.NoError(t, err)
	assert.InDelta(t, 595, w, 0.01)
	assert.InDelta(t, 842, h, 0.01)
}

func TestSerializePadsCarriers(t *testing.T) {
	r := NewRenderer()
	doc, err := r.Open(pdftest.Build(pdftest.Page{Width: 300, Height: 200, Rotate: 270}))
	require.NoError(t, err)

	out := r.NewDocument()
	for i := 0; i < 3; i++ {
		p := out.NewPage(400, 400)
		require.NoError(t, out.Project(p, region.Rect(10, 10, 100, 150), doc, 0, nil))
	}

	data, err := out.Serialize()
	require.NoError(t, err)
	assert.Equal(t, 3, countPages(t, data))
}

func TestSerializeOnce(t *testing.T) {
	r := NewRenderer()
	doc, err := r.Open(pdftest.A4())
	require.NoError(t, err)

	out := r.NewDocument()
	p := out.NewPage(100, 100)
	require.NoError(t, out.Project(p, region.Rect(0, 0, 100, 100), doc, 0, nil))

	_, err = out.Serialize()
	require.NoError(t, err)

	_, err = out.Serialize()
	assert.ErrorIs(t, err, ErrSerialized)
	assert.ErrorIs(t, out.Project(p, region.Rect(0, 0, 100, 100), doc, 0, nil), ErrSerialized)
}

func TestSerializeWithoutContent(t *testing.T) {
	out := NewRenderer().NewDocument()
	_, err := out.Serialize()
	assert.Error(t, err)

	out = NewRenderer().NewDocument()
	out.NewPage(100, 100)
	_, err = out.Serialize()
	assert.Error(t, err)
}

func TestProjectionContent(t *testing.T) {
	it := projection{
		dest: region.Rect(10, 20, 50, 100),
		clip: region.Rect(100, 200, 100, 200),
	}
	got := string(projectionContent(it, "Fm0"))
	assert.Equal(t, "q 10.00000 20.00000 50.00000 100.00000 re W n 0.50000 0 0 0.50000 -40.00000 -80.00000 cm /Fm0 Do Q\n", got)
}
