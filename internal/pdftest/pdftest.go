// Package pdftest builds small single-page PDFs for tests.
package pdftest

import (
	"bytes"
	"fmt"
)

// Page describes the single page of a generated document.
type Page struct {
	Width, Height float64
	Rotate        int
	// Content is the raw content stream. Empty draws a filled square.
	Content string
}

// A4 returns the bytes of an A4 document with a filled square.
func A4() []byte {
	return Build(Page{Width: 595, Height: 842})
}

// Build writes a valid one-page PDF with a correct cross-reference table.
func Build(p Page) []byte {
	content := p.Content
	if content == "" {
		content = "0 0 1 rg 72 72 144 144 re f"
	}
	rotate := ""
	if p.Rotate != 0 {
		rotate = fmt.Sprintf(" /Rotate %d", p.Rotate)
	}

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %g %g]%s /Resources << >> /Contents 4 0 R >>", p.Width, p.Height, rotate),
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}
