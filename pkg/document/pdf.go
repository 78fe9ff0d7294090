package document

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

type pdfRenderer struct{}

// NewPDFRenderer creates a renderer that produces single-page A4 PDF
// documents in memory.
func NewPDFRenderer() Renderer {
	return &pdfRenderer{}
}

func (r *pdfRenderer) Render(title string, fields []Field) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)

	pdf.Cell(40, 10, title)
	pdf.Ln(-1)

	for _, f := range fields {
		pdf.Cell(40, 10, fmt.Sprintf("%s: %s", f.Label, f.Value))
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("document: failed to render PDF: %w", err)
	}

	return buf.Bytes(), nil
}
