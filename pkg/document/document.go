package document

// MediaTypePDF is the media type of rendered PDF documents.
const MediaTypePDF = "application/pdf"

// Field is one labeled line of a rendered document.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Renderer turns a title and an ordered field sequence into transport-ready
// document bytes. Each field becomes one line, in the given order, preceded
// by a heading line with the title.
type Renderer interface {
	Render(title string, fields []Field) ([]byte, error)
}
