// Package overlay places recognized characters onto a PDF page as
// invisible, selectable text, so that a reader's search and copy-paste
// see the glyphs the recognition core found without changing a single
// visible pixel (spec.md §6.2).
package overlay

import (
	"github.com/unidoc/unipdf/v4/creator"
	"github.com/unidoc/unipdf/v4/model"

	"github.com/sigilscan/sigilscan/match"
)

// Writer accumulates an invisible text layer over a document's pages.
type Writer struct {
	creator *creator.Creator
	font    *model.PdfFont
	debug   bool
}

// Option configures a Writer.
type Option func(*Writer)

// WithDebugVisible renders the overlay text filled and colored instead of
// invisible, for inspecting alignment while tuning a dictionary.
func WithDebugVisible() Option {
	return func(w *Writer) { w.debug = true }
}

// New returns a Writer using font for the overlay text. A single-byte-encoded
// standard font (the CLI passes Helvetica) is enough here: the overlay
// never needs to look like the original typeface, only to carry the
// correct characters at the correct position.
func New(font *model.PdfFont, opts ...Option) *Writer {
	c := creator.New()
	w := &Writer{creator: c, font: font}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// AddPage imports an existing PDF page into the overlay document, so its
// original (visible) content is preserved underneath the invisible text
// this Writer adds.
func (w *Writer) AddPage(page *model.PdfPage) error {
	return w.creator.AddPage(page)
}

// PlaceMatches draws one invisible character per match onto the page most
// recently added via AddPage. fontSize is the overlay's nominal point
// size; each character is independently scaled by its match's SF so a
// search hit lands within the glyph's own drawn footprint.
func (w *Writer) PlaceMatches(matches []*match.Match, fontSize float64) error {
	for _, m := range matches {
		if err := w.placeOne(m, fontSize); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) placeOne(m *match.Match, fontSize float64) error {
	p := w.creator.NewStyledParagraph()
	p.SetPos(m.Origin.X, m.Origin.Y)
	p.SetAngle(-m.Sig.Angle)

	chunk := p.Append(string(m.Sig.Char))
	chunk.Style.Font = w.font
	chunk.Style.FontSize = fontSize * m.SF
	if w.debug {
		chunk.Style.RenderingMode = creator.TextRenderingModeFill
		chunk.Style.Color = creator.ColorRGBFrom8bit(220, 20, 20)
	} else {
		chunk.Style.RenderingMode = creator.TextRenderingModeInvisible
	}

	return w.creator.Draw(p)
}

// WriteToFile renders every added page, with its invisible text layer, to
// outputPath.
func (w *Writer) WriteToFile(outputPath string) error {
	return w.creator.WriteToFile(outputPath)
}
