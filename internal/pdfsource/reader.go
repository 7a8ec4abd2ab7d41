// Package pdfsource adapts a PDF page's content stream into the flat
// sequence of absolute pen-up/pen-down operations the recognition core
// operates on (spec.md §6.1), using unipdf's content-stream parser and
// processor to track the graphics state across q/Q/cm.
package pdfsource

import (
	"fmt"
	"io"
	"os"

	"github.com/unidoc/unipdf/v4/common"
	"github.com/unidoc/unipdf/v4/contentstream"
	"github.com/unidoc/unipdf/v4/core"
	"github.com/unidoc/unipdf/v4/model"

	"github.com/sigilscan/sigilscan/opstream"
)

// Document is an open PDF file ready to have its pages' op streams read.
type Document struct {
	reader *model.PdfReader
	closer io.Closer
}

// Open reads the PDF file at path. The returned Document must be closed
// when no longer needed.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	reader, err := model.NewPdfReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("pdfsource: %w", err)
	}

	return &Document{reader: reader, closer: f}, nil
}

// Close releases the underlying file handle.
func (d *Document) Close() error { return d.closer.Close() }

// NumPages returns the document's page count.
func (d *Document) NumPages() (int, error) { return d.reader.GetNumPages() }

// Page returns the given 1-indexed page's model, for a caller (such as the
// overlay writer) that needs the page object itself rather than its op
// stream.
func (d *Document) Page(pageNumber int) (*model.PdfPage, error) {
	return d.reader.GetPage(pageNumber)
}

// PageOps returns the absolute op stream for the given 1-indexed page:
// every m/l/c operator's endpoint, transformed by the graphics state's CTM
// at the point it was drawn, with curves lowered to a single terminal
// line (see SPEC_FULL.md §7, Open Questions).
func (d *Document) PageOps(pageNumber int) ([]opstream.AbsOp, error) {
	page, err := d.reader.GetPage(pageNumber)
	if err != nil {
		return nil, fmt.Errorf("pdfsource: page %d: %w", pageNumber, err)
	}

	contentStr, err := page.GetAllContentStreams()
	if err != nil {
		return nil, fmt.Errorf("pdfsource: page %d content stream: %w", pageNumber, err)
	}

	resources := page.Resources
	if resources == nil {
		resources = model.NewPdfPageResources()
	}

	parsed, err := contentstream.NewContentStreamParser(contentStr).Parse()
	if err != nil {
		return nil, fmt.Errorf("pdfsource: page %d: %w", pageNumber, err)
	}
	ops := prependInitialCTM(*parsed, page)

	var abs []opstream.AbsOp

	proc := contentstream.NewContentStreamProcessor(ops)
	proc.AddHandler(contentstream.HandlerConditionEnumOperand, "m", func(op *contentstream.ContentStreamOperation, gs contentstream.GraphicsState, _ *model.PdfPageResources) error {
		x, y, err := point(op, gs)
		if err != nil {
			return err
		}
		abs = append(abs, opstream.AbsOp{X: x, Y: y, Op: opstream.Move})
		return nil
	})
	proc.AddHandler(contentstream.HandlerConditionEnumOperand, "l", func(op *contentstream.ContentStreamOperation, gs contentstream.GraphicsState, _ *model.PdfPageResources) error {
		x, y, err := point(op, gs)
		if err != nil {
			return err
		}
		abs = append(abs, opstream.AbsOp{X: x, Y: y, Op: opstream.Line})
		return nil
	})
	proc.AddHandler(contentstream.HandlerConditionEnumOperand, "c", func(op *contentstream.ContentStreamOperation, gs contentstream.GraphicsState, _ *model.PdfPageResources) error {
		x, y, err := curveEndpoint(op, gs)
		if err != nil {
			return err
		}
		abs = append(abs, opstream.AbsOp{X: x, Y: y, Op: opstream.Line})
		return nil
	})

	if err := proc.Process(resources); err != nil {
		return nil, fmt.Errorf("pdfsource: page %d: %w", pageNumber, err)
	}

	return abs, nil
}

// point extracts and transforms an m/l operator's single (x, y) operand.
func point(op *contentstream.ContentStreamOperation, gs contentstream.GraphicsState) (float64, float64, error) {
	f, err := core.GetNumbersAsFloat(op.Params)
	if err != nil || len(f) != 2 {
		return 0, 0, fmt.Errorf("pdfsource: malformed %q operands", op.Operand)
	}
	x, y := gs.Transform(f[0], f[1])
	return x, y, nil
}

// curveEndpoint extracts a `c` operator's final control point: a cubic
// Bézier's terminal coordinate, the only one that matters once the curve
// is lowered to a straight line for recognition purposes.
func curveEndpoint(op *contentstream.ContentStreamOperation, gs contentstream.GraphicsState) (float64, float64, error) {
	f, err := core.GetNumbersAsFloat(op.Params)
	if err != nil || len(f) != 6 {
		return 0, 0, fmt.Errorf("pdfsource: malformed %q operands", op.Operand)
	}
	x, y := gs.Transform(f[4], f[5])
	return x, y, nil
}

// prependInitialCTM inserts a synthetic cm operation ahead of ops encoding
// the page's /Rotate entry: the processor always starts a page with an
// identity CTM, and concatenating a rotation onto the very first op is
// the only hook available from outside unipdf's internal transform
// package.
func prependInitialCTM(ops contentstream.ContentStreamOperations, page *model.PdfPage) contentstream.ContentStreamOperations {
	var rotate int64
	if page.Rotate != nil {
		rotate = *page.Rotate
	}
	if rotate%360 == 0 {
		return ops
	}

	width, height := pageDimensions(page)
	m := rotationMatrix(rotate, width, height)
	if m.isUnrealistic() {
		common.Log.Debug("pdfsource: unrealistic rotation matrix for /Rotate %d, skipping", rotate)
		return ops
	}

	cm := &contentstream.ContentStreamOperation{
		Operand: "cm",
		Params: []core.PdfObject{
			core.MakeFloat(m.a), core.MakeFloat(m.b),
			core.MakeFloat(m.c), core.MakeFloat(m.d),
			core.MakeFloat(m.tx), core.MakeFloat(m.ty),
		},
	}
	return append(contentstream.ContentStreamOperations{cm}, ops...)
}

func pageDimensions(page *model.PdfPage) (float64, float64) {
	box, err := page.GetMediaBox()
	if err != nil || box == nil {
		return 0, 0
	}
	return box.Urx - box.Llx, box.Ury - box.Lly
}
