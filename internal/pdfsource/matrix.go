package pdfsource

import "math"

// matrix is a PDF-style 2D affine transform: [a b 0; c d 0; tx ty 1]. It is
// deliberately minimal — just what reading a content stream's `cm`/`q`/`Q`
// operators needs — since the full transform package backing the creator
// and contentstream collaborators is internal to unipdf and not
// importable from outside the module.
type matrix struct {
	a, b, c, d, tx, ty float64
}

func identityMatrix() matrix {
	return matrix{a: 1, d: 1}
}

// rotationMatrix returns the initial CTM implied by a page's /Rotate entry
// (always a multiple of 90), mapping the unrotated page box onto the
// rotated device space.
func rotationMatrix(degrees int64, width, height float64) matrix {
	switch ((degrees % 360) + 360) % 360 {
	case 90:
		return matrix{a: 0, b: 1, c: -1, d: 0, tx: height, ty: 0}
	case 180:
		return matrix{a: -1, b: 0, c: 0, d: -1, tx: width, ty: height}
	case 270:
		return matrix{a: 0, b: -1, c: 1, d: 0, tx: 0, ty: width}
	default:
		return identityMatrix()
	}
}

func (m matrix) transform(x, y float64) (float64, float64) {
	return x*m.a + y*m.c + m.tx, x*m.b + y*m.d + m.ty
}

func (m matrix) isUnrealistic() bool {
	return math.IsNaN(m.a) || math.IsInf(m.a, 0) ||
		math.IsNaN(m.d) || math.IsInf(m.d, 0)
}
