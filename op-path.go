// seehuhn.de/go/pdfgen - a library for generating PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdfgen

// This file implements the "Path construction" and "Path painting"
// operators, tables 58 to 60 of PDF 32000-1:2008, together with the
// clipping path operators of table 61.

// MoveTo begins a new subpath at the given point.
//
// This implements the PDF graphics operator "m".
func (c *DrawContext) MoveTo(x, y float64) error {
	c.writeOps(format(x), format(y), "m")
	return nil
}

// LineTo appends a straight line segment to the current path.
//
// This implements the PDF graphics operator "l".
func (c *DrawContext) LineTo(x, y float64) error {
	c.writeOps(format(x), format(y), "l")
	return nil
}

// CurveTo appends a cubic Bezier curve with two control points.
//
// This implements the PDF graphics operator "c".
func (c *DrawContext) CurveTo(x1, y1, x2, y2, x3, y3 float64) error {
	c.writeOps(format(x1), format(y1), format(x2), format(y2),
		format(x3), format(y3), "c")
	return nil
}

// CurveToV appends a cubic Bezier curve whose first control point
// coincides with the current point.
//
// This implements the PDF graphics operator "v".
func (c *DrawContext) CurveToV(x2, y2, x3, y3 float64) error {
	c.writeOps(format(x2), format(y2), format(x3), format(y3), "v")
	return nil
}

// CurveToY appends a cubic Bezier curve whose second control point
// coincides with the end point.
//
// This implements the PDF graphics operator "y".
func (c *DrawContext) CurveToY(x1, y1, x3, y3 float64) error {
	c.writeOps(format(x1), format(y1), format(x3), format(y3), "y")
	return nil
}

// ClosePath closes the current subpath.
//
// This implements the PDF graphics operator "h".
func (c *DrawContext) ClosePath() error {
	c.writeOps("h")
	return nil
}

// Rectangle appends a rectangle as a closed subpath.
//
// This implements the PDF graphics operator "re".
func (c *DrawContext) Rectangle(x, y, width, height float64) error {
	c.writeOps(format(x), format(y), format(width), format(height), "re")
	return nil
}

// Stroke strokes the current path.
//
// This implements the PDF graphics operator "S".
func (c *DrawContext) Stroke() error {
	c.writeOps("S")
	return nil
}

// CloseAndStroke closes and strokes the current path.
//
// This implements the PDF graphics operator "s".
func (c *DrawContext) CloseAndStroke() error {
	c.writeOps("s")
	return nil
}

// Fill fills the current path using the nonzero winding rule.
//
// This implements the PDF graphics operator "f".
func (c *DrawContext) Fill() error {
	c.writeOps("f")
	return nil
}

// FillEvenOdd fills the current path using the even-odd rule.
//
// This implements the PDF graphics operator "f*".
func (c *DrawContext) FillEvenOdd() error {
	c.writeOps("f*")
	return nil
}

// FillAndStroke fills and strokes the current path.
//
// This implements the PDF graphics operator "B".
func (c *DrawContext) FillAndStroke() error {
	c.writeOps("B")
	return nil
}

// FillAndStrokeEvenOdd fills (even-odd) and strokes the current path.
//
// This implements the PDF graphics operator "B*".
func (c *DrawContext) FillAndStrokeEvenOdd() error {
	c.writeOps("B*")
	return nil
}

// CloseFillAndStroke closes, fills and strokes the current path.
//
// This implements the PDF graphics operator "b".
func (c *DrawContext) CloseFillAndStroke() error {
	c.writeOps("b")
	return nil
}

// CloseFillAndStrokeEvenOdd closes, fills (even-odd) and strokes the
// current path.
//
// This implements the PDF graphics operator "b*".
func (c *DrawContext) CloseFillAndStrokeEvenOdd() error {
	c.writeOps("b*")
	return nil
}

// EndPath ends the path without filling or stroking.  Used after the
// clipping operators.
//
// This implements the PDF graphics operator "n".
func (c *DrawContext) EndPath() error {
	c.writeOps("n")
	return nil
}

// ClipNonzero intersects the clipping path with the current path using
// the nonzero winding rule.
//
// This implements the PDF graphics operator "W".
func (c *DrawContext) ClipNonzero() error {
	c.writeOps("W")
	return nil
}

// ClipEvenOdd intersects the clipping path with the current path using
// the even-odd rule.
//
// This implements the PDF graphics operator "W*".
func (c *DrawContext) ClipEvenOdd() error {
	c.writeOps("W*")
	return nil
}

// kappa is the control point distance approximating a quarter circle
// with a cubic Bezier.
const kappa = 0.5523

// DrawUnitCircle appends a unit circle around the origin to the path.
func (c *DrawContext) DrawUnitCircle() error {
	if err := c.MoveTo(0, 1); err != nil {
		return err
	}
	if err := c.CurveTo(kappa, 1, 1, kappa, 1, 0); err != nil {
		return err
	}
	if err := c.CurveTo(1, -kappa, kappa, -1, 0, -1); err != nil {
		return err
	}
	if err := c.CurveTo(-kappa, -1, -1, -kappa, -1, 0); err != nil {
		return err
	}
	return c.CurveTo(-1, kappa, -kappa, 1, 0, 1)
}

// DrawUnitBox appends a unit square with its lower left corner at the
// origin to the path.
func (c *DrawContext) DrawUnitBox() error {
	return c.Rectangle(0, 0, 1, 1)
}
