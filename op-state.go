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

import (
	"math"
	"strconv"

	"seehuhn.de/go/geom/matrix"
)

// This file implements the operators of the "General graphics state" and
// "Special graphics state" categories, tables 56 and 57 of PDF 32000-1:2008.

// PushGraphicsState saves the current graphics state.
//
// This implements the PDF graphics operator "q".
func (c *DrawContext) PushGraphicsState() error {
	if err := c.push(stateSaveState); err != nil {
		return err
	}
	c.writeOps("q")
	return nil
}

// PopGraphicsState restores the previously saved graphics state.
//
// This implements the PDF graphics operator "Q".
func (c *DrawContext) PopGraphicsState() error {
	if err := c.pop(stateSaveState); err != nil {
		return err
	}
	c.writeOps("Q")
	return nil
}

// WithGraphicsState runs fn between a save/restore pair.  The restore is
// emitted even when fn fails, so brackets stay balanced.
func (c *DrawContext) WithGraphicsState(fn func() error) error {
	if err := c.PushGraphicsState(); err != nil {
		return err
	}
	err := fn()
	if err2 := c.PopGraphicsState(); err == nil {
		err = err2
	}
	return err
}

// Transform concatenates m to the current transformation matrix.
//
// This implements the PDF graphics operator "cm".
func (c *DrawContext) Transform(m matrix.Matrix) error {
	c.writeOps(format(m[0]), format(m[1]), format(m[2]),
		format(m[3]), format(m[4]), format(m[5]), "cm")
	return nil
}

// Scale scales the coordinate system.
func (c *DrawContext) Scale(sx, sy float64) error {
	return c.Transform(matrix.Matrix{sx, 0, 0, sy, 0, 0})
}

// Translate moves the origin of the coordinate system.
func (c *DrawContext) Translate(dx, dy float64) error {
	return c.Transform(matrix.Matrix{1, 0, 0, 1, dx, dy})
}

// Rotate rotates the coordinate system by the given angle in radians.
func (c *DrawContext) Rotate(angle float64) error {
	sin, cos := math.Sincos(angle)
	return c.Transform(matrix.Matrix{cos, sin, -sin, cos, 0, 0})
}

// SetLineWidth sets the line width.
//
// This implements the PDF graphics operator "w".
func (c *DrawContext) SetLineWidth(width float64) error {
	c.writeOps(format(width), "w")
	return nil
}

// SetLineCap sets the line cap style.
//
// This implements the PDF graphics operator "J".
func (c *DrawContext) SetLineCap(cap LineCapStyle) error {
	if cap > LineCapSquare {
		return errKindf(ErrUnsupportedFormat, "line cap %d", cap)
	}
	c.writeOps(strconv.Itoa(int(cap)), "J")
	return nil
}

// SetLineJoin sets the line join style.
//
// This implements the PDF graphics operator "j".
func (c *DrawContext) SetLineJoin(join LineJoinStyle) error {
	if join > LineJoinBevel {
		return errKindf(ErrUnsupportedFormat, "line join %d", join)
	}
	c.writeOps(strconv.Itoa(int(join)), "j")
	return nil
}

// SetMiterLimit sets the miter limit.
//
// This implements the PDF graphics operator "M".
func (c *DrawContext) SetMiterLimit(limit float64) error {
	c.writeOps(format(limit), "M")
	return nil
}

// SetLineDash sets the line dash pattern.
//
// This implements the PDF graphics operator "d".
func (c *DrawContext) SetLineDash(pattern []float64, phase float64) error {
	buf := make([]byte, 0, 32)
	buf = append(buf, '[')
	for i, x := range pattern {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, format(x)...)
	}
	buf = append(buf, ']')
	c.writeOps(string(buf), format(phase), "d")
	return nil
}

// SetRenderingIntent sets the color rendering intent.
//
// This implements the PDF graphics operator "ri".
func (c *DrawContext) SetRenderingIntent(intent RenderingIntent) error {
	if int(intent) >= len(renderingIntentNames) {
		return errKindf(ErrUnsupportedFormat, "rendering intent %d", intent)
	}
	c.writeOps("/"+string(renderingIntentNames[intent]), "ri")
	return nil
}

// SetFlatnessTolerance sets the flatness tolerance.
//
// This implements the PDF graphics operator "i".
func (c *DrawContext) SetFlatnessTolerance(flatness float64) error {
	if flatness < 0 || flatness > 100 {
		return errKindf(ErrUnsupportedFormat, "flatness %g", flatness)
	}
	c.writeOps(format(flatness), "i")
	return nil
}

// SetExtGState applies an extended graphics state dictionary.
//
// This implements the PDF graphics operator "gs".
func (c *DrawContext) SetExtGState(id GraphicsStateID) error {
	if int(id) >= len(c.doc.gstates) {
		return errKind(ErrIncorrectDocumentForObject)
	}
	name := c.resourceName(catExtGState, id, c.doc.gstates[id])
	c.writeOps("/"+string(name), "gs")
	return nil
}
