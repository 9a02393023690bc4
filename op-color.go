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

// This file implements the "Colour" operators, table 73 of
// PDF 32000-1:2008.  Each operator pair has an uppercase (stroking) and
// a lowercase (nonstroking) form.

type labKey LabColorSpaceID
type iccKey IccColorSpaceID
type sepKey SeparationID
type patKey PatternID

// SetStrokeGray sets the stroking color in DeviceGray.
//
// This implements the PDF graphics operator "G".
func (c *DrawContext) SetStrokeGray(gray float64) error {
	if err := checkUnit(gray); err != nil {
		return err
	}
	c.writeOps(format(gray), "G")
	return nil
}

// SetFillGray sets the nonstroking color in DeviceGray.
//
// This implements the PDF graphics operator "g".
func (c *DrawContext) SetFillGray(gray float64) error {
	if err := checkUnit(gray); err != nil {
		return err
	}
	c.writeOps(format(gray), "g")
	return nil
}

// SetStrokeRGB sets the stroking color in DeviceRGB.
//
// This implements the PDF graphics operator "RG".
func (c *DrawContext) SetStrokeRGB(r, g, b float64) error {
	if err := checkUnit(r, g, b); err != nil {
		return err
	}
	c.writeOps(format(r), format(g), format(b), "RG")
	return nil
}

// SetFillRGB sets the nonstroking color in DeviceRGB.
//
// This implements the PDF graphics operator "rg".
func (c *DrawContext) SetFillRGB(r, g, b float64) error {
	if err := checkUnit(r, g, b); err != nil {
		return err
	}
	c.writeOps(format(r), format(g), format(b), "rg")
	return nil
}

// SetStrokeCMYK sets the stroking color in DeviceCMYK.
//
// This implements the PDF graphics operator "K".
func (c *DrawContext) SetStrokeCMYK(cy, m, y, k float64) error {
	if err := checkUnit(cy, m, y, k); err != nil {
		return err
	}
	c.writeOps(format(cy), format(m), format(y), format(k), "K")
	return nil
}

// SetFillCMYK sets the nonstroking color in DeviceCMYK.
//
// This implements the PDF graphics operator "k".
func (c *DrawContext) SetFillCMYK(cy, m, y, k float64) error {
	if err := checkUnit(cy, m, y, k); err != nil {
		return err
	}
	c.writeOps(format(cy), format(m), format(y), format(k), "k")
	return nil
}

// SetStrokeColor sets the stroking color.
func (c *DrawContext) SetStrokeColor(color Color) error {
	return c.setColor(color, true)
}

// SetFillColor sets the nonstroking color.
func (c *DrawContext) SetFillColor(color Color) error {
	return c.setColor(color, false)
}

// setColor dispatches on the color type.  Device colors use the direct
// operators; everything else selects a color space with CS/cs and sets
// components with SCN/scn.
func (c *DrawContext) setColor(color Color, stroke bool) error {
	opCS, opSCN := "cs", "scn"
	if stroke {
		opCS, opSCN = "CS", "SCN"
	}

	switch col := color.(type) {
	case GrayColor:
		if stroke {
			return c.SetStrokeGray(col.V)
		}
		return c.SetFillGray(col.V)

	case RGBColor:
		if stroke {
			return c.SetStrokeRGB(col.R, col.G, col.B)
		}
		return c.SetFillRGB(col.R, col.G, col.B)

	case CMYKColor:
		if stroke {
			return c.SetStrokeCMYK(col.C, col.M, col.Y, col.K)
		}
		return c.SetFillCMYK(col.C, col.M, col.Y, col.K)

	case LabColor:
		if int(col.Space) >= len(c.doc.labSpaces) {
			return errKind(ErrIncorrectDocumentForObject)
		}
		name := c.resourceName(catColorSpace, labKey(col.Space), c.doc.labSpaces[col.Space])
		c.writeOps("/"+string(name), opCS)
		c.writeOps(format(col.L), format(col.A), format(col.B), opSCN)
		return nil

	case ICCColor:
		if int(col.Space) >= len(c.doc.iccProfiles) {
			return errKind(ErrIncorrectDocumentForObject)
		}
		if len(col.Values) != c.doc.iccChannels(col.Space) {
			return errKind(ErrColorspaceMismatch)
		}
		if err := checkUnit(col.Values...); err != nil {
			return err
		}
		name := c.resourceName(catColorSpace, iccKey(col.Space), c.doc.iccProfiles[col.Space].object)
		c.writeOps("/"+string(name), opCS)
		args := make([]string, 0, len(col.Values)+1)
		for _, v := range col.Values {
			args = append(args, format(v))
		}
		c.writeOps(append(args, opSCN)...)
		return nil

	case SeparationColor:
		if int(col.Space) >= len(c.doc.separations) {
			return errKind(ErrIncorrectDocumentForObject)
		}
		if err := checkUnit(col.Tint); err != nil {
			return err
		}
		name := c.resourceName(catColorSpace, sepKey(col.Space), c.doc.separations[col.Space])
		c.writeOps("/"+string(name), opCS)
		c.writeOps(format(col.Tint), opSCN)
		return nil

	case PatternColor:
		if int(col.Pattern) >= len(c.doc.patterns) {
			return errKind(ErrIncorrectDocumentForObject)
		}
		name := c.resourceName(catPattern, patKey(col.Pattern), c.doc.patterns[col.Pattern])
		c.writeOps("/Pattern", opCS)
		c.writeOps("/"+string(name), opSCN)
		return nil

	default:
		return errKindf(ErrUnsupportedFormat, "color %T", color)
	}
}

// SetAllStrokeColor strokes with the "All" separation at full tint.
// Only CMYK documents have the registration separation.
func (c *DrawContext) SetAllStrokeColor() error {
	if c.doc.props.OutputColorSpace != DeviceCMYK || len(c.doc.separations) == 0 {
		return errKind(ErrNoCmykProfile)
	}
	return c.SetStrokeColor(SeparationColor{Space: 0, Tint: 1})
}
