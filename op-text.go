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
	"fmt"
	"math"
	"strconv"
	"strings"
)

// This file implements the "Text object", "Text state", "Text
// positioning" and "Text showing" operators, tables 105 to 109 of
// PDF 32000-1:2008, together with the high-level text rendering entry
// points.

// TextRenderingMode selects between filling, stroking and clipping text.
type TextRenderingMode int

const (
	TextFill TextRenderingMode = iota
	TextStroke
	TextFillStroke
	TextInvisible
	TextFillClip
	TextStrokeClip
	TextFillStrokeClip
	TextClip
)

// TextBegin starts a text object.
//
// This implements the PDF graphics operator "BT".
func (c *DrawContext) TextBegin() error {
	if err := c.push(stateText); err != nil {
		return err
	}
	c.haveFont = false
	c.writeOps("BT")
	return nil
}

// TextEnd ends the current text object.
//
// This implements the PDF graphics operator "ET".
func (c *DrawContext) TextEnd() error {
	if err := c.pop(stateText); err != nil {
		return err
	}
	c.writeOps("ET")
	return nil
}

// TextSetCharacterSpacing sets the character spacing.
//
// This implements the PDF graphics operator "Tc".
func (c *DrawContext) TextSetCharacterSpacing(spacing float64) error {
	c.writeOps(format(spacing), "Tc")
	return nil
}

// TextSetWordSpacing sets the word spacing.
//
// This implements the PDF graphics operator "Tw".
func (c *DrawContext) TextSetWordSpacing(spacing float64) error {
	c.writeOps(format(spacing), "Tw")
	return nil
}

// TextSetHorizontalScaling sets the horizontal scaling in percent.
//
// This implements the PDF graphics operator "Tz".
func (c *DrawContext) TextSetHorizontalScaling(scaling float64) error {
	c.writeOps(format(scaling), "Tz")
	return nil
}

// TextSetLeading sets the text leading.
//
// This implements the PDF graphics operator "TL".
func (c *DrawContext) TextSetLeading(leading float64) error {
	c.writeOps(format(leading), "TL")
	return nil
}

// TextSetRise sets the text rise.
//
// This implements the PDF graphics operator "Ts".
func (c *DrawContext) TextSetRise(rise float64) error {
	c.writeOps(format(rise), "Ts")
	return nil
}

// TextSetRenderingMode sets the text rendering mode.
//
// This implements the PDF graphics operator "Tr".
func (c *DrawContext) TextSetRenderingMode(mode TextRenderingMode) error {
	if mode < TextFill || mode > TextClip {
		return errKindf(ErrUnsupportedFormat, "text rendering mode %d", mode)
	}
	c.writeOps(strconv.Itoa(int(mode)), "Tr")
	return nil
}

// TextFirstLine moves to the start of the next line, offset by (dx, dy)
// from the start of the current line.
//
// This implements the PDF graphics operator "Td".
func (c *DrawContext) TextFirstLine(dx, dy float64) error {
	c.writeOps(format(dx), format(dy), "Td")
	return nil
}

// TextSecondLine moves to the next line and sets the leading to -dy.
//
// This implements the PDF graphics operator "TD".
func (c *DrawContext) TextSecondLine(dx, dy float64) error {
	c.writeOps(format(dx), format(dy), "TD")
	return nil
}

// TextSetMatrix sets the text matrix and the text line matrix.
//
// This implements the PDF graphics operator "Tm".
func (c *DrawContext) TextSetMatrix(a, b, cc, dd, e, f float64) error {
	c.writeOps(format(a), format(b), format(cc), format(dd),
		format(e), format(f), "Tm")
	return nil
}

// TextNextLine moves to the start of the next line.
//
// This implements the PDF graphics operator "T*".
func (c *DrawContext) TextNextLine() error {
	c.writeOps("T*")
	return nil
}

// setSubsetFont emits a Tf operator switching to the given subset of a
// loaded font, registering the font resource as needed.
func (c *DrawContext) setSubsetFont(key fontSubsetKey, ptsize float64) {
	ref := c.doc.fonts[key.fid].quartets[key.subset].font
	name := c.resourceName(catFont, key, ref)
	c.usedSubsetFonts[key] = struct{}{}
	c.writeOps("/"+string(name), format(ptsize), "Tf")
	c.currentFont = key
	c.currentPtSize = ptsize
	c.haveFont = true
}

// RenderText shapes a UTF-8 string with the font's layout tables and
// shows it at the given position.  Kerning is expressed through TJ
// adjustments; subset boundaries switch the font resource mid-stream.
func (c *DrawContext) RenderText(text string, fid FontID, ptsize, x, y float64) error {
	if int(fid) >= len(c.doc.fonts) {
		return errKind(ErrIncorrectDocumentForObject)
	}
	entry := c.doc.fonts[fid]
	if entry.builtin {
		return errKindf(ErrUnsupportedFormat, "builtin fonts cannot be shaped")
	}

	if err := c.TextBegin(); err != nil {
		return err
	}
	if err := c.TextFirstLine(x, y); err != nil {
		return err
	}

	glyphs := entry.layouter.Layout(text)
	scale := 1000 * entry.font.FontMatrix[0]

	var items []string
	var pending strings.Builder
	flushString := func() {
		if pending.Len() > 0 {
			items = append(items, "<"+pending.String()+">")
			pending.Reset()
		}
	}
	flushArray := func() {
		flushString()
		if len(items) > 0 {
			c.writeOps("[ "+strings.Join(items, " ")+" ]", "TJ")
			items = items[:0]
		}
	}

	for _, g := range glyphs {
		if len(g.Text) == 0 {
			flushArray()
			if err := c.TextEnd(); err != nil {
				return err
			}
			return errKindf(ErrMissingGlyph, "glyph %d has no codepoint", g.GID)
		}
		cp := g.Text[0]

		loc, err := c.doc.subsetGlyph(fid, cp)
		if err != nil {
			flushArray()
			c.TextEnd()
			return err
		}

		key := fontSubsetKey{fid: fid, subset: loc.subset}
		if !c.haveFont || c.currentFont != key || c.currentPtSize != ptsize {
			flushArray()
			c.setSubsetFont(key, ptsize)
		}

		// The shaped advance differs from the natural glyph width where
		// the font applies kerning; TJ adjustments carry the difference
		// in thousandths of text space.
		natural := entry.font.GlyphWidthPDF(g.GID)
		shaped := float64(g.Advance) * scale
		if kern := int(math.Round(natural - shaped)); kern != 0 {
			flushString()
			items = append(items, strconv.Itoa(kern))
		}

		fmt.Fprintf(&pending, "%04X", loc.offset)
	}
	flushArray()

	return c.TextEnd()
}

// RenderGlyph shows a single glyph, identified by codepoint, at the
// given position.
func (c *DrawContext) RenderGlyph(cp rune, fid FontID, ptsize, x, y float64) error {
	if int(fid) >= len(c.doc.fonts) {
		return errKind(ErrIncorrectDocumentForObject)
	}
	if c.doc.fonts[fid].builtin {
		return errKindf(ErrUnsupportedFormat, "builtin fonts cannot be shaped")
	}

	loc, err := c.doc.subsetGlyph(fid, cp)
	if err != nil {
		return err
	}

	if err := c.TextBegin(); err != nil {
		return err
	}
	c.setSubsetFont(fontSubsetKey{fid: fid, subset: loc.subset}, ptsize)
	if err := c.TextSetMatrix(1, 0, 0, 1, x, y); err != nil {
		return err
	}
	c.writeOps(fmt.Sprintf("<%04X>", loc.offset), "Tj")
	return c.TextEnd()
}

// RenderTextBuiltin shows PDFDoc-encoded text in one of the 14 builtin
// fonts at the given position.
//
// This uses the PDF graphics operator "Tj".
func (c *DrawContext) RenderTextBuiltin(text string, font BuiltinFont, ptsize, x, y float64) error {
	fid := c.doc.Builtin(font)
	ref := c.doc.fonts[fid].builtinRef
	name := c.resourceName(catFont, fid, ref)

	if err := c.TextBegin(); err != nil {
		return err
	}
	c.writeOps("/"+string(name), format(ptsize), "Tf")
	if err := c.TextFirstLine(x, y); err != nil {
		return err
	}

	buf := &strings.Builder{}
	if err := String(text).PDF(buf); err != nil {
		return err
	}
	c.writeOps(buf.String(), "Tj")

	return c.TextEnd()
}
