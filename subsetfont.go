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
	"bytes"
	"fmt"
	"math"
	"unicode/utf16"

	"seehuhn.de/go/postscript/cid"
)

// This file materializes the four delayed objects emitted per
// (font, subset) pair: the FontFile2 stream, the font descriptor, the
// ToUnicode CMap and the Type 0 font dictionary.  All of them depend on
// the final glyph list of the subset, so they can only be produced after
// all content has been authored and the subsets have been padded.

// subsetTag returns the six-letter tag which PDF requires in front of
// subset font names.  The tag only needs to be unique within the
// document, so it is derived from the font and subset numbers.
func subsetTag(fid FontID, subset int) string {
	v := int(fid)*256 + subset
	tag := make([]byte, 6)
	for i := 5; i >= 0; i-- {
		tag[i] = byte('A' + v%26)
		v /= 26
	}
	return string(tag)
}

func (d *Document) subsetBaseFont(fid FontID, subset int) Name {
	entry := d.fonts[fid]
	return Name(subsetTag(fid, subset) + "+" + entry.font.PostScriptName())
}

// resolveSubsetFontData subsets the TrueType tables down to the glyphs of
// one subset and packages them as a FontFile2 stream.
func (d *Document) resolveSubsetFontData(e delayedSubsetFontData) (tableEntry, error) {
	entry := d.fonts[e.fid]
	glyphs := entry.subsetGlyphIDs(e.subset)

	font := entry.font.Clone()
	font.CMapTable = nil
	font.Gdef = nil
	font.Gsub = nil
	font.Gpos = nil
	subsetFont := font.Subset(glyphs)

	buf := &bytes.Buffer{}
	length1, err := subsetFont.WriteTrueTypePDF(buf)
	if err != nil {
		return nil, &Error{Kind: ErrFontError, Err: err}
	}

	return deflateObject{
		Dict: Dict{
			"Length1": Integer(length1),
		},
		Stream: buf.Bytes(),
	}, nil
}

// resolveSubsetFontDescriptor produces the font descriptor for one subset.
func (d *Document) resolveSubsetFontDescriptor(e delayedSubsetFontDescriptor) (tableEntry, error) {
	entry := d.fonts[e.fid]
	font := entry.font

	qv := 1000 * font.FontMatrix[3]
	bbox := font.FontBBoxPDF().Rounded()

	// Subset fonts carry their own encoding, so the symbolic flag is set.
	flags := Integer(1 << 2)
	if font.IsFixedPitch() {
		flags |= 1 << 0
	}
	if font.IsSerif {
		flags |= 1 << 1
	}
	if font.IsScript {
		flags |= 1 << 3
	}
	if font.IsItalic {
		flags |= 1 << 6
	}

	return fullObject{Body: Dict{
		"Type":        Name("FontDescriptor"),
		"FontName":    d.subsetBaseFont(e.fid, e.subset),
		"Flags":       flags,
		"FontBBox":    Array{Number(bbox.LLx), Number(bbox.LLy), Number(bbox.URx), Number(bbox.URy)},
		"ItalicAngle": Number(font.ItalicAngle),
		"Ascent":      Number(math.Round(float64(font.Ascent) * qv)),
		"Descent":     Number(math.Round(float64(font.Descent) * qv)),
		"CapHeight":   Number(math.Round(float64(font.CapHeight) * qv)),
		"StemV":       Integer(80),
		"FontFile2":   e.fontFile,
	}}, nil
}

// resolveSubsetCMap produces the ToUnicode CMap stream for one subset.
// Slot 32 of a padded subset maps to U+0020 here, which is what makes
// text extraction of the space character work.
func (d *Document) resolveSubsetCMap(e delayedSubsetCMap) (tableEntry, error) {
	entry := d.fonts[e.fid]
	cps := entry.subsets.subset(e.subset)

	buf := &bytes.Buffer{}
	buf.WriteString(`/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
/CIDSystemInfo << /Registry (Adobe) /Ordering (UCS) /Supplement 0 >> def
/CMapName /Adobe-Identity-UCS def
/CMapType 2 def
1 begincodespacerange
<0000> <FFFF>
endcodespacerange
`)

	// CMap files allow at most 100 entries per bfchar block.
	for start := 1; start < len(cps); start += 100 {
		end := start + 100
		if end > len(cps) {
			end = len(cps)
		}
		fmt.Fprintf(buf, "%d beginbfchar\n", end-start)
		for offset := start; offset < end; offset++ {
			fmt.Fprintf(buf, "<%04X> <", offset)
			for _, u := range utf16.Encode([]rune{cps[offset]}) {
				fmt.Fprintf(buf, "%04X", u)
			}
			buf.WriteString(">\n")
		}
		buf.WriteString("endbfchar\n")
	}

	buf.WriteString(`endcmap
CMapName currentdict /CMap defineresource pop
end
end
`)

	return deflateObject{
		Dict:   Dict{},
		Stream: buf.Bytes(),
	}, nil
}

// resolveSubsetFont produces the Type 0 font dictionary for one subset.
// The CIDFontType2 descendant is stored directly in the /DescendantFonts
// array; character codes are two bytes and equal both CID and glyph ID.
func (d *Document) resolveSubsetFont(e delayedSubsetFont) (tableEntry, error) {
	entry := d.fonts[e.fid]
	cps := entry.subsets.subset(e.subset)
	baseFont := d.subsetBaseFont(e.fid, e.subset)

	ros := cid.SystemInfo{
		Registry:   "Adobe",
		Ordering:   "Identity",
		Supplement: 0,
	}

	glyphs := entry.subsetGlyphIDs(e.subset)
	widths := make(Array, len(cps))
	for offset, gid := range glyphs {
		widths[offset] = Number(math.Round(entry.font.GlyphWidthPDF(gid)))
	}

	descendant := Dict{
		"Type":     Name("Font"),
		"Subtype":  Name("CIDFontType2"),
		"BaseFont": baseFont,
		"CIDSystemInfo": Dict{
			"Registry":   String(ros.Registry),
			"Ordering":   String(ros.Ordering),
			"Supplement": Integer(ros.Supplement),
		},
		"FontDescriptor": e.descriptor,
		"CIDToGIDMap":    Name("Identity"),
		"DW":             Integer(1000),
		"W":              Array{Integer(0), widths},
	}

	return fullObject{Body: Dict{
		"Type":            Name("Font"),
		"Subtype":         Name("Type0"),
		"BaseFont":        baseFont,
		"Encoding":        Name("Identity-H"),
		"DescendantFonts": Array{descendant},
		"ToUnicode":       e.toUnicode,
	}}, nil
}
