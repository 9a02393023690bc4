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
	"os"

	"golang.org/x/text/language"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
)

// BuiltinFont enumerates the 14 standard Type 1 fonts which every PDF
// consumer provides.
type BuiltinFont int

const (
	TimesRoman BuiltinFont = iota
	TimesBold
	TimesItalic
	TimesBoldItalic
	Helvetica
	HelveticaBold
	HelveticaOblique
	HelveticaBoldOblique
	Courier
	CourierBold
	CourierOblique
	CourierBoldOblique
	Symbol
	ZapfDingbats
)

var builtinFontNames = [...]Name{
	TimesRoman:           "Times-Roman",
	TimesBold:            "Times-Bold",
	TimesItalic:          "Times-Italic",
	TimesBoldItalic:      "Times-BoldItalic",
	Helvetica:            "Helvetica",
	HelveticaBold:        "Helvetica-Bold",
	HelveticaOblique:     "Helvetica-Oblique",
	HelveticaBoldOblique: "Helvetica-BoldOblique",
	Courier:              "Courier",
	CourierBold:          "Courier-Bold",
	CourierOblique:       "Courier-Oblique",
	CourierBoldOblique:   "Courier-BoldOblique",
	Symbol:               "Symbol",
	ZapfDingbats:         "ZapfDingbats",
}

// FontOptions control text layout for a loaded font.
type FontOptions struct {
	// Language selects language-specific shaping behavior.
	Language language.Tag

	// GsubFeatures and GposFeatures enable or disable individual
	// OpenType features.  Nil selects the defaults.
	GsubFeatures map[string]bool
	GposFeatures map[string]bool
}

// fontEntry is the per-FontID state: a parsed face together with the
// subsetter which assigns its glyphs to embedded subsets, and the object
// numbers of the already registered subset font quartets.
type fontEntry struct {
	font     *sfnt.Font
	layouter *sfnt.Layouter
	cmap     cmap.Subtable

	subsets  *fontSubsetter
	quartets []subsetRefs

	builtin    bool
	builtinRef Reference
}

// subsetRefs holds the object numbers of the four objects emitted per
// (font, subset) pair.
type subsetRefs struct {
	data       Reference
	descriptor Reference
	toUnicode  Reference
	font       Reference
}

// LoadFont parses a TrueType font and registers it with the document.
// Only fonts with glyf outlines are supported.
func (d *Document) LoadFont(data []byte, opts *FontOptions) (FontID, error) {
	if opts == nil {
		opts = &FontOptions{}
	}

	font, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return 0, &Error{Kind: ErrFontError, Err: err}
	}
	if !font.IsGlyf() {
		return 0, errKindf(ErrUnsupportedFormat, "font %q has no glyf outlines", font.PostScriptName())
	}

	layouter, err := font.NewLayouter(opts.Language, opts.GsubFeatures, opts.GposFeatures)
	if err != nil {
		return 0, &Error{Kind: ErrFontError, Err: err}
	}
	cmapTable, err := font.CMapTable.GetBest()
	if err != nil {
		return 0, &Error{Kind: ErrFontError, Err: err}
	}

	fid := FontID(len(d.fonts))
	entry := &fontEntry{
		font:     font,
		layouter: layouter,
		cmap:     cmapTable,
		subsets:  newFontSubsetter(),
	}
	d.fonts = append(d.fonts, entry)
	d.registerSubsetQuartet(fid, 0)
	return fid, nil
}

// LoadFontFile reads and registers the named TrueType font file.
func (d *Document) LoadFontFile(name string, opts *FontOptions) (FontID, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return 0, err
	}
	return d.LoadFont(data, opts)
}

// Builtin returns the font handle for one of the 14 standard fonts.  The
// Type 1 font dictionary is created on first use and cached.
func (d *Document) Builtin(font BuiltinFont) FontID {
	if fid, ok := d.builtinFonts[font]; ok {
		return fid
	}

	ref := d.objects.add(fullObject{Body: Dict{
		"Type":     Name("Font"),
		"Subtype":  Name("Type1"),
		"BaseFont": builtinFontNames[font],
	}})

	fid := FontID(len(d.fonts))
	d.fonts = append(d.fonts, &fontEntry{
		builtin:    true,
		builtinRef: ref,
	})
	d.builtinFonts[font] = fid
	return fid
}

// registerSubsetQuartet appends the four delayed objects for the given
// subset of a font and records their object numbers.
func (d *Document) registerSubsetQuartet(fid FontID, subset int) {
	dataRef := d.objects.add(delayedSubsetFontData{fid: fid, subset: subset})
	descRef := d.objects.add(delayedSubsetFontDescriptor{
		fid:      fid,
		subset:   subset,
		fontFile: dataRef,
	})
	cmapRef := d.objects.add(delayedSubsetCMap{fid: fid, subset: subset})
	fontRef := d.objects.add(delayedSubsetFont{
		fid:        fid,
		subset:     subset,
		descriptor: descRef,
		toUnicode:  cmapRef,
	})
	d.fonts[fid].quartets = append(d.fonts[fid].quartets, subsetRefs{
		data:       dataRef,
		descriptor: descRef,
		toUnicode:  cmapRef,
		font:       fontRef,
	})
}

// subsetGlyph places the codepoint in the font's subsets and returns its
// location.  New subsets get their font objects registered on the spot.
func (d *Document) subsetGlyph(fid FontID, cp rune) (glyphLocation, error) {
	entry := d.fonts[fid]
	if entry.builtin {
		return glyphLocation{}, errKind(ErrInvalidDrawContextType)
	}
	if entry.cmap.Lookup(cp) == 0 {
		return glyphLocation{}, errKindf(ErrMissingGlyph, "U+%04X", cp)
	}

	loc := entry.subsets.locate(cp)
	for len(entry.quartets) < entry.subsets.numSubsets() {
		d.registerSubsetQuartet(fid, len(entry.quartets))
	}
	return loc, nil
}

// subsetGlyphIDs resolves the codepoints of one subset to glyph IDs in
// the original font.
func (e *fontEntry) subsetGlyphIDs(subset int) []glyph.ID {
	cps := e.subsets.subset(subset)
	glyphs := make([]glyph.ID, len(cps))
	for i, cp := range cps {
		if cp == 0 {
			continue // .notdef
		}
		glyphs[i] = e.cmap.Lookup(cp)
	}
	return glyphs
}

// padSubsetFonts runs the space padding procedure for every loaded font.
// This must happen before the subset font objects are materialized.
func (d *Document) padSubsetFonts() {
	for _, entry := range d.fonts {
		if entry.builtin {
			continue
		}
		entry.subsets.padUntilSpace()
	}
}
