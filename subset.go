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

// maxSubsetSize is the number of glyphs a single font subset can hold.
const maxSubsetSize = 255

// glyphLocation identifies where a glyph landed in a font's subsets:
// subsets are dense 0-based indices, offsets are 0..254 within a subset.
type glyphLocation struct {
	subset int
	offset int
}

// fontSubsetter assigns the codepoints used with one font to a sequence
// of subsets, each at most maxSubsetSize glyphs large.  Offset 0 of every
// subset is codepoint 0, standing in for .notdef.
type fontSubsetter struct {
	subsets [][]rune
	loc     map[rune]glyphLocation
}

func newFontSubsetter() *fontSubsetter {
	return &fontSubsetter{
		subsets: [][]rune{{0}},
		loc:     map[rune]glyphLocation{0: {0, 0}},
	}
}

// locate returns the subset and offset of the given codepoint, assigning
// a place in the current subset first if needed.  A new subset is started
// when the current one is full.
func (s *fontSubsetter) locate(cp rune) glyphLocation {
	if l, ok := s.loc[cp]; ok {
		return l
	}

	last := len(s.subsets) - 1
	if len(s.subsets[last]) >= maxSubsetSize {
		s.subsets = append(s.subsets, []rune{0})
		last++
	}

	l := glyphLocation{subset: last, offset: len(s.subsets[last])}
	s.subsets[last] = append(s.subsets[last], cp)
	s.loc[cp] = l
	return l
}

func (s *fontSubsetter) numSubsets() int {
	return len(s.subsets)
}

// subset returns the ordered codepoint list of subset i.
func (s *fontSubsetter) subset(i int) []rune {
	return s.subsets[i]
}

// insertToLastSubset appends a codepoint to the last subset without
// consulting or updating the location map.  This is the escape hatch used
// by padUntilSpace to force U+0020 into slot 32.
func (s *fontSubsetter) insertToLastSubset(cp rune) {
	last := len(s.subsets) - 1
	s.subsets[last] = append(s.subsets[last], cp)
}

// padUntilSpace grows the last subset to 32 glyphs using codepoints
// '!', '"', ... and then appends U+0020 as entry 32.  Subsets which
// already hold more than 32 glyphs are left alone.
//
// PDF viewers resolve the single-byte code 32 against the font even for
// text extraction, so slot 32 of a padded subset decodes to the space
// character.  A subset which is left alone keeps whatever codepoint it
// holds at slot 32.
func (s *fontSubsetter) padUntilSpace() {
	const space = 32
	const maxCount = 100

	last := len(s.subsets) - 1
	if len(s.subsets[last]) > space {
		return
	}

	padded := false
	for i := 0; i < maxCount; i++ {
		if len(s.subsets[last]) == space {
			padded = true
			break
		}
		s.locate('!' + rune(i))
	}
	if !padded {
		panic("font subset padding failed")
	}
	s.insertToLastSubset(space)
}
