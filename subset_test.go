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

import "testing"

func TestSubsetterAssignsDenseOffsets(t *testing.T) {
	s := newFontSubsetter()

	a := s.locate('A')
	if a.subset != 0 || a.offset != 1 {
		t.Errorf("first glyph at %+v, expected subset 0 offset 1", a)
	}
	b := s.locate('B')
	if b.subset != 0 || b.offset != 2 {
		t.Errorf("second glyph at %+v", b)
	}
	if again := s.locate('A'); again != a {
		t.Errorf("repeated lookup moved the glyph: %+v != %+v", again, a)
	}
}

func TestSubsetterRollsOverAt255(t *testing.T) {
	s := newFontSubsetter()

	// Offset 0 of subset 0 is the notdef placeholder, so 254 glyphs
	// fill the first subset.
	for i := 0; i < 254; i++ {
		loc := s.locate(0x4E00 + rune(i))
		if loc.subset != 0 {
			t.Fatalf("glyph %d landed in subset %d", i, loc.subset)
		}
	}
	if n := len(s.subset(0)); n != 255 {
		t.Fatalf("first subset has %d glyphs, expected 255", n)
	}

	loc := s.locate(0x9999)
	if loc.subset != 1 || loc.offset != 1 {
		t.Errorf("overflow glyph at %+v, expected subset 1 offset 1", loc)
	}
	if s.numSubsets() != 2 {
		t.Errorf("numSubsets() == %d", s.numSubsets())
	}
	if s.subset(1)[0] != 0 {
		t.Errorf("new subset does not start with the notdef placeholder")
	}
}

func TestSubsetterPadding(t *testing.T) {
	s := newFontSubsetter()
	s.locate('A')
	s.locate(' ')
	s.locate('B')

	s.padUntilSpace()

	got := s.subset(0)
	if len(got) != 33 {
		t.Fatalf("padded subset has %d glyphs, expected 33", len(got))
	}
	if got[32] != ' ' {
		t.Errorf("slot 32 holds U+%04X, expected U+0020", got[32])
	}

	// '!' padding must skip codepoints which are already present.
	seen := make(map[rune]int)
	for _, cp := range got[:32] {
		seen[cp]++
		if seen[cp] > 1 {
			t.Errorf("codepoint U+%04X appears twice before slot 32", cp)
		}
	}
	if seen['!'] != 1 {
		t.Errorf("padding did not insert '!'")
	}
}

func TestSubsetterPaddingSkipsLargeSubsets(t *testing.T) {
	s := newFontSubsetter()
	for i := 0; i < 40; i++ {
		s.locate(0x100 + rune(i))
	}
	before := len(s.subset(0))

	s.padUntilSpace()

	if after := len(s.subset(0)); after != before {
		t.Errorf("padding changed a full enough subset: %d -> %d", before, after)
	}
}
