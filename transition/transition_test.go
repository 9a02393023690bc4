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

package transition

import "testing"

func TestStyleNames(t *testing.T) {
	cases := []struct {
		style Style
		name  string
	}{
		{StyleReplace, "R"},
		{StyleSplit, "Split"},
		{StyleBlinds, "Blinds"},
		{StyleBox, "Box"},
		{StyleWipe, "Wipe"},
		{StyleDissolve, "Dissolve"},
		{StyleGlitter, "Glitter"},
		{StyleFly, "Fly"},
		{StylePush, "Push"},
		{StyleCover, "Cover"},
		{StyleUncover, "Uncover"},
		{StyleFade, "Fade"},
	}
	for _, c := range cases {
		if got := c.style.Name(); got != c.name {
			t.Errorf("style %d: got %q, expected %q", c.style, got, c.name)
		}
	}
}

func TestDimensionAndMotionNames(t *testing.T) {
	if DimensionHorizontal.Name() != "H" || DimensionVertical.Name() != "V" {
		t.Error("dimension names")
	}
	if MotionInward.Name() != "I" || MotionOutward.Name() != "O" {
		t.Error("motion names")
	}
}
