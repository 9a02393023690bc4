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
	"testing"
	"time"
)

func pdfString(t *testing.T, obj Object) string {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := obj.PDF(buf); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestObjectsPDF(t *testing.T) {
	cases := []struct {
		obj      Object
		expected string
	}{
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Integer(42), "42"},
		{Integer(-7), "-7"},
		{Real(0.25), "0.250000"},
		{Number(595), "595"},
		{Number(595.5), "595.500000"},
		{Name("Type"), "/Type"},
		{Name("A B"), "/A#20B"},
		{String("hello"), "(hello)"},
		{String("a(b"), `(a\(b)`},
		{Array{Integer(1), nil, Name("x")}, "[1 null /x]"},
		{Array{}, "[]"},
		{Reference(17), "17 0 R"},
	}
	for _, c := range cases {
		if got := pdfString(t, c.obj); got != c.expected {
			t.Errorf("%#v: got %q, expected %q", c.obj, got, c.expected)
		}
	}
}

func TestDictSortedKeys(t *testing.T) {
	d := Dict{
		"Zebra": Integer(1),
		"Alpha": Integer(2),
	}
	got := pdfString(t, d)
	expected := "<<\n/Alpha 2\n/Zebra 1\n>>"
	if got != expected {
		t.Errorf("got %q, expected %q", got, expected)
	}
}

func TestTextString(t *testing.T) {
	if got := TextString("plain"); string(got) != "plain" {
		t.Errorf("ASCII text string mangled: %q", got)
	}

	got := TextString("Grüße")
	if len(got) < 2 || got[0] != 0xFE || got[1] != 0xFF {
		t.Errorf("missing UTF-16BE BOM: % x", got)
	}
	// "G" is U+0047
	if got[2] != 0x00 || got[3] != 0x47 {
		t.Errorf("unexpected UTF-16 encoding: % x", got)
	}
}

func TestDate(t *testing.T) {
	loc := time.FixedZone("", 2*60*60)
	d := Date(time.Date(2024, 5, 17, 13, 4, 5, 0, loc))
	if string(d) != "D:20240517130405+02'00'" {
		t.Errorf("unexpected date string %q", d)
	}
}
