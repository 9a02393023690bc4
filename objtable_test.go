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

func TestObjectTableNumbering(t *testing.T) {
	tbl := newObjectTable()
	if tbl.count() != 0 {
		t.Fatalf("fresh table has %d objects", tbl.count())
	}

	first := tbl.add(fullObject{Body: Integer(1)})
	second := tbl.add(fullObject{Body: Integer(2)})
	if first != 1 || second != 2 {
		t.Errorf("object numbers %d, %d; expected 1, 2", first, second)
	}
	if tbl.count() != 2 {
		t.Errorf("count() == %d", tbl.count())
	}
}

func TestObjectTableReserve(t *testing.T) {
	tbl := newObjectTable()
	ref := tbl.reserve()
	after := tbl.add(fullObject{Body: Integer(9)})
	if after != ref+1 {
		t.Errorf("reserve did not claim a slot: %d, %d", ref, after)
	}

	tbl.set(ref, fullObject{Body: Integer(1)})
	entry, ok := tbl.get(ref).(fullObject)
	if !ok || entry.Body.(Integer) != 1 {
		t.Errorf("slot %d was not filled", ref)
	}
}
