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

import "seehuhn.de/go/pdfgen/transition"

// The object table is an append-only sequence of indirect-object entries.
// Entry 0 is a sentinel so that PDF object numbers equal table indices.
//
// An entry is either ready for emission (fullObject, deflateObject), a
// reserved slot to be filled before emission, or one of the delayed
// variants which the finalizer materializes once the information they
// depend on is complete.
type tableEntry interface {
	isTableEntry()
}

// fullObject is a materialized object: a body and an optional stream.
// For stream objects the /Length entry is synthesized at emit time.
type fullObject struct {
	Body   Object
	Stream []byte
}

// deflateObject is a stream object whose payload is compressed at emit
// time; /Filter and /Length are synthesized then.
type deflateObject struct {
	Dict   Dict
	Stream []byte
}

// reservedSlot is a placeholder created by objectTable.reserve.  It must
// be replaced via objectTable.set before the document is written.
type reservedSlot struct{}

// dummyIndexZero occupies table index 0.
type dummyIndexZero struct{}

// delayedPages becomes the /Pages dictionary once all pages are known.
type delayedPages struct{}

// delayedPage becomes a page dictionary during finalization, when the
// object numbers of the page's annotations and widgets are known.
type delayedPage struct {
	pageNum       int
	props         PageProperties
	widgets       []FormWidgetID
	annotations   []AnnotationID
	transition    *transition.Transition
	subnavRoot    Reference // 0 if the page has no sub-page navigation
	structParents int       // index into the structure parent tree, or -1
}

// delayedAnnotation becomes an annotation dictionary once the owning
// page is known.
type delayedAnnotation struct {
	id AnnotationID
}

// delayedCheckboxWidget becomes a checkbox widget annotation once the
// owning page is known.
type delayedCheckboxWidget struct {
	id FormWidgetID
}

// delayedStructItem becomes a structure element once its marked-content
// position on a page is known.
type delayedStructItem struct {
	id StructureItemID
}

// The four entries below form the Type 0 / CIDFontType 2 quartet emitted
// for each (font, subset) pair.  Their contents depend on the final glyph
// list of the subset and are produced at emit time.

type delayedSubsetFontData struct {
	fid    FontID
	subset int
}

type delayedSubsetFontDescriptor struct {
	fid      FontID
	subset   int
	fontFile Reference
}

type delayedSubsetCMap struct {
	fid    FontID
	subset int
}

type delayedSubsetFont struct {
	fid        FontID
	subset     int
	descriptor Reference
	toUnicode  Reference
}

func (fullObject) isTableEntry()                  {}
func (deflateObject) isTableEntry()               {}
func (reservedSlot) isTableEntry()                {}
func (dummyIndexZero) isTableEntry()              {}
func (delayedPages) isTableEntry()                {}
func (delayedPage) isTableEntry()                 {}
func (delayedAnnotation) isTableEntry()           {}
func (delayedCheckboxWidget) isTableEntry()       {}
func (delayedStructItem) isTableEntry()           {}
func (delayedSubsetFontData) isTableEntry()       {}
func (delayedSubsetFontDescriptor) isTableEntry() {}
func (delayedSubsetCMap) isTableEntry()           {}
func (delayedSubsetFont) isTableEntry()           {}

type objectTable struct {
	entries []tableEntry
}

func newObjectTable() *objectTable {
	return &objectTable{
		entries: []tableEntry{dummyIndexZero{}},
	}
}

// add appends an entry and returns its object number.
func (t *objectTable) add(e tableEntry) Reference {
	ref := Reference(len(t.entries))
	t.entries = append(t.entries, e)
	return ref
}

// reserve appends a placeholder slot.  Structures with internal forward
// references (outline trees, navigation chains) reserve their slots up
// front and fill them with set, so that object numbering never depends
// on emission order.
func (t *objectTable) reserve() Reference {
	return t.add(reservedSlot{})
}

// set fills a slot previously returned by add or reserve.
func (t *objectTable) set(ref Reference, e tableEntry) {
	t.entries[ref] = e
}

func (t *objectTable) get(ref Reference) tableEntry {
	return t.entries[ref]
}

// count returns the number of indirect objects in the table.
func (t *objectTable) count() int {
	return len(t.entries) - 1
}
