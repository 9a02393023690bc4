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
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func loadTestFont(t *testing.T, d *Document) FontID {
	t.Helper()
	fid, err := d.LoadFont(goregular.TTF, nil)
	if err != nil {
		t.Fatal(err)
	}
	return fid
}

func TestRenderTextSubset(t *testing.T) {
	d, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	fid := loadTestFont(t, d)

	ctx := d.NewPageContext(200, 200)
	if err := ctx.RenderText("A B", fid, 12, 10, 100); err != nil {
		t.Fatal(err)
	}
	pageID, err := d.AddPageContext(ctx)
	if err != nil {
		t.Fatal(err)
	}
	out := writeDoc(t, d)

	// After padding the subset holds at least 33 glyphs and slot 32 is
	// the space character.
	subset := d.fonts[fid].subsets.subset(0)
	if len(subset) < 33 {
		t.Fatalf("subset has %d glyphs", len(subset))
	}
	if subset[32] != ' ' {
		t.Errorf("slot 32 holds U+%04X", subset[32])
	}
	for _, cp := range []rune{'A', ' ', 'B', '!'} {
		if !strings.ContainsRune(string(subset), cp) {
			t.Errorf("subset lacks %q", cp)
		}
	}

	// The ToUnicode CMap maps the slot holding the space to U+0020.
	cmapRef := d.fonts[fid].quartets[0].toUnicode
	cmapData := decodeStream(t, objectBody(t, out, cmapRef))
	if !bytes.Contains(cmapData, []byte("<0020> <0020>")) {
		t.Errorf("ToUnicode CMap does not map slot 32 to U+0020:\n%s", cmapData)
	}

	// The page's resources reference the subset's Type 0 font.
	resources := objectBody(t, out, d.pages[pageID].resources)
	if !bytes.Contains(resources, []byte("/Font")) {
		t.Errorf("resources lack /Font: %q", resources)
	}

	fontBody := objectBody(t, out, d.fonts[fid].quartets[0].font)
	for _, want := range []string{
		"/Subtype /Type0",
		"/Encoding /Identity-H",
		"/Subtype /CIDFontType2",
		"/CIDToGIDMap /Identity",
	} {
		if !bytes.Contains(fontBody, []byte(want)) {
			t.Errorf("font dict lacks %q:\n%s", want, fontBody)
		}
	}
}

func TestRenderTextContentStream(t *testing.T) {
	d, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	fid := loadTestFont(t, d)

	ctx := d.NewPageContext(200, 200)
	if err := ctx.RenderText("AB", fid, 12, 10, 100); err != nil {
		t.Fatal(err)
	}

	got := ctx.content.String()
	if !strings.Contains(got, "BT\n") || !strings.Contains(got, "ET\n") {
		t.Errorf("text object brackets missing from %q", got)
	}
	if !strings.Contains(got, "/F1 12.000000 Tf") {
		t.Errorf("font selection missing from %q", got)
	}
	// 'A' is offset 1, 'B' is offset 2 in the first subset
	if !strings.Contains(got, "<00010002>") && !strings.Contains(got, "<0001") {
		t.Errorf("glyph string missing from %q", got)
	}
	if !strings.Contains(got, "TJ") {
		t.Errorf("TJ operator missing from %q", got)
	}
}

func TestRenderTextMissingGlyph(t *testing.T) {
	d, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	fid := loadTestFont(t, d)

	ctx := d.NewPageContext(200, 200)
	// Go Regular has no CJK coverage.
	err = ctx.RenderText("\u4E2D", fid, 12, 10, 100)
	if !IsKind(err, ErrMissingGlyph) {
		t.Errorf("missing glyph returned %v", err)
	}
}

func TestBuiltinFontText(t *testing.T) {
	d, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}

	ctx := d.NewPageContext(200, 200)
	if err := ctx.RenderTextBuiltin("Hello", Helvetica, 12, 10, 100); err != nil {
		t.Fatal(err)
	}

	got := ctx.content.String()
	if !strings.Contains(got, "(Hello) Tj") {
		t.Errorf("builtin text missing from %q", got)
	}

	fid := d.Builtin(Helvetica)
	if again := d.Builtin(Helvetica); again != fid {
		t.Errorf("builtin font not cached: %d != %d", again, fid)
	}

	entry := d.objects.get(d.fonts[fid].builtinRef).(fullObject)
	dict := entry.Body.(Dict)
	if dict["BaseFont"] != Name("Helvetica") || dict["Subtype"] != Name("Type1") {
		t.Errorf("builtin font dict %v", dict)
	}
}

func TestSubsetRolloverSwitchesFonts(t *testing.T) {
	d, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	fid := loadTestFont(t, d)

	// Fill the first subset so that the next glyph rolls over.
	for cp := rune(0x21); len(d.fonts[fid].subsets.subset(0)) < maxSubsetSize; cp++ {
		if d.fonts[fid].cmap.Lookup(cp) == 0 {
			continue
		}
		if _, err := d.subsetGlyph(fid, cp); err != nil {
			t.Fatal(err)
		}
	}
	if got := d.fonts[fid].subsets.numSubsets(); got != 1 {
		t.Fatalf("expected a single full subset, got %d", got)
	}

	ctx := d.NewPageContext(200, 200)
	// Greek omega is not among the Latin glyphs used above, so it
	// starts subset 1; "A" is already in subset 0.
	if err := ctx.RenderText("A\u03A9", fid, 12, 10, 100); err != nil {
		t.Fatal(err)
	}

	got := ctx.content.String()
	if !strings.Contains(got, "/F1 ") || !strings.Contains(got, "/F2 ") {
		t.Errorf("subset switch missing from %q", got)
	}

	if len(d.fonts[fid].quartets) != 2 {
		t.Errorf("%d subset quartets registered", len(d.fonts[fid].quartets))
	}
}
