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
	"strings"
	"testing"
)

func newTestContext(t *testing.T) (*Document, *DrawContext) {
	t.Helper()
	d, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	return d, d.NewPageContext(100, 100)
}

func TestOperatorOutput(t *testing.T) {
	_, ctx := newTestContext(t)

	ctx.PushGraphicsState()
	ctx.SetLineWidth(2)
	ctx.MoveTo(10, 20)
	ctx.LineTo(30, 40)
	ctx.Stroke()
	ctx.PopGraphicsState()

	got := ctx.content.String()
	want := strings.Join([]string{
		"q",
		"2.000000 w",
		"10.000000 20.000000 m",
		"30.000000 40.000000 l",
		"S",
		"Q",
	}, "\n") + "\n"
	if got != want {
		t.Errorf("content stream:\n%q\nexpected:\n%q", got, want)
	}
}

func TestNestedBMCRejected(t *testing.T) {
	_, ctx := newTestContext(t)

	if err := ctx.MarkedContentStart("Span"); err != nil {
		t.Fatal(err)
	}
	err := ctx.MarkedContentStart("Span")
	if !IsKind(err, ErrNestedBMC) {
		t.Errorf("nested BMC returned %v, expected NestedBMC", err)
	}

	// nesting through an intermediate save state is still rejected
	if err := ctx.PushGraphicsState(); err != nil {
		t.Fatal(err)
	}
	err = ctx.MarkedContentStart("Span")
	if !IsKind(err, ErrNestedBMC) {
		t.Errorf("indirectly nested BMC returned %v, expected NestedBMC", err)
	}
}

func TestDrawStateEndMismatch(t *testing.T) {
	_, ctx := newTestContext(t)

	if err := ctx.MarkedContentEnd(); !IsKind(err, ErrDrawStateEndMismatch) {
		t.Errorf("EMC without BMC returned %v", err)
	}

	if err := ctx.MarkedContentStart("Span"); err != nil {
		t.Fatal(err)
	}
	if err := ctx.PopGraphicsState(); !IsKind(err, ErrDrawStateEndMismatch) {
		t.Errorf("Q closing a BMC returned %v", err)
	}
}

func TestUnclosedStateRejectedAtSerialize(t *testing.T) {
	d, ctx := newTestContext(t)

	if err := ctx.MarkedContentStart("Span"); err != nil {
		t.Fatal(err)
	}
	if !ctx.HasUnclosedState() {
		t.Fatal("open bracket not reported")
	}
	if _, err := d.AddPageContext(ctx); !IsKind(err, ErrUnclosedMarkedContent) {
		t.Errorf("unclosed context returned %v, expected UnclosedMarkedContent", err)
	}

	if err := ctx.MarkedContentEnd(); err != nil {
		t.Fatal(err)
	}
	if ctx.MarkedContentDepth() != 0 {
		t.Errorf("marked content depth %d after close", ctx.MarkedContentDepth())
	}
	if _, err := d.AddPageContext(ctx); err != nil {
		t.Errorf("balanced context rejected: %v", err)
	}
}

func TestWithGraphicsStateBalances(t *testing.T) {
	_, ctx := newTestContext(t)

	err := ctx.WithGraphicsState(func() error {
		return ctx.SetFillGray(0.5)
	})
	if err != nil {
		t.Fatal(err)
	}
	if ctx.HasUnclosedState() {
		t.Error("WithGraphicsState left an open bracket")
	}

	got := ctx.content.String()
	want := "q\n0.500000 g\nQ\n"
	if got != want {
		t.Errorf("got %q, expected %q", got, want)
	}
}

func TestResourceDictOnlyListsUsedResources(t *testing.T) {
	d, ctx := newTestContext(t)

	alpha := 0.5
	gsUsed, err := d.AddGraphicsState(&GraphicsState{FillAlpha: &alpha})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.AddGraphicsState(&GraphicsState{StrokeAlpha: &alpha}); err != nil {
		t.Fatal(err)
	}

	if err := ctx.SetExtGState(gsUsed); err != nil {
		t.Fatal(err)
	}

	res := ctx.buildResourceDict()
	if len(res) != 1 {
		t.Fatalf("resource dict has %d categories, expected 1: %v", len(res), res)
	}
	ext := res["ExtGState"].(Dict)
	if len(ext) != 1 {
		t.Errorf("ExtGState lists %d entries, expected 1", len(ext))
	}
	if ext["E1"] != d.gstates[gsUsed] {
		t.Errorf("ExtGState E1 references %v", ext["E1"])
	}
}

func TestResourceNamesAreStable(t *testing.T) {
	d, ctx := newTestContext(t)

	img, err := d.AddImage(&RasterImage{
		Width: 1, Height: 1, Depth: 8,
		ColorSpace: DeviceGray,
		Pixels:     []byte{0x80},
	})
	if err != nil {
		t.Fatal(err)
	}

	ctx.DrawImage(img)
	ctx.DrawImage(img)

	res := ctx.buildResourceDict()
	xobj := res["XObject"].(Dict)
	if len(xobj) != 1 {
		t.Errorf("image registered twice: %v", xobj)
	}

	got := ctx.content.String()
	if got != "/X1 Do\n/X1 Do\n" {
		t.Errorf("content stream %q", got)
	}
}

func TestContextTypeChecks(t *testing.T) {
	d, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}

	form := d.NewFormXObjectContext(10, 10)
	if _, err := d.AddPageContext(form); !IsKind(err, ErrInvalidDrawContextType) {
		t.Errorf("form context accepted as page: %v", err)
	}
	if err := form.AddFormWidget(0); !IsKind(err, ErrInvalidDrawContextType) {
		t.Errorf("widget on form context: %v", err)
	}

	other, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	page := other.NewPageContext(10, 10)
	if _, err := d.AddPageContext(page); !IsKind(err, ErrIncorrectDocumentForObject) {
		t.Errorf("foreign context accepted: %v", err)
	}
}

func TestTilingPattern(t *testing.T) {
	d, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}

	tile := d.NewTilingPatternContext(4, 4)
	tile.SetFillGray(0)
	tile.Rectangle(0, 0, 2, 2)
	tile.Fill()
	pat, err := d.AddPattern(tile)
	if err != nil {
		t.Fatal(err)
	}

	page := d.NewPageContext(100, 100)
	if err := page.SetFillColor(PatternColor{Pattern: pat}); err != nil {
		t.Fatal(err)
	}
	page.Rectangle(0, 0, 100, 100)
	page.Fill()

	got := page.content.String()
	if !strings.Contains(got, "/Pattern cs\n/P1 scn\n") {
		t.Errorf("pattern selection missing from %q", got)
	}

	res := page.buildResourceDict()
	if _, ok := res["Pattern"]; !ok {
		t.Errorf("pattern not in resources: %v", res)
	}

	entry := d.objects.get(d.patterns[pat]).(fullObject)
	dict := entry.Body.(Dict)
	if dict["PatternType"] != Integer(1) || dict["XStep"] != Number(4) {
		t.Errorf("pattern dict %v", dict)
	}
}
