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
	"compress/zlib"
	"fmt"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func vec2(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func writeDoc(t *testing.T, d *Document) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := d.Write(buf); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// objectBody returns the bytes between "n 0 obj" and "endobj".
func objectBody(t *testing.T, out []byte, ref Reference) []byte {
	t.Helper()
	marker := []byte(fmt.Sprintf("%d 0 obj\n", int(ref)))
	start := bytes.Index(out, marker)
	if start < 0 {
		t.Fatalf("object %d not found", ref)
	}
	start += len(marker)
	end := bytes.Index(out[start:], []byte("\nendobj\n"))
	if end < 0 {
		t.Fatalf("object %d is not terminated", ref)
	}
	return out[start : start+end]
}

// decodeStream extracts and decompresses the Flate stream of an object.
func decodeStream(t *testing.T, body []byte) []byte {
	t.Helper()
	start := bytes.Index(body, []byte("stream\n"))
	if start < 0 {
		t.Fatal("no stream in object")
	}
	start += len("stream\n")
	end := bytes.LastIndex(body, []byte("\nendstream"))
	if end < 0 {
		t.Fatal("stream is not terminated")
	}
	zr, err := zlib.NewReader(bytes.NewReader(body[start:end]))
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()
	data, err := io.ReadAll(zr)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestEmptyDocument(t *testing.T) {
	d, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	out := writeDoc(t, d)

	if !bytes.HasPrefix(out, []byte("%PDF-1.7\n%\xE2\xE3\xCF\xD3\n")) {
		t.Errorf("bad header: %q", out[:20])
	}
	if !bytes.HasSuffix(out, []byte("%%EOF\n")) {
		t.Errorf("missing %%EOF")
	}

	pages := objectBody(t, out, d.pagesRef)
	if !bytes.Contains(pages, []byte("/Count 0")) {
		t.Errorf("pages object %q lacks /Count 0", pages)
	}
	if !bytes.Contains(pages, []byte("/Kids []")) {
		t.Errorf("pages object %q lacks empty /Kids", pages)
	}
}

func TestXRefOffsets(t *testing.T) {
	d, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	out := writeDoc(t, d)

	idx := bytes.LastIndex(out, []byte("startxref\n"))
	if idx < 0 {
		t.Fatal("no startxref")
	}
	rest := string(out[idx+len("startxref\n"):])
	xrefPos, err := strconv.Atoi(strings.SplitN(rest, "\n", 2)[0])
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(out[xrefPos:], []byte("xref\n")) {
		t.Errorf("startxref does not point at the xref table")
	}

	// every in-use entry must point at the object's "n 0 obj" line
	table := out[xrefPos:]
	lines := strings.Split(string(table), "\n")
	// lines[0] == "xref", lines[1] == "0 N", lines[2] == free entry
	for i, line := range lines[3:] {
		if !strings.HasSuffix(line, " n\r") {
			break
		}
		offset, err := strconv.Atoi(line[:10])
		if err != nil {
			t.Fatal(err)
		}
		expected := []byte(fmt.Sprintf("%d 0 obj\n", i+1))
		if !bytes.HasPrefix(out[offset:], expected) {
			t.Errorf("xref entry %d points at %q", i+1, out[offset:offset+12])
		}
	}
}

func TestBlankPage(t *testing.T) {
	d, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}

	ctx := d.NewPageContext(595, 842)
	pageID, err := d.AddPageContext(ctx)
	if err != nil {
		t.Fatal(err)
	}
	out := writeDoc(t, d)

	page := objectBody(t, out, d.pages[pageID].page)
	if !bytes.Contains(page, []byte("/MediaBox [0 0 595 842]")) {
		t.Errorf("page dict %q lacks the media box", page)
	}
	if bytes.Contains(page, []byte("/Group")) {
		t.Errorf("device-space page carries a /Group entry")
	}

	pages := objectBody(t, out, d.pagesRef)
	if !bytes.Contains(pages, []byte("/Count 1")) {
		t.Errorf("pages object %q lacks /Count 1", pages)
	}
}

func TestEmbeddedImage(t *testing.T) {
	d, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}

	pixels := []byte{
		0xFF, 0x00, 0x00,
		0x00, 0xFF, 0x00,
		0x00, 0x00, 0xFF,
		0xFF, 0xFF, 0x00,
	}
	img, err := d.AddImage(&RasterImage{
		Width:      2,
		Height:     2,
		Depth:      8,
		ColorSpace: DeviceRGB,
		Pixels:     pixels,
	})
	if err != nil {
		t.Fatal(err)
	}

	ctx := d.NewPageContext(200, 200)
	if err := ctx.DrawImage(img); err != nil {
		t.Fatal(err)
	}
	pageID, err := d.AddPageContext(ctx)
	if err != nil {
		t.Fatal(err)
	}
	out := writeDoc(t, d)

	body := objectBody(t, out, d.images[img].ref)
	for _, want := range []string{
		"/Width 2", "/Height 2", "/BitsPerComponent 8",
		"/ColorSpace /DeviceRGB", "/Filter /FlateDecode",
	} {
		if !bytes.Contains(body, []byte(want)) {
			t.Errorf("image dict lacks %q", want)
		}
	}
	if diff := cmp.Diff(pixels, decodeStream(t, body)); diff != "" {
		t.Errorf("image stream mismatch (-want +got):\n%s", diff)
	}

	resources := objectBody(t, out, d.pages[pageID].resources)
	if !bytes.Contains(resources, []byte("/XObject")) {
		t.Errorf("resources %q lack /XObject", resources)
	}
	if !bytes.Contains(resources, []byte(fmt.Sprintf("%d 0 R", int(d.images[img].ref)))) {
		t.Errorf("resources %q do not reference the image", resources)
	}
}

func TestWidgetReuseRejected(t *testing.T) {
	d, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}

	onCtx := d.NewFormXObjectContext(10, 10)
	onCtx.Rectangle(0, 0, 10, 10)
	onCtx.Fill()
	on, err := d.AddFormXObject(onCtx)
	if err != nil {
		t.Fatal(err)
	}
	offCtx := d.NewFormXObjectContext(10, 10)
	off, err := d.AddFormXObject(offCtx)
	if err != nil {
		t.Fatal(err)
	}

	widget, err := d.CreateFormCheckbox(rect.Rect{LLx: 10, LLy: 10, URx: 20, URy: 20}, on, off, "check1")
	if err != nil {
		t.Fatal(err)
	}

	page1 := d.NewPageContext(100, 100)
	if err := page1.AddFormWidget(widget); err != nil {
		t.Fatal(err)
	}
	if _, err := d.AddPageContext(page1); err != nil {
		t.Fatal(err)
	}

	page2 := d.NewPageContext(100, 100)
	if err := page2.AddFormWidget(widget); err != nil {
		t.Fatal(err)
	}
	_, err = d.AddPageContext(page2)
	if !IsKind(err, ErrAnnotationReuse) {
		t.Errorf("reusing a widget returned %v, expected AnnotationReuse", err)
	}
}

func TestStructureReuseRejected(t *testing.T) {
	d, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}

	root, err := d.AddStructureItem(StructDocument, nil)
	if err != nil {
		t.Fatal(err)
	}
	para, err := d.AddStructureItem(StructP, &root)
	if err != nil {
		t.Fatal(err)
	}

	page1 := d.NewPageContext(100, 100)
	if err := page1.MarkedContentStartStruct(para); err != nil {
		t.Fatal(err)
	}
	if err := page1.MarkedContentEnd(); err != nil {
		t.Fatal(err)
	}
	if _, err := d.AddPageContext(page1); err != nil {
		t.Fatal(err)
	}

	page2 := d.NewPageContext(100, 100)
	if err := page2.MarkedContentStartStruct(para); err != nil {
		t.Fatal(err)
	}
	if err := page2.MarkedContentEnd(); err != nil {
		t.Fatal(err)
	}
	_, err = d.AddPageContext(page2)
	if !IsKind(err, ErrStructureReuse) {
		t.Errorf("reusing a structure item returned %v, expected StructureReuse", err)
	}
}

func TestShading4VertexEncoding(t *testing.T) {
	d, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}

	sh, err := d.AddShadingType4(&ShadingType4{
		ColorSpace: DeviceRGB,
		MinX:       0, MaxX: 100,
		MinY: 0, MaxY: 100,
		Vertices: []Vertex{
			{Flag: 0, Point: vec2(25, 0), Color: RGBColor{1, 0, 0}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	entry := d.objects.get(d.shadings[sh]).(fullObject)
	stream := entry.Stream
	if len(stream) != 1+4+4+6 {
		t.Fatalf("stream has %d bytes", len(stream))
	}
	if stream[0] != 0 {
		t.Errorf("vertex flag byte is %d", stream[0])
	}
	// 0.25 of the uint32 range, big endian
	want := []byte{0x3F, 0xFF, 0xFF, 0xFF}
	if diff := cmp.Diff(want, stream[1:5]); diff != "" {
		t.Errorf("x coordinate (-want +got):\n%s", diff)
	}
	// y = 0
	if diff := cmp.Diff([]byte{0, 0, 0, 0}, stream[5:9]); diff != "" {
		t.Errorf("y coordinate (-want +got):\n%s", diff)
	}
	// red = FFFF 0000 0000
	if diff := cmp.Diff([]byte{0xFF, 0xFF, 0, 0, 0, 0}, stream[9:15]); diff != "" {
		t.Errorf("color components (-want +got):\n%s", diff)
	}
}

func TestShading4Errors(t *testing.T) {
	d, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}

	_, err = d.AddShadingType4(&ShadingType4{
		ColorSpace: DeviceRGB,
		MinX:       0, MaxX: 1, MinY: 0, MaxY: 1,
		Vertices: []Vertex{
			{Flag: 7, Point: vec2(0, 0), Color: RGBColor{0, 0, 0}},
		},
	})
	if !IsKind(err, ErrMalformedShading) {
		t.Errorf("bad flag returned %v, expected MalformedShading", err)
	}

	_, err = d.AddShadingType4(&ShadingType4{
		ColorSpace: DeviceGray,
		MinX:       0, MaxX: 1, MinY: 0, MaxY: 1,
		Vertices: []Vertex{
			{Flag: 0, Point: vec2(0, 0), Color: RGBColor{0, 0, 0}},
		},
	})
	if !IsKind(err, ErrColorspaceMismatch) {
		t.Errorf("wrong vertex color returned %v, expected ColorspaceMismatch", err)
	}
}

func TestContentStreamLength(t *testing.T) {
	for _, compress := range []bool{false, true} {
		d, err := New(&DocumentProperties{CompressStreams: compress})
		if err != nil {
			t.Fatal(err)
		}

		ctx := d.NewPageContext(100, 100)
		ctx.Rectangle(10, 10, 50, 50)
		ctx.Fill()
		commands := append([]byte(nil), ctx.content.Bytes()...)

		pageID, err := d.AddPageContext(ctx)
		if err != nil {
			t.Fatal(err)
		}
		out := writeDoc(t, d)

		body := objectBody(t, out, d.pages[pageID].contents)
		var got []byte
		if compress {
			got = decodeStream(t, body)
		} else {
			start := bytes.Index(body, []byte("stream\n")) + len("stream\n")
			end := bytes.LastIndex(body, []byte("\nendstream"))
			got = body[start:end]

			want := fmt.Sprintf("/Length %d", len(got))
			if !bytes.Contains(body, []byte(want)) {
				t.Errorf("content dict lacks %q", want)
			}
		}
		if diff := cmp.Diff(commands, got); diff != "" {
			t.Errorf("compress=%v: content stream mismatch (-want +got):\n%s", compress, diff)
		}
	}
}

func TestOutputIntentValidation(t *testing.T) {
	_, err := New(&DocumentProperties{
		Subtype:                   IntentPDFX,
		IntentConditionIdentifier: "FOGRA39",
	})
	if !IsKind(err, ErrOutputProfileMissing) {
		t.Errorf("missing profile returned %v", err)
	}

	_, err = New(&DocumentProperties{
		Subtype:    IntentPDFX,
		RGBProfile: []byte("not really an ICC profile"),
	})
	if !IsKind(err, ErrMissingIntentIdentifier) {
		t.Errorf("missing identifier returned %v", err)
	}
}

func TestICCProfileDeduplication(t *testing.T) {
	d, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}

	// storeICCProfile bypasses profile parsing; deduplication works on
	// the raw bytes.
	profile := []byte("fake profile data")
	first := d.storeICCProfile(profile, 3)

	if id, ok := d.findICCProfile(profile); !ok || id != first {
		t.Errorf("lookup after store failed: %v %v", id, ok)
	}
	if _, ok := d.findICCProfile([]byte("different")); ok {
		t.Errorf("unrelated bytes matched a stored profile")
	}
}
