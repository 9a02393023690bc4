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
	"crypto/md5"
	"fmt"
	"io"
	"os"
)

// header is the PDF 1.7 file header.  The binary comment line keeps
// transfer programs from treating the file as text.
const header = "%PDF-1.7\n%\xE2\xE3\xCF\xD3\n"

// Write finalizes the document and emits the PDF file.
//
// Finalization pads the font subsets, creates the catalog, materializes
// every deferred object-table entry in dependency order and then writes
// header, body, cross-reference table and trailer.  A document can only
// be written once.
func (d *Document) Write(w io.Writer) error {
	d.padSubsetFonts()

	root, err := d.createCatalog()
	if err != nil {
		return err
	}

	if err := d.resolveDeferred(); err != nil {
		return err
	}

	return d.emit(w, root)
}

// WriteFile finalizes the document and writes it to the named file.
func (d *Document) WriteFile(name string) error {
	fd, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := d.Write(fd); err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

// resolveDeferred materializes every delayed entry.  After this pass the
// table holds only fullObject and deflateObject entries.
func (d *Document) resolveDeferred() error {
	for i := 1; i <= d.objects.count(); i++ {
		ref := Reference(i)

		var entry tableEntry
		var err error
		switch e := d.objects.get(ref).(type) {
		case fullObject, deflateObject:
			continue
		case delayedPages:
			entry = d.resolvePages()
		case delayedPage:
			entry, err = d.resolvePage(e)
		case delayedAnnotation:
			entry, err = d.resolveAnnotation(e)
		case delayedCheckboxWidget:
			entry, err = d.resolveCheckboxWidget(e)
		case delayedStructItem:
			entry, err = d.resolveStructItem(e, d.structTreeRootRef)
		case delayedSubsetFontData:
			entry, err = d.resolveSubsetFontData(e)
		case delayedSubsetFontDescriptor:
			entry, err = d.resolveSubsetFontDescriptor(e)
		case delayedSubsetCMap:
			entry, err = d.resolveSubsetCMap(e)
		case delayedSubsetFont:
			entry, err = d.resolveSubsetFont(e)
		case reservedSlot:
			panic(fmt.Sprintf("object %d: reserved slot never filled", i))
		default:
			panic(fmt.Sprintf("object %d: unexpected entry %T", i, e))
		}
		if err != nil {
			return Wrap(err, fmt.Sprintf("object %d", i))
		}
		d.objects.set(ref, entry)
	}
	return nil
}

// posWriter tracks the byte offset of everything written, and feeds the
// same bytes into the hash used for the file identifier.
type posWriter struct {
	w    io.Writer
	pos  int64
	hash io.Writer
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	w.hash.Write(p[:n])
	return n, err
}

// emit writes header, body, cross-reference table and trailer.
func (d *Document) emit(out io.Writer, root Reference) error {
	hash := md5.New()
	w := &posWriter{w: out, hash: hash}

	if _, err := io.WriteString(w, header); err != nil {
		return err
	}

	count := d.objects.count()
	offsets := make([]int64, count+1)
	for i := 1; i <= count; i++ {
		offsets[i] = w.pos
		if err := d.emitObject(w, Reference(i)); err != nil {
			return Wrap(err, fmt.Sprintf("object %d", i))
		}
	}

	xrefPos := w.pos
	if _, err := fmt.Fprintf(w, "xref\n0 %d\n", count+1); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "0000000000 65535 f\r\n"); err != nil {
		return err
	}
	for i := 1; i <= count; i++ {
		if _, err := fmt.Fprintf(w, "%010d %05d n\r\n", offsets[i], 0); err != nil {
			return err
		}
	}

	id := String(hash.Sum(nil))
	trailer := Dict{
		"Size": Integer(count + 1),
		"Root": root,
		"Info": d.infoRef,
		"ID":   Array{id, id},
	}
	if _, err := io.WriteString(w, "trailer\n"); err != nil {
		return err
	}
	if err := trailer.PDF(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nstartxref\n%d\n%%%%EOF\n", xrefPos)
	return err
}

// emitObject writes one indirect object.  The /Length entry of stream
// dictionaries is synthesized here so that it always matches the
// on-wire stream bytes.
func (d *Document) emitObject(w io.Writer, ref Reference) error {
	if _, err := fmt.Fprintf(w, "%d 0 obj\n", int(ref)); err != nil {
		return err
	}

	switch e := d.objects.get(ref).(type) {
	case fullObject:
		if e.Stream == nil {
			if err := e.Body.PDF(w); err != nil {
				return err
			}
		} else {
			dict := e.Body.(Dict)
			dict["Length"] = Integer(len(e.Stream))
			if err := writeStream(w, dict, e.Stream); err != nil {
				return err
			}
		}
	case deflateObject:
		compressed, err := flateCompress(e.Stream)
		if err != nil {
			return err
		}
		e.Dict["Filter"] = Name("FlateDecode")
		e.Dict["Length"] = Integer(len(compressed))
		if err := writeStream(w, e.Dict, compressed); err != nil {
			return err
		}
	default:
		panic(fmt.Sprintf("object %d: deferred entry survived finalization", int(ref)))
	}

	_, err := io.WriteString(w, "\nendobj\n")
	return err
}

func writeStream(w io.Writer, dict Dict, data []byte) error {
	if err := dict.PDF(w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\nstream\n"); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\nendstream")
	return err
}

func flateCompress(data []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw := zlib.NewWriter(buf)
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
