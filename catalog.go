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
	"fmt"

	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"
)

// createOutputIntent emits the output intent dictionary.  New has
// already checked that the output profile and the condition identifier
// are present.
func (d *Document) createOutputIntent() {
	d.outputIntentRef = d.objects.add(fullObject{Body: Dict{
		"Type":                      Name("OutputIntent"),
		"S":                         d.props.Subtype.pdfName(),
		"OutputConditionIdentifier": String(d.props.IntentConditionIdentifier),
		"DestOutputProfile":         d.iccProfiles[d.outputProfile].stream,
	}})
}

// createNameDict emits the /Names dictionary listing the embedded files.
func (d *Document) createNameDict() Reference {
	names := Array{}
	for i, ef := range d.embeddedFiles {
		names = append(names, String(fmt.Sprintf("embobj%06d", i)), ef.filespec)
	}
	return d.objects.add(fullObject{Body: Dict{
		"EmbeddedFiles": Dict{
			"Limits": Array{
				String("embobj000000"),
				String(fmt.Sprintf("embobj%06d", len(d.embeddedFiles)-1)),
			},
			"Names": names,
		},
	}})
}

// pdfSchema is the XMP namespace for PDF properties.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type pdfSchema struct {
	_          xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_          xmp.Prefix    `xmp:"pdf"`
	Producer   xmp.AgentName
	PDFVersion xmp.Text
	Trapped    xmp.Text
}

// createMetadata emits the XMP metadata stream.  PDF/X and PDF/A files
// must carry document metadata; the stream mirrors the information
// dictionary.  The packet is stored uncompressed so that metadata-only
// consumers can find it.
func (d *Document) createMetadata() (Reference, error) {
	dc := &xmp.DublinCore{}
	if d.props.Title != "" {
		dc.Title.Set(language.MustParse("x-default"), d.props.Title)
	}
	if d.props.Author != "" {
		dc.Creator.Append(xmp.NewProperName(d.props.Author))
	}

	basic := &xmp.Basic{}
	basic.CreateDate = xmp.NewDate(d.creationDate)
	basic.ModifyDate = xmp.NewDate(d.creationDate)

	pdfInfo := &pdfSchema{}
	pdfInfo.Producer = xmp.NewAgentName(producer)
	pdfInfo.PDFVersion = xmp.NewText("1.7")
	pdfInfo.Trapped = xmp.NewText("False")

	packet := xmp.NewPacket()
	packet.Set(dc, basic, pdfInfo)

	buf := &bytes.Buffer{}
	if err := packet.Write(buf, nil); err != nil {
		return 0, Wrap(err, "XMP metadata")
	}

	return d.objects.add(fullObject{
		Body: Dict{
			"Type":    Name("Metadata"),
			"Subtype": Name("XML"),
		},
		Stream: buf.Bytes(),
	}), nil
}

// createCatalog emits the document catalog and everything only it
// references: the names dictionary, the outline tree and the structure
// tree.  Returns the catalog reference.
func (d *Document) createCatalog() (Reference, error) {
	dict := Dict{
		"Type":  Name("Catalog"),
		"Pages": d.pagesRef,
	}

	if len(d.embeddedFiles) > 0 {
		dict["Names"] = d.createNameDict()
	}

	if len(d.outlines) > 0 {
		for _, item := range d.outlines {
			if int(item.dest) >= len(d.pages) {
				return 0, errKindf(ErrIncorrectDocumentForObject,
					"outline destination page %d", item.dest)
			}
		}
		dict["Outlines"] = d.createOutlines()
	}

	if len(d.structItems) > 0 {
		parentTree := d.createStructureParentTree()
		d.structTreeRootRef = d.createStructureRoot(parentTree)
		dict["StructTreeRoot"] = d.structTreeRootRef
	}

	if d.props.Lang != "" {
		dict["Lang"] = String(d.props.Lang)
	}
	if d.props.Tagged {
		dict["MarkInfo"] = Dict{
			"Marked": Bool(true),
		}
	}
	if d.outputIntentRef != 0 {
		dict["OutputIntents"] = Array{d.outputIntentRef}
	}

	if len(d.formWidgets) > 0 {
		fields := make(Array, len(d.formWidgets))
		for i, ref := range d.formWidgets {
			fields[i] = ref
		}
		dict["AcroForm"] = Dict{
			"Fields":          fields,
			"NeedAppearances": Bool(true),
		}
	}

	if len(d.ocgs) > 0 {
		groups := make(Array, len(d.ocgs))
		for i, ref := range d.ocgs {
			groups[i] = ref
		}
		dict["OCProperties"] = Dict{
			"OCGs": groups,
			"D": Dict{
				"BaseState": Name("ON"),
			},
		}
	}

	if d.props.Subtype != IntentNone {
		metaRef, err := d.createMetadata()
		if err != nil {
			return 0, err
		}
		d.metadataRef = metaRef
		dict["Metadata"] = metaRef
	}

	return d.objects.add(fullObject{Body: dict}), nil
}
