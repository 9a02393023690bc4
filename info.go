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

// producer is the /Producer string written to the information dictionary.
const producer = "seehuhn.de/go/pdfgen"

// createInfoObject emits the document information dictionary.
func (d *Document) createInfoObject() Reference {
	date := Date(d.creationDate)

	info := Dict{
		"Producer":     String(producer),
		"CreationDate": date,
		"ModDate":      date,
		"Trapped":      Name("False"),
	}
	if d.props.Title != "" {
		info["Title"] = TextString(d.props.Title)
	}
	if d.props.Author != "" {
		info["Author"] = TextString(d.props.Author)
	}
	if d.props.Creator != "" {
		info["Creator"] = TextString(d.props.Creator)
	}
	if d.props.Subtype == IntentPDFX {
		info["GTS_PDFXVersion"] = String("PDF/X-3:2003")
	}

	return d.objects.add(fullObject{Body: info})
}
