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
	"seehuhn.de/go/geom/rect"
)

// AnnotationContent selects the annotation subtype: TextAnnotation,
// LinkAnnotation or FileAttachmentAnnotation.
type AnnotationContent interface {
	isAnnotationContent()
}

// TextAnnotation is a "sticky note" annotation.
type TextAnnotation struct {
	Content string
}

// LinkAnnotation is a hyperlink to an external URI.
type LinkAnnotation struct {
	URI string
}

// FileAttachmentAnnotation attaches an embedded file to a location on
// the page.
type FileAttachmentAnnotation struct {
	File EmbeddedFileID
}

func (TextAnnotation) isAnnotationContent()           {}
func (LinkAnnotation) isAnnotationContent()           {}
func (FileAttachmentAnnotation) isAnnotationContent() {}

// Annotation describes a page annotation.  The rectangle is required.
type Annotation struct {
	Rect    *rect.Rect
	Content AnnotationContent
}

// CreateAnnotation registers an annotation.  The annotation dictionary
// is materialized during finalization, once the owning page is known.
// Each annotation can be attached to at most one page.
func (d *Document) CreateAnnotation(a *Annotation) (AnnotationID, error) {
	if a.Rect == nil {
		return 0, errKind(ErrAnnotationMissingRect)
	}
	id := AnnotationID(len(d.annotations))
	copied := *a
	d.annotations = append(d.annotations, &copied)
	d.annotRefs = append(d.annotRefs, d.objects.add(delayedAnnotation{id: id}))
	return id, nil
}

// resolveAnnotation materializes an annotation dictionary.  The /P entry
// is only written for annotations which a page has claimed.
func (d *Document) resolveAnnotation(e delayedAnnotation) (tableEntry, error) {
	a := d.annotations[e.id]
	dict := Dict{
		"Type": Name("Annot"),
		"Rect": rectArray(*a.Rect),
	}
	if pageRef, ok := d.annotationUse[e.id]; ok {
		dict["P"] = pageRef
	}

	switch content := a.Content.(type) {
	case TextAnnotation:
		dict["Subtype"] = Name("Text")
		dict["Contents"] = TextString(content.Content)
	case LinkAnnotation:
		dict["Subtype"] = Name("Link")
		dict["A"] = Dict{
			"S":   Name("URI"),
			"URI": String(content.URI),
		}
	case FileAttachmentAnnotation:
		dict["Subtype"] = Name("FileAttachment")
		dict["FS"] = d.embeddedFiles[content.File].filespec
	default:
		return nil, errKindf(ErrUnsupportedFormat, "annotation content %T", content)
	}

	return fullObject{Body: dict}, nil
}

// checkboxWidget is the data behind a delayedCheckboxWidget entry.
type checkboxWidget struct {
	rect        rect.Rect
	on, off     FormXObjectID
	partialName string
}

// CreateFormCheckbox registers a checkbox form widget with the given
// on/off appearance streams.
func (d *Document) CreateFormCheckbox(area rect.Rect, on, off FormXObjectID, partialName string) (FormWidgetID, error) {
	if int(on) >= len(d.formXObjects) || int(off) >= len(d.formXObjects) {
		return 0, errKind(ErrIncorrectDocumentForObject)
	}
	id := FormWidgetID(len(d.widgets))
	d.widgets = append(d.widgets, checkboxWidget{
		rect:        area,
		on:          on,
		off:         off,
		partialName: partialName,
	})
	d.formWidgets = append(d.formWidgets, d.objects.add(delayedCheckboxWidget{id: id}))
	return id, nil
}

// resolveCheckboxWidget materializes a checkbox widget annotation.
func (d *Document) resolveCheckboxWidget(e delayedCheckboxWidget) (tableEntry, error) {
	w := d.widgets[e.id]
	dict := Dict{
		"Type":    Name("Annot"),
		"Subtype": Name("Widget"),
		"FT":      Name("Btn"),
		"Rect":    rectArray(w.rect),
		"T":       TextString(w.partialName),
		"V":       Name("Off"),
		"AS":      Name("Off"),
		"AP": Dict{
			"N": Dict{
				"On":  d.formXObjects[w.on],
				"Off": d.formXObjects[w.off],
			},
		},
	}
	if pageRef, ok := d.widgetUse[e.id]; ok {
		dict["P"] = pageRef
	}
	return fullObject{Body: dict}, nil
}

// EmbedFile embeds a file and its file specification dictionary.  The
// name is the file name shown to the user.
func (d *Document) EmbedFile(name string, contents []byte) (EmbeddedFileID, error) {
	fileRef := d.objects.add(fullObject{
		Body: Dict{
			"Type": Name("EmbeddedFile"),
		},
		Stream: contents,
	})
	specRef := d.objects.add(fullObject{Body: Dict{
		"Type": Name("Filespec"),
		"F":    String(name),
		"EF": Dict{
			"F": fileRef,
		},
	}})
	d.embeddedFiles = append(d.embeddedFiles, embeddedFile{
		filespec: specRef,
		file:     fileRef,
	})
	return EmbeddedFileID(len(d.embeddedFiles) - 1), nil
}

func rectArray(r rect.Rect) Array {
	return Array{Number(r.LLx), Number(r.LLy), Number(r.URx), Number(r.URy)}
}
