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
	"seehuhn.de/go/pdfgen/transition"
)

// PageProperties are the page boxes of a page.  Unset boxes are omitted;
// an unset media box falls back to the document default and then to the
// draw context size.
type PageProperties struct {
	MediaBox *rect.Rect
	CropBox  *rect.Rect
	BleedBox *rect.Rect
	TrimBox  *rect.Rect
	ArtBox   *rect.Rect
}

// merge returns p with the set fields of override applied on top.
func (p PageProperties) merge(override PageProperties) PageProperties {
	if override.MediaBox != nil {
		p.MediaBox = override.MediaBox
	}
	if override.CropBox != nil {
		p.CropBox = override.CropBox
	}
	if override.BleedBox != nil {
		p.BleedBox = override.BleedBox
	}
	if override.TrimBox != nil {
		p.TrimBox = override.TrimBox
	}
	if override.ArtBox != nil {
		p.ArtBox = override.ArtBox
	}
	return p
}

// addPage appends a page built from a serialized draw context.
//
// Each widget, annotation and structure item can appear on at most one
// page; reuse is rejected before any object is emitted.
func (d *Document) addPage(resources Dict, contentDict Dict, commands []byte,
	props PageProperties, widgets []FormWidgetID, annots []AnnotationID,
	structs []StructureItemID, tr *transition.Transition,
	subnav []SubPageNavigation) (PageID, error) {

	for _, w := range widgets {
		if _, used := d.widgetUse[w]; used {
			return 0, errKindf(ErrAnnotationReuse, "widget %d", w)
		}
	}
	for _, a := range annots {
		if _, used := d.annotationUse[a]; used {
			return 0, errKindf(ErrAnnotationReuse, "annotation %d", a)
		}
	}
	for _, s := range structs {
		if _, used := d.structureUse[s]; used {
			return 0, errKindf(ErrStructureReuse, "structure item %d", s)
		}
	}

	resourceRef := d.objects.add(fullObject{Body: resources})

	var contentRef Reference
	if d.props.CompressStreams {
		contentRef = d.objects.add(deflateObject{Dict: contentDict, Stream: commands})
	} else {
		contentRef = d.objects.add(fullObject{Body: contentDict, Stream: commands})
	}

	page := delayedPage{
		pageNum:       len(d.pages),
		props:         props,
		widgets:       widgets,
		annotations:   annots,
		transition:    tr,
		structParents: -1,
	}
	if len(subnav) > 0 {
		page.subnavRoot = d.createSubNavigation(subnav)
	}
	if len(structs) > 0 {
		page.structParents = len(d.structParentTreeItems)
		d.structParentTreeItems = append(d.structParentTreeItems, structs)
	}

	pageRef := d.objects.add(page)

	for _, w := range widgets {
		d.widgetUse[w] = pageRef
	}
	for _, a := range annots {
		d.annotationUse[a] = pageRef
	}
	for mcid, s := range structs {
		d.structureUse[s] = structUsage{page: len(d.pages), mcid: mcid}
	}

	d.pages = append(d.pages, pageOffsets{
		resources: resourceRef,
		contents:  contentRef,
		page:      pageRef,
	})
	return PageID(len(d.pages) - 1), nil
}

// resolvePage materializes a page dictionary.  This runs during
// finalization, when the object numbers of all referenced widgets and
// annotations are known.
func (d *Document) resolvePage(e delayedPage) (tableEntry, error) {
	offsets := d.pages[e.pageNum]

	dict := Dict{
		"Type":      Name("Page"),
		"Parent":    d.pagesRef,
		"Resources": offsets.resources,
		"Contents":  offsets.contents,
	}

	props := e.props
	if props.MediaBox != nil {
		dict["MediaBox"] = rectArray(*props.MediaBox)
	}
	if props.CropBox != nil {
		dict["CropBox"] = rectArray(*props.CropBox)
	}
	if props.BleedBox != nil {
		dict["BleedBox"] = rectArray(*props.BleedBox)
	}
	if props.TrimBox != nil {
		dict["TrimBox"] = rectArray(*props.TrimBox)
	}
	if props.ArtBox != nil {
		dict["ArtBox"] = rectArray(*props.ArtBox)
	}

	// The page group is only declared when the file carries an output
	// intent; plain device-space documents do not need one.
	if d.props.Subtype != IntentNone {
		dict["Group"] = d.pageGroupRef
	}

	var annots Array
	for _, w := range e.widgets {
		annots = append(annots, d.formWidgets[w])
	}
	for _, a := range e.annotations {
		annots = append(annots, d.annotRefs[a])
	}
	if len(annots) > 0 {
		dict["Annots"] = annots
	}

	if e.transition != nil {
		dict["Trans"] = transitionDict(e.transition)
	}
	if e.subnavRoot != 0 {
		dict["PresSteps"] = e.subnavRoot
	}
	if e.structParents >= 0 {
		dict["StructParents"] = Integer(e.structParents)
	}

	return fullObject{Body: dict}, nil
}

// resolvePages materializes the /Pages dictionary listing every page in
// insertion order.
func (d *Document) resolvePages() tableEntry {
	kids := make(Array, len(d.pages))
	for i, p := range d.pages {
		kids[i] = p.page
	}
	return fullObject{Body: Dict{
		"Type":  Name("Pages"),
		"Kids":  kids,
		"Count": Integer(len(d.pages)),
	}}
}
