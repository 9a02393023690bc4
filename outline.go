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

// outlineItem is one document outline (bookmark) entry.
type outlineItem struct {
	title string
	dest  PageID
}

// outlineRootID is the sentinel parent of top-level outline entries.
const outlineRootID = OutlineID(-1)

// AddOutline appends an outline entry pointing at the given page.
// parent is nil for top-level entries.  The outline tree is emitted
// during finalization, so entries may reference pages added later.
func (d *Document) AddOutline(title string, dest PageID, parent *OutlineID) (OutlineID, error) {
	p := outlineRootID
	if parent != nil {
		if int(*parent) >= len(d.outlines) {
			return 0, errKind(ErrIncorrectDocumentForObject)
		}
		p = *parent
	}
	id := OutlineID(len(d.outlines))
	d.outlineParent[id] = p
	d.outlineChildren[p] = append(d.outlineChildren[p], id)
	d.outlines = append(d.outlines, outlineItem{title: title, dest: dest})
	return id, nil
}

// createOutlines emits the outline tree and returns the /Outlines root.
// All object slots are reserved up front so that the doubly linked
// Prev/Next/First/Last structure can be filled in any order.
func (d *Document) createOutlines() Reference {
	refs := make([]Reference, len(d.outlines))
	for i := range d.outlines {
		refs[i] = d.objects.reserve()
	}
	rootRef := d.objects.reserve()

	for id, item := range d.outlines {
		cur := OutlineID(id)
		parent := d.outlineParent[cur]

		dict := Dict{
			"Title": TextString(item.title),
			"Dest":  Array{d.pages[item.dest].page, Name("XYZ"), nil, nil, nil},
		}

		siblings := d.outlineChildren[parent]
		pos := 0
		for i, sib := range siblings {
			if sib == cur {
				pos = i
				break
			}
		}
		if pos > 0 {
			dict["Prev"] = refs[siblings[pos-1]]
		}
		if pos+1 < len(siblings) {
			dict["Next"] = refs[siblings[pos+1]]
		}

		if children := d.outlineChildren[cur]; len(children) > 0 {
			dict["First"] = refs[children[0]]
			dict["Last"] = refs[children[len(children)-1]]
			dict["Count"] = Integer(-len(children))
		}

		if parent == outlineRootID {
			dict["Parent"] = rootRef
		} else {
			dict["Parent"] = refs[parent]
		}

		d.objects.set(refs[id], fullObject{Body: dict})
	}

	topLevel := d.outlineChildren[outlineRootID]
	d.objects.set(rootRef, fullObject{Body: Dict{
		"Type":  Name("Outlines"),
		"First": refs[topLevel[0]],
		"Last":  refs[topLevel[len(topLevel)-1]],
		"Count": Integer(len(topLevel)),
	}})
	return rootRef
}
