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

import "strings"

// StructureType enumerates the standard structure types of tagged PDF.
// See section 14.8.4 of PDF 32000-1:2008.
type StructureType int

const (
	StructDocument StructureType = iota
	StructPart
	StructArt
	StructSect
	StructDiv
	StructBlockQuote
	StructCaption
	StructTOC
	StructTOCI
	StructIndex
	StructNonStruct
	StructPrivate
	StructP
	StructH
	StructH1
	StructH2
	StructH3
	StructH4
	StructH5
	StructH6
	StructL
	StructLI
	StructLbl
	StructLBody
	StructTable
	StructTR
	StructTH
	StructTD
	StructTHead
	StructTBody
	StructTFoot
	StructSpan
	StructQuote
	StructNote
	StructReference
	StructBibEntry
	StructCode
	StructLink
	StructAnnot
	StructRuby
	StructRB
	StructRT
	StructRP
	StructWarichu
	StructWT
	StructWP
	StructFigure
	StructFormula
	StructForm
)

var structureTypeNames = [...]Name{
	StructDocument:   "Document",
	StructPart:       "Part",
	StructArt:        "Art",
	StructSect:       "Sect",
	StructDiv:        "Div",
	StructBlockQuote: "BlockQuote",
	StructCaption:    "Caption",
	StructTOC:        "TOC",
	StructTOCI:       "TOCI",
	StructIndex:      "Index",
	StructNonStruct:  "NonStruct",
	StructPrivate:    "Private",
	StructP:          "P",
	StructH:          "H",
	StructH1:         "H1",
	StructH2:         "H2",
	StructH3:         "H3",
	StructH4:         "H4",
	StructH5:         "H5",
	StructH6:         "H6",
	StructL:          "L",
	StructLI:         "LI",
	StructLbl:        "Lbl",
	StructLBody:      "LBody",
	StructTable:      "Table",
	StructTR:         "TR",
	StructTH:         "TH",
	StructTD:         "TD",
	StructTHead:      "THead",
	StructTBody:      "TBody",
	StructTFoot:      "TFoot",
	StructSpan:       "Span",
	StructQuote:      "Quote",
	StructNote:       "Note",
	StructReference:  "Reference",
	StructBibEntry:   "BibEntry",
	StructCode:       "Code",
	StructLink:       "Link",
	StructAnnot:      "Annot",
	StructRuby:       "Ruby",
	StructRB:         "RB",
	StructRT:         "RT",
	StructRP:         "RP",
	StructWarichu:    "Warichu",
	StructWT:         "WT",
	StructWP:         "WP",
	StructFigure:     "Figure",
	StructFormula:    "Formula",
	StructForm:       "Form",
}

// structItem is the per-StructureItemID state.  The structure element
// dictionary itself is delayed until the item's marked-content position
// is known.
type structItem struct {
	ref     Reference
	builtin StructureType
	role    RoleID
	isRole  bool
	parent  StructureItemID // -1 for the root
}

type roleEntry struct {
	name    string
	builtin StructureType
}

// AddStructureItem registers a structure element with a builtin type.
// parent is nil for the root element; exactly one root is expected.
func (d *Document) AddStructureItem(stype StructureType, parent *StructureItemID) (StructureItemID, error) {
	p := StructureItemID(-1)
	if parent != nil {
		if int(*parent) >= len(d.structItems) {
			return 0, errKind(ErrIncorrectDocumentForObject)
		}
		p = *parent
	}
	id := StructureItemID(len(d.structItems))
	ref := d.objects.add(delayedStructItem{id: id})
	d.structItems = append(d.structItems, structItem{
		ref:     ref,
		builtin: stype,
		parent:  p,
	})
	return id, nil
}

// AddStructureItemRole registers a structure element with a user-defined
// role from the role map.
func (d *Document) AddStructureItemRole(role RoleID, parent *StructureItemID) (StructureItemID, error) {
	if int(role) >= len(d.roleMap) {
		return 0, errKind(ErrIncorrectDocumentForObject)
	}
	p := StructureItemID(-1)
	if parent != nil {
		if int(*parent) >= len(d.structItems) {
			return 0, errKind(ErrIncorrectDocumentForObject)
		}
		p = *parent
	}
	id := StructureItemID(len(d.structItems))
	ref := d.objects.add(delayedStructItem{id: id})
	d.structItems = append(d.structItems, structItem{
		ref:    ref,
		role:   role,
		isRole: true,
		parent: p,
	})
	return id, nil
}

// AddRoleMapEntry maps a user role name to a builtin structure type.
// Names must not start with a slash and must be unique.
func (d *Document) AddRoleMapEntry(name string, builtin StructureType) (RoleID, error) {
	if name == "" || strings.HasPrefix(name, "/") {
		return 0, errKind(ErrSlashStart)
	}
	for _, entry := range d.roleMap {
		if entry.name == name {
			return 0, errKind(ErrRoleAlreadyDefined)
		}
	}
	d.roleMap = append(d.roleMap, roleEntry{name: name, builtin: builtin})
	return RoleID(len(d.roleMap) - 1), nil
}

func (d *Document) structTypeName(item structItem) Name {
	if item.isRole {
		return Name(d.roleMap[item.role].name)
	}
	return structureTypeNames[item.builtin]
}

// resolveStructItem materializes a structure element dictionary.
func (d *Document) resolveStructItem(e delayedStructItem, structTreeRoot Reference) (tableEntry, error) {
	item := d.structItems[e.id]

	dict := Dict{
		"Type": Name("StructElem"),
		"S":    d.structTypeName(item),
	}
	if item.parent >= 0 {
		dict["P"] = d.structItems[item.parent].ref
	} else {
		dict["P"] = structTreeRoot
	}

	var kids Array
	for _, child := range d.structItems {
		if child.parent == e.id {
			kids = append(kids, child.ref)
		}
	}
	if usage, ok := d.structureUse[e.id]; ok {
		kids = append(kids, Integer(usage.mcid))
		dict["Pg"] = d.pages[usage.page].page
	}
	switch len(kids) {
	case 0:
		// leaf element without content
	case 1:
		dict["K"] = kids[0]
	default:
		dict["K"] = kids
	}

	return fullObject{Body: dict}, nil
}

// createStructureParentTree emits the number tree which maps each page's
// /StructParents index to the structure elements of its marked content.
func (d *Document) createStructureParentTree() Reference {
	nums := Array{}
	for i, items := range d.structParentTreeItems {
		refs := make(Array, len(items))
		for j, sid := range items {
			refs[j] = d.structItems[sid].ref
		}
		nums = append(nums, Integer(i), refs)
	}
	return d.objects.add(fullObject{Body: Dict{
		"Nums": nums,
	}})
}

// createStructureRoot emits the structure tree root.  The first item
// without a parent becomes the document root element.
func (d *Document) createStructureRoot(parentTree Reference) Reference {
	root := Reference(0)
	for _, item := range d.structItems {
		if item.parent < 0 {
			root = item.ref
			break
		}
	}

	dict := Dict{
		"Type":              Name("StructTreeRoot"),
		"K":                 Array{root},
		"ParentTree":        parentTree,
		"ParentTreeNextKey": Integer(len(d.structParentTreeItems)),
	}
	if len(d.roleMap) > 0 {
		roles := Dict{}
		for _, entry := range d.roleMap {
			roles[Name(entry.name)] = structureTypeNames[entry.builtin]
		}
		dict["RoleMap"] = roles
	}
	return d.objects.add(fullObject{Body: dict})
}
