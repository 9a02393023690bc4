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

// This file implements the "XObject" and "Shading pattern" operators,
// tables 87 and 77 of PDF 32000-1:2008.

type imageKey ImageID
type formKey FormXObjectID
type groupKey TransparencyGroupID
type shadingKey ShadingID

// DrawImage paints an image XObject.  The image covers the unit square
// of user space; use Transform to size and place it.
//
// This implements the PDF graphics operator "Do".
func (c *DrawContext) DrawImage(id ImageID) error {
	if int(id) >= len(c.doc.images) {
		return errKind(ErrIncorrectDocumentForObject)
	}
	name := c.resourceName(catXObject, imageKey(id), c.doc.images[id].ref)
	c.writeOps("/"+string(name), "Do")
	return nil
}

// DrawFormXObject paints a form XObject.
//
// This implements the PDF graphics operator "Do".
func (c *DrawContext) DrawFormXObject(id FormXObjectID) error {
	if int(id) >= len(c.doc.formXObjects) {
		return errKind(ErrIncorrectDocumentForObject)
	}
	name := c.resourceName(catXObject, formKey(id), c.doc.formXObjects[id])
	c.writeOps("/"+string(name), "Do")
	return nil
}

// DrawTransparencyGroup paints a transparency group XObject.
//
// This implements the PDF graphics operator "Do".
func (c *DrawContext) DrawTransparencyGroup(id TransparencyGroupID) error {
	if int(id) >= len(c.doc.trGroups) {
		return errKind(ErrIncorrectDocumentForObject)
	}
	name := c.resourceName(catXObject, groupKey(id), c.doc.trGroups[id])
	c.writeOps("/"+string(name), "Do")
	return nil
}

// DrawShading paints the given shading across the current clipping
// region.
//
// This implements the PDF graphics operator "sh".
func (c *DrawContext) DrawShading(id ShadingID) error {
	if int(id) >= len(c.doc.shadings) {
		return errKind(ErrIncorrectDocumentForObject)
	}
	name := c.resourceName(catShading, shadingKey(id), c.doc.shadings[id])
	c.writeOps("/"+string(name), "sh")
	return nil
}
