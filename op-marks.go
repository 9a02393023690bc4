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
	"fmt"
	"strings"
)

// This file implements the "Marked-content" operators, table 320 of
// PDF 32000-1:2008.

type ocgKey OptionalContentGroupID

// nameOperand renders a name the way it appears in a content stream.
func nameOperand(name Name) string {
	buf := &strings.Builder{}
	name.PDF(buf)
	return buf.String()
}

// MarkedContentPoint adds a marked-content point without properties.
//
// This implements the PDF graphics operator "MP".
func (c *DrawContext) MarkedContentPoint(tag Name) error {
	c.writeOps(nameOperand(tag), "MP")
	return nil
}

// MarkedContentStart begins a marked-content sequence without
// properties.  The sequence must be closed with MarkedContentEnd.
// Marked-content sequences cannot nest.
//
// This implements the PDF graphics operator "BMC".
func (c *DrawContext) MarkedContentStart(tag Name) error {
	if err := c.push(stateMarkedContent); err != nil {
		return err
	}
	c.writeOps(nameOperand(tag), "BMC")
	return nil
}

// MarkedContentStartOCG begins an optional content sequence controlled
// by the given group.
//
// This implements the PDF graphics operator "BDC".
func (c *DrawContext) MarkedContentStartOCG(id OptionalContentGroupID) error {
	if int(id) >= len(c.doc.ocgs) {
		return errKind(ErrIncorrectDocumentForObject)
	}
	if err := c.push(stateMarkedContent); err != nil {
		return err
	}
	name := c.resourceName(catProperties, ocgKey(id), c.doc.ocgs[id])
	c.writeOps("/OC", "/"+string(name), "BDC")
	return nil
}

// MarkedContentStartStruct begins a marked-content sequence belonging to
// the given structure item.  The position of the call within the page
// determines the sequence's MCID.
//
// This implements the PDF graphics operator "BDC".
func (c *DrawContext) MarkedContentStartStruct(id StructureItemID) error {
	if c.ctxType != ContextPage {
		return errKind(ErrInvalidDrawContextType)
	}
	if int(id) >= len(c.doc.structItems) {
		return errKind(ErrIncorrectDocumentForObject)
	}
	if _, used := c.structSet[id]; used {
		return errKind(ErrStructureReuse)
	}
	if err := c.push(stateMarkedContent); err != nil {
		return err
	}

	mcid := len(c.usedStructs)
	c.structSet[id] = struct{}{}
	c.usedStructs = append(c.usedStructs, id)

	tag := c.doc.structTypeName(c.doc.structItems[id])
	c.writeOps(nameOperand(tag), fmt.Sprintf("<< /MCID %d >>", mcid), "BDC")
	return nil
}

// MarkedContentEnd ends the current marked-content sequence.
//
// This implements the PDF graphics operator "EMC".
func (c *DrawContext) MarkedContentEnd() error {
	if err := c.pop(stateMarkedContent); err != nil {
		return err
	}
	c.writeOps("EMC")
	return nil
}
