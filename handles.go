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

// The handle types below identify resources registered with a Document.
// Handles are dense indices into per-kind tables, stable for the lifetime
// of the document and never reused.  A handle is only valid for the
// document that issued it.

// ImageID identifies an embedded image.
type ImageID int

// FontID identifies a loaded or builtin font.
type FontID int

// GraphicsStateID identifies an extended graphics state dictionary.
type GraphicsStateID int

// PatternID identifies a tiling pattern.
type PatternID int

// ShadingID identifies a shading dictionary.
type ShadingID int

// FunctionID identifies a PDF function object.
type FunctionID int

// IccColorSpaceID identifies an ICC based color space.
type IccColorSpaceID int

// LabColorSpaceID identifies a Lab color space.
type LabColorSpaceID int

// SeparationID identifies a separation color space.
type SeparationID int

// FormXObjectID identifies a form XObject.
type FormXObjectID int

// TransparencyGroupID identifies a transparency group XObject.
type TransparencyGroupID int

// OptionalContentGroupID identifies an optional content group (layer).
type OptionalContentGroupID int

// FormWidgetID identifies an interactive form widget.
type FormWidgetID int

// AnnotationID identifies an annotation.
type AnnotationID int

// StructureItemID identifies a node of the logical structure tree.
type StructureItemID int

// RoleID identifies a user-defined structure role.
type RoleID int

// EmbeddedFileID identifies an embedded file.
type EmbeddedFileID int

// OutlineID identifies a document outline entry.
type OutlineID int

// PageID identifies a page, in insertion order.
type PageID int
