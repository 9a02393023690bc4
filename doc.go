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

// Package pdfgen generates PDF 1.7 files.
//
// A [Document] collects resources (images, fonts, color spaces,
// shadings, patterns, optional content groups, annotations, structure
// elements) and pages.  Pages are authored through a [DrawContext],
// which exposes the PDF content-stream operators as methods, tracks
// which resources the stream references, and enforces balanced
// save/restore, marked-content and text brackets.  [Document.Write]
// finalizes the object graph and emits the file.
//
// Many indirect objects cannot be completed when they are created: a
// page dictionary must list annotations whose object numbers are
// assigned later, and a subset font stream depends on the set of glyphs
// the finished document uses.  The document therefore keeps a table of
// both materialized and deferred indirect objects, and materializes the
// deferred ones in dependency order during Write.
//
// Documents can declare PDF/X, PDF/A or PDF/E output intents; doing so
// requires an ICC output profile and an output condition identifier.
package pdfgen
