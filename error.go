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
	"errors"
	"fmt"
)

// ErrorKind classifies the errors returned by this library.
type ErrorKind int

// The error kinds returned by document and draw context operations.
const (
	ErrColorOutOfRange ErrorKind = iota + 1
	ErrColorspaceMismatch
	ErrOutputProfileMissing
	ErrMissingIntentIdentifier
	ErrAnnotationReuse
	ErrStructureReuse
	ErrSlashStart
	ErrRoleAlreadyDefined
	ErrInvalidImageSize
	ErrMissingPixels
	ErrMaskAndAlpha
	ErrUnsupportedFormat
	ErrNoCmykProfile
	ErrIncorrectDocumentForObject
	ErrInvalidDrawContextType
	ErrUnclosedMarkedContent
	ErrNestedBMC
	ErrDrawStateEndMismatch
	ErrFontError
	ErrMissingGlyph
	ErrAnnotationMissingRect
	ErrMalformedShading
	ErrUnreachable
)

var kindNames = map[ErrorKind]string{
	ErrColorOutOfRange:            "color component out of range",
	ErrColorspaceMismatch:         "color space mismatch",
	ErrOutputProfileMissing:       "output color profile missing",
	ErrMissingIntentIdentifier:    "output intent condition identifier missing",
	ErrAnnotationReuse:            "annotation already used on a different page",
	ErrStructureReuse:             "structure item already used on a different page",
	ErrSlashStart:                 "name must not start with a slash",
	ErrRoleAlreadyDefined:         "role already defined",
	ErrInvalidImageSize:           "invalid image size",
	ErrMissingPixels:              "image has no pixel data",
	ErrMaskAndAlpha:               "mask image must not have an alpha channel",
	ErrUnsupportedFormat:          "unsupported format",
	ErrNoCmykProfile:              "no CMYK color profile given",
	ErrIncorrectDocumentForObject: "object belongs to a different document",
	ErrInvalidDrawContextType:     "wrong draw context type for operation",
	ErrUnclosedMarkedContent:      "unclosed marked content or state",
	ErrNestedBMC:                  "nested marked content is not allowed",
	ErrDrawStateEndMismatch:       "draw state end does not match start",
	ErrFontError:                  "font library error",
	ErrMissingGlyph:               "font has no glyph for codepoint",
	ErrAnnotationMissingRect:      "annotation is missing its rectangle",
	ErrMalformedShading:           "malformed shading data",
	ErrUnreachable:                "internal error",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the error type returned by this library.  Failures detected
// by the library are reported as *Error values, possibly wrapped with
// context by Wrap; errors from the file system or the output writer are
// returned as they are.  The library never recovers internally.
type Error struct {
	Kind   ErrorKind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func errKind(kind ErrorKind) error {
	return &Error{Kind: kind}
}

func errKindf(kind ErrorKind, format string, a ...any) error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, a...)}
}

// Wrap adds context to an error.
func Wrap(err error, loc string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", loc, err)
}
