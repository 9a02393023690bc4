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

// Package transition describes PDF page transition dictionaries.
//
// Transition dictionaries control the visual effect used when moving
// from one page to another during a presentation.  They are attached to
// the destination page, or to the navigation nodes used for sub-page
// navigation.
//
// See section 12.4.4.1 of ISO 32000-2:2020.
package transition

// Style is the transition style (the /S entry).
type Style int

// The transition styles of table 164 of ISO 32000-2:2020.
const (
	StyleReplace Style = iota // the default, no effect
	StyleSplit
	StyleBlinds
	StyleBox
	StyleWipe
	StyleDissolve
	StyleGlitter
	StyleFly
	StylePush
	StyleCover
	StyleUncover
	StyleFade
)

// Name returns the PDF name of the style, without the leading slash.
func (s Style) Name() string {
	switch s {
	case StyleSplit:
		return "Split"
	case StyleBlinds:
		return "Blinds"
	case StyleBox:
		return "Box"
	case StyleWipe:
		return "Wipe"
	case StyleDissolve:
		return "Dissolve"
	case StyleGlitter:
		return "Glitter"
	case StyleFly:
		return "Fly"
	case StylePush:
		return "Push"
	case StyleCover:
		return "Cover"
	case StyleUncover:
		return "Uncover"
	case StyleFade:
		return "Fade"
	default:
		return "R"
	}
}

// Dimension selects between horizontal and vertical effects (the /Dm
// entry, used by Split and Blinds).
type Dimension int

const (
	DimensionHorizontal Dimension = iota
	DimensionVertical
)

// Name returns the PDF name of the dimension.
func (d Dimension) Name() string {
	if d == DimensionVertical {
		return "V"
	}
	return "H"
}

// Motion selects between inward and outward effects (the /M entry, used
// by Split, Box and Fly).
type Motion int

const (
	MotionInward Motion = iota
	MotionOutward
)

// Name returns the PDF name of the motion direction.
func (m Motion) Name() string {
	if m == MotionOutward {
		return "O"
	}
	return "I"
}

// DirNone is the /Di value "None", allowed for the Fly style.
const DirNone = -1

// Transition describes a page transition.  The zero value is a Replace
// transition with the default duration.
type Transition struct {
	// Style is the transition effect.
	Style Style

	// Duration is the length of the effect in seconds.
	// Zero selects the PDF default of one second.
	Duration float64

	// Dimension applies to the Split and Blinds styles.
	Dimension Dimension

	// Motion applies to the Split, Box and Fly styles.
	Motion Motion

	// Direction is the direction of motion in degrees (0, 90, 180, 270,
	// or 315), or DirNone for the Fly style.  Used by Wipe, Glitter,
	// Fly, Cover, Uncover and Push.
	Direction int

	// Scale is the starting or ending scale of the Fly style.
	// Zero selects the PDF default of 1.
	Scale float64

	// Opaque makes the Fly area opaque, covering the old page.
	Opaque bool
}
