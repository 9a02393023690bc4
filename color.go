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

// ColorSpace identifies one of the device color spaces.
type ColorSpace int

const (
	DeviceRGB ColorSpace = iota
	DeviceGray
	DeviceCMYK
)

// Channels returns the number of color components.
func (cs ColorSpace) Channels() int {
	switch cs {
	case DeviceRGB:
		return 3
	case DeviceGray:
		return 1
	case DeviceCMYK:
		return 4
	default:
		return 0
	}
}

func (cs ColorSpace) pdfName() Name {
	switch cs {
	case DeviceRGB:
		return "DeviceRGB"
	case DeviceGray:
		return "DeviceGray"
	case DeviceCMYK:
		return "DeviceCMYK"
	default:
		return ""
	}
}

// Color is one of the color types understood by the draw context:
// GrayColor, RGBColor, CMYKColor, LabColor, ICCColor, SeparationColor or
// PatternColor.  Operators that accept a color dispatch on the type and
// emit operands in the shape demanded by the active color space.
type Color interface {
	isColor()
}

// GrayColor is a color in the DeviceGray color space.
type GrayColor struct {
	V float64
}

// RGBColor is a color in the DeviceRGB color space.
type RGBColor struct {
	R, G, B float64
}

// CMYKColor is a color in the DeviceCMYK color space.
type CMYKColor struct {
	C, M, Y, K float64
}

// LabColor is a color in a Lab color space registered with the document.
type LabColor struct {
	Space   LabColorSpaceID
	L, A, B float64
}

// ICCColor is a color in an ICC based color space registered with the
// document.  Values must have one entry per profile channel.
type ICCColor struct {
	Space  IccColorSpaceID
	Values []float64
}

// SeparationColor is a tint in a separation color space registered with
// the document.
type SeparationColor struct {
	Space SeparationID
	Tint  float64
}

// PatternColor selects a tiling pattern as the paint.
type PatternColor struct {
	Pattern PatternID
}

func (GrayColor) isColor()       {}
func (RGBColor) isColor()        {}
func (CMYKColor) isColor()       {}
func (LabColor) isColor()        {}
func (ICCColor) isColor()        {}
func (SeparationColor) isColor() {}
func (PatternColor) isColor()    {}

// checkUnit reports ColorOutOfRange unless all values are within [0, 1].
func checkUnit(values ...float64) error {
	for _, v := range values {
		if v < 0 || v > 1 {
			return errKindf(ErrColorOutOfRange, "%g", v)
		}
	}
	return nil
}
