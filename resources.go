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
	"bytes"
	"fmt"

	"seehuhn.de/go/icc"
)

// This file implements the resource registries of the document: ICC
// profiles (with content-based deduplication), extended graphics states,
// functions, separations, Lab color spaces and optional content groups.
// Apart from ICC profiles, registration unconditionally appends a fresh
// object; callers are expected to thread the returned handles through
// their own caches.

// findICCProfile scans the already embedded profiles for one with the
// same bytes.
func (d *Document) findICCProfile(data []byte) (IccColorSpaceID, bool) {
	for i, info := range d.iccProfiles {
		entry := d.objects.get(info.stream).(deflateObject)
		if bytes.Equal(entry.Stream, data) {
			return IccColorSpaceID(i), true
		}
	}
	return 0, false
}

// storeICCProfile embeds the profile and its [/ICCBased ...] color space
// array.  The caller must have checked for duplicates.
func (d *Document) storeICCProfile(data []byte, channels int) IccColorSpaceID {
	streamRef := d.objects.add(deflateObject{
		Dict: Dict{
			"N": Integer(channels),
		},
		Stream: data,
	})
	objectRef := d.objects.add(fullObject{
		Body: Array{Name("ICCBased"), streamRef},
	})
	d.iccProfiles = append(d.iccProfiles, iccInfo{
		stream:   streamRef,
		object:   objectRef,
		channels: channels,
	})
	return IccColorSpaceID(len(d.iccProfiles) - 1)
}

// LoadICCProfile embeds an ICC profile as a color space.  Loading the
// same profile bytes twice returns the existing handle.
func (d *Document) LoadICCProfile(data []byte) (IccColorSpaceID, error) {
	if id, ok := d.findICCProfile(data); ok {
		return id, nil
	}

	profile, err := icc.Decode(data)
	if err != nil {
		return 0, &Error{Kind: ErrUnsupportedFormat, Err: err}
	}
	channels := profile.ColorSpace.NumComponents()
	if channels != 1 && channels != 3 && channels != 4 {
		return 0, errKindf(ErrUnsupportedFormat, "ICC profile with %d components", channels)
	}

	return d.storeICCProfile(data, channels), nil
}

// iccChannels returns the component count of a loaded profile.
func (d *Document) iccChannels(id IccColorSpaceID) int {
	return d.iccProfiles[id].channels
}

// LineCapStyle selects the shape of open path endpoints.
type LineCapStyle int

const (
	LineCapButt LineCapStyle = iota
	LineCapRound
	LineCapSquare
)

// LineJoinStyle selects the shape of path corners.
type LineJoinStyle int

const (
	LineJoinMiter LineJoinStyle = iota
	LineJoinRound
	LineJoinBevel
)

// RenderingIntent selects the color conversion intent.
type RenderingIntent int

const (
	RelativeColorimetric RenderingIntent = iota
	AbsoluteColorimetric
	Saturation
	Perceptual
)

var renderingIntentNames = [...]Name{
	RelativeColorimetric: "RelativeColorimetric",
	AbsoluteColorimetric: "AbsoluteColorimetric",
	Saturation:           "Saturation",
	Perceptual:           "Perceptual",
}

// BlendMode selects the transparency blend mode.
type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
)

var blendModeNames = [...]Name{
	BlendNormal:     "Normal",
	BlendMultiply:   "Multiply",
	BlendScreen:     "Screen",
	BlendOverlay:    "Overlay",
	BlendDarken:     "Darken",
	BlendLighten:    "Lighten",
	BlendColorDodge: "ColorDodge",
	BlendColorBurn:  "ColorBurn",
	BlendHardLight:  "HardLight",
	BlendSoftLight:  "SoftLight",
	BlendDifference: "Difference",
	BlendExclusion:  "Exclusion",
	BlendHue:        "Hue",
	BlendSaturation: "Saturation",
	BlendColor:      "Color",
	BlendLuminosity: "Luminosity",
}

// GraphicsState collects the parameters of an extended graphics state
// dictionary.  Nil fields are omitted from the dictionary.
type GraphicsState struct {
	LineWidth       *float64
	LineCap         *LineCapStyle
	LineJoin        *LineJoinStyle
	MiterLimit      *float64
	RenderingIntent *RenderingIntent
	StrokeOverprint *bool
	FillOverprint   *bool
	OverprintMode   *int
	Flatness        *float64
	Smoothness      *float64
	BlendMode       *BlendMode
	StrokeAlpha     *float64
	FillAlpha       *float64
	AlphaSourceFlag *bool
	TextKnockout    *bool
}

// AddGraphicsState registers an extended graphics state dictionary.
func (d *Document) AddGraphicsState(state *GraphicsState) (GraphicsStateID, error) {
	dict := Dict{
		"Type": Name("ExtGState"),
	}
	if state.LineWidth != nil {
		dict["LW"] = Real(*state.LineWidth)
	}
	if state.LineCap != nil {
		dict["LC"] = Integer(*state.LineCap)
	}
	if state.LineJoin != nil {
		dict["LJ"] = Integer(*state.LineJoin)
	}
	if state.MiterLimit != nil {
		dict["ML"] = Real(*state.MiterLimit)
	}
	if state.RenderingIntent != nil {
		dict["RI"] = renderingIntentNames[*state.RenderingIntent]
	}
	if state.StrokeOverprint != nil {
		dict["OP"] = Bool(*state.StrokeOverprint)
	}
	if state.FillOverprint != nil {
		dict["op"] = Bool(*state.FillOverprint)
	}
	if state.OverprintMode != nil {
		dict["OPM"] = Integer(*state.OverprintMode)
	}
	if state.Flatness != nil {
		dict["FL"] = Real(*state.Flatness)
	}
	if state.Smoothness != nil {
		dict["SM"] = Real(*state.Smoothness)
	}
	if state.BlendMode != nil {
		dict["BM"] = blendModeNames[*state.BlendMode]
	}
	if state.StrokeAlpha != nil {
		if err := checkUnit(*state.StrokeAlpha); err != nil {
			return 0, err
		}
		dict["CA"] = Real(*state.StrokeAlpha)
	}
	if state.FillAlpha != nil {
		if err := checkUnit(*state.FillAlpha); err != nil {
			return 0, err
		}
		dict["ca"] = Real(*state.FillAlpha)
	}
	if state.AlphaSourceFlag != nil {
		dict["AIS"] = Bool(*state.AlphaSourceFlag)
	}
	if state.TextKnockout != nil {
		dict["TK"] = Bool(*state.TextKnockout)
	}

	d.gstates = append(d.gstates, d.objects.add(fullObject{Body: dict}))
	return GraphicsStateID(len(d.gstates) - 1), nil
}

// FunctionType2 describes an exponential interpolation function between
// two colors of the same type.
type FunctionType2 struct {
	Domain []float64
	C0, C1 Color
	N      float64
}

// AddFunction registers a type 2 function object.
func (d *Document) AddFunction(fn *FunctionType2) (FunctionID, error) {
	c0, err := deviceComponents(fn.C0)
	if err != nil {
		return 0, err
	}
	c1, err := deviceComponents(fn.C1)
	if err != nil {
		return 0, err
	}
	if len(c0) != len(c1) {
		return 0, errKind(ErrColorspaceMismatch)
	}

	dict := Dict{
		"FunctionType": Integer(2),
		"N":            Number(fn.N),
		"Domain":       floatArray(fn.Domain),
		"C0":           floatArray(c0),
		"C1":           floatArray(c1),
	}
	d.functions = append(d.functions, d.objects.add(fullObject{Body: dict}))
	return FunctionID(len(d.functions) - 1), nil
}

// AddSeparation registers a separation color space.  The fallback color
// is approximated with a type 4 PostScript calculator function so that
// consumers without the named colorant can still render the page.
func (d *Document) AddSeparation(name string, fallback CMYKColor) (SeparationID, error) {
	if err := checkUnit(fallback.C, fallback.M, fallback.Y, fallback.K); err != nil {
		return 0, err
	}

	stream := fmt.Sprintf("{ dup %s mul\nexch %s exch dup %s mul\nexch %s mul\n}\n",
		format(fallback.C), format(fallback.M), format(fallback.Y), format(fallback.K))
	fnRef := d.objects.add(fullObject{
		Body: Dict{
			"FunctionType": Integer(4),
			"Domain":       Array{Real(0), Real(1)},
			"Range":        Array{Real(0), Real(1), Real(0), Real(1), Real(0), Real(1), Real(0), Real(1)},
		},
		Stream: []byte(stream),
	})

	csRef := d.objects.add(fullObject{
		Body: Array{
			Name("Separation"),
			Name(name),
			Name("DeviceCMYK"),
			fnRef,
		},
	})
	d.separations = append(d.separations, csRef)
	return SeparationID(len(d.separations) - 1), nil
}

// LabColorSpace describes a CIE Lab color space.
type LabColorSpace struct {
	WhiteX, WhiteY, WhiteZ float64
	AMin, AMax             float64
	BMin, BMax             float64
}

// AddLabColorSpace registers a Lab color space.
func (d *Document) AddLabColorSpace(lab *LabColorSpace) LabColorSpaceID {
	ref := d.objects.add(fullObject{
		Body: Array{
			Name("Lab"),
			Dict{
				"WhitePoint": Array{Real(lab.WhiteX), Real(lab.WhiteY), Real(lab.WhiteZ)},
				"Range":      Array{Real(lab.AMin), Real(lab.AMax), Real(lab.BMin), Real(lab.BMax)},
			},
		},
	})
	d.labSpaces = append(d.labSpaces, ref)
	return LabColorSpaceID(len(d.labSpaces) - 1)
}

// OptionalContentGroup describes a togglable content layer.
type OptionalContentGroup struct {
	Name string
}

// AddOptionalContentGroup registers an optional content group.
func (d *Document) AddOptionalContentGroup(g *OptionalContentGroup) OptionalContentGroupID {
	ref := d.objects.add(fullObject{Body: Dict{
		"Type": Name("OCG"),
		"Name": TextString(g.Name),
	}})
	d.ocgs = append(d.ocgs, ref)
	return OptionalContentGroupID(len(d.ocgs) - 1)
}

// deviceComponents returns the component values of a device color.
func deviceComponents(c Color) ([]float64, error) {
	switch c := c.(type) {
	case GrayColor:
		return []float64{c.V}, nil
	case RGBColor:
		return []float64{c.R, c.G, c.B}, nil
	case CMYKColor:
		return []float64{c.C, c.M, c.Y, c.K}, nil
	default:
		return nil, errKindf(ErrUnsupportedFormat, "device color expected, got %T", c)
	}
}

func floatArray(values []float64) Array {
	arr := make(Array, len(values))
	for i, v := range values {
		arr[i] = Number(v)
	}
	return arr
}
