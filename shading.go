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
	"math"

	"seehuhn.de/go/geom/vec"
)

// ShadingType2 describes an axial (linear) shading.
type ShadingType2 struct {
	ColorSpace       ColorSpace
	X0, Y0, X1, Y1   float64
	Function         FunctionID
	Extend0, Extend1 bool
}

// ShadingType3 describes a radial shading.
type ShadingType3 struct {
	ColorSpace             ColorSpace
	X0, Y0, R0, X1, Y1, R1 float64
	Function               FunctionID
	Extend0, Extend1       bool
}

// Vertex is one vertex of a free-form Gouraud triangle mesh.
// Flag 0 starts a new triangle, flags 1 and 2 continue a strip.
type Vertex struct {
	Flag  uint8
	Point vec.Vec2
	Color Color
}

// ShadingType4 describes a free-form Gouraud shaded triangle mesh.
// Vertex coordinates are scaled into [MinX, MaxX] x [MinY, MaxY].
type ShadingType4 struct {
	ColorSpace ColorSpace
	MinX, MaxX float64
	MinY, MaxY float64
	Vertices   []Vertex
}

// CoonsPatch is a full (flag 0) patch of a Coons patch mesh: twelve
// control points and four corner colors.  Continuation patches are not
// supported.
type CoonsPatch struct {
	Points [12]vec.Vec2
	Colors [4]Color
}

// ShadingType6 describes a Coons patch mesh.
type ShadingType6 struct {
	ColorSpace ColorSpace
	MinX, MaxX float64
	MinY, MaxY float64
	Patches    []CoonsPatch
}

// AddShadingType2 registers an axial shading dictionary.
func (d *Document) AddShadingType2(sh *ShadingType2) (ShadingID, error) {
	if int(sh.Function) >= len(d.functions) {
		return 0, errKind(ErrIncorrectDocumentForObject)
	}
	dict := Dict{
		"ShadingType": Integer(2),
		"ColorSpace":  sh.ColorSpace.pdfName(),
		"Coords":      Array{Real(sh.X0), Real(sh.Y0), Real(sh.X1), Real(sh.Y1)},
		"Function":    d.functions[sh.Function],
		"Extend":      Array{Bool(sh.Extend0), Bool(sh.Extend1)},
	}
	d.shadings = append(d.shadings, d.objects.add(fullObject{Body: dict}))
	return ShadingID(len(d.shadings) - 1), nil
}

// AddShadingType3 registers a radial shading dictionary.
func (d *Document) AddShadingType3(sh *ShadingType3) (ShadingID, error) {
	if int(sh.Function) >= len(d.functions) {
		return 0, errKind(ErrIncorrectDocumentForObject)
	}
	dict := Dict{
		"ShadingType": Integer(3),
		"ColorSpace":  sh.ColorSpace.pdfName(),
		"Coords":      Array{Real(sh.X0), Real(sh.Y0), Real(sh.R0), Real(sh.X1), Real(sh.Y1), Real(sh.R1)},
		"Function":    d.functions[sh.Function],
		"Extend":      Array{Bool(sh.Extend0), Bool(sh.Extend1)},
	}
	d.shadings = append(d.shadings, d.objects.add(fullObject{Body: dict}))
	return ShadingID(len(d.shadings) - 1), nil
}

// AddShadingType4 registers a free-form Gouraud triangle mesh shading.
func (d *Document) AddShadingType4(sh *ShadingType4) (ShadingID, error) {
	stream, err := serializeShade4(sh)
	if err != nil {
		return 0, err
	}

	dict := Dict{
		"ShadingType":       Integer(4),
		"ColorSpace":        sh.ColorSpace.pdfName(),
		"BitsPerCoordinate": Integer(32),
		"BitsPerComponent":  Integer(16),
		"BitsPerFlag":       Integer(8),
		"Decode":            meshDecodeArray(sh.ColorSpace, sh.MinX, sh.MaxX, sh.MinY, sh.MaxY),
	}
	d.shadings = append(d.shadings, d.objects.add(fullObject{Body: dict, Stream: stream}))
	return ShadingID(len(d.shadings) - 1), nil
}

// AddShadingType6 registers a Coons patch mesh shading.
func (d *Document) AddShadingType6(sh *ShadingType6) (ShadingID, error) {
	stream, err := serializeShade6(sh)
	if err != nil {
		return 0, err
	}

	dict := Dict{
		"ShadingType":       Integer(6),
		"ColorSpace":        sh.ColorSpace.pdfName(),
		"BitsPerCoordinate": Integer(32),
		"BitsPerComponent":  Integer(16),
		"BitsPerFlag":       Integer(8),
		"Decode":            meshDecodeArray(sh.ColorSpace, sh.MinX, sh.MaxX, sh.MinY, sh.MaxY),
	}
	d.shadings = append(d.shadings, d.objects.add(fullObject{Body: dict, Stream: stream}))
	return ShadingID(len(d.shadings) - 1), nil
}

func meshDecodeArray(cs ColorSpace, minX, maxX, minY, maxY float64) Array {
	decode := Array{
		Real(minX), Real(maxX),
		Real(minY), Real(maxY),
	}
	for i := 0; i < cs.Channels(); i++ {
		decode = append(decode, Integer(0), Integer(1))
	}
	return decode
}

// appendU32 appends v scaled to the full uint32 range, big endian.
func appendU32(buf *bytes.Buffer, v float64) error {
	if v < 0 || v > 1 {
		return errKindf(ErrColorOutOfRange, "%g", v)
	}
	x := uint32(float64(math.MaxUint32) * v)
	buf.Write([]byte{byte(x >> 24), byte(x >> 16), byte(x >> 8), byte(x)})
	return nil
}

// appendU16 appends v scaled to the full uint16 range, big endian.
func appendU16(buf *bytes.Buffer, v float64) error {
	if v < 0 || v > 1 {
		return errKindf(ErrColorOutOfRange, "%g", v)
	}
	x := uint16(float64(math.MaxUint16) * v)
	buf.Write([]byte{byte(x >> 8), byte(x)})
	return nil
}

// appendMeshColor appends the color components of one mesh element,
// checking that the color matches the shading's color space.
func appendMeshColor(buf *bytes.Buffer, cs ColorSpace, color Color) error {
	switch c := color.(type) {
	case RGBColor:
		if cs != DeviceRGB {
			return errKind(ErrColorspaceMismatch)
		}
		for _, v := range []float64{c.R, c.G, c.B} {
			if err := appendU16(buf, v); err != nil {
				return err
			}
		}
	case GrayColor:
		if cs != DeviceGray {
			return errKind(ErrColorspaceMismatch)
		}
		if err := appendU16(buf, c.V); err != nil {
			return err
		}
	case CMYKColor:
		if cs != DeviceCMYK {
			return errKind(ErrColorspaceMismatch)
		}
		for _, v := range []float64{c.C, c.M, c.Y, c.K} {
			if err := appendU16(buf, v); err != nil {
				return err
			}
		}
	default:
		return errKindf(ErrUnsupportedFormat, "mesh color %T", color)
	}
	return nil
}

func serializeShade4(sh *ShadingType4) ([]byte, error) {
	buf := &bytes.Buffer{}
	for _, v := range sh.Vertices {
		if v.Flag > 2 {
			return nil, errKindf(ErrMalformedShading, "vertex flag %d", v.Flag)
		}
		buf.WriteByte(v.Flag)

		xratio := (v.Point.X - sh.MinX) / (sh.MaxX - sh.MinX)
		yratio := (v.Point.Y - sh.MinY) / (sh.MaxY - sh.MinY)
		if err := appendU32(buf, xratio); err != nil {
			return nil, err
		}
		if err := appendU32(buf, yratio); err != nil {
			return nil, err
		}

		if err := appendMeshColor(buf, sh.ColorSpace, v.Color); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func serializeShade6(sh *ShadingType6) ([]byte, error) {
	buf := &bytes.Buffer{}
	for _, patch := range sh.Patches {
		buf.WriteByte(0) // only full patches are supported

		for _, p := range patch.Points {
			xratio := (p.X - sh.MinX) / (sh.MaxX - sh.MinX)
			yratio := (p.Y - sh.MinY) / (sh.MaxY - sh.MinY)
			if err := appendU32(buf, xratio); err != nil {
				return nil, err
			}
			if err := appendU32(buf, yratio); err != nil {
				return nil, err
			}
		}
		for _, c := range patch.Colors {
			if err := appendMeshColor(buf, sh.ColorSpace, c); err != nil {
				return nil, err
			}
		}
	}
	return buf.Bytes(), nil
}
