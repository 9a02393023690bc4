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

// ImageInterpolation controls the /Interpolate entry of an image.
type ImageInterpolation int

const (
	// InterpolateAuto leaves the choice to the viewer.
	InterpolateAuto ImageInterpolation = iota
	// InterpolatePixelated disables interpolation.
	InterpolatePixelated
	// InterpolateSmooth enables interpolation.
	InterpolateSmooth
)

// RasterImage is an uncompressed raster image.  Pixels are packed rows,
// Depth bits per component, components interleaved in the order of the
// color space.
type RasterImage struct {
	Width, Height int
	Depth         int
	ColorSpace    ColorSpace
	Pixels        []byte

	// Alpha is an optional alpha channel, AlphaDepth bits per sample.
	// It is embedded as a separate DeviceGray soft mask image.
	Alpha      []byte
	AlphaDepth int

	// ICCProfile, if set, overrides the device color space of the image.
	ICCProfile []byte

	Interpolation ImageInterpolation
}

// JPEGImage is a parsed JPEG file to be embedded without recompression.
// The caller supplies the dimensions; this library does not parse JPEG.
type JPEGImage struct {
	Width, Height int
	Data          []byte
}

// AddImage embeds a raster image and returns its handle.
func (d *Document) AddImage(img *RasterImage) (ImageID, error) {
	return d.addImage(img, false)
}

// AddMaskImage embeds a 1-bit grayscale image as a stencil mask.
func (d *Document) AddMaskImage(img *RasterImage) (ImageID, error) {
	if img.ColorSpace != DeviceGray || img.Depth != 1 {
		return 0, errKindf(ErrUnsupportedFormat, "mask images must be 1-bit grayscale")
	}
	return d.addImage(img, true)
}

func (d *Document) addImage(img *RasterImage, isMask bool) (ImageID, error) {
	if img.Width <= 0 || img.Height <= 0 {
		return 0, errKind(ErrInvalidImageSize)
	}
	if len(img.Pixels) == 0 {
		return 0, errKind(ErrMissingPixels)
	}
	if isMask && len(img.Alpha) != 0 {
		return 0, errKind(ErrMaskAndAlpha)
	}

	var smask Reference
	if len(img.Alpha) != 0 {
		alphaID, err := d.addImageObject(img.Width, img.Height, img.AlphaDepth,
			img.Interpolation, DeviceGray, nil, 0, false, img.Alpha)
		if err != nil {
			return 0, err
		}
		smask = d.images[alphaID].ref
	}

	if len(img.ICCProfile) != 0 {
		iccID, err := d.LoadICCProfile(img.ICCProfile)
		if err != nil {
			return 0, err
		}
		return d.addImageObject(img.Width, img.Height, img.Depth,
			img.Interpolation, 0, &iccID, smask, isMask, img.Pixels)
	}

	if img.ColorSpace == DeviceGray {
		// Grayscale images are passed through unchanged.
		return d.addImageObject(img.Width, img.Height, img.Depth,
			img.Interpolation, DeviceGray, nil, smask, isMask, img.Pixels)
	}

	switch d.props.OutputColorSpace {
	case DeviceRGB, DeviceGray:
		return d.addImageObject(img.Width, img.Height, img.Depth,
			img.Interpolation, img.ColorSpace, nil, smask, isMask, img.Pixels)
	case DeviceCMYK:
		if len(d.props.CMYKProfile) == 0 {
			return 0, errKind(ErrNoCmykProfile)
		}
		if img.ColorSpace != DeviceCMYK {
			return 0, errKindf(ErrUnsupportedFormat, "cannot convert image to CMYK")
		}
		return d.addImageObject(img.Width, img.Height, img.Depth,
			img.Interpolation, img.ColorSpace, nil, smask, isMask, img.Pixels)
	}
	return 0, errKind(ErrUnreachable)
}

// addImageObject emits one image XObject.  Either cs or iccID selects
// the color space; for stencil masks neither is written.
func (d *Document) addImageObject(w, h, depth int, interp ImageInterpolation,
	cs ColorSpace, iccID *IccColorSpaceID, smask Reference, isMask bool,
	pixels []byte) (ImageID, error) {

	dict := Dict{
		"Type":             Name("XObject"),
		"Subtype":          Name("Image"),
		"Width":            Integer(w),
		"Height":           Integer(h),
		"BitsPerComponent": Integer(depth),
	}

	switch interp {
	case InterpolatePixelated:
		dict["Interpolate"] = Bool(false)
	case InterpolateSmooth:
		dict["Interpolate"] = Bool(true)
	}

	// An image may have an ImageMask or a ColorSpace entry, not both.
	if isMask {
		dict["ImageMask"] = Bool(true)
	} else if iccID != nil {
		dict["ColorSpace"] = d.iccProfiles[*iccID].object
	} else {
		dict["ColorSpace"] = cs.pdfName()
	}

	if smask != 0 {
		dict["SMask"] = smask
	}

	ref := d.objects.add(deflateObject{Dict: dict, Stream: pixels})
	d.images = append(d.images, imageInfo{ref: ref, width: w, height: h})
	return ImageID(len(d.images) - 1), nil
}

// EmbedJPEG embeds a JPEG file without recompression, using the
// DCTDecode filter.
func (d *Document) EmbedJPEG(jpg *JPEGImage) (ImageID, error) {
	if jpg.Width <= 0 || jpg.Height <= 0 {
		return 0, errKind(ErrInvalidImageSize)
	}
	if len(jpg.Data) == 0 {
		return 0, errKind(ErrMissingPixels)
	}

	dict := Dict{
		"Type":             Name("XObject"),
		"Subtype":          Name("Image"),
		"ColorSpace":       Name("DeviceRGB"),
		"Width":            Integer(jpg.Width),
		"Height":           Integer(jpg.Height),
		"BitsPerComponent": Integer(8),
		"Filter":           Name("DCTDecode"),
	}

	ref := d.objects.add(fullObject{Body: dict, Stream: jpg.Data})
	d.images = append(d.images, imageInfo{ref: ref, width: jpg.Width, height: jpg.Height})
	return ImageID(len(d.images) - 1), nil
}
