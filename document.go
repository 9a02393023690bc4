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
	"time"
)

// IntentSubtype selects the output intent conformance family.
type IntentSubtype int

const (
	IntentNone IntentSubtype = iota
	IntentPDFX
	IntentPDFA
	IntentPDFE
)

func (s IntentSubtype) pdfName() Name {
	switch s {
	case IntentPDFX:
		return "GTS_PDFX"
	case IntentPDFA:
		return "GTS_PDFA"
	case IntentPDFE:
		return "ISO_PDFE"
	default:
		return ""
	}
}

// DocumentProperties configure a new document.  The zero value produces
// an RGB PDF 1.7 file with uncompressed content streams and no output
// intent.
type DocumentProperties struct {
	// Title, Author and Creator fill the corresponding entries of the
	// information dictionary.  Non-ASCII text is written as UTF-16BE.
	Title   string
	Author  string
	Creator string

	// Lang is the natural language of the document, e.g. "en-US".
	Lang string

	// Tagged marks the document as tagged PDF in the catalog.
	Tagged bool

	// OutputColorSpace is the color space pages are composited in.
	OutputColorSpace ColorSpace

	// CompressStreams enables Flate compression of content streams.
	CompressStreams bool

	// Subtype requests PDF/X, PDF/A or PDF/E conventions.  When set, an
	// output profile for the output color space and an intent condition
	// identifier are required.
	Subtype IntentSubtype

	// IntentConditionIdentifier names the intended output condition,
	// e.g. "FOGRA39".  Required when Subtype is set.
	IntentConditionIdentifier string

	// RGBProfile, GrayProfile and CMYKProfile are ICC profiles for the
	// device color spaces.  The profile matching OutputColorSpace
	// becomes the output profile.  A CMYK document requires CMYKProfile.
	RGBProfile  []byte
	GrayProfile []byte
	CMYKProfile []byte

	// DefaultPage provides the page boxes used when a page does not
	// override them.  An unset media box defaults to the size of the
	// page's draw context.
	DefaultPage PageProperties

	// CreationDate overrides the timestamp in the information
	// dictionary.  The zero value selects the current time.
	CreationDate time.Time
}

// Document is a PDF file under construction.  A document collects
// resources and pages and emits the finished file when Write is called.
//
// A Document and its draw contexts must be used from a single goroutine.
type Document struct {
	props        DocumentProperties
	creationDate time.Time

	objects *objectTable

	infoRef         Reference
	pagesRef        Reference
	pageGroupRef    Reference
	outputIntentRef Reference
	metadataRef     Reference
	outputProfile   IccColorSpaceID // -1 if no output profile is set

	pages []pageOffsets

	fonts        []*fontEntry
	builtinFonts map[BuiltinFont]FontID

	images []imageInfo

	iccProfiles  []iccInfo
	separations  []Reference
	labSpaces    []Reference
	gstates      []Reference
	functions    []Reference
	shadings     []Reference
	patterns     []Reference
	ocgs         []Reference
	formXObjects []Reference
	trGroups     []Reference

	formWidgets []Reference
	widgets     []checkboxWidget
	annotations []*Annotation
	annotRefs   []Reference

	widgetUse     map[FormWidgetID]Reference
	annotationUse map[AnnotationID]Reference
	structureUse  map[StructureItemID]structUsage

	structItems           []structItem
	roleMap               []roleEntry
	structParentTreeItems [][]StructureItemID
	structTreeRootRef     Reference

	outlines        []outlineItem
	outlineParent   map[OutlineID]OutlineID
	outlineChildren map[OutlineID][]OutlineID

	embeddedFiles []embeddedFile
}

// pageOffsets records the three objects emitted per page.
type pageOffsets struct {
	resources Reference
	contents  Reference
	page      Reference
}

type imageInfo struct {
	ref           Reference
	width, height int
}

type iccInfo struct {
	stream   Reference
	object   Reference
	channels int
}

type structUsage struct {
	page int // page index, not object number
	mcid int
}

type embeddedFile struct {
	filespec Reference
	file     Reference
}

// New creates an empty document.
func New(props *DocumentProperties) (*Document, error) {
	d := &Document{
		objects:         newObjectTable(),
		builtinFonts:    make(map[BuiltinFont]FontID),
		widgetUse:       make(map[FormWidgetID]Reference),
		annotationUse:   make(map[AnnotationID]Reference),
		structureUse:    make(map[StructureItemID]structUsage),
		outlineParent:   make(map[OutlineID]OutlineID),
		outlineChildren: make(map[OutlineID][]OutlineID),
		outputProfile:   -1,
	}
	if props != nil {
		d.props = *props
	}
	d.creationDate = d.props.CreationDate
	if d.creationDate.IsZero() {
		d.creationDate = time.Now()
	}

	d.infoRef = d.createInfoObject()

	cs := d.props.OutputColorSpace
	if cs == DeviceCMYK {
		// An "All" separation is customary for registration marks on
		// CMYK output.
		_, err := d.AddSeparation("All", CMYKColor{1, 1, 1, 1})
		if err != nil {
			return nil, err
		}
	}

	var outputICC []byte
	switch cs {
	case DeviceRGB:
		outputICC = d.props.RGBProfile
	case DeviceGray:
		outputICC = d.props.GrayProfile
	case DeviceCMYK:
		if len(d.props.CMYKProfile) == 0 {
			return nil, errKind(ErrOutputProfileMissing)
		}
		outputICC = d.props.CMYKProfile
	}
	if len(outputICC) > 0 {
		d.outputProfile = d.storeICCProfile(outputICC, cs.Channels())
	}

	d.pageGroupRef = d.objects.add(fullObject{Body: Dict{
		"S":  Name("Transparency"),
		"CS": cs.pdfName(),
	}})

	d.pagesRef = d.objects.add(delayedPages{})

	if d.props.Subtype != IntentNone {
		if d.outputProfile < 0 {
			return nil, errKind(ErrOutputProfileMissing)
		}
		if d.props.IntentConditionIdentifier == "" {
			return nil, errKind(ErrMissingIntentIdentifier)
		}
		d.createOutputIntent()
	}

	return d, nil
}

// NumPages returns the number of pages added so far.
func (d *Document) NumPages() int {
	return len(d.pages)
}
