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
	"slices"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdfgen/transition"
)

// ContextType distinguishes the four kinds of draw contexts.
type ContextType int

const (
	ContextPage ContextType = iota
	ContextFormXObject
	ContextTilingPattern
	ContextTransparencyGroup
)

// drawState tags the entries of the state-machine stack.
type drawState int

const (
	stateMarkedContent drawState = iota + 1
	stateSaveState
	stateText
)

// resourceCategory selects a sub-dictionary of the /Resources dictionary.
// See section 7.8.3 of ISO 32000-2:2020.
type resourceCategory byte

const (
	catExtGState resourceCategory = iota + 1
	catColorSpace
	catPattern
	catShading
	catXObject
	catFont
	catProperties
)

func (cat resourceCategory) prefix() Name {
	switch cat {
	case catFont:
		return "F"
	case catExtGState:
		return "E"
	case catXObject:
		return "X"
	case catColorSpace:
		return "C"
	case catPattern:
		return "P"
	case catShading:
		return "S"
	case catProperties:
		return "M"
	default:
		panic("invalid resource category")
	}
}

// resKey identifies a resource within one category.
type resKey struct {
	cat resourceCategory
	key any
}

// fontSubsetKey identifies one subset of a loaded font.
type fontSubsetKey struct {
	fid    FontID
	subset int
}

// TransparencyGroupProperties configure the /Group dictionary of a
// transparency group XObject.
type TransparencyGroupProperties struct {
	ColorSpace *ColorSpace
	Isolated   bool
	Knockout   bool
}

// DrawContext accumulates a content stream.  Drawing operations lower to
// PDF operators; the context records which resources the stream
// references so that the matching /Resources dictionary can be built,
// and it rejects unbalanced save/restore, marked-content and text
// brackets.
//
// A context borrows its document: the document must outlive the context,
// and the context is consumed when it is added to the document.
type DrawContext struct {
	doc     *Document
	ctxType ContextType
	bbox    rect.Rect

	content bytes.Buffer

	stateStack  []drawState
	markedDepth int

	resources map[resourceCategory]Dict
	resNames  map[resKey]Name

	usedSubsetFonts map[fontSubsetKey]struct{}

	usedWidgets []FormWidgetID
	widgetSet   map[FormWidgetID]struct{}
	usedAnnots  []AnnotationID
	annotSet    map[AnnotationID]struct{}
	usedStructs []StructureItemID
	structSet   map[StructureItemID]struct{}

	transition     *transition.Transition
	subNavigations []SubPageNavigation
	customProps    PageProperties
	groupProps     *TransparencyGroupProperties

	// text object bookkeeping for RenderText
	currentFont   fontSubsetKey
	haveFont      bool
	currentPtSize float64
}

func (d *Document) newContext(tp ContextType, width, height float64) *DrawContext {
	return &DrawContext{
		doc:             d,
		ctxType:         tp,
		bbox:            rect.Rect{URx: width, URy: height},
		resources:       make(map[resourceCategory]Dict),
		resNames:        make(map[resKey]Name),
		usedSubsetFonts: make(map[fontSubsetKey]struct{}),
		widgetSet:       make(map[FormWidgetID]struct{}),
		annotSet:        make(map[AnnotationID]struct{}),
		structSet:       make(map[StructureItemID]struct{}),
	}
}

// NewPageContext opens a draw context for a page of the given size.
func (d *Document) NewPageContext(width, height float64) *DrawContext {
	return d.newContext(ContextPage, width, height)
}

// NewFormXObjectContext opens a draw context for a form XObject.
func (d *Document) NewFormXObjectContext(width, height float64) *DrawContext {
	return d.newContext(ContextFormXObject, width, height)
}

// NewTilingPatternContext opens a draw context for one tile of a tiling
// pattern.
func (d *Document) NewTilingPatternContext(width, height float64) *DrawContext {
	return d.newContext(ContextTilingPattern, width, height)
}

// NewTransparencyGroupContext opens a draw context for a transparency
// group XObject.
func (d *Document) NewTransparencyGroupContext(width, height float64) *DrawContext {
	return d.newContext(ContextTransparencyGroup, width, height)
}

// ContextType returns the kind of this context.
func (c *DrawContext) ContextType() ContextType {
	return c.ctxType
}

// Width returns the width of the context's bounding box.
func (c *DrawContext) Width() float64 {
	return c.bbox.URx - c.bbox.LLx
}

// Height returns the height of the context's bounding box.
func (c *DrawContext) Height() float64 {
	return c.bbox.URy - c.bbox.LLy
}

// MarkedContentDepth returns the number of open marked-content brackets.
func (c *DrawContext) MarkedContentDepth() int {
	return c.markedDepth
}

// HasUnclosedState reports whether any save/restore, marked-content or
// text bracket is still open.  Such a context cannot be turned into a
// page or XObject.
func (c *DrawContext) HasUnclosedState() bool {
	return len(c.stateStack) > 0
}

// push enters a bracketed state.  Directly or indirectly nested
// marked content is rejected.
func (c *DrawContext) push(s drawState) error {
	if s == stateMarkedContent {
		for _, t := range c.stateStack {
			if t == stateMarkedContent {
				return errKind(ErrNestedBMC)
			}
		}
		c.markedDepth++
	}
	c.stateStack = append(c.stateStack, s)
	return nil
}

// pop leaves a bracketed state, which must match the most recent push.
func (c *DrawContext) pop(s drawState) error {
	n := len(c.stateStack)
	if n == 0 || c.stateStack[n-1] != s {
		return errKind(ErrDrawStateEndMismatch)
	}
	c.stateStack = c.stateStack[:n-1]
	if s == stateMarkedContent {
		c.markedDepth--
	}
	return nil
}

// writeOps writes one operator line: space-separated operands followed
// by the operator, terminated with a newline.
func (c *DrawContext) writeOps(args ...string) {
	for i, a := range args {
		if i > 0 {
			c.content.WriteByte(' ')
		}
		c.content.WriteString(a)
	}
	c.content.WriteByte('\n')
}

// resourceName returns the name under which the given resource can be
// referenced from the content stream, registering it in the resource
// dictionary first if needed.
func (c *DrawContext) resourceName(cat resourceCategory, key any, obj Object) Name {
	rk := resKey{cat: cat, key: key}
	if name, ok := c.resNames[rk]; ok {
		return name
	}

	dict := c.resources[cat]
	if dict == nil {
		dict = Dict{}
		c.resources[cat] = dict
	}
	name := Name(fmt.Sprintf("%s%d", cat.prefix(), len(dict)+1))
	dict[name] = obj
	c.resNames[rk] = name
	return name
}

// buildResourceDict returns the /Resources dictionary for the content
// stream.  Only categories with at least one referenced member appear.
func (c *DrawContext) buildResourceDict() Dict {
	res := Dict{}
	cats := maps.Keys(c.resources)
	slices.Sort(cats)
	for _, cat := range cats {
		dict := c.resources[cat]
		if len(dict) == 0 {
			continue
		}
		switch cat {
		case catExtGState:
			res["ExtGState"] = dict
		case catColorSpace:
			res["ColorSpace"] = dict
		case catPattern:
			res["Pattern"] = dict
		case catShading:
			res["Shading"] = dict
		case catXObject:
			res["XObject"] = dict
		case catFont:
			res["Font"] = dict
		case catProperties:
			res["Properties"] = dict
		}
	}
	return res
}

// AddFormWidget places a form widget on the page being drawn.
func (c *DrawContext) AddFormWidget(w FormWidgetID) error {
	if c.ctxType != ContextPage {
		return errKind(ErrInvalidDrawContextType)
	}
	if _, ok := c.widgetSet[w]; !ok {
		c.widgetSet[w] = struct{}{}
		c.usedWidgets = append(c.usedWidgets, w)
	}
	return nil
}

// Annotate places an annotation on the page being drawn.
func (c *DrawContext) Annotate(a AnnotationID) error {
	if c.ctxType != ContextPage {
		return errKind(ErrInvalidDrawContextType)
	}
	if _, ok := c.annotSet[a]; !ok {
		c.annotSet[a] = struct{}{}
		c.usedAnnots = append(c.usedAnnots, a)
	}
	return nil
}

// SetTransition sets the transition shown when the presentation reaches
// this page.
func (c *DrawContext) SetTransition(tr *transition.Transition) error {
	if c.ctxType != ContextPage {
		return errKind(ErrInvalidDrawContextType)
	}
	c.transition = tr
	return nil
}

// AddSimpleNavigation attaches a sub-page navigation sequence: the given
// optional content groups are revealed one by one, each step optionally
// using the given transition.
func (c *DrawContext) AddSimpleNavigation(groups []OptionalContentGroupID, tr *transition.Transition) error {
	if c.ctxType != ContextPage {
		return errKind(ErrInvalidDrawContextType)
	}
	for _, g := range groups {
		c.subNavigations = append(c.subNavigations, SubPageNavigation{
			Group:      g,
			Transition: tr,
		})
	}
	return nil
}

// SetCustomPageProperties overrides the page boxes for this page.
func (c *DrawContext) SetCustomPageProperties(props PageProperties) error {
	if c.ctxType != ContextPage {
		return errKind(ErrInvalidDrawContextType)
	}
	c.customProps = c.customProps.merge(props)
	return nil
}

// SetTransparencyProperties configures the /Group dictionary written
// when this context becomes a transparency group.
func (c *DrawContext) SetTransparencyProperties(props *TransparencyGroupProperties) error {
	if c.ctxType != ContextTransparencyGroup {
		return errKind(ErrInvalidDrawContextType)
	}
	c.groupProps = props
	return nil
}

// checkConsumable verifies that the context belongs to this document,
// has the expected type and has no unclosed state.
func (d *Document) checkConsumable(c *DrawContext, tp ContextType) error {
	if c.doc != d {
		return errKind(ErrIncorrectDocumentForObject)
	}
	if c.ctxType != tp {
		return errKind(ErrInvalidDrawContextType)
	}
	if c.HasUnclosedState() {
		return errKind(ErrUnclosedMarkedContent)
	}
	return nil
}

// AddPageContext serializes a page draw context and appends it to the
// document as the next page.
func (d *Document) AddPageContext(c *DrawContext) (PageID, error) {
	if err := d.checkConsumable(c, ContextPage); err != nil {
		return 0, err
	}

	bbox := c.bbox
	props := PageProperties{MediaBox: &bbox}
	props = props.merge(d.props.DefaultPage)
	props = props.merge(c.customProps)

	return d.addPage(c.buildResourceDict(), Dict{}, c.content.Bytes(),
		props, c.usedWidgets, c.usedAnnots, c.usedStructs,
		c.transition, c.subNavigations)
}

// AddFormXObject serializes a form XObject draw context and registers it
// with the document.
func (d *Document) AddFormXObject(c *DrawContext) (FormXObjectID, error) {
	if err := d.checkConsumable(c, ContextFormXObject); err != nil {
		return 0, err
	}

	dict := Dict{
		"Type":      Name("XObject"),
		"Subtype":   Name("Form"),
		"BBox":      rectArray(c.bbox),
		"Resources": c.buildResourceDict(),
	}
	ref := d.objects.add(fullObject{Body: dict, Stream: c.content.Bytes()})
	d.formXObjects = append(d.formXObjects, ref)
	return FormXObjectID(len(d.formXObjects) - 1), nil
}

// AddPattern serializes a tiling pattern draw context and registers it
// with the document.
func (d *Document) AddPattern(c *DrawContext) (PatternID, error) {
	if err := d.checkConsumable(c, ContextTilingPattern); err != nil {
		return 0, err
	}

	dict := Dict{
		"Type":        Name("Pattern"),
		"PatternType": Integer(1),
		"PaintType":   Integer(1),
		"TilingType":  Integer(1),
		"BBox":        rectArray(c.bbox),
		"XStep":       Number(c.Width()),
		"YStep":       Number(c.Height()),
		"Resources":   c.buildResourceDict(),
	}
	ref := d.objects.add(fullObject{Body: dict, Stream: c.content.Bytes()})
	d.patterns = append(d.patterns, ref)
	return PatternID(len(d.patterns) - 1), nil
}

// AddTransparencyGroup serializes a transparency group draw context and
// registers it with the document.
func (d *Document) AddTransparencyGroup(c *DrawContext) (TransparencyGroupID, error) {
	if err := d.checkConsumable(c, ContextTransparencyGroup); err != nil {
		return 0, err
	}

	group := Dict{
		"S": Name("Transparency"),
	}
	if c.groupProps != nil {
		if c.groupProps.ColorSpace != nil {
			group["CS"] = c.groupProps.ColorSpace.pdfName()
		}
		if c.groupProps.Isolated {
			group["I"] = Bool(true)
		}
		if c.groupProps.Knockout {
			group["K"] = Bool(true)
		}
	}

	dict := Dict{
		"Type":      Name("XObject"),
		"Subtype":   Name("Form"),
		"BBox":      rectArray(c.bbox),
		"Group":     group,
		"Resources": c.buildResourceDict(),
	}
	ref := d.objects.add(fullObject{Body: dict, Stream: c.content.Bytes()})
	d.trGroups = append(d.trGroups, ref)
	return TransparencyGroupID(len(d.trGroups) - 1), nil
}
