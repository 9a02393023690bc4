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

import "seehuhn.de/go/pdfgen/transition"

// SubPageNavigation names one optional content group to reveal during
// a presentation step, optionally with a transition effect.
type SubPageNavigation struct {
	Group      OptionalContentGroupID
	Transition *transition.Transition
}

// transitionDict builds a transition dictionary.
func transitionDict(tr *transition.Transition) Dict {
	dict := Dict{
		"Type": Name("Trans"),
		"S":    Name(tr.Style.Name()),
	}
	if tr.Duration > 0 {
		dict["D"] = Number(tr.Duration)
	}
	switch tr.Style {
	case transition.StyleSplit, transition.StyleBlinds:
		dict["Dm"] = Name(tr.Dimension.Name())
	}
	switch tr.Style {
	case transition.StyleSplit, transition.StyleBox, transition.StyleFly:
		dict["M"] = Name(tr.Motion.Name())
	}
	switch tr.Style {
	case transition.StyleWipe, transition.StyleGlitter, transition.StyleFly,
		transition.StyleCover, transition.StyleUncover, transition.StylePush:
		if tr.Direction == transition.DirNone {
			dict["Di"] = Name("None")
		} else {
			dict["Di"] = Integer(tr.Direction)
		}
	}
	if tr.Style == transition.StyleFly {
		if tr.Scale != 0 {
			dict["SS"] = Number(tr.Scale)
		}
		if tr.Opaque {
			dict["B"] = Bool(true)
		}
	}
	return dict
}

// setOCGStateAction builds a /SetOCGState action switching the given
// groups to the given state.
func setOCGStateAction(state Name, groups ...Reference) Dict {
	arr := Array{state}
	for _, g := range groups {
		arr = append(arr, g)
	}
	return Dict{
		"S":     Name("SetOCGState"),
		"State": arr,
	}
}

// createSubNavigation emits the navigation node chain for one page and
// returns the root node.  The chain is a doubly linked list: a root node
// which resets all groups, one node per navigation step, and a tail node
// which undoes the final step.  All slots are reserved up front, so the
// Next/Prev references never depend on insertion order.
func (d *Document) createSubNavigation(subnav []SubPageNavigation) Reference {
	rootRef := d.objects.reserve()
	nodeRefs := make([]Reference, len(subnav))
	for i := range subnav {
		nodeRefs[i] = d.objects.reserve()
	}
	tailRef := d.objects.reserve()

	groups := make([]Reference, len(subnav))
	for i, sn := range subnav {
		groups[i] = d.ocgs[sn.Group]
	}

	d.objects.set(rootRef, fullObject{Body: Dict{
		"Type": Name("NavNode"),
		"NA":   setOCGStateAction("OFF", groups...),
		"PA":   setOCGStateAction("ON", groups...),
		"Next": nodeRefs[0],
		"Prev": tailRef,
	}})

	for i, sn := range subnav {
		na := setOCGStateAction("ON", groups[i])
		if sn.Transition != nil {
			na["Next"] = Dict{
				"S":     Name("Trans"),
				"Trans": transitionDict(sn.Transition),
			}
		}

		dict := Dict{
			"Type": Name("NavNode"),
			"NA":   na,
		}
		if i+1 < len(subnav) {
			dict["Next"] = nodeRefs[i+1]
		} else {
			dict["Next"] = tailRef
		}
		if i > 0 {
			dict["PA"] = setOCGStateAction("OFF", groups[i-1])
			dict["Prev"] = nodeRefs[i-1]
		}
		d.objects.set(nodeRefs[i], fullObject{Body: dict})
	}

	d.objects.set(tailRef, fullObject{Body: Dict{
		"Type": Name("NavNode"),
		"PA":   setOCGStateAction("OFF", groups[len(groups)-1]),
		"Prev": nodeRefs[len(nodeRefs)-1],
	}})

	return rootRef
}
