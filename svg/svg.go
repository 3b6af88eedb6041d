// Package svg reads gauge markup back into elements and drawing
// instructions.
package svg

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	mt "github.com/rustyoz/Mtransform"
)

// DrawingInstructionParser allow getting drawing instructions from an
// element. All SVG elements implement this interface.
type DrawingInstructionParser interface {
	ParseDrawingInstructions() chan *DrawingInstruction
}

// Tuple is an X,Y coordinate
type Tuple [2]float64

// Svg represents an SVG document containing groups and elements
type Svg struct {
	Title     string  `xml:"title"`
	Groups    []Group `xml:"g"`
	Elements  []DrawingInstructionParser
	Name      string
	Width     string
	Height    string
	ViewBox   string
	Transform *mt.Transform
	scale     float64
}

// Group represents an SVG group (usually located in a 'g' XML element)
type Group struct {
	ID              string
	Class           string
	Stroke          string
	Fill            string
	Elements        []DrawingInstructionParser
	TransformString string
	Transform       *mt.Transform // row, column
	Parent          *Group
	Owner           *Svg
}

// forward sends everything from the elements' channels to out, in
// element order.
func forward(out chan *DrawingInstruction, elements []DrawingInstructionParser) {
	for _, e := range elements {
		for is := range e.ParseDrawingInstructions() {
			out <- is
		}
	}
}

// ParseDrawingInstructions implements the DrawingInstructionParser interface
func (g *Group) ParseDrawingInstructions() chan *DrawingInstruction {
	instructions := make(chan *DrawingInstruction, 100)
	go func() {
		defer close(instructions)
		forward(instructions, g.Elements)
	}()
	return instructions
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (g *Group) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "id":
			g.ID = attr.Value
		case "class":
			g.Class = attr.Value
		case "stroke":
			g.Stroke = attr.Value
		case "fill":
			g.Fill = attr.Value
		case "transform":
			g.TransformString = attr.Value
			t, err := parseTransform(g.TransformString)
			if err != nil {
				return fmt.Errorf("group %q: %w", g.ID, err)
			}
			if g.Transform != nil {
				t = mt.MultiplyTransforms(*g.Transform, t)
			}
			g.Transform = &t
		}
	}

	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			var elementStruct DrawingInstructionParser

			switch tok.Name.Local {
			case "g":
				inherited := *g.Transform
				elementStruct = &Group{Parent: g, Owner: g.Owner, Transform: &inherited}
			case "circle":
				elementStruct = &Circle{group: g}
			case "path":
				elementStruct = &Path{group: g, Stroke: g.Stroke, Fill: g.Fill}
			case "text":
				elementStruct = &Text{group: g}
			default:
				if err = decoder.Skip(); err != nil {
					return err
				}
				continue
			}

			if err = decoder.DecodeElement(elementStruct, &tok); err != nil {
				return fmt.Errorf("error decoding element of Group: %s", err)
			}
			g.Elements = append(g.Elements, elementStruct)

		case xml.EndElement:
			return nil
		}
	}
}

// ParseDrawingInstructions implements the DrawingInstructionParser interface
//
// Top level elements come first, then the groups.
func (s *Svg) ParseDrawingInstructions() chan *DrawingInstruction {
	instructions := make(chan *DrawingInstruction, 100)
	go func() {
		defer close(instructions)
		forward(instructions, s.Elements)
		for i := range s.Groups {
			for is := range s.Groups[i].ParseDrawingInstructions() {
				instructions <- is
			}
		}
	}()
	return instructions
}

// DrawingInstructions collects all drawing instructions of the document.
func (s *Svg) DrawingInstructions() []*DrawingInstruction {
	var all []*DrawingInstruction
	for is := range s.ParseDrawingInstructions() {
		all = append(all, is)
	}
	return all
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (s *Svg) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "width":
			s.Width = attr.Value
		case "height":
			s.Height = attr.Value
		case "viewBox":
			s.ViewBox = attr.Value
		}
	}

	root := &Group{Owner: s, Transform: s.Transform}
	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			var dip DrawingInstructionParser

			switch tok.Name.Local {
			case "g":
				inherited := *s.Transform
				g := &Group{Owner: s, Transform: &inherited}
				if err = decoder.DecodeElement(g, &tok); err != nil {
					return fmt.Errorf("error decoding group element within SVG struct: %s", err)
				}
				s.Groups = append(s.Groups, *g)
				continue
			case "title":
				if err = decoder.DecodeElement(&s.Title, &tok); err != nil {
					return err
				}
				continue
			case "circle":
				dip = &Circle{group: root}
			case "path":
				dip = &Path{group: root}
			case "text":
				dip = &Text{group: root}
			default:
				if err = decoder.Skip(); err != nil {
					return err
				}
				continue
			}

			if err = decoder.DecodeElement(dip, &tok); err != nil {
				return fmt.Errorf("error decoding element of SVG struct: %s", err)
			}

			s.Elements = append(s.Elements, dip)

		case xml.EndElement:
			if tok.Name.Local == "svg" {
				return nil
			}
		}
	}
}

func newSvg(name string, scale float64) *Svg {
	svg := &Svg{Name: name, Transform: mt.NewTransform(), scale: 1}
	if scale > 0 {
		svg.Transform.Scale(scale, scale)
		svg.scale = scale
	}
	if scale < 0 {
		svg.Transform.Scale(1.0/-scale, 1.0/-scale)
		svg.scale = 1.0 / -scale
	}
	return svg
}

// ParseSvg parses an SVG string into an SVG struct. A positive scale
// multiplies all coordinates, a negative one divides them.
func ParseSvg(str string, name string, scale float64) (*Svg, error) {
	return ParseSvgFromReader(strings.NewReader(str), name, scale)
}

// ParseSvgFromReader parses an SVG struct from an io.Reader
func ParseSvgFromReader(r io.Reader, name string, scale float64) (*Svg, error) {
	svg := newSvg(name, scale)
	if err := xml.NewDecoder(r).Decode(svg); err != nil {
		return nil, fmt.Errorf("ParseSvg Error: %v", err)
	}
	for i := range svg.Groups {
		svg.Groups[i].SetOwner(svg)
	}
	return svg, nil
}

// SetOwner sets the owner of a SVG Group
func (g *Group) SetOwner(svg *Svg) {
	g.Owner = svg
	for _, gn := range g.Elements {
		switch e := gn.(type) {
		case *Group:
			e.Parent = g
			e.SetOwner(svg)
		case *Path:
			e.group = g
		case *Circle:
			e.group = g
		case *Text:
			e.group = g
		}
	}
}
