package svg

import (
	"fmt"
	"strconv"

	mt "github.com/rustyoz/Mtransform"
	gl "github.com/rustyoz/genericlexer"
)

// Path is an SVG XML path element
type Path struct {
	ID              string `xml:"id,attr"`
	D               string `xml:"d,attr"`
	Class           string `xml:"class,attr"`
	Style           string `xml:"style,attr"`
	TransformString string `xml:"transform,attr"`
	StrokeWidth     string `xml:"stroke-width,attr"`
	Fill            string `xml:"fill,attr"`
	Stroke          string `xml:"stroke,attr"`
	instructions    chan *DrawingInstruction
	group           *Group
}

type pathDescriptionParser struct {
	p         *Path
	lex       gl.Lexer
	x, y      float64
	start     Tuple
	transform mt.Transform
	scale     float64
}

func newPathDParse() *pathDescriptionParser {
	pdp := &pathDescriptionParser{}
	pdp.transform = mt.Identity()
	pdp.scale = 1
	return pdp
}

// ParseDrawingInstructions returns a channel of the path's drawing
// instructions, closed after the final PaintInstruction. Parsing stops
// at the first malformed command.
func (p *Path) ParseDrawingInstructions() chan *DrawingInstruction {
	pdp := newPathDParse()
	pdp.p = p
	pdp.transform = elementTransform(p.group, p.TransformString)
	pdp.scale = ownerScale(p.group)

	p.instructions = make(chan *DrawingInstruction, 100)
	l, _ := gl.Lex(fmt.Sprint(p.ID), p.D)
	pdp.lex = *l

	go func() {
		defer close(p.instructions)
		for {
			i := pdp.lex.NextItem()
			switch {
			case i.Type == gl.ItemError:
				return
			case i.Type == gl.ItemEOS:
				p.instructions <- paint(p.Style, p.Stroke, p.StrokeWidth, p.Fill, pdp.scale)
				return
			case i.Type == gl.ItemLetter:
				if err := pdp.parseCommand(i); err != nil {
					return
				}
			default:
			}
		}
	}()

	return p.instructions
}

func (pdp *pathDescriptionParser) parseCommand(i gl.Item) error {
	var err error

	switch i.Value {
	case "M":
		err = pdp.parseMoveToAbs()
	case "L":
		err = pdp.parseLineToAbs()
	case "A":
		err = pdp.parseArcToAbs()
	case "z", "Z":
		err = pdp.parseClose()
	default:
		err = fmt.Errorf("unsupported path command %q", i.Value)
	}

	return err
}

func (pdp *pathDescriptionParser) emit(kind InstructionType) {
	x, y := pdp.transform.Apply(pdp.x, pdp.y)
	pdp.p.instructions <- &DrawingInstruction{Kind: kind, M: &Tuple{x, y}}
}

// parseMoveToAbs handles M; extra coordinate pairs are implicit lines.
func (pdp *pathDescriptionParser) parseMoveToAbs() error {
	t, err := parseTuple(&pdp.lex)
	if err != nil {
		return fmt.Errorf("Error Passing MoveToAbs Expected Tuple\n%s", err)
	}
	pdp.x, pdp.y = t[0], t[1]
	pdp.start = t
	pdp.emit(MoveInstruction)

	pdp.lex.ConsumeWhiteSpace()
	for pdp.lex.PeekItem().Type == gl.ItemNumber {
		t, err := parseTuple(&pdp.lex)
		if err != nil {
			return fmt.Errorf("Error Passing MoveToAbs\n%s", err)
		}
		pdp.x, pdp.y = t[0], t[1]
		pdp.emit(LineInstruction)
		pdp.lex.ConsumeWhiteSpace()
	}
	return nil
}

func (pdp *pathDescriptionParser) parseLineToAbs() error {
	pdp.lex.ConsumeWhiteSpace()
	for pdp.lex.PeekItem().Type == gl.ItemNumber {
		t, err := parseTuple(&pdp.lex)
		if err != nil {
			return fmt.Errorf("Error Passing LineToAbs\n%s", err)
		}
		pdp.x, pdp.y = t[0], t[1]
		pdp.emit(LineInstruction)
		pdp.lex.ConsumeWhiteSpace()
	}
	return nil
}

// parseArcToAbs handles A rx ry rotation large-arc sweep x y, repeated.
func (pdp *pathDescriptionParser) parseArcToAbs() error {
	pdp.lex.ConsumeWhiteSpace()
	for pdp.lex.PeekItem().Type == gl.ItemNumber {
		var n [7]float64
		for k := range n {
			pdp.lex.ConsumeWhiteSpace()
			pdp.lex.ConsumeComma()
			pdp.lex.ConsumeWhiteSpace()
			v, err := parseNumber(pdp.lex.NextItem())
			if err != nil {
				return fmt.Errorf("Error Passing ArcToAbs\n%s", err)
			}
			n[k] = v
		}

		pdp.x, pdp.y = n[5], n[6]
		x, y := pdp.transform.Apply(pdp.x, pdp.y)
		pdp.p.instructions <- &DrawingInstruction{
			Kind:     ArcInstruction,
			M:        &Tuple{x, y},
			Radius:   &Tuple{n[0] * pdp.scale, n[1] * pdp.scale},
			LargeArc: n[3] != 0,
			Sweep:    n[4] != 0,
		}
		pdp.lex.ConsumeWhiteSpace()
	}
	return nil
}

func (pdp *pathDescriptionParser) parseClose() error {
	pdp.lex.ConsumeWhiteSpace()
	pdp.x, pdp.y = pdp.start[0], pdp.start[1]
	pdp.p.instructions <- &DrawingInstruction{Kind: CloseInstruction}
	return nil
}

func parseNumber(i gl.Item) (float64, error) {
	if i.Type != gl.ItemNumber {
		return 0, fmt.Errorf("expected number, got %q", i.Value)
	}
	n, err := strconv.ParseFloat(i.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("Error passing number %s", err)
	}
	return n, nil
}

func parseTuple(l *gl.Lexer) (Tuple, error) {
	t := Tuple{}
	l.ConsumeWhiteSpace()
	x, err := parseNumber(l.NextItem())
	if err != nil {
		return t, fmt.Errorf("Error parsing Tuple: %s", err)
	}
	l.ConsumeWhiteSpace()
	l.ConsumeComma()
	l.ConsumeWhiteSpace()
	y, err := parseNumber(l.NextItem())
	if err != nil {
		return t, fmt.Errorf("Error parsing Tuple: %s", err)
	}
	t[0], t[1] = x, y
	return t, nil
}
