package svg

// InstructionType tells a drawing library which function it has to call
type InstructionType int

// These are the instruction types read back from gauge markup
const (
	MoveInstruction InstructionType = iota
	LineInstruction
	ArcInstruction
	CloseInstruction
	CircleInstruction
	TextInstruction
	PaintInstruction
)

func (k InstructionType) String() string {
	switch k {
	case MoveInstruction:
		return "move"
	case LineInstruction:
		return "line"
	case ArcInstruction:
		return "arc"
	case CloseInstruction:
		return "close"
	case CircleInstruction:
		return "circle"
	case TextInstruction:
		return "text"
	case PaintInstruction:
		return "paint"
	}
	return "unknown"
}

// DrawingInstruction contains enough information that a simple drawing
// library can draw the shapes of a gauge.
//
// M is the target point of moves, lines and arcs, the centre of circles
// and the anchor of texts. Radius is set for arcs and circles.
type DrawingInstruction struct {
	Kind     InstructionType
	M        *Tuple
	Radius   *Tuple
	LargeArc bool
	Sweep    bool
	Text     string

	StrokeWidth *float64
	Stroke      *string
	Fill        *string
}
