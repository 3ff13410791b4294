package grail

// OpKind identifies a recorded drawing command.
type OpKind uint8

const (
	MoveToOp OpKind = iota
	LineToOp
	ArcOp
	QuadToOp
	CubicToOp
)

func (k OpKind) String() string {
	switch k {
	case MoveToOp:
		return "MoveTo"
	case LineToOp:
		return "LineTo"
	case ArcOp:
		return "Arc"
	case QuadToOp:
		return "QuadraticCurveTo"
	case CubicToOp:
		return "BezierCurveTo"
	default:
		return "Unknown"
	}
}

// Op is a single recorded drawing command. Args holds the command's
// positional arguments in call order; CCW is only meaningful for [ArcOp].
type Op struct {
	Kind OpKind
	Args []float64
	CCW  bool
}

// Recorder is a [Surface] that records the command stream instead of
// drawing. It is useful in tests and for replaying a scene onto another
// surface later.
//
// The zero value is an empty recorder ready for use.
type Recorder struct {
	Ops []Op
}

var _ Surface = (*Recorder)(nil)

func (r *Recorder) MoveTo(x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: MoveToOp, Args: []float64{x, y}})
}

func (r *Recorder) LineTo(x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: LineToOp, Args: []float64{x, y}})
}

func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64, counterclockwise bool) {
	r.Ops = append(r.Ops, Op{
		Kind: ArcOp,
		Args: []float64{x, y, radius, startAngle, endAngle},
		CCW:  counterclockwise,
	})
}

func (r *Recorder) QuadraticCurveTo(cpX, cpY, x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: QuadToOp, Args: []float64{cpX, cpY, x, y}})
}

func (r *Recorder) BezierCurveTo(cp1X, cp1Y, cp2X, cp2Y, x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: CubicToOp, Args: []float64{cp1X, cp1Y, cp2X, cp2Y, x, y}})
}

// Reset discards the recorded commands, retaining the backing storage.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Replay issues the recorded commands onto s in order.
func (r *Recorder) Replay(s Surface) {
	for _, op := range r.Ops {
		a := op.Args
		switch op.Kind {
		case MoveToOp:
			s.MoveTo(a[0], a[1])
		case LineToOp:
			s.LineTo(a[0], a[1])
		case ArcOp:
			s.Arc(a[0], a[1], a[2], a[3], a[4], op.CCW)
		case QuadToOp:
			s.QuadraticCurveTo(a[0], a[1], a[2], a[3])
		case CubicToOp:
			s.BezierCurveTo(a[0], a[1], a[2], a[3], a[4], a[5])
		}
	}
}
