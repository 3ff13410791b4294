package grail

import "testing"

func TestRecorderReplay(t *testing.T) {
	var rec Recorder
	Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}.Render(&rec, 10, 10)
	Pt(0.5, 0.5).Render(&rec, 10, 10)
	QuadBez{Pt(1.0, 0.0), Pt(0.5, 1.0), Pt(0.0, 0.0)}.Render(&rec, 10, 10)
	CubicBez{Pt(1.0, 0.0), Pt(0.0, 0.0), Pt(0.25, 1.0), Pt(0.75, 1.0)}.Render(&rec, 10, 10)

	var replayed Recorder
	rec.Replay(&replayed)
	diff(t, rec.Ops, replayed.Ops)
}

func TestRecorderReset(t *testing.T) {
	var rec Recorder
	rec.MoveTo(1, 2)
	rec.LineTo(3, 4)
	rec.Reset()
	if len(rec.Ops) != 0 {
		t.Errorf("expected no ops after reset, got %d", len(rec.Ops))
	}
}
