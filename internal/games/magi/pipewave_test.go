package magi

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/flappy-magi/internal/config"
	"github.com/vovakirdan/flappy-magi/internal/core"
)

func newTestWave(seed int64, width int) *PipeWave {
	cfg := config.DefaultConfig()
	return NewPipeWave(&cfg, seed, width, width)
}

func TestPipeWaveInitialLayout(t *testing.T) {
	w := newTestWave(1, 60)

	expected := []float64{900, 900, 1300, 1300, 1700, 1700}
	if w.Len() != len(expected) {
		t.Fatalf("Expected %d pipes, got %d", len(expected), w.Len())
	}
	for i, x := range expected {
		p := w.At(i)
		if p.Pos.X != x {
			t.Errorf("pipe %d: expected x=%v, got %v", i, x, p.Pos.X)
		}
		if p.Scored {
			t.Errorf("pipe %d should start unscored", i)
		}
		role := RoleTop
		if i%2 == 1 {
			role = RoleBottom
		}
		if p.Role != role {
			t.Errorf("pipe %d: expected role %d, got %d", i, role, p.Role)
		}
	}
	if w.Score() != 0 {
		t.Errorf("Expected score 0, got %d", w.Score())
	}
}

func TestSelectPairPositions(t *testing.T) {
	w := newTestWave(7, 60)
	minGap := float64(PipeHeight + w.cfg.PipeIntervalMin)

	for i := 0; i < 10000; i++ {
		top, bottom := w.SelectPairPositions()
		if top < -200 || top >= 0 {
			t.Fatalf("trial %d: top %f outside [-200,0)", i, top)
		}
		if bottom-top < minGap {
			t.Fatalf("trial %d: gap %f smaller than %f", i, bottom-top, minGap)
		}
		if bottom < 300 {
			t.Fatalf("trial %d: bottom %f above the midline", i, bottom)
		}
	}
}

func TestSelectPairPositionsZeroInterval(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.PipeIntervalMin = 0
	w := NewPipeWave(&cfg, 3, 60, 60)

	for i := 0; i < 10000; i++ {
		top, bottom := w.SelectPairPositions()
		if bottom-top < PipeHeight {
			t.Fatalf("trial %d: pipes overlap, top=%f bottom=%f", i, top, bottom)
		}
		if bottom < 300 {
			t.Fatalf("trial %d: bottom %f above the midline", i, bottom)
		}
	}
}

func TestPipeWaveRecycle(t *testing.T) {
	// Width 57 gives a 50 px wide bound.
	w := newTestWave(1, 57)
	w.at(0).Pos.X = -60
	w.at(1).Pos.X = -60
	w.at(0).Scored = true
	w.at(1).Scored = true

	second := w.At(2)
	tail := w.At(5)

	w.Update(0)

	if w.Len() != 6 {
		t.Fatalf("Expected 6 pipes after recycle, got %d", w.Len())
	}
	if w.At(0) != second {
		t.Errorf("Expected former second pair to become head, got %+v", w.At(0))
	}

	expectedX := float64(tail.Bound().X + w.cfg.PipeStride)
	for i, role := range []Role{RoleTop, RoleBottom} {
		p := w.At(4 + i)
		if p.Pos.X != expectedX {
			t.Errorf("recycled pipe %d: expected x=%v, got %v", i, expectedX, p.Pos.X)
		}
		if p.Role != role {
			t.Errorf("recycled pipe %d: expected role %d, got %d", i, role, p.Role)
		}
		if p.Scored {
			t.Errorf("recycled pipe %d should be unscored", i)
		}
	}
}

func TestPipeWaveNoRecycleAtEdge(t *testing.T) {
	w := newTestWave(1, 57)
	// Right edge of the bound lands exactly on -5.
	w.at(0).Pos.X = -55
	w.at(1).Pos.X = -55
	head := w.At(0)

	w.Update(0)

	if w.At(0) != head {
		t.Errorf("Head at the edge should not recycle, got %+v", w.At(0))
	}
}

func TestPipeWaveLengthAndOrdering(t *testing.T) {
	w := newTestWave(99, 60)
	dt := 16 * time.Millisecond

	for tick := 0; tick < 10000; tick++ {
		w.Update(dt)

		if w.Len() != 6 {
			t.Fatalf("tick %d: expected 6 pipes, got %d", tick, w.Len())
		}
		for pair := 0; pair < pairCount; pair++ {
			top, bottom := w.At(2*pair), w.At(2*pair+1)
			if top.Role != RoleTop || bottom.Role != RoleBottom {
				t.Fatalf("tick %d: pair %d has roles %d/%d", tick, pair, top.Role, bottom.Role)
			}
			if top.Pos.X != bottom.Pos.X {
				t.Fatalf("tick %d: pair %d not aligned: %f vs %f", tick, pair, top.Pos.X, bottom.Pos.X)
			}
			if pair == 0 {
				continue
			}
			gap := top.Pos.X - w.At(2*pair-2).Pos.X
			if math.Abs(gap-float64(w.cfg.PipeStride)) > 1 {
				t.Fatalf("tick %d: pair %d is %f px from previous pair", tick, pair, gap)
			}
		}
	}
}

func TestPipeWaveCollide(t *testing.T) {
	w := newTestWave(5, 60)
	head := w.At(0).Bound()

	tests := []struct {
		name     string
		bound    core.Rect
		expected bool
	}{
		{"inside top pipe", core.NewRect(head.X+10, 50, 10, 10), true},
		{"far left of stream", core.NewRect(100, 100, 36, 26), false},
		{"touching right edge", core.NewRect(head.Right(), 50, 10, 10), false},
		{"one pixel into right edge", core.NewRect(head.Right()-1, 50, 10, 10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.Collide(tt.bound); got != tt.expected {
				t.Errorf("Collide(%+v) = %v, expected %v", tt.bound, got, tt.expected)
			}
		})
	}
}

func TestJudgeScore(t *testing.T) {
	w := newTestWave(5, 60)
	first := w.At(0).Bound()

	// Just past the margin of the first pair.
	bound := core.NewRect(first.Right()+scoreMargin+1, 100, 36, 26)
	if got := w.JudgeScore(bound); got != 1 {
		t.Errorf("Expected 1 point for the first pair, got %d", got)
	}
	if got := w.JudgeScore(bound); got != 0 {
		t.Errorf("Scored pipes must not count twice, got %d", got)
	}

	// Exactly on the margin does not score.
	second := w.At(2).Bound()
	onMargin := core.NewRect(second.Right()+scoreMargin, 100, 36, 26)
	if got := w.JudgeScore(onMargin); got != 0 {
		t.Errorf("Expected no points on the margin, got %d", got)
	}

	// A single newly scored pipe rounds down and is not carried over.
	w.at(2).Scored = true
	if got := w.JudgeScore(core.NewRect(second.Right()+scoreMargin+1, 100, 36, 26)); got != 0 {
		t.Errorf("Expected 0 points for a single pipe, got %d", got)
	}
	if !w.At(3).Scored {
		t.Error("Expected the bottom pipe to be marked scored")
	}

	third := w.At(4).Bound()
	if got := w.JudgeScore(core.NewRect(third.Right()+scoreMargin+1, 100, 36, 26)); got != 1 {
		t.Errorf("Expected 1 point for the third pair, got %d", got)
	}
	if w.Score() != 2 {
		t.Errorf("Expected score 2, got %d", w.Score())
	}
}

func TestJudgeScoreAllPairsAtOnce(t *testing.T) {
	w := newTestWave(5, 60)
	if got := w.JudgeScore(core.NewRect(5000, 100, 36, 26)); got != 3 {
		t.Errorf("Expected 3 points, got %d", got)
	}
}

func TestPipeWaveResetDeterminism(t *testing.T) {
	a := newTestWave(42, 60)
	b := newTestWave(42, 60)

	for i := 0; i < 6; i++ {
		if a.At(i) != b.At(i) {
			t.Fatalf("pipe %d differs for the same seed: %+v vs %+v", i, a.At(i), b.At(i))
		}
	}

	a.JudgeScore(core.NewRect(5000, 100, 36, 26))
	a.Reset()
	if a.Score() != 0 {
		t.Errorf("Reset should clear the score, got %d", a.Score())
	}
	if a.At(0).Pos.X != 900 {
		t.Errorf("Reset should restore the first pair to x=900, got %f", a.At(0).Pos.X)
	}
}

func TestPipeWaveEach(t *testing.T) {
	w := newTestWave(1, 60)
	w.at(0).Pos.X = -100
	w.at(1).Pos.X = -100
	w.Update(0)

	var xs []float64
	w.Each(func(p Pipe) { xs = append(xs, p.Pos.X) })

	if len(xs) != 6 {
		t.Fatalf("Expected 6 pipes, got %d", len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[i-1] {
			t.Errorf("Each should visit leftmost first, got %v", xs)
			break
		}
	}
}
