package animations

import "testing"

func TestCycle_ReportsEachCompletedLoop(t *testing.T) {
	c := NewCycle(2, 1)

	completions := 0
	frames := map[int]bool{}
	for i := 0; i < 8; i++ {
		if c.Update() {
			completions++
		}
		frames[c.Frame()] = true
	}

	if completions != 2 {
		t.Errorf("completions in 8 ticks = %d, want 2", completions)
	}
	if !frames[0] || !frames[1] {
		t.Errorf("observed frames = %v, want both 0 and 1", frames)
	}
}

func TestCycle_FrameStaysInRange(t *testing.T) {
	c := NewCycle(5, 0.5)

	for i := 0; i < 100; i++ {
		c.Update()
		if f := c.Frame(); f < 0 || f >= 5 {
			t.Fatalf("tick %d: frame = %d, want 0..4", i, f)
		}
		if p := c.Progress(); p < 0 || p >= 1 {
			t.Fatalf("tick %d: progress = %v, want [0,1)", i, p)
		}
	}
}

func TestCycle_RestartResetsPlayhead(t *testing.T) {
	c := NewCycle(4, 1)

	for i := 0; i < 5; i++ {
		c.Update()
	}
	c.Restart()

	if c.Frame() != 0 {
		t.Errorf("frame after restart = %d, want 0", c.Frame())
	}
	if c.Progress() != 0 {
		t.Errorf("progress after restart = %v, want 0", c.Progress())
	}
}
