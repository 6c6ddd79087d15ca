package animations

// Cycle advances a looping animation cycle at the engine tick rate and
// reports each completed loop. Cycles always loop; leaving a state is
// the state machine's call, not the animation's.
type Cycle struct {
	FrameCount    int
	TicksPerFrame float32 // how many ticks before the next frame
	frameCounter  float32
	frame         int
}

func NewCycle(frameCount int, ticksPerFrame float32) *Cycle {
	return &Cycle{
		FrameCount:    frameCount,
		TicksPerFrame: ticksPerFrame,
		frameCounter:  ticksPerFrame,
	}
}

// Update advances one tick and reports whether the cycle wrapped past
// its last frame on this tick.
func (c *Cycle) Update() bool {
	c.frameCounter -= 1.0
	if c.frameCounter < 0.0 {
		c.frameCounter = c.TicksPerFrame
		c.frame++
		if c.frame >= c.FrameCount {
			c.frame = 0
			return true
		}
	}
	return false
}

func (c *Cycle) Frame() int {
	return c.frame
}

// Progress reports how far through the cycle the playhead is, in [0, 1).
func (c *Cycle) Progress() float64 {
	if c.FrameCount <= 0 {
		return 0
	}
	return float64(c.frame) / float64(c.FrameCount)
}

func (c *Cycle) Restart() {
	c.frame = 0
	c.frameCounter = c.TicksPerFrame
}
