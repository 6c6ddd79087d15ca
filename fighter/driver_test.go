package fighter

import (
	"math/rand"
	"testing"

	"github.com/automoto/duelgrounds/config"
)

type velocityCall struct {
	vx, vy float64
	tag    string
}

// recordingDriver implements AnimationDriver and records every call in
// order, so tests can assert on the exact sequence of driver
// interactions a transition produces.
type recordingDriver struct {
	ops        []string
	cycles     []CycleRequest
	cancels    []string
	offsets    [][2]float64
	velocities []velocityCall
	active     *CycleRequest
}

func (d *recordingDriver) StartCycle(req CycleRequest) {
	d.ops = append(d.ops, "cycle:"+req.State.String())
	d.cycles = append(d.cycles, req)
	d.active = &d.cycles[len(d.cycles)-1]
}

func (d *recordingDriver) Cancel(tag string) {
	d.ops = append(d.ops, "cancel:"+tag)
	d.cancels = append(d.cancels, tag)
	if d.active != nil && d.active.Tag == tag {
		d.active = nil
	}
}

func (d *recordingDriver) ApplyOffset(dx, dy float64) {
	d.ops = append(d.ops, "offset")
	d.offsets = append(d.offsets, [2]float64{dx, dy})
}

func (d *recordingDriver) ApplyVelocity(vx, vy float64, tag string) {
	d.ops = append(d.ops, "velocity")
	d.velocities = append(d.velocities, velocityCall{vx, vy, tag})
}

// completeCycle fires the active cycle's completion hook, the way the
// real driver does when a loop finishes. The hook may cancel and start
// cycles itself, so it is copied out before the call.
func (d *recordingDriver) completeCycle(t *testing.T) {
	t.Helper()
	if d.active == nil {
		t.Fatal("no active cycle to complete")
	}
	if d.active.OnComplete == nil {
		t.Fatal("active cycle has no completion hook")
	}
	hook := d.active.OnComplete
	hook()
}

func (d *recordingDriver) lastCycle(t *testing.T) CycleRequest {
	t.Helper()
	if len(d.cycles) == 0 {
		t.Fatal("no cycles started")
	}
	return d.cycles[len(d.cycles)-1]
}

// stateSeq returns the states of every started cycle in order.
func (d *recordingDriver) stateSeq() []config.StateID {
	seq := make([]config.StateID, len(d.cycles))
	for i, c := range d.cycles {
		seq[i] = c.State
	}
	return seq
}

// testProfiles returns a full player profile set using the shipped
// player timings.
func testProfiles() ProfileSet {
	return ProfileSet{
		config.StateIdle:    {FPS: 1, FrameCount: 1},
		config.StateIdle2:   {FPS: 10, FrameCount: 5},
		config.StateWalk:    {FPS: 10, FrameCount: 10, VelX: 2, Mirrorable: true},
		config.StateRun:     {FPS: 14, FrameCount: 10, VelX: 4, Mirrorable: true},
		config.StateJump:    {FPS: 14, FrameCount: 11, OffsetX: 10, VelX: 4, Mirrorable: true},
		config.StateAttack1: {FPS: 10, FrameCount: 5, Mirrorable: true},
		config.StateAttack2: {FPS: 10, FrameCount: 3, Mirrorable: true},
		config.StateSpecial: {FPS: 10, FrameCount: 5, Mirrorable: true},
		config.StateHurt:    {FPS: 10, FrameCount: 4},
		config.StateDead:    {FPS: 10, FrameCount: 4},
	}
}

func newTestMachine(t *testing.T) (*Machine, *InputState, *recordingDriver) {
	t.Helper()
	input := NewInputState()
	driver := &recordingDriver{}
	m, err := NewMachine(input, driver, testProfiles(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}
	m.Start()
	return m, input, driver
}

func newTestEnemy(t *testing.T, seed int64) (*EnemyMachine, *recordingDriver) {
	t.Helper()
	driver := &recordingDriver{}
	m, err := NewEnemyMachine(driver, testProfiles(), rand.New(rand.NewSource(seed)), config.DirectionLeft)
	if err != nil {
		t.Fatalf("NewEnemyMachine: %v", err)
	}
	m.Start()
	return m, driver
}
