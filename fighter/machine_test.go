package fighter

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/automoto/duelgrounds/config"
)

func TestMachine_StartEntersIdle(t *testing.T) {
	m, _, driver := newTestMachine(t)

	if m.Current() != config.StateIdle {
		t.Fatalf("state = %s, want %s", m.Current(), config.StateIdle)
	}
	cycle := driver.lastCycle(t)
	if cycle.State != config.StateIdle {
		t.Errorf("cycle state = %s, want %s", cycle.State, config.StateIdle)
	}
	if cycle.Tag != PlayerTag {
		t.Errorf("cycle tag = %q, want %q", cycle.Tag, PlayerTag)
	}
	if cycle.Direction != config.DirectionRight {
		t.Errorf("cycle direction = %d, want %d", cycle.Direction, config.DirectionRight)
	}

	// A second Start must not restart the cycle.
	m.Start()
	if len(driver.cycles) != 1 {
		t.Errorf("cycles after second Start = %d, want 1", len(driver.cycles))
	}
}

func TestMachine_MovementWalkRunIdle(t *testing.T) {
	m, in, driver := newTestMachine(t)

	in.PressRight()
	m.Movement()
	if m.Current() != config.StateWalk {
		t.Fatalf("after right press, state = %s, want %s", m.Current(), config.StateWalk)
	}
	if v := driver.velocities[len(driver.velocities)-1]; v.vx != 2 || v.vy != 0 || v.tag != PlayerTag {
		t.Errorf("walk velocity = %+v, want {2 0 %s}", v, PlayerTag)
	}

	in.SetShift(true)
	m.Movement()
	if m.Current() != config.StateRun {
		t.Fatalf("with shift held, state = %s, want %s", m.Current(), config.StateRun)
	}
	if v := driver.velocities[len(driver.velocities)-1]; v.vx != 4 {
		t.Errorf("run velocity vx = %v, want 4", v.vx)
	}

	in.SetShift(false)
	m.Movement()
	if m.Current() != config.StateWalk {
		t.Fatalf("after shift release, state = %s, want %s", m.Current(), config.StateWalk)
	}

	in.ReleaseRight()
	m.Movement()
	if m.Current() != config.StateIdle {
		t.Fatalf("after movement release, state = %s, want %s", m.Current(), config.StateIdle)
	}
}

func TestMachine_RunRequiresForward(t *testing.T) {
	m, in, driver := newTestMachine(t)

	in.PressLeft()
	in.SetShift(true)
	m.Movement()

	if m.Current() != config.StateWalk {
		t.Fatalf("backward with shift, state = %s, want %s", m.Current(), config.StateWalk)
	}

	// Repeating the event with unchanged input must not restart the walk
	// cycle.
	cycles := len(driver.cycles)
	m.Movement()
	if m.Current() != config.StateWalk {
		t.Fatalf("state = %s, want %s", m.Current(), config.StateWalk)
	}
	if len(driver.cycles) != cycles {
		t.Errorf("cycles = %d, want %d (absorbed event restarted the cycle)", len(driver.cycles), cycles)
	}
}

func TestMachine_MovementEventAbsorbedWhenUnchanged(t *testing.T) {
	m, in, driver := newTestMachine(t)

	in.PressRight()
	m.Movement()
	cycles := len(driver.cycles)

	m.Movement()
	m.Movement()

	if m.Current() != config.StateWalk {
		t.Fatalf("state = %s, want %s", m.Current(), config.StateWalk)
	}
	if len(driver.cycles) != cycles {
		t.Errorf("cycles = %d, want %d (repeat events must be no-ops)", len(driver.cycles), cycles)
	}
}

func TestMachine_DirectionFlipDemotesRunToWalk(t *testing.T) {
	m, in, _ := newTestMachine(t)

	in.PressRight()
	in.SetShift(true)
	m.Movement()
	if m.Current() != config.StateRun {
		t.Fatalf("state = %s, want %s", m.Current(), config.StateRun)
	}

	// Left pressed while right is still held: right keeps priority, so
	// the run continues.
	in.PressLeft()
	m.Movement()
	if m.Current() != config.StateRun {
		t.Fatalf("with both keys held, state = %s, want %s", m.Current(), config.StateRun)
	}

	// Releasing right flips the facing backward, which demotes to Walk
	// even though shift is still held.
	in.ReleaseRight()
	m.Movement()
	if m.Current() != config.StateWalk {
		t.Fatalf("after flip, state = %s, want %s", m.Current(), config.StateWalk)
	}
}

func TestMachine_JumpRequiresForward(t *testing.T) {
	t.Run("from walk", func(t *testing.T) {
		m, in, driver := newTestMachine(t)

		in.PressLeft()
		m.Movement()
		cycles := len(driver.cycles)

		m.HandleCommand(CommandJump)

		if m.Current() != config.StateWalk {
			t.Fatalf("backward jump changed state to %s", m.Current())
		}
		if len(driver.cycles) != cycles {
			t.Errorf("backward jump started a cycle")
		}
	})

	t.Run("from idle", func(t *testing.T) {
		m, in, driver := newTestMachine(t)

		// Facing sticks after release, so the fighter idles facing left.
		in.PressLeft()
		in.ReleaseLeft()
		m.Movement()
		cycles := len(driver.cycles)

		m.HandleCommand(CommandJump)

		if m.Current() != config.StateIdle {
			t.Fatalf("backward jump changed state to %s", m.Current())
		}
		if len(driver.cycles) != cycles {
			t.Errorf("backward jump started a cycle")
		}
	})
}

func TestMachine_JumpForwardAppliesOffsetAndVelocity(t *testing.T) {
	m, in, driver := newTestMachine(t)

	in.PressRight()
	m.Movement()
	m.HandleCommand(CommandJump)

	if m.Current() != config.StateJump {
		t.Fatalf("state = %s, want %s", m.Current(), config.StateJump)
	}
	if _, ok := in.PendingCommand(); ok {
		t.Error("pending command not consumed on action entry")
	}
	if len(driver.offsets) != 1 {
		t.Fatalf("offsets = %d, want 1", len(driver.offsets))
	}
	if o := driver.offsets[0]; o[0] != 10 || o[1] != 0 {
		t.Errorf("jump offset = %v, want [10 0]", o)
	}
	if v := driver.velocities[len(driver.velocities)-1]; v.vx != 4 || v.tag != PlayerTag {
		t.Errorf("jump velocity = %+v, want vx 4 tag %s", v, PlayerTag)
	}
}

func TestMachine_JumpFromRunSkipsFacingGuard(t *testing.T) {
	m, in, _ := newTestMachine(t)

	in.PressRight()
	in.SetShift(true)
	m.Movement()
	m.HandleCommand(CommandJump)

	if m.Current() != config.StateJump {
		t.Fatalf("state = %s, want %s", m.Current(), config.StateJump)
	}
}

func TestMachine_AttacksWorkFacingBackward(t *testing.T) {
	tests := []struct {
		cmd  Command
		want config.StateID
	}{
		{CommandAttack1, config.StateAttack1},
		{CommandAttack2, config.StateAttack2},
		{CommandSpecial, config.StateSpecial},
	}

	for _, tt := range tests {
		t.Run(tt.cmd.String(), func(t *testing.T) {
			m, in, _ := newTestMachine(t)
			in.PressLeft()
			m.Movement()

			m.HandleCommand(tt.cmd)
			if m.Current() != tt.want {
				t.Fatalf("state = %s, want %s", m.Current(), tt.want)
			}
			cycle := lastOf(t, m, tt.want)
			if cycle.Direction != config.DirectionLeft {
				t.Errorf("cycle direction = %d, want %d", cycle.Direction, config.DirectionLeft)
			}
		})
	}
}

// lastOf pulls the machine's driver back out for cycle assertions.
func lastOf(t *testing.T, m *Machine, want config.StateID) CycleRequest {
	t.Helper()
	driver, ok := m.driver.(*recordingDriver)
	if !ok {
		t.Fatal("machine not built on a recordingDriver")
	}
	cycle := driver.lastCycle(t)
	if cycle.State != want {
		t.Fatalf("last cycle = %s, want %s", cycle.State, want)
	}
	return cycle
}

func TestMachine_BuffersCommandsDuringAction(t *testing.T) {
	m, in, driver := newTestMachine(t)

	in.PressRight()
	m.Movement()
	m.HandleCommand(CommandAttack1)
	cycles := len(driver.cycles)

	m.HandleCommand(CommandAttack2)
	if m.Current() != config.StateAttack1 {
		t.Fatalf("state = %s, want %s (command should buffer)", m.Current(), config.StateAttack1)
	}
	if len(driver.cycles) != cycles {
		t.Error("buffered command started a cycle")
	}

	m.HandleCommand(CommandSpecial)
	got := m.Buffered()
	want := []Command{CommandAttack2, CommandSpecial}
	assertCommands(t, got, want)

	// A third command drops the oldest buffered one.
	m.HandleCommand(CommandJump)
	assertCommands(t, m.Buffered(), []Command{CommandSpecial, CommandJump})
}

func assertCommands(t *testing.T, got, want []Command) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("buffered = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("buffered = %v, want %v", got, want)
		}
	}
}

func TestMachine_ChainsBufferedActionWithoutMovementFlicker(t *testing.T) {
	m, in, driver := newTestMachine(t)

	in.PressRight()
	m.Movement()
	m.HandleCommand(CommandAttack1)
	m.HandleCommand(CommandAttack1)

	driver.completeCycle(t)
	if m.Current() != config.StateAttack1 {
		t.Fatalf("state after chain = %s, want %s", m.Current(), config.StateAttack1)
	}
	if m.BufferLen() != 0 {
		t.Fatalf("buffer len = %d, want 0", m.BufferLen())
	}

	driver.completeCycle(t)
	if m.Current() != config.StateWalk {
		t.Fatalf("state after resume = %s, want %s", m.Current(), config.StateWalk)
	}

	// The full cycle history must never show a movement state between
	// the two attacks; that flicker is the sliding glitch.
	assertStateSeq(t, driver, []config.StateID{
		config.StateIdle,
		config.StateWalk,
		config.StateAttack1,
		config.StateAttack1,
		config.StateWalk,
	})
}

func assertStateSeq(t *testing.T, driver *recordingDriver, want []config.StateID) {
	t.Helper()
	got := driver.stateSeq()
	if len(got) != len(want) {
		t.Fatalf("cycle sequence = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cycle sequence = %v, want %v", got, want)
		}
	}
}

func TestMachine_ChainsMixedActionsInFIFOOrder(t *testing.T) {
	m, in, driver := newTestMachine(t)

	in.PressRight()
	m.Movement()
	m.HandleCommand(CommandAttack1)
	m.HandleCommand(CommandAttack2)
	m.HandleCommand(CommandSpecial)

	driver.completeCycle(t)
	if m.Current() != config.StateAttack2 {
		t.Fatalf("first chain = %s, want %s", m.Current(), config.StateAttack2)
	}
	driver.completeCycle(t)
	if m.Current() != config.StateSpecial {
		t.Fatalf("second chain = %s, want %s", m.Current(), config.StateSpecial)
	}
	driver.completeCycle(t)
	if m.Current() != config.StateWalk {
		t.Fatalf("after chains, state = %s, want %s", m.Current(), config.StateWalk)
	}

	assertStateSeq(t, driver, []config.StateID{
		config.StateIdle,
		config.StateWalk,
		config.StateAttack1,
		config.StateAttack2,
		config.StateSpecial,
		config.StateWalk,
	})
}

func TestMachine_ResumeReadsInputAtCompletion(t *testing.T) {
	t.Run("to run", func(t *testing.T) {
		m, in, driver := newTestMachine(t)
		in.PressRight()
		in.SetShift(true)
		m.Movement()
		m.HandleCommand(CommandJump)

		driver.completeCycle(t)
		if m.Current() != config.StateRun {
			t.Fatalf("state = %s, want %s", m.Current(), config.StateRun)
		}
	})

	t.Run("to idle after keys released mid-action", func(t *testing.T) {
		m, in, driver := newTestMachine(t)
		in.PressRight()
		m.Movement()
		m.HandleCommand(CommandAttack1)

		// Movement events during a non-interruptible action are
		// absorbed; only the resume sees the new input.
		in.ReleaseRight()
		m.Movement()
		if m.Current() != config.StateAttack1 {
			t.Fatalf("movement interrupted the action: %s", m.Current())
		}

		driver.completeCycle(t)
		if m.Current() != config.StateIdle {
			t.Fatalf("state = %s, want %s", m.Current(), config.StateIdle)
		}
	})

	t.Run("to walk when shifted backward", func(t *testing.T) {
		m, in, driver := newTestMachine(t)
		m.HandleCommand(CommandAttack1)

		// Backward movement with shift picked up during the attack must
		// resume into Walk; Run stays forward-only.
		in.PressLeft()
		in.SetShift(true)
		m.Movement()

		driver.completeCycle(t)
		if m.Current() != config.StateWalk {
			t.Fatalf("state = %s, want %s", m.Current(), config.StateWalk)
		}
	})
}

func TestMachine_IdleFidgetRollsIdle2AndBack(t *testing.T) {
	m, _, driver := newTestMachine(t)

	reached := false
	for i := 0; i < 200; i++ {
		before := m.Current()
		cycles := len(driver.cycles)
		driver.completeCycle(t)

		if m.Current() == before && len(driver.cycles) != cycles {
			t.Fatal("re-picking Idle restarted its cycle")
		}
		if m.Current() == config.StateIdle2 {
			reached = true
			break
		}
	}
	if !reached {
		t.Fatal("idle fidget never reached Idle_2 in 200 completions")
	}

	// Commands are neither fired nor buffered while the fidget plays.
	m.HandleCommand(CommandAttack1)
	if m.Current() != config.StateIdle2 {
		t.Fatalf("command interrupted Idle_2: %s", m.Current())
	}
	if m.BufferLen() != 0 {
		t.Fatalf("buffer len = %d, want 0", m.BufferLen())
	}

	driver.completeCycle(t)
	if m.Current() != config.StateIdle {
		t.Fatalf("after Idle_2, state = %s, want %s", m.Current(), config.StateIdle)
	}
}

func TestMachine_InjureRunsHurtDeadIdleSequence(t *testing.T) {
	m, in, driver := newTestMachine(t)

	// Injure only lands while idling.
	in.PressRight()
	m.Movement()
	m.Injure()
	if m.Current() != config.StateWalk {
		t.Fatalf("injure mid-walk changed state to %s", m.Current())
	}

	in.ReleaseRight()
	m.Movement()
	m.Injure()
	if m.Current() != config.StateHurt {
		t.Fatalf("state = %s, want %s", m.Current(), config.StateHurt)
	}

	// Hurt and Dead absorb everything until their cycles finish.
	m.HandleCommand(CommandAttack1)
	if m.Current() != config.StateHurt || m.BufferLen() != 0 {
		t.Fatalf("command during Hurt: state %s, buffer %d", m.Current(), m.BufferLen())
	}

	driver.completeCycle(t)
	if m.Current() != config.StateDead {
		t.Fatalf("state = %s, want %s", m.Current(), config.StateDead)
	}

	in.PressRight()
	m.Movement()
	if m.Current() != config.StateDead {
		t.Fatalf("movement during Dead changed state to %s", m.Current())
	}

	driver.completeCycle(t)
	if m.Current() != config.StateIdle {
		t.Fatalf("state = %s, want %s", m.Current(), config.StateIdle)
	}
}

func TestMachine_DriverCallOrderPerTransition(t *testing.T) {
	m, in, driver := newTestMachine(t)

	in.PressRight()
	m.Movement()
	m.HandleCommand(CommandJump)

	// Start enters Idle; each transition cancels the old tag on exit and
	// again on entry before the new cycle starts; offsets and velocities
	// always follow their cycle.
	want := strings.Join([]string{
		"cancel:player", "cycle:Idle",
		"cancel:player", "cancel:player", "cycle:Walk", "velocity",
		"cancel:player", "cancel:player", "cycle:Jump", "offset", "velocity",
	}, " ")
	if got := strings.Join(driver.ops, " "); got != want {
		t.Fatalf("driver ops:\n  got  %s\n  want %s", got, want)
	}
}

func TestNewMachine_Validation(t *testing.T) {
	input := NewInputState()
	driver := &recordingDriver{}
	rng := rand.New(rand.NewSource(1))

	if _, err := NewMachine(nil, driver, testProfiles(), rng); err == nil {
		t.Error("expected error for nil input")
	}
	if _, err := NewMachine(input, nil, testProfiles(), rng); err == nil {
		t.Error("expected error for nil driver")
	}
	if _, err := NewMachine(input, driver, testProfiles(), nil); err == nil {
		t.Error("expected error for nil rng")
	}

	missing := testProfiles()
	delete(missing, config.StateSpecial)
	if _, err := NewMachine(input, driver, missing, rng); err == nil {
		t.Error("expected error for missing profile")
	} else if !strings.Contains(err.Error(), config.StateSpecial.String()) {
		t.Errorf("error %q does not name the missing state", err)
	}

	zeroFPS := testProfiles()
	zeroFPS[config.StateWalk] = AnimationProfile{FPS: 0, FrameCount: 10}
	if _, err := NewMachine(input, driver, zeroFPS, rng); err == nil {
		t.Error("expected error for zero fps profile")
	}
}
