// Package fighter implements the state machines that drive the duel: a
// guard-gated deterministic machine for the player and a weighted-random
// one for the enemy. The package knows nothing about the engine; sprites
// are driven through the AnimationDriver interface.
package fighter

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/automoto/duelgrounds/config"
)

// event discriminates what is being asked of the machine.
type event int

const (
	// eventMovement re-evaluates the held movement keys.
	eventMovement event = iota
	// eventAction executes the pending command.
	eventAction
	// eventResume returns from a finished action to a movement state.
	eventResume
)

// guard gates a transition on the current input state.
type guard func(in *InputState) bool

// transition is one row of a state's outgoing table. Rows are checked in
// order; the first row whose event and guard both match wins, and an
// event with no matching row is absorbed without a state change.
type transition struct {
	on    event
	guard guard
	to    config.StateID
}

func guardMoveNoShift(in *InputState) bool {
	return in.Moving() && !in.ShiftHeld()
}

func guardMoveShiftForward(in *InputState) bool {
	return in.Moving() && in.ShiftHeld() && in.Forward()
}

func guardMoveShift(in *InputState) bool {
	return in.Moving() && in.ShiftHeld()
}

func guardMoveBackward(in *InputState) bool {
	return in.Moving() && !in.Forward()
}

func guardStopped(in *InputState) bool {
	return !in.Moving()
}

// desiredIs builds a guard that passes when the held keys resolve to
// exactly state. The three desired movement states partition the input
// space, so a resume always finds a row.
func desiredIs(state config.StateID) guard {
	return func(in *InputState) bool {
		return in.DesiredMovementState() == state
	}
}

// pendingIs builds a guard that matches one pending command.
func pendingIs(want Command) guard {
	return func(in *InputState) bool {
		cmd, ok := in.PendingCommand()
		return ok && cmd == want
	}
}

// pendingJumpForward gates jumps from Idle and Walk: jumping is a
// forward-only move.
func pendingJumpForward(in *InputState) bool {
	cmd, ok := in.PendingCommand()
	return ok && cmd == CommandJump && in.Forward()
}

// playerStates is every state the player machine can occupy. NewMachine
// refuses to build a machine whose profile set does not cover all of
// them.
var playerStates = []config.StateID{
	config.StateIdle,
	config.StateIdle2,
	config.StateWalk,
	config.StateRun,
	config.StateJump,
	config.StateAttack1,
	config.StateAttack2,
	config.StateSpecial,
	config.StateHurt,
	config.StateDead,
}

// playerIdleRoll is the fidget roll made each time the Idle cycle
// completes: mostly keep idling, occasionally play the Idle_2 variation.
var playerIdleRoll = []weightedChoice{
	{to: config.StateIdle2, weight: 10},
	{to: config.StateIdle, weight: 90},
}

var playerTransitions = buildPlayerTransitions()

func buildPlayerTransitions() map[config.StateID][]transition {
	attackRows := []transition{
		{on: eventAction, guard: pendingIs(CommandAttack1), to: config.StateAttack1},
		{on: eventAction, guard: pendingIs(CommandAttack2), to: config.StateAttack2},
		{on: eventAction, guard: pendingIs(CommandSpecial), to: config.StateSpecial},
	}

	resumeRows := []transition{
		{on: eventResume, guard: desiredIs(config.StateRun), to: config.StateRun},
		{on: eventResume, guard: desiredIs(config.StateWalk), to: config.StateWalk},
		{on: eventResume, guard: desiredIs(config.StateIdle), to: config.StateIdle},
	}

	return map[config.StateID][]transition{
		config.StateIdle: append([]transition{
			{on: eventMovement, guard: guardMoveNoShift, to: config.StateWalk},
			{on: eventMovement, guard: guardMoveShiftForward, to: config.StateRun},
			// Shift held while facing backward still only walks.
			{on: eventMovement, guard: guardMoveShift, to: config.StateWalk},
			{on: eventAction, guard: pendingJumpForward, to: config.StateJump},
		}, attackRows...),
		config.StateWalk: append([]transition{
			{on: eventMovement, guard: guardMoveShiftForward, to: config.StateRun},
			{on: eventMovement, guard: guardStopped, to: config.StateIdle},
			{on: eventAction, guard: pendingJumpForward, to: config.StateJump},
		}, attackRows...),
		config.StateRun: append([]transition{
			{on: eventMovement, guard: guardMoveNoShift, to: config.StateWalk},
			// Facing flipped mid-run drops to Walk.
			{on: eventMovement, guard: guardMoveBackward, to: config.StateWalk},
			{on: eventMovement, guard: guardStopped, to: config.StateIdle},
			// Running already implies facing forward, so Jump carries
			// no facing guard here.
			{on: eventAction, guard: pendingIs(CommandJump), to: config.StateJump},
		}, attackRows...),
		// Action states only leave through resume or the buffer chain.
		config.StateJump:    resumeRows,
		config.StateAttack1: resumeRows,
		config.StateAttack2: resumeRows,
		config.StateSpecial: resumeRows,
		// Idle_2, Hurt and Dead advance on cycle completion only; every
		// event is absorbed while they play.
	}
}

// Machine is the player's state machine. All methods are synchronous:
// key handlers feed Movement and HandleCommand, the animation driver
// feeds completion callbacks, and every transition settles before the
// call returns.
type Machine struct {
	current     config.StateID
	input       *InputState
	driver      AnimationDriver
	profiles    ProfileSet
	rng         *rand.Rand
	buffer      ActionBuffer
	transitions map[config.StateID][]transition
	started     bool
}

// NewMachine builds a player machine over the given collaborators. The
// profile set must cover every player state; a hole in it is a setup
// error, not something to discover mid-duel.
func NewMachine(input *InputState, driver AnimationDriver, profiles ProfileSet, rng *rand.Rand) (*Machine, error) {
	if input == nil {
		return nil, errors.New("fighter: nil input state")
	}
	if driver == nil {
		return nil, errors.New("fighter: nil animation driver")
	}
	if rng == nil {
		return nil, errors.New("fighter: nil rng")
	}
	if err := profiles.Validate(playerStates); err != nil {
		return nil, fmt.Errorf("fighter: %w", err)
	}
	return &Machine{
		current:     config.StateIdle,
		input:       input,
		driver:      driver,
		profiles:    profiles,
		rng:         rng,
		transitions: playerTransitions,
	}, nil
}

// Start enters the initial Idle state and begins its animation cycle.
// Calling Start again is a no-op.
func (m *Machine) Start() {
	if m.started {
		return
	}
	m.started = true
	m.enterState(m.current)
}

// Current returns the active state.
func (m *Machine) Current() config.StateID {
	return m.current
}

// Buffered returns the queued commands oldest first.
func (m *Machine) Buffered() []Command {
	return m.buffer.Commands()
}

// BufferLen returns the number of queued commands.
func (m *Machine) BufferLen() int {
	return m.buffer.Len()
}

// Movement re-evaluates the movement guards against the input state.
// The input system fires this on every movement key edge. When the
// guards pick the state the machine is already in, the event is
// absorbed, which keeps repeated edges from restarting the Walk and Run
// cycles.
func (m *Machine) Movement() {
	m.fire(eventMovement)
}

// HandleCommand executes or buffers a discrete action command. While a
// non-interruptible action is playing, the command lands in the FIFO
// buffer. Otherwise it becomes the pending command and the action event
// fires immediately; a command whose guard fails, a backward jump for
// example, is absorbed.
func (m *Machine) HandleCommand(cmd Command) {
	if IsActionState(m.current) {
		m.buffer.Push(cmd)
		return
	}
	m.input.SetPendingCommand(cmd)
	m.fire(eventAction)
}

// Injure knocks the fighter from Idle into the Hurt, Dead, Idle
// sequence. Outside Idle it is absorbed.
func (m *Machine) Injure() {
	if m.current != config.StateIdle {
		return
	}
	m.transitionTo(config.StateHurt)
}

// fire walks the current state's rows and takes the first transition
// matching ev whose guard passes. It reports whether a transition ran.
func (m *Machine) fire(ev event) bool {
	for _, tr := range m.transitions[m.current] {
		if tr.on != ev || !tr.guard(m.input) {
			continue
		}
		m.transitionTo(tr.to)
		return true
	}
	return false
}

// transitionTo runs the full exit and enter sequence into next.
func (m *Machine) transitionTo(next config.StateID) {
	m.exitState()
	m.current = next
	m.enterState(next)
}

// enterState runs the on-enter sequence every state shares: consume the
// pending command (action states only), cancel any cycle still tagged
// to this fighter, start the new cycle with a facing snapshot, then
// apply the state's one-shot offset and continuous velocity.
func (m *Machine) enterState(state config.StateID) {
	if IsActionState(state) {
		m.input.TakePendingCommand()
	}

	profile := m.profiles[state]
	direction := m.input.Direction()

	m.driver.Cancel(PlayerTag)
	m.driver.StartCycle(CycleRequest{
		State:      state,
		Profile:    profile,
		Direction:  direction,
		OnComplete: m.completionFor(state),
		Tag:        PlayerTag,
	})

	if profile.OffsetX != 0 || profile.OffsetY != 0 {
		m.driver.ApplyOffset(profile.OffsetX, profile.OffsetY)
	}
	if profile.VelX != 0 || profile.VelY != 0 {
		m.driver.ApplyVelocity(profile.VelX*float64(direction), profile.VelY, PlayerTag)
	}
}

// exitState cancels the departing state's cycle and velocity.
func (m *Machine) exitState() {
	m.driver.Cancel(PlayerTag)
}

// completionFor returns the hook the driver calls each time state's
// cycle finishes a loop.
func (m *Machine) completionFor(state config.StateID) func() {
	switch {
	case IsActionState(state):
		return m.actionComplete
	case state == config.StateIdle:
		return m.idleComplete
	case state == config.StateIdle2:
		return func() { m.transitionTo(config.StateIdle) }
	case state == config.StateHurt:
		return func() { m.transitionTo(config.StateDead) }
	case state == config.StateDead:
		return func() { m.transitionTo(config.StateIdle) }
	default:
		// Walk and Run loop natively; completion only re-checks the
		// movement guards.
		return func() { m.fire(eventMovement) }
	}
}

// idleComplete rolls the idle fidget. Re-picking Idle keeps the current
// cycle running instead of restarting it.
func (m *Machine) idleComplete() {
	next := chooseWeighted(m.rng, playerIdleRoll)
	if next == m.current {
		return
	}
	m.transitionTo(next)
}

// actionComplete runs when an action state finishes a loop. A buffered
// command chains straight into its action state, never passing through
// a movement state in between; that gap is where the old sliding glitch
// lived. With an empty buffer the machine resumes to whatever movement
// state the held keys ask for, then pumps the buffer once in case a
// command arrived during the resume.
func (m *Machine) actionComplete() {
	if cmd, ok := m.buffer.Pop(); ok {
		m.input.SetPendingCommand(cmd)
		m.transitionTo(cmd.TargetState())
		return
	}
	if m.fire(eventResume) {
		m.pumpBuffer()
	}
}

// pumpBuffer fires the next buffered command through the guarded action
// event.
func (m *Machine) pumpBuffer() {
	cmd, ok := m.buffer.Pop()
	if !ok {
		return
	}
	m.input.SetPendingCommand(cmd)
	m.fire(eventAction)
}
