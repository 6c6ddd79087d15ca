package fighter

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/automoto/duelgrounds/config"
)

// enemyStates is every state the enemy machine can occupy. The enemy
// never gets hurt in this demo, so Hurt and Dead are not part of its
// state set.
var enemyStates = []config.StateID{
	config.StateIdle,
	config.StateIdle2,
	config.StateWalk,
	config.StateRun,
	config.StateJump,
	config.StateAttack1,
	config.StateAttack2,
	config.StateSpecial,
}

// enemyAttackRoll is the outgoing mix shared by Attack_1, Attack_2 and
// Jump.
var enemyAttackRoll = []weightedChoice{
	{to: config.StateAttack1, weight: 10},
	{to: config.StateAttack2, weight: 10},
	{to: config.StateSpecial, weight: 10},
	{to: config.StateRun, weight: 15},
	{to: config.StateWalk, weight: 25},
	{to: config.StateIdle, weight: 30},
}

// enemyRolls holds the weighted outgoing table rolled each time a
// state's cycle completes. Weights per state sum to 100, so they read
// directly as percentages.
var enemyRolls = map[config.StateID][]weightedChoice{
	config.StateIdle: {
		{to: config.StateAttack1, weight: 5},
		{to: config.StateAttack2, weight: 5},
		{to: config.StateIdle2, weight: 10},
		{to: config.StateRun, weight: 15},
		{to: config.StateSpecial, weight: 5},
		{to: config.StateWalk, weight: 20},
		{to: config.StateIdle, weight: 40},
	},
	config.StateIdle2: {
		{to: config.StateIdle, weight: 100},
	},
	config.StateWalk: {
		{to: config.StateAttack1, weight: 5},
		{to: config.StateAttack2, weight: 10},
		{to: config.StateSpecial, weight: 5},
		{to: config.StateRun, weight: 25},
		{to: config.StateWalk, weight: 35},
		{to: config.StateIdle, weight: 15},
	},
	config.StateRun: {
		{to: config.StateJump, weight: 20},
		{to: config.StateRun, weight: 40},
		{to: config.StateWalk, weight: 20},
		{to: config.StateIdle, weight: 20},
	},
	config.StateJump:    enemyAttackRoll,
	config.StateAttack1: enemyAttackRoll,
	config.StateAttack2: enemyAttackRoll,
	config.StateSpecial: {
		{to: config.StateWalk, weight: 20},
		{to: config.StateIdle, weight: 80},
	},
}

// EnemyMachine drives the AI fighter. It takes no input at all: every
// time a cycle completes it rolls the current state's weighted outgoing
// table and moves on. Facing is fixed at spawn.
type EnemyMachine struct {
	current   config.StateID
	driver    AnimationDriver
	profiles  ProfileSet
	rng       *rand.Rand
	direction int
	rollCount int
	started   bool
}

// NewEnemyMachine builds an enemy machine facing the given direction.
// The profile set must cover every enemy state.
func NewEnemyMachine(driver AnimationDriver, profiles ProfileSet, rng *rand.Rand, direction int) (*EnemyMachine, error) {
	if driver == nil {
		return nil, errors.New("fighter: nil animation driver")
	}
	if rng == nil {
		return nil, errors.New("fighter: nil rng")
	}
	if direction != config.DirectionLeft && direction != config.DirectionRight {
		return nil, fmt.Errorf("fighter: invalid direction %d", direction)
	}
	if err := profiles.Validate(enemyStates); err != nil {
		return nil, fmt.Errorf("fighter: %w", err)
	}
	return &EnemyMachine{
		current:   config.StateIdle,
		driver:    driver,
		profiles:  profiles,
		rng:       rng,
		direction: direction,
	}, nil
}

// Start enters the initial Idle state and begins its animation cycle.
// Calling Start again is a no-op.
func (m *EnemyMachine) Start() {
	if m.started {
		return
	}
	m.started = true
	m.enterState(m.current)
}

// Current returns the active state.
func (m *EnemyMachine) Current() config.StateID {
	return m.current
}

// Direction returns the fixed facing chosen at spawn.
func (m *EnemyMachine) Direction() int {
	return m.direction
}

// Rolls returns how many weighted rolls the machine has made. The debug
// overlay shows it.
func (m *EnemyMachine) Rolls() int {
	return m.rollCount
}

// cycleComplete rolls the current state's outgoing table. Re-picking
// the current state keeps its cycle looping instead of restarting it.
func (m *EnemyMachine) cycleComplete() {
	m.rollCount++
	next := chooseWeighted(m.rng, enemyRolls[m.current])
	if next == m.current {
		return
	}
	m.driver.Cancel(EnemyTag)
	m.current = next
	m.enterState(next)
}

// enterState mirrors the player machine's on-enter sequence, minus the
// pending command handling the enemy does not have.
func (m *EnemyMachine) enterState(state config.StateID) {
	profile := m.profiles[state]

	m.driver.Cancel(EnemyTag)
	m.driver.StartCycle(CycleRequest{
		State:      state,
		Profile:    profile,
		Direction:  m.direction,
		OnComplete: m.cycleComplete,
		Tag:        EnemyTag,
	})

	if profile.OffsetX != 0 || profile.OffsetY != 0 {
		m.driver.ApplyOffset(profile.OffsetX, profile.OffsetY)
	}
	if profile.VelX != 0 || profile.VelY != 0 {
		m.driver.ApplyVelocity(profile.VelX*float64(m.direction), profile.VelY, EnemyTag)
	}
}
