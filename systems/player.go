package systems

import (
	"github.com/automoto/duelgrounds/components"
	cfg "github.com/automoto/duelgrounds/config"
	"github.com/automoto/duelgrounds/fighter"
	"github.com/automoto/duelgrounds/tags"
	"github.com/yohamta/donburi/ecs"
)

// commandActions pairs the input actions that queue fighter commands with
// the command each maps to.
var commandActions = []struct {
	action  cfg.ActionID
	command fighter.Command
}{
	{cfg.ActionJump, fighter.CommandJump},
	{cfg.ActionAttack1, fighter.CommandAttack1},
	{cfg.ActionAttack2, fighter.CommandAttack2},
	{cfg.ActionSpecial, fighter.CommandSpecial},
}

// UpdatePlayer forwards this frame's input edges to the player's machine.
// Held keys are latched into the shared InputState first, so every guard
// evaluated afterwards sees the same snapshot the events were made from.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	input := getOrCreateInput(ecs)
	f := components.Fighter.Get(playerEntry)

	left := GetAction(input, cfg.ActionMoveLeft)
	right := GetAction(input, cfg.ActionMoveRight)
	run := GetAction(input, cfg.ActionRunModifier)

	if left.JustPressed {
		f.Input.PressLeft()
	}
	if left.JustReleased {
		f.Input.ReleaseLeft()
	}
	if right.JustPressed {
		f.Input.PressRight()
	}
	if right.JustReleased {
		f.Input.ReleaseRight()
	}
	f.Input.SetShift(run.Pressed)

	// Movement guards re-run on any held-key change; the steady state is
	// absorbed by the machine, so this never restarts a cycle.
	if left.JustPressed || left.JustReleased ||
		right.JustPressed || right.JustReleased ||
		run.JustPressed || run.JustReleased {
		f.Machine.Movement()
	}

	for _, ca := range commandActions {
		if GetAction(input, ca.action).JustPressed {
			f.Machine.HandleCommand(ca.command)
		}
	}
}
