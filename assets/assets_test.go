package assets

import (
	"testing"

	"github.com/automoto/duelgrounds/config"
)

func TestMustLoadStages_Duelground(t *testing.T) {
	stages := NewStageLoader().MustLoadStages()
	if len(stages) != 1 {
		t.Fatalf("stages = %d, want 1", len(stages))
	}

	s := stages[0]
	if s.Width != 640 || s.Height != 480 {
		t.Errorf("stage size = %dx%d, want 640x480", s.Width, s.Height)
	}
	if s.PlayerSpawn.X != 160 || s.PlayerSpawn.Direction != config.DirectionRight {
		t.Errorf("player spawn = %+v, want x 160 facing right", s.PlayerSpawn)
	}
	if s.EnemySpawn.X != 480 || s.EnemySpawn.Direction != config.DirectionLeft {
		t.Errorf("enemy spawn = %+v, want x 480 facing left", s.EnemySpawn)
	}
	if s.PlayerSpawn.Y != s.Floor.Y || s.EnemySpawn.Y != s.Floor.Y {
		t.Errorf("spawns not on the floor line: player %v enemy %v floor %v",
			s.PlayerSpawn.Y, s.EnemySpawn.Y, s.Floor.Y)
	}
	if s.Floor.X != 0 || s.Floor.Width != 640 {
		t.Errorf("floor = %+v, want full-width strip", s.Floor)
	}
}
