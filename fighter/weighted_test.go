package fighter

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/duelgrounds/config"
)

func TestChooseWeighted_SingleChoice(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	choices := []weightedChoice{{to: config.StateIdle, weight: 100}}

	for i := 0; i < 10; i++ {
		if got := chooseWeighted(rng, choices); got != config.StateIdle {
			t.Fatalf("chooseWeighted = %s, want %s", got, config.StateIdle)
		}
	}
}

func TestChooseWeighted_FrequenciesFollowWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	choices := []weightedChoice{
		{to: config.StateWalk, weight: 75},
		{to: config.StateRun, weight: 25},
	}

	const draws = 2000
	walks := 0
	for i := 0; i < draws; i++ {
		if chooseWeighted(rng, choices) == config.StateWalk {
			walks++
		}
	}

	got := float64(walks) / draws
	if math.Abs(got-0.75) > 0.05 {
		t.Errorf("P(walk) = %.3f, want 0.75 +/- 0.05", got)
	}
}
