package fighter

import (
	"math/rand"

	"github.com/automoto/duelgrounds/config"
)

// weightedChoice pairs a destination state with its selection weight.
type weightedChoice struct {
	to     config.StateID
	weight float64
}

// chooseWeighted samples one destination proportionally to the declared
// weights. Choices must be non-empty.
func chooseWeighted(rng *rand.Rand, choices []weightedChoice) config.StateID {
	totalWeight := 0.0
	for _, c := range choices {
		totalWeight += c.weight
	}

	roll := rng.Float64() * totalWeight
	cumulative := 0.0
	for _, c := range choices {
		cumulative += c.weight
		if roll < cumulative {
			return c.to
		}
	}

	return choices[len(choices)-1].to
}
