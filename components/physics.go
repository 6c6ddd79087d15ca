package components

import "github.com/yohamta/donburi"

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PhysicsData carries the continuous velocity granted by the active
// animation cycle. Tag records which cycle registered it so a cancel can
// stop the motion it started.
type PhysicsData struct {
	Velocity Vector
	Tag      string
}

var Physics = donburi.NewComponentType[PhysicsData]()
