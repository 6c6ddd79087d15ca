package config

import "github.com/yohamta/donburi/ecs"

// Default is the single render layer the game draws on.
const Default ecs.LayerID = 0
