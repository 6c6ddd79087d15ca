package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space holds the shared resolv space the stage and fighters live in.
var Space = donburi.NewComponentType[resolv.Space]()
