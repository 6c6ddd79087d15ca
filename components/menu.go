package components

import "github.com/yohamta/donburi"

// MainMenuOption represents the available main menu selections
type MainMenuOption int

const (
	MainMenuStart MainMenuOption = iota
	MainMenuSetup
	MainMenuExit
)

// MenuData stores the current state of the main menu
type MenuData struct {
	SelectedIndex int // Index into config.Menu.MenuOptions
}

// Selected returns the option under the cursor.
func (m *MenuData) Selected() MainMenuOption {
	return MainMenuOption(m.SelectedIndex)
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
