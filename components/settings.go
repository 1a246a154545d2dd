package components

import (
	"github.com/automoto/thirdperson/config"
	"github.com/yohamta/donburi"
)

// SettingsData carries the tuning and the frame delta to every system.
type SettingsData struct {
	Tuning config.Tuning
	Delta  float64 // seconds
}

var Settings = donburi.NewComponentType[SettingsData]()
