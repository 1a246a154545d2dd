package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/config"
	"github.com/yohamta/donburi"
)

func CreateSettings(w donburi.World, t config.Tuning) *donburi.Entry {
	settings := archetypes.Settings.Spawn(w)
	components.Settings.SetValue(settings, components.SettingsData{Tuning: t})
	return settings
}
