package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
)

const defaultVolumeHeight = 1.0

// LoadLayout parses a TMX file into a scene layout. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func LoadLayout(fsys fs.FS, tmxPath string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: tile size %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	halfW := float64(levelMap.Width) / 2
	halfD := float64(levelMap.Height) / 2

	layout := &Layout{
		Name: strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Bounds: gamemath.Bounds{
			MinX: -halfW, MaxX: halfW,
			MinZ: -halfD, MaxZ: halfD,
		},
	}

	toWorld := func(px, py float64) (float64, float64) {
		return px/tileW - halfW, py/tileH - halfD
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupBuildings, GroupTerrain:
			for _, o := range og.Objects {
				x0, z0 := toWorld(o.X, o.Y)
				x1, z1 := toWorld(o.X+o.Width, o.Y+o.Height)
				base := o.Properties.GetFloat("base")
				height := o.Properties.GetFloat("height")
				if height == 0 {
					height = defaultVolumeHeight
				}
				v := Volume{
					Name: o.Name,
					Box: gamemath.Box{
						Min: mgl64.Vec3{x0, base, z0},
						Max: mgl64.Vec3{x1, base + height, z1},
					},
				}
				if og.Name == GroupBuildings {
					layout.Buildings = append(layout.Buildings, v)
				} else {
					layout.Plateaus = append(layout.Plateaus, v)
				}
			}
		case GroupSpawn:
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			x, z := toWorld(o.X, o.Y)
			layout.Spawn = mgl64.Vec3{x, 0, z}
		}
	}

	// Sort left-to-right for a stable registration order
	sort.SliceStable(layout.Buildings, func(i, j int) bool {
		return layout.Buildings[i].Box.Min.X() < layout.Buildings[j].Box.Min.X()
	})

	return layout, nil
}

// LoadAllLayouts discovers all .tmx files in dir within fsys, loads each, and
// returns a map keyed by stem name plus a sorted list of names.
func LoadAllLayouts(fsys fs.FS, dir string) (map[string]*Layout, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	layouts := make(map[string]*Layout, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		layout, err := LoadLayout(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		layouts[layout.Name] = layout
		names = append(names, layout.Name)
	}

	sort.Strings(names)
	return layouts, names, nil
}
