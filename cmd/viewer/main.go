package main

import (
	"flag"
	"log"

	"github.com/automoto/thirdperson/assets"
	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/fonts"
	"github.com/automoto/thirdperson/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(levelPath, tuningPath string) (*Game, error) {
	if err := fonts.LoadFont(fonts.Regular, goregular.TTF); err != nil {
		return nil, err
	}
	if err := fonts.LoadFontWithSize(fonts.Title, goregular.TTF, 24); err != nil {
		return nil, err
	}
	if err := fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 10); err != nil {
		return nil, err
	}

	return &Game{scene: scenes.NewViewerScene(levelPath, tuningPath)}, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.Viewer.Width, config.Viewer.Height
}

func main() {
	tuningPath := flag.String("tuning", "", "tuning YAML file, watched for changes")
	levelPath := flag.String("level", assets.DefaultLevelPath, "bundled TMX layout")
	flag.Parse()

	game, err := NewGame(*levelPath, *tuningPath)
	if err != nil {
		log.Fatal(err)
	}
	if c, ok := game.scene.(interface{ Close() }); ok {
		defer c.Close()
	}

	ebiten.SetWindowSize(config.Viewer.Width, config.Viewer.Height)
	ebiten.SetWindowTitle("thirdperson viewer")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
