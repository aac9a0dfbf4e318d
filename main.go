package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/galaga/pkg/app"
)

var (
	verbose    = flag.Bool("verbose", false, "详细日志")
	mute       = flag.Bool("mute", false, "禁用音频")
	configPath = flag.String("config", "", "玩法配置文件路径（YAML），为空则使用内置默认值")
)

func main() {
	flag.Parse()

	game, err := app.NewApp(app.Config{
		Verbose:            *verbose,
		Mute:               *mute,
		GameplayConfigPath: *configPath,
	})
	if err != nil {
		log.Fatal(err)
	}

	cfg := game.GameplayConfig()
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Galaga")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
