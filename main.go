package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	level := flag.Int("level", 0, "level index to start on")
	debug := flag.Bool("debug", false, "enable debug HUD and hot reload of prefabs/levels")
	mute := flag.Bool("mute", false, "disable all audio")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 800)
	ebiten.SetWindowTitle("gloamway")

	game := NewGame(*level, *debug, *mute)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
