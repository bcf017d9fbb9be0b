package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Vann06/gloamway/assets"
	"github.com/Vann06/gloamway/audio"
	"github.com/Vann06/gloamway/common"
	"github.com/Vann06/gloamway/hunter"
	"github.com/Vann06/gloamway/levels"
	"github.com/Vann06/gloamway/maze"
	"github.com/Vann06/gloamway/prefabs"
	"github.com/Vann06/gloamway/render"
)

type gameState int

const (
	stateMenu gameState = iota
	statePlaying
	stateEscaping
	stateWon
	stateCaught
)

// caughtRadius ends the run when the hunter gets this close.
const caughtRadius = 26.0

type Game struct {
	debug  bool
	paused bool
	quit   bool

	state    gameState
	levelIdx int

	levelsSpec *prefabs.LevelsSpec
	playerSpec *prefabs.PlayerSpec
	hunterSpec *prefabs.HunterSpec

	grid   *maze.Grid
	player *Player
	hunt   *hunter.Hunter
	orbs   []Orb
	score  int

	hunterSpawnTimer float64
	levelTime        float64
	caughtPlayed     bool

	fb      *render.Framebuffer
	fbImage *ebiten.Image
	zbuf    []float64
	tex     *assets.Manager
	snd     *audio.Manager

	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher
	rng     *rand.Rand
}

func NewGame(startLevel int, debug, mute bool) *Game {
	g := &Game{
		debug:    debug,
		state:    stateMenu,
		levelIdx: startLevel,
		fb:       render.NewFramebuffer(common.BaseWidth, common.BaseHeight),
		fbImage:  ebiten.NewImage(common.BaseWidth, common.BaseHeight),
		zbuf:     make([]float64, common.BaseWidth),
		tex:      assets.NewManager(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	g.pauseUI = NewPauseUI(g)
	g.loadSpecs()

	if !mute {
		snd, err := audio.NewManager()
		if err != nil {
			log.Printf("audio unavailable: %v", err)
		} else {
			g.snd = snd
		}
	}

	if debug {
		w, err := prefabs.NewWatcher("prefabs", "levels")
		if err != nil {
			log.Printf("hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g
}

func (g *Game) loadSpecs() {
	lv, err := prefabs.LoadLevelsSpec()
	if err != nil {
		log.Fatalf("load levels spec: %v", err)
	}
	g.levelsSpec = lv
	if g.levelIdx < 0 || g.levelIdx >= len(lv.Levels) {
		g.levelIdx = 0
	}

	ps, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatalf("load player spec: %v", err)
	}
	g.playerSpec = ps

	hs, err := prefabs.LoadHunterSpec()
	if err != nil {
		log.Fatalf("load hunter spec: %v", err)
	}
	g.hunterSpec = hs
}

func (g *Game) level() prefabs.LevelSpec {
	return g.levelsSpec.Levels[g.levelIdx]
}

func (g *Game) startLevel() {
	cfg := g.level()

	grid, err := levels.Load(cfg.Map)
	if err != nil {
		log.Printf("load map %s: %v", cfg.Map, err)
		return
	}
	g.grid = grid

	count := desiredOrbCount(grid, cfg.OrbFraction, 1)
	tuning := prefabs.Tuning{SpeedScale: 1, VisionScale: 1, OrbScale: 1}
	if g.levelsSpec.Script != "" {
		tn, err := prefabs.EvalTuning(g.levelsSpec.Script, g.levelIdx, grid.Width(), grid.Height(), count)
		if err != nil {
			log.Printf("tuning script: %v", err)
		} else {
			tuning = tn
		}
	}
	g.orbs = spawnOrbs(grid, desiredOrbCount(grid, cfg.OrbFraction, tuning.OrbScale), g.rng)
	g.score = 0

	px, py := maze.CellCenter(1, 1)
	g.player = NewPlayer(px, py, 0, g.playerSpec)

	hcfg := g.hunterSpec.Config()
	hcfg.PatrolSpeed *= tuning.SpeedScale
	hcfg.ChaseSpeed *= tuning.SpeedScale
	hcfg.VisionRange *= tuning.VisionScale
	hx, hy := maze.CellCenter(2, 2)
	g.hunt = hunter.New(hx, hy, 0, hcfg)

	g.fb.SetBackground(g.fogColor())

	g.hunterSpawnTimer = cfg.HunterDelay
	g.levelTime = 0
	g.caughtPlayed = false
	g.state = statePlaying
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.drainWatcher()

	dt := 1.0 / float64(ebiten.TPS())
	enter := inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)

	switch g.state {
	case stateMenu:
		if enter {
			g.startLevel()
		}
		return nil
	case stateWon:
		if enter {
			g.levelIdx = (g.levelIdx + 1) % len(g.levelsSpec.Levels)
			g.state = stateMenu
		}
		return nil
	case stateCaught:
		if enter {
			g.state = stateMenu
		}
		return nil
	}

	// playing or escaping from here on
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.levelTime += dt

	touchedExit := g.player.Update(g.grid, dt, g.snd)

	g.updateHunter(dt)
	g.collectOrbs()

	if g.state == statePlaying && activeOrbs(g.orbs) == 0 {
		g.state = stateEscaping
	}
	if g.state == stateEscaping && touchedExit {
		g.snd.StopSeenLoop()
		g.state = stateWon
	}

	if g.hunt.Active {
		hx, hy := g.hunt.Pos()
		if math.Hypot(hx-g.player.X, hy-g.player.Y) < caughtRadius {
			g.snd.StopSeenLoop()
			g.state = stateCaught
			if !g.caughtPlayed {
				g.snd.PlayCaught()
				g.caughtPlayed = true
			}
		}
	}
	return nil
}

// updateHunter handles the delayed spawn and per-frame agent update. The
// hunter enters the level when its delay runs out, when the level has gone
// on long enough, or once half the orbs are collected, whichever first.
func (g *Game) updateHunter(dt float64) {
	if !g.hunt.Active {
		g.hunterSpawnTimer -= dt
		total := len(g.orbs)
		timeGate := g.level().HunterGate > 0 && g.levelTime >= g.level().HunterGate
		progressGate := total > 0 && g.score >= total/2
		if g.hunterSpawnTimer <= 0 || timeGate || progressGate {
			hx, hy, ok := farSpawnCell(g.grid, g.player.X, g.player.Y, 10)
			if !ok {
				hx, hy = maze.CellCenter(2, 2)
			}
			g.hunt.Activate(hx, hy)
		}
		return
	}

	g.hunt.Update(g.grid, g.player.X, g.player.Y, dt)

	hx, hy := g.hunt.Pos()
	g.snd.HunterStep(audio.HunterStepVolume(math.Hypot(hx-g.player.X, hy-g.player.Y)))

	if g.hunt.Sees(g.grid, g.player.X, g.player.Y) {
		g.snd.StartSeenLoop()
	} else {
		g.snd.StopSeenLoop()
	}
}

func (g *Game) collectOrbs() {
	for i := range g.orbs {
		o := &g.orbs[i]
		if !o.Active {
			continue
		}
		dx := o.X - g.player.X
		dy := o.Y - g.player.Y
		if dx*dx+dy*dy <= pickupRadius*pickupRadius {
			o.Active = false
			g.score++
			g.snd.PlayOrb()
		}
	}
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("reload: %s", name)
			reload = true
		case err := <-g.watcher.Errors:
			log.Printf("watch: %v", err)
		default:
			if reload {
				g.loadSpecs()
			}
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.state == stateMenu {
		g.drawMenu(screen)
		return
	}

	g.drawWorld()
	g.fb.Blit(g.fbImage)
	screen.DrawImage(g.fbImage, nil)

	g.drawHUD(screen)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) drawWorld() {
	seen := g.hunt.Active && g.hunt.Sees(g.grid, g.player.X, g.player.Y)
	hx, hy := g.hunt.Pos()
	dist := math.Inf(1)
	if g.hunt.Active {
		dist = math.Hypot(hx-g.player.X, hy-g.player.Y)
	}
	near := dist < 200
	g.tex.SetAlertMode(seen || near)

	g.fb.Clear()
	cam := render.Camera{X: g.player.X, Y: g.player.Y, Angle: g.player.Angle, FOV: g.player.FOV}
	render.DrawWorld(g.fb, g.grid, cam, g.tex, g.zbuf, g.level().Brightness, g.fogColor())

	var sprites []render.Sprite
	for i := range g.orbs {
		if g.orbs[i].Active {
			sprites = append(sprites, render.Sprite{X: g.orbs[i].X, Y: g.orbs[i].Y, Key: assets.KeyOrb, Size: 28, VOff: 0.10})
		}
	}
	if g.hunt.Active {
		sprites = append(sprites, render.Sprite{
			X:    hx,
			Y:    hy,
			Key:  facingKey(g.hunt.FacingLabel(g.player.X, g.player.Y)),
			Size: 90,
			VOff: 0.08,
		})
	}
	render.DrawSprites(g.fb, cam, g.tex, g.zbuf, sprites)

	// proximity panic blur
	if g.hunt.Active {
		tClose := common.Clamp(1-dist/200, 0, 1)
		tFar := common.Clamp(1-dist/600, 0, 1)
		t := common.Clamp(0.5*tFar+0.5*tClose, 0, 1)
		if t > 0.05 {
			strength := math.Min(0.35+0.45*t, 0.8)
			radius := math.Min(0.60+0.25*t, 0.85)
			g.fb.CircularBlur(strength, 1, radius)
		}
	}

	g.applyFlashlight(seen, dist)

	if g.level().Minimap {
		view := render.MinimapView{
			PlayerX:      g.player.X,
			PlayerY:      g.player.Y,
			PlayerAngle:  g.player.Angle,
			HunterX:      hx,
			HunterY:      hy,
			HunterActive: g.hunt.Active,
		}
		for i := range g.orbs {
			if g.orbs[i].Active {
				view.Orbs = append(view.Orbs, [2]float64{g.orbs[i].X, g.orbs[i].Y})
			}
		}
		render.DrawMinimap(g.fb, g.grid, view)
	}
}

// applyFlashlight darkens the frame outside a cone of light pushed ahead
// of the viewer. Being seen shakes the beam and tightens it with
// proximity.
func (g *Game) applyFlashlight(seen bool, dist float64) {
	lookX := math.Cos(g.player.Angle)
	lookY := math.Sin(g.player.Angle)
	const offset = 45.0

	shake := 0.0
	if seen {
		shake += 6
	}
	if g.hunt.IsChasing() {
		shake += 4
	}
	shake += 5 * common.Clamp(1-dist/500, 0, 1)
	tt := g.levelTime
	shakeX := math.Sin(tt*29)*shake + math.Cos(tt*21)*shake*0.55
	shakeY := math.Sin(tt*31) * shake * 0.9

	cx := float64(g.fb.W)*0.5 + lookX*offset + shakeX
	cy := float64(g.fb.H)*0.5 + lookY*offset*0.45 + shakeY

	proximity := common.Clamp(1-dist/600, 0, 1)
	const baseR = 150.0
	const minR = 70.0
	t := 0.0
	if seen {
		t = common.Clamp(0.6+0.6*proximity, 0, 1)
	}
	r := baseR*(1-t) + minR*t
	g.fb.Flashlight(cx, cy, r, 18, 0.7)
}

// fogColor is the level's distance tint, near-black when unset.
func (g *Game) fogColor() color.NRGBA {
	if fc := g.level().FogColor; fc != nil {
		if c, ok := fc.Color.(color.NRGBA); ok {
			return c
		}
	}
	return color.NRGBA{R: 8, G: 8, B: 12, A: 255}
}

func facingKey(f hunter.Facing) byte {
	switch f {
	case hunter.FaceLeft:
		return assets.KeyLeft
	case hunter.FaceRight:
		return assets.KeyRight
	case hunter.FaceBack:
		return assets.KeyBack
	}
	return assets.KeyFront
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	screen.Fill(menuBackground)
	drawCenteredText(screen, "G L O A M W A Y", common.BaseHeight/4, menuTitleColor)
	label := fmt.Sprintf("Play  -  %s", g.level().Name)
	drawCenteredText(screen, label, common.BaseHeight/2, menuTextColor)
	drawCenteredText(screen, "ENTER to descend", common.BaseHeight/2+24, menuDimColor)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  state %d", ebiten.ActualFPS(), g.state))
	}

	remaining := activeOrbs(g.orbs)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Orbs: %d / %d", g.score, g.score+remaining), 8, common.BaseHeight-20)
	if g.player.Sprinting {
		ebitenutil.DebugPrintAt(screen, "SPRINT", 8, common.BaseHeight-36)
	}
	if (g.state == statePlaying || g.state == stateEscaping) &&
		g.hunt.Active && g.hunt.Sees(g.grid, g.player.X, g.player.Y) {
		drawCenteredText(screen, "SEEN", 30, caughtTextColor)
	}

	switch g.state {
	case stateEscaping:
		drawCenteredText(screen, "Every orb is yours. Find the pale doorway.", 12, menuTextColor)
	case stateWon:
		drawOverlay(screen, 160)
		drawCenteredText(screen, "You slipped out. ENTER: next level", common.BaseHeight/2, menuTitleColor)
	case stateCaught:
		drawOverlay(screen, 200)
		drawCenteredText(screen, "It found you. ENTER: menu", common.BaseHeight/2, caughtTextColor)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
