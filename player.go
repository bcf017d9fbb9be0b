package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Vann06/gloamway/audio"
	"github.com/Vann06/gloamway/geom"
	"github.com/Vann06/gloamway/maze"
	"github.com/Vann06/gloamway/prefabs"
)

// Player is the first-person viewer. Movement is WASD relative to the
// facing, arrows turn, shift sprints.
type Player struct {
	X, Y      float64
	Angle     float64
	FOV       float64
	Sprinting bool

	spec *prefabs.PlayerSpec

	// footstep cadence: world distance walked since the last step sound
	stepAccum float64
	wasMoving bool

	lastMouseX int
	mouseReady bool
}

// mouseSensitivity converts horizontal cursor movement to radians.
const mouseSensitivity = 0.0032

func NewPlayer(x, y, angle float64, spec *prefabs.PlayerSpec) *Player {
	return &Player{
		X:     x,
		Y:     y,
		Angle: geom.NormalizeAngle(angle),
		FOV:   math.Pi / 2,
		spec:  spec,
	}
}

// Update applies one frame of input, resolves collision, and triggers
// footstep cues. It reports whether the player now stands on the exit cell.
func (p *Player) Update(g *maze.Grid, dt float64, snd *audio.Manager) bool {
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		p.Angle = geom.NormalizeAngle(p.Angle - p.spec.TurnSpeed*dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		p.Angle = geom.NormalizeAngle(p.Angle + p.spec.TurnSpeed*dt)
	}

	// mouse look: horizontal delta only, first frame just seeds the origin
	mx, _ := ebiten.CursorPosition()
	if p.mouseReady {
		p.Angle = geom.NormalizeAngle(p.Angle + float64(mx-p.lastMouseX)*mouseSensitivity)
	}
	p.lastMouseX = mx
	p.mouseReady = true

	fwdX := math.Cos(p.Angle)
	fwdY := math.Sin(p.Angle)
	rightX := -fwdY
	rightY := fwdX

	var dirX, dirY float64
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		dirX += fwdX
		dirY += fwdY
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		dirX -= fwdX
		dirY -= fwdY
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		dirX += rightX
		dirY += rightY
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		dirX -= rightX
		dirY -= rightY
	}

	moving := false
	if l := math.Hypot(dirX, dirY); l > 1e-4 {
		dirX /= l
		dirY /= l
		moving = true
	}

	p.Sprinting = ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	speed := p.spec.WalkSpeed
	if p.Sprinting {
		speed = p.spec.SprintSpeed
	}

	ox, oy := p.X, p.Y
	p.X, p.Y, _ = geom.TryMove(g, p.spec.Radius, p.X, p.Y, dirX*speed*dt, dirY*speed*dt)

	p.stepSounds(moving, math.Hypot(p.X-ox, p.Y-oy), snd)

	ci, cj := maze.CellIndex(p.X, p.Y)
	return g.At(ci, cj) == maze.Exit
}

// stepSounds plays a footstep immediately when movement starts, then one
// per stride of actual distance covered.
func (p *Player) stepSounds(moving bool, walked float64, snd *audio.Manager) {
	if !moving {
		p.wasMoving = false
		p.stepAccum = 0
		return
	}
	if !p.wasMoving {
		snd.PlayerStep(p.Sprinting)
		p.stepAccum = 0
		p.wasMoving = true
		return
	}
	stride := p.spec.StrideWalk
	if p.Sprinting {
		stride = p.spec.StrideSprint
	}
	p.stepAccum += walked
	if p.stepAccum >= stride {
		snd.PlayerStep(p.Sprinting)
		p.stepAccum -= stride
	}
}
