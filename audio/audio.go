// Package audio plays the synthesized sound effects. All cues are raw PCM
// built at startup; a nil *Manager is valid and silently drops every call,
// which is how -mute works.
package audio

import (
	"bytes"
	"time"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/Vann06/gloamway/assets"
)

// Manager owns the audio context and the pre-rendered effect buffers.
type Manager struct {
	ctx *eaudio.Context

	orb    []byte
	caught []byte
	walk   []byte
	sprint []byte
	hunter []byte

	seenLoop *eaudio.Player

	lastHunterStep time.Time
	hunterStepGap  time.Duration
}

// NewManager builds the context and synthesizes every effect. Only one
// ebiten audio context may exist per process.
func NewManager() (*Manager, error) {
	ctx := eaudio.NewContext(assets.SampleRate)

	m := &Manager{
		ctx:           ctx,
		orb:           assets.OrbChime(),
		caught:        assets.CaughtSting(),
		walk:          assets.FootstepThud(false),
		sprint:        assets.FootstepThud(true),
		hunter:        assets.HunterStep(),
		hunterStepGap: 320 * time.Millisecond,
	}

	drone := assets.SeenDrone()
	loop := eaudio.NewInfiniteLoop(bytes.NewReader(drone), int64(len(drone)))
	p, err := ctx.NewPlayer(loop)
	if err != nil {
		return nil, err
	}
	m.seenLoop = p
	return m, nil
}

// play fires a one-shot cue on its own player so overlapping cues all
// trigger. Volume is clamped to [0, 1]; ebiten players reject anything
// outside that range.
func (m *Manager) play(b []byte, vol float64) {
	if m == nil || len(b) == 0 {
		return
	}
	if vol < 0 {
		vol = 0
	}
	if vol > 1 {
		vol = 1
	}
	p := m.ctx.NewPlayerFromBytes(b)
	p.SetVolume(vol)
	p.Play()
}

func (m *Manager) PlayOrb() {
	if m == nil {
		return
	}
	m.play(m.orb, 0.65)
}

func (m *Manager) PlayCaught() {
	if m == nil {
		return
	}
	m.play(m.caught, 1.0)
}

// PlayerStep plays one footstep; cadence is the caller's concern.
func (m *Manager) PlayerStep(sprint bool) {
	if m == nil {
		return
	}
	if sprint {
		m.play(m.sprint, 0.8)
		return
	}
	m.play(m.walk, 0.8)
}

// HunterStep plays the hunter's footfall at the given volume, rate limited
// so a fast hunter does not machine-gun the cue.
func (m *Manager) HunterStep(vol float64) {
	if m == nil {
		return
	}
	now := time.Now()
	if now.Sub(m.lastHunterStep) < m.hunterStepGap {
		return
	}
	m.lastHunterStep = now
	m.play(m.hunter, vol)
}

// StartSeenLoop begins the alarm pad if it is not already sounding.
func (m *Manager) StartSeenLoop() {
	if m == nil || m.seenLoop == nil || m.seenLoop.IsPlaying() {
		return
	}
	m.seenLoop.SetVolume(0.5)
	m.seenLoop.Play()
}

// StopSeenLoop pauses the alarm pad.
func (m *Manager) StopSeenLoop() {
	if m == nil || m.seenLoop == nil || !m.seenLoop.IsPlaying() {
		return
	}
	m.seenLoop.Pause()
}

// HunterStepVolume maps distance to loudness within the [0, 1] range the
// players accept: 450 units away is faint, 30 or closer is full volume.
func HunterStepVolume(dist float64) float64 {
	t := 1 - (dist-30)/(450-30)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return 0.15 + t*0.85
}
