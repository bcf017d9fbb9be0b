package assets

import "math"

// SampleRate is the shared rate for every synthesized effect and the audio
// context that plays them.
const SampleRate = 44100

// tone renders a sine at freq with an exponential decay envelope into
// 16-bit little-endian stereo PCM, the format ebiten's audio context plays
// directly.
func tone(freq, dur, vol, decay float64) []byte {
	n := int(dur * SampleRate)
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		env := math.Exp(-decay * t)
		v := math.Sin(2*math.Pi*freq*t) * vol * env
		s := int16(v * 20000)
		out[i*4] = byte(s)
		out[i*4+1] = byte(s >> 8)
		out[i*4+2] = byte(s)
		out[i*4+3] = byte(s >> 8)
	}
	return out
}

func mixTones(parts ...[]byte) []byte {
	var n int
	for _, p := range parts {
		if len(p) > n {
			n = len(p)
		}
	}
	out := make([]byte, n)
	for i := 0; i+3 < n; i += 4 {
		var l, r int32
		for _, p := range parts {
			if i+3 < len(p) {
				l += int32(int16(uint16(p[i]) | uint16(p[i+1])<<8))
				r += int32(int16(uint16(p[i+2]) | uint16(p[i+3])<<8))
			}
		}
		l = clamp16(l)
		r = clamp16(r)
		out[i] = byte(l)
		out[i+1] = byte(l >> 8)
		out[i+2] = byte(r)
		out[i+3] = byte(r >> 8)
	}
	return out
}

func clamp16(v int32) int32 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return v
}

// OrbChime is a short bright two-note pickup cue.
func OrbChime() []byte {
	a := tone(880, 0.22, 0.35, 14)
	b := tone(1320, 0.22, 0.25, 16)
	return mixTones(a, b)
}

// CaughtSting is the low dissonant hit played when the hunter reaches the
// player.
func CaughtSting() []byte {
	a := tone(110, 0.9, 0.5, 3)
	b := tone(117, 0.9, 0.45, 3)
	c := tone(55, 0.9, 0.4, 2)
	return mixTones(a, b, c)
}

// FootstepThud is a muffled short knock; sprint steps are pitched a touch
// higher.
func FootstepThud(sprint bool) []byte {
	f := 95.0
	if sprint {
		f = 120
	}
	return tone(f, 0.09, 0.5, 40)
}

// HunterStep is heavier and lower than the player's step.
func HunterStep() []byte {
	return mixTones(tone(60, 0.14, 0.7, 28), tone(48, 0.14, 0.5, 24))
}

// SeenDrone is one cycle of the alarm pad that loops while the hunter has
// line of sight. Its length is a whole number of periods so the loop seam
// is silent.
func SeenDrone() []byte {
	const freq = 220.0
	const cycles = 66
	dur := cycles / freq
	n := int(dur * SampleRate)
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		// slow tremolo over a fifth; one tremolo cycle per loop so the
		// envelope also meets itself at the seam
		v := (math.Sin(2*math.Pi*freq*t) + 0.6*math.Sin(2*math.Pi*freq*1.5*t)) * 0.18
		v *= 0.75 + 0.25*math.Sin(2*math.Pi*t/dur)
		s := int16(v * 20000)
		out[i*4] = byte(s)
		out[i*4+1] = byte(s >> 8)
		out[i*4+2] = byte(s)
		out[i*4+3] = byte(s >> 8)
	}
	return out
}
