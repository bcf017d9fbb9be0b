// Package hunter implements the pursuit agent: a patrol/chase/cooldown
// state machine with short-term memory of where it last saw its target.
package hunter

import (
	"math"

	"github.com/Vann06/gloamway/geom"
	"github.com/Vann06/gloamway/maze"
	"github.com/Vann06/gloamway/nav"
)

// State is the agent's behavioral mode.
type State uint8

const (
	Patrol State = iota
	Chase
	Cooldown
)

func (s State) String() string {
	switch s {
	case Patrol:
		return "patrol"
	case Chase:
		return "chase"
	case Cooldown:
		return "cooldown"
	}
	return "unknown"
}

// Config holds the tuning constants, fixed at construction.
type Config struct {
	FOV                float64 // full field of view in radians
	VisionRange        float64
	PatrolSpeed        float64
	ChaseSpeed         float64
	MemoryDuration     float64 // keep chasing this long after losing sight
	CooldownDuration   float64
	PathRecalcInterval float64
	Radius             float64

	ChaseTurnRate       float64 // rad/s while target is in sight
	SearchTurnRate      float64 // rad/s while heading to last-seen
	LungeRange          float64 // boost kicks in inside this distance
	LungeBoost          float64
	SearchSpeedFactor   float64 // of ChaseSpeed
	CooldownSpeedFactor float64 // of PatrolSpeed
	PatrolTurnPeriod    float64
	ArrivalRadius       float64 // close enough to the last-seen spot
}

// DefaultConfig mirrors the shipped tuning: a wide 120° FOV and a vision
// range of ~17 cells so the hunter picks the player up early.
func DefaultConfig() Config {
	return Config{
		FOV:                 math.Pi * 2.0 / 3.0,
		VisionRange:         1100,
		PatrolSpeed:         50,
		ChaseSpeed:          115,
		MemoryDuration:      5.0,
		CooldownDuration:    2.5,
		PathRecalcInterval:  0.25,
		Radius:              10,
		ChaseTurnRate:       2.8,
		SearchTurnRate:      2.6,
		LungeRange:          120,
		LungeBoost:          1.15,
		SearchSpeedFactor:   0.82,
		CooldownSpeedFactor: 0.6,
		PatrolTurnPeriod:    1.2,
		ArrivalRadius:       40,
	}
}

// Hunter owns the agent's pose and all behavioral state. Only Update
// mutates it; every other method is a read-only query except FacingLabel,
// which touches the presentational hysteresis value.
type Hunter struct {
	// Active gates the whole update; the hunter spawns mid-level.
	Active bool

	cfg   Config
	x, y  float64
	angle float64
	state State

	memory          float64 // remaining chase persistence after losing sight
	cooldown        float64
	patrolTurnTimer float64
	pathRecalcTimer float64

	lastSeenX, lastSeenY float64
	hasLastSeen          bool

	lastFacing Facing
}

// New places an inactive hunter at a world position.
func New(x, y, angle float64, cfg Config) *Hunter {
	return &Hunter{
		cfg:        cfg,
		x:          x,
		y:          y,
		angle:      geom.NormalizeAngle(angle),
		state:      Patrol,
		lastFacing: FaceFront,
	}
}

// Activate wakes the hunter at a world position.
func (h *Hunter) Activate(x, y float64) {
	h.x, h.y = x, y
	h.Active = true
}

func (h *Hunter) Pos() (x, y float64) { return h.x, h.y }
func (h *Hunter) Angle() float64      { return h.angle }
func (h *Hunter) State() State        { return h.state }
func (h *Hunter) Config() Config      { return h.cfg }

// IsChasing reports whether the hunter is in active pursuit.
func (h *Hunter) IsChasing() bool { return h.state == Chase }

// Sees reports whether the target at (tx, ty) is inside the vision range,
// inside the field of view (closed at the half-angle boundary), and on a
// clear line of sight. Pure query, shared by rendering and audio.
func (h *Hunter) Sees(g *maze.Grid, tx, ty float64) bool {
	vx := tx - h.x
	vy := ty - h.y
	if math.Hypot(vx, vy) > h.cfg.VisionRange {
		return false
	}
	ad := math.Abs(geom.NormalizeAngle(math.Atan2(vy, vx) - h.angle))
	if ad > h.cfg.FOV*0.5 {
		return false
	}
	return geom.LineOfSight(g, h.x, h.y, tx, ty)
}

// Update advances the state machine by dt. It is the only mutating entry
// point; the caller invokes it once per frame with the player's position.
func (h *Hunter) Update(g *maze.Grid, px, py, dt float64) {
	if !h.Active {
		return
	}

	seen := h.Sees(g, px, py)
	if seen {
		h.lastSeenX, h.lastSeenY = px, py
		h.hasLastSeen = true
		h.state = Chase
		h.memory = h.cfg.MemoryDuration
		h.cooldown = h.cfg.CooldownDuration // primed for when memory runs out
	} else {
		switch h.state {
		case Chase:
			h.memory -= dt
			if h.memory <= 0 {
				h.state = Cooldown
				h.cooldown = h.cfg.CooldownDuration
				h.hasLastSeen = false
			}
		case Cooldown:
			h.cooldown -= dt
			if h.cooldown <= 0 {
				h.state = Patrol
			}
		case Patrol:
		}
	}

	switch h.state {
	case Chase:
		if seen {
			h.chase(g, px, py, dt)
		} else if h.hasLastSeen {
			h.search(g, dt)
		}
	case Cooldown:
		h.patrol(g, dt, true)
	case Patrol:
		h.patrol(g, dt, false)
	}
}

// turnToward rotates the heading toward target at a capped angular rate.
func (h *Hunter) turnToward(target, rate, dt float64) {
	diff := geom.NormalizeAngle(target - h.angle)
	maxTurn := rate * dt
	if diff > maxTurn {
		diff = maxTurn
	}
	if diff < -maxTurn {
		diff = -maxTurn
	}
	h.angle = geom.NormalizeAngle(h.angle + diff)
}

func (h *Hunter) advance(g *maze.Grid, speed, dt float64) bool {
	dx := math.Cos(h.angle) * speed * dt
	dy := math.Sin(h.angle) * speed * dt
	var moved bool
	h.x, h.y, moved = geom.TryMove(g, h.cfg.Radius, h.x, h.y, dx, dy)
	return moved
}

// chase runs while the target is in direct sight: turn toward it and close
// in, with a small lunge boost at short range.
func (h *Hunter) chase(g *maze.Grid, px, py, dt float64) {
	h.turnToward(math.Atan2(py-h.y, px-h.x), h.cfg.ChaseTurnRate, dt)

	speed := h.cfg.ChaseSpeed
	dx := px - h.x
	dy := py - h.y
	if dx*dx+dy*dy < h.cfg.LungeRange*h.cfg.LungeRange {
		speed *= h.cfg.LungeBoost
	}
	h.advance(g, speed, dt)
}

// search steers toward the last-seen position using the pathfinder,
// re-planning only when the recalc timer elapses. Reaching the spot before
// memory expires drops the stale sighting.
func (h *Hunter) search(g *maze.Grid, dt float64) {
	dx := h.lastSeenX - h.x
	dy := h.lastSeenY - h.y
	if dx*dx+dy*dy < h.cfg.ArrivalRadius*h.cfg.ArrivalRadius {
		h.hasLastSeen = false // searched the spot, found nothing
		return
	}
	h.pathRecalcTimer -= dt
	if h.pathRecalcTimer <= 0 {
		h.pathRecalcTimer = h.cfg.PathRecalcInterval
		if nx, ny, ok := nav.NextStep(g, h.x, h.y, h.lastSeenX, h.lastSeenY); ok {
			h.turnToward(math.Atan2(ny, nx), h.cfg.SearchTurnRate, dt)
		}
		// unreachable: keep the current heading until the next recalc
	}
	h.advance(g, h.cfg.ChaseSpeed*h.cfg.SearchSpeedFactor, dt)
}

// patrol wanders forward, nudging the heading on a timer. The nudge is a
// deterministic function of the current cell so repeated runs match.
func (h *Hunter) patrol(g *maze.Grid, dt float64, slow bool) {
	speed := h.cfg.PatrolSpeed
	if slow {
		speed *= h.cfg.CooldownSpeedFactor
	}
	h.patrolTurnTimer -= dt
	if h.patrolTurnTimer <= 0 {
		h.patrolTurnTimer = h.cfg.PatrolTurnPeriod
		ci, cj := maze.CellIndex(h.x, h.y)
		h.angle = geom.NormalizeAngle(h.angle + 0.6 - 1.2*float64((ci^cj)&1))
	}
	if !h.advance(g, speed, dt) {
		// against a wall: turn harder and retry the heading sooner
		h.angle = geom.NormalizeAngle(h.angle + 0.5)
		if h.patrolTurnTimer > 0.2 {
			h.patrolTurnTimer = 0.2
		}
	}
}
