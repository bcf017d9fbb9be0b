package prefabs

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Vann06/gloamway/hunter"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name         string  `yaml:"name"`
	WalkSpeed    float64 `yaml:"walk_speed"`
	SprintSpeed  float64 `yaml:"sprint_speed"`
	TurnSpeed    float64 `yaml:"turn_speed"`
	Radius       float64 `yaml:"radius"`
	StrideWalk   float64 `yaml:"stride_walk"`
	StrideSprint float64 `yaml:"stride_sprint"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type HunterSpec struct {
	Name              string  `yaml:"name"`
	FOVDegrees        float64 `yaml:"fov_degrees"`
	VisionRange       float64 `yaml:"vision_range"`
	PatrolSpeed       float64 `yaml:"patrol_speed"`
	ChaseSpeed        float64 `yaml:"chase_speed"`
	MemorySeconds     float64 `yaml:"memory_seconds"`
	CooldownSeconds   float64 `yaml:"cooldown_seconds"`
	PathRecalcSeconds float64 `yaml:"path_recalc_seconds"`
	Radius            float64 `yaml:"radius"`
	ChaseTurnRate     float64 `yaml:"chase_turn_rate"`
	SearchTurnRate    float64 `yaml:"search_turn_rate"`
	LungeRange        float64 `yaml:"lunge_range"`
	LungeBoost        float64 `yaml:"lunge_boost"`
	SearchSpeedFactor float64 `yaml:"search_speed_factor"`
	CooldownSpeedFact float64 `yaml:"cooldown_speed_factor"`
	PatrolTurnPeriod  float64 `yaml:"patrol_turn_period"`
	ArrivalRadius     float64 `yaml:"arrival_radius"`
}

func LoadHunterSpec() (*HunterSpec, error) {
	spec, err := LoadSpec[HunterSpec]("hunter.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Config converts the file values into the agent's tuning struct. Zero
// fields fall back to the built-in defaults so a partial yaml still works.
func (s *HunterSpec) Config() hunter.Config {
	cfg := hunter.DefaultConfig()
	if s == nil {
		return cfg
	}
	setIf(&cfg.FOV, s.FOVDegrees*math.Pi/180)
	setIf(&cfg.VisionRange, s.VisionRange)
	setIf(&cfg.PatrolSpeed, s.PatrolSpeed)
	setIf(&cfg.ChaseSpeed, s.ChaseSpeed)
	setIf(&cfg.MemoryDuration, s.MemorySeconds)
	setIf(&cfg.CooldownDuration, s.CooldownSeconds)
	setIf(&cfg.PathRecalcInterval, s.PathRecalcSeconds)
	setIf(&cfg.Radius, s.Radius)
	setIf(&cfg.ChaseTurnRate, s.ChaseTurnRate)
	setIf(&cfg.SearchTurnRate, s.SearchTurnRate)
	setIf(&cfg.LungeRange, s.LungeRange)
	setIf(&cfg.LungeBoost, s.LungeBoost)
	setIf(&cfg.SearchSpeedFactor, s.SearchSpeedFactor)
	setIf(&cfg.CooldownSpeedFactor, s.CooldownSpeedFact)
	setIf(&cfg.PatrolTurnPeriod, s.PatrolTurnPeriod)
	setIf(&cfg.ArrivalRadius, s.ArrivalRadius)
	return cfg
}

func setIf(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}

type LevelSpec struct {
	Name        string     `yaml:"name"`
	Map         string     `yaml:"map"`
	HunterDelay float64    `yaml:"hunter_delay"`
	HunterGate  float64    `yaml:"hunter_gate"` // seconds the hunter also waits for
	OrbFraction float64    `yaml:"orb_fraction"`
	Minimap     bool       `yaml:"minimap"`
	Brightness  float64    `yaml:"brightness"`
	FogColor    *YAMLColor `yaml:"fog_color"`
}

type LevelsSpec struct {
	Script string      `yaml:"script"` // difficulty tuning, optional
	Levels []LevelSpec `yaml:"levels"`
}

func LoadLevelsSpec() (*LevelsSpec, error) {
	spec, err := LoadSpec[LevelsSpec]("levels.yaml")
	if err != nil {
		return nil, err
	}
	if len(spec.Levels) == 0 {
		return nil, fmt.Errorf("prefabs: levels.yaml declares no levels")
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
