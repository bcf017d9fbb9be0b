package prefabs

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Tuning is the per-level difficulty adjustment produced by the tuning
// script. Scales of 1 leave the prefab values untouched.
type Tuning struct {
	SpeedScale  float64
	VisionScale float64
	OrbScale    float64
}

func neutralTuning() Tuning {
	return Tuning{SpeedScale: 1, VisionScale: 1, OrbScale: 1}
}

// EvalTuning runs the difficulty script against a level's shape. The script
// sees the maze dimensions, the orb count, and the level index, and assigns
// speed_scale / vision_scale / orb_scale globals. Missing globals keep
// their neutral value.
func EvalTuning(name string, level, cols, rows, orbs int) (Tuning, error) {
	out := neutralTuning()

	src, err := LoadScript(name)
	if err != nil {
		return out, fmt.Errorf("prefabs: load script %s: %w", name, err)
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	_ = script.Add("level", level)
	_ = script.Add("cols", cols)
	_ = script.Add("rows", rows)
	_ = script.Add("orbs", orbs)
	_ = script.Add("speed_scale", 1.0)
	_ = script.Add("vision_scale", 1.0)
	_ = script.Add("orb_scale", 1.0)

	compiled, err := script.Run()
	if err != nil {
		return out, fmt.Errorf("prefabs: run script %s: %w", name, err)
	}

	out.SpeedScale = scaleOrDefault(compiled, "speed_scale")
	out.VisionScale = scaleOrDefault(compiled, "vision_scale")
	out.OrbScale = scaleOrDefault(compiled, "orb_scale")
	return out, nil
}

func scaleOrDefault(compiled *tengo.Compiled, name string) float64 {
	v := compiled.Get(name)
	if v == nil {
		return 1
	}
	f := v.Float()
	if f <= 0 {
		return 1
	}
	return f
}
