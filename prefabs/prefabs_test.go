package prefabs

import (
	"math"
	"testing"
)

func TestLoadPlayerSpec(t *testing.T) {
	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("load player spec: %v", err)
	}
	if spec.WalkSpeed <= 0 || spec.SprintSpeed <= spec.WalkSpeed {
		t.Fatalf("implausible speeds: walk=%v sprint=%v", spec.WalkSpeed, spec.SprintSpeed)
	}
	if spec.Radius <= 0 {
		t.Fatalf("radius must be positive, got %v", spec.Radius)
	}
}

func TestHunterSpecConfig(t *testing.T) {
	spec, err := LoadHunterSpec()
	if err != nil {
		t.Fatalf("load hunter spec: %v", err)
	}
	cfg := spec.Config()
	if math.Abs(cfg.FOV-spec.FOVDegrees*math.Pi/180) > 1e-9 {
		t.Fatalf("fov not converted to radians: %v", cfg.FOV)
	}
	if cfg.ChaseSpeed <= cfg.PatrolSpeed {
		t.Fatalf("chase should outrun patrol: %v vs %v", cfg.ChaseSpeed, cfg.PatrolSpeed)
	}
}

func TestHunterSpecConfigZeroFallsBack(t *testing.T) {
	var empty HunterSpec
	cfg := empty.Config()
	if cfg.VisionRange == 0 || cfg.FOV == 0 || cfg.ChaseSpeed == 0 {
		t.Fatalf("empty spec must fall back to defaults, got %+v", cfg)
	}
}

func TestLoadLevelsSpec(t *testing.T) {
	spec, err := LoadLevelsSpec()
	if err != nil {
		t.Fatalf("load levels: %v", err)
	}
	if len(spec.Levels) < 3 {
		t.Fatalf("expected at least 3 levels, got %d", len(spec.Levels))
	}
	for _, lvl := range spec.Levels {
		if lvl.Map == "" {
			t.Fatalf("level %q has no map file", lvl.Name)
		}
		if lvl.HunterDelay <= 0 {
			t.Fatalf("level %q has no hunter delay", lvl.Name)
		}
	}
}

func TestEvalTuning(t *testing.T) {
	cases := []struct {
		name       string
		level      int
		cols, rows int
		orbs       int
		wantSpeed  float64
		wantVision float64
		wantOrbs   float64
	}{
		{"small first level", 0, 10, 10, 8, 0.9, 1.0, 1.0},
		{"large later level", 1, 30, 31, 50, 1.08, 1.1, 0.9},
		{"mid level", 2, 20, 20, 20, 1.16, 1.0, 1.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EvalTuning("tuning.tengo", tc.level, tc.cols, tc.rows, tc.orbs)
			if err != nil {
				t.Fatalf("eval: %v", err)
			}
			if math.Abs(got.SpeedScale-tc.wantSpeed) > 1e-9 {
				t.Errorf("speed scale: got %v, want %v", got.SpeedScale, tc.wantSpeed)
			}
			if math.Abs(got.VisionScale-tc.wantVision) > 1e-9 {
				t.Errorf("vision scale: got %v, want %v", got.VisionScale, tc.wantVision)
			}
			if math.Abs(got.OrbScale-tc.wantOrbs) > 1e-9 {
				t.Errorf("orb scale: got %v, want %v", got.OrbScale, tc.wantOrbs)
			}
		})
	}
}

func TestEvalTuningMissingScript(t *testing.T) {
	got, err := EvalTuning("no_such.tengo", 0, 10, 10, 5)
	if err == nil {
		t.Fatalf("expected error for missing script")
	}
	if got.SpeedScale != 1 || got.VisionScale != 1 || got.OrbScale != 1 {
		t.Fatalf("missing script must yield neutral tuning, got %+v", got)
	}
}
