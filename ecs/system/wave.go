package system

import (
	"fmt"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/zombierun/prefabs"
)

// Curve maps elapsed seconds to the target live count of a category.
type Curve interface {
	Target(t float64) float64
}

// SineWave is f(t) = ((sin((t - p/4)·2π/p) + 1)/2) · (t/p)^e scaled by
// MaxCount. It oscillates with period p and trends upward.
type SineWave struct {
	Period   float64
	Exponent float64
	MaxCount float64
	Quantize bool
}

func NewSineWave(w prefabs.Wave) SineWave {
	return SineWave{Period: w.Period, Exponent: w.Exponent, MaxCount: w.MaxCount, Quantize: w.Quantize}
}

func (s SineWave) Target(t float64) float64 {
	if s.Period <= 0 || t <= 0 {
		return 0
	}
	swing := (math.Sin((t-s.Period/4)*2*math.Pi/s.Period) + 1) / 2
	target := swing * math.Pow(t/s.Period, s.Exponent) * s.MaxCount
	if s.Quantize {
		target = math.Floor(target)
	}
	return target
}

// ScriptWave evaluates a tengo script that reads t, period, exponent and
// max_count and assigns target. The script is compiled once and rerun on
// every evaluation. Any run error falls back to the builtin curve with the
// same parameters.
type ScriptWave struct {
	name     string
	compiled *tengo.Compiled
	fallback SineWave

	err        error
	unreported bool
}

func NewScriptWave(name string, src []byte, w prefabs.Wave) (*ScriptWave, error) {
	script := tengo.NewScript(src)
	globals := []struct {
		name  string
		value any
	}{
		{"t", 0.0},
		{"period", w.Period},
		{"exponent", w.Exponent},
		{"max_count", w.MaxCount},
	}
	for _, g := range globals {
		if err := script.Add(g.name, g.value); err != nil {
			return nil, fmt.Errorf("wave %s: add %s: %w", name, g.name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("wave %s: compile: %w", name, err)
	}
	sw := &ScriptWave{name: name, compiled: compiled, fallback: NewSineWave(w)}
	if _, err := sw.eval(sw.fallback.Period); err != nil {
		return nil, err
	}
	return sw, nil
}

func (s *ScriptWave) Target(t float64) float64 {
	if t <= 0 {
		return 0
	}
	target, err := s.eval(t)
	if err != nil {
		if s.err == nil {
			s.unreported = true
		}
		s.err = err
		return s.fallback.Target(t)
	}
	s.err = nil
	if s.fallback.Quantize {
		target = math.Floor(target)
	}
	return target
}

// Err returns the error of the last evaluation, if it failed.
func (s *ScriptWave) Err() error {
	return s.err
}

// TakeErr returns the error that started the current run of failed
// evaluations, once. It returns nil while the script keeps failing after
// that and again once it recovers.
func (s *ScriptWave) TakeErr() error {
	if !s.unreported {
		return nil
	}
	s.unreported = false
	return s.err
}

func (s *ScriptWave) eval(t float64) (float64, error) {
	if err := s.compiled.Set("t", t); err != nil {
		return 0, fmt.Errorf("wave %s: %w", s.name, err)
	}
	if err := s.compiled.Run(); err != nil {
		return 0, fmt.Errorf("wave %s: run: %w", s.name, err)
	}
	if !s.compiled.IsDefined("target") {
		return 0, fmt.Errorf("wave %s: script does not assign target", s.name)
	}
	v := s.compiled.Get("target")
	switch v.ValueType() {
	case "int", "float":
		return v.Float(), nil
	default:
		return 0, fmt.Errorf("wave %s: target is %s, want a number", s.name, v.ValueType())
	}
}

// LoadCurve builds the curve configured for a wave: the named script when
// one is set, the builtin sine wave otherwise.
func LoadCurve(w prefabs.Wave, load func(name string) ([]byte, error)) (Curve, error) {
	if w.Script == "" {
		return NewSineWave(w), nil
	}
	src, err := load(w.Script)
	if err != nil {
		return nil, fmt.Errorf("wave %s: %w", w.Script, err)
	}
	return NewScriptWave(w.Script, src, w)
}
