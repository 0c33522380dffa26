package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/zombierun/prefabs"
)

func TestSineWave(t *testing.T) {
	zombie := NewSineWave(prefabs.DefaultDefinitions().Waves.Zombie)
	vulture := NewSineWave(prefabs.DefaultDefinitions().Waves.Vulture)

	cases := []struct {
		name  string
		curve SineWave
		t     float64
		want  float64
	}{
		{"zombie_start", zombie, 0, 0},
		{"zombie_trough", zombie, 15, 0},
		{"zombie_first_peak", zombie, 7.5, 3 * math.Pow(0.5, 1.6)},
		{"zombie_second_peak", zombie, 22.5, 3 * math.Pow(1.5, 1.6)},
		{"vulture_first_peak_floors", vulture, 17.5, 0},
		{"vulture_second_peak", vulture, 52.5, 1},
		{"negative_time", zombie, -3, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, c.curve.Target(c.t), 1e-9)
		})
	}

	assert.Zero(t, SineWave{}.Target(10), "zero period is inert")
}

func TestScriptWaveMatchesBuiltin(t *testing.T) {
	defs := prefabs.DefaultDefinitions()
	zombieWave := defs.Waves.Zombie
	zombieWave.Script = "zombie_wave.tengo"

	for _, w := range []prefabs.Wave{zombieWave, defs.Waves.Vulture} {
		t.Run(w.Script, func(t *testing.T) {
			curve, err := LoadCurve(w, prefabs.LoadScript)
			require.NoError(t, err)
			script, ok := curve.(*ScriptWave)
			require.True(t, ok)

			builtin := NewSineWave(w)
			for x := 0.0; x < 140; x += 0.37 {
				require.InDelta(t, builtin.Target(x), script.Target(x), 1e-9, "t=%v", x)
			}
			assert.NoError(t, script.Err())
		})
	}
}

func TestLoadCurveBuiltin(t *testing.T) {
	curve, err := LoadCurve(prefabs.DefaultDefinitions().Waves.Zombie, nil)
	require.NoError(t, err)
	assert.IsType(t, SineWave{}, curve)
}

func TestScriptWaveErrors(t *testing.T) {
	wave := prefabs.DefaultDefinitions().Waves.Zombie
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"syntax", "target := (", "compile"},
		{"no_target", "x := t", "does not assign target"},
		{"string_target", `target := "many"`, "want a number"},
		{"runtime", "f := 1\ntarget := f()", "run:"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewScriptWave(c.name, []byte(c.src), wave)
			assert.ErrorContains(t, err, c.want)
		})
	}

	_, err := LoadCurve(prefabs.Wave{Period: 1, Script: "absent.tengo"}, prefabs.LoadScript)
	assert.Error(t, err)
}

func TestScriptWaveInt(t *testing.T) {
	sw, err := NewScriptWave("int", []byte("target := 2"), prefabs.Wave{Period: 10})
	require.NoError(t, err)
	assert.Equal(t, 2.0, sw.Target(5))
	assert.Zero(t, sw.Target(0))
}

func TestScriptWaveFallsBackOnError(t *testing.T) {
	wave := prefabs.DefaultDefinitions().Waves.Zombie
	sw, err := NewScriptWave("late_failure", []byte(`target := t < 20 ? 1 : "many"`), wave)
	require.NoError(t, err)

	assert.Equal(t, 1.0, sw.Target(10))
	assert.NoError(t, sw.TakeErr())

	builtin := NewSineWave(wave)
	assert.InDelta(t, builtin.Target(30), sw.Target(30), 1e-9)
	require.ErrorContains(t, sw.TakeErr(), "want a number")
	assert.NoError(t, sw.TakeErr(), "a failure is handed out once")

	sw.Target(31)
	assert.NoError(t, sw.TakeErr(), "still the same run of failures")
	assert.Error(t, sw.Err())

	assert.Equal(t, 1.0, sw.Target(5))
	assert.NoError(t, sw.Err())

	sw.Target(40)
	assert.Error(t, sw.TakeErr(), "failing again after recovery is reported")
}
