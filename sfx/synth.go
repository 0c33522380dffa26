// Package sfx synthesizes the game's sound effects and plays them back
// through ebiten's audio context.
package sfx

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate matches the audio context the game opens.
const SampleRate beep.SampleRate = 44100

var format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

type wave uint8

const (
	waveSine wave = iota
	waveSquare
	waveSaw
)

// note is one enveloped tone of a sound.
type note struct {
	wave     wave
	freq     float64
	duration time.Duration
}

func (n note) streamer() (beep.Streamer, error) {
	var (
		s   beep.Streamer
		err error
	)
	switch n.wave {
	case waveSquare:
		s, err = generators.SquareTone(SampleRate, n.freq)
	case waveSaw:
		s, err = generators.SawtoothTone(SampleRate, n.freq)
	default:
		s, err = generators.SineTone(SampleRate, n.freq)
	}
	if err != nil {
		return nil, fmt.Errorf("sfx: %v Hz: %w", n.freq, err)
	}
	total := SampleRate.N(n.duration)
	return &decay{streamer: beep.Take(total, s), total: total}, nil
}

// decay fades the wrapped streamer linearly to silence over total samples.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.streamer.Stream(samples)
	for i := range samples[:n] {
		vol := 0.0
		if d.position < d.total {
			vol = 1 - float64(d.position)/float64(d.total)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error {
	return d.streamer.Err()
}

// Synthesize renders notes back to back at volume into 16-bit little
// endian stereo PCM.
func Synthesize(volume float64, notes ...note) ([]byte, error) {
	seq := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		s, err := n.streamer()
		if err != nil {
			return nil, err
		}
		seq = append(seq, s)
	}
	gain := &effects.Gain{Streamer: beep.Seq(seq...), Gain: volume - 1}
	return render(gain)
}

func render(s beep.Streamer) ([]byte, error) {
	var out []byte
	buf := make([][2]float64, 512)
	frame := make([]byte, format.Width())
	for {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			format.EncodeSigned(frame, sample)
			out = append(out, frame...)
		}
		if !ok {
			break
		}
	}
	return out, s.Err()
}
