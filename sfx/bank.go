package sfx

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"

	"github.com/milk9111/zombierun/ecs/component"
)

// Bank holds one ready player per sound.
type Bank struct {
	players [soundCount]*audio.Player
	log     *zap.Logger
}

// NewBank synthesizes every sound at volume and wraps it in a player of ctx.
// ctx must run at SampleRate.
func NewBank(ctx *audio.Context, volume float64, log *zap.Logger) (*Bank, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if ctx.SampleRate() != int(SampleRate) {
		return nil, fmt.Errorf("sfx: audio context runs at %d Hz, want %d", ctx.SampleRate(), SampleRate)
	}
	b := &Bank{log: log}
	for s := Sound(0); s < soundCount; s++ {
		pcm, err := Synthesize(volume, scores[s]...)
		if err != nil {
			return nil, fmt.Errorf("sfx: %s: %w", s, err)
		}
		b.players[s] = ctx.NewPlayerFromBytes(pcm)
	}
	return b, nil
}

// Play restarts s from the beginning.
func (b *Bank) Play(s Sound) {
	if b == nil || s >= soundCount {
		return
	}
	p := b.players[s]
	if err := p.Rewind(); err != nil {
		b.log.Warn("rewind sound", zap.Stringer("sound", s), zap.Error(err))
		return
	}
	p.Play()
}

func (b *Bank) PlayReport(r component.Report) {
	for _, s := range ForReport(r) {
		b.Play(s)
	}
}
