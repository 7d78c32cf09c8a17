package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// blip is a short sine tone with a linear fade-out, so consecutive steps
// don't click.
type blip struct {
	freq  float64
	sr    beep.SampleRate
	pos   int
	total int
}

func newBlip(sr beep.SampleRate, freq float64, d time.Duration) *blip {
	return &blip{freq: freq, sr: sr, total: sr.N(d)}
}

func (b *blip) Stream(samples [][2]float64) (int, bool) {
	if b.pos >= b.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if b.pos >= b.total {
			break
		}
		t := float64(b.pos) / float64(b.sr)
		env := 1 - float64(b.pos)/float64(b.total)
		v := math.Sin(2*math.Pi*b.freq*t) * env * 0.3
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
		n++
	}
	return n, true
}

func (b *blip) Err() error { return nil }
