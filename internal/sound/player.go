package sound

import (
	"fmt"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/ladder-rot-expand/internal/config"
)

// Player plays a blip per completed node step. The zero value is silent;
// Init opens the speaker.
type Player struct {
	sr       beep.SampleRate
	initDone bool
}

// Init opens the audio device. Failure is not fatal for callers: an
// uninitialised player ignores Play.
func (p *Player) Init() error {
	if p.initDone {
		return nil
	}
	sr := beep.SampleRate(config.SampleRate)
	if err := speaker.Init(sr, sr.N(config.SpeakerBuffer)); err != nil {
		return fmt.Errorf("sound: init speaker: %w", err)
	}
	p.sr = sr
	p.initDone = true
	return nil
}

// Freq returns the blip pitch for a node, rising along the chain.
func Freq(node int) float64 {
	return config.BlipBaseFreq + float64(node)*config.BlipFreqStep
}

// Play sounds the blip for node.
func (p *Player) Play(node int) {
	if !p.initDone {
		return
	}
	speaker.Play(newBlip(p.sr, Freq(node), config.BlipDuration))
}

// Close releases the audio device.
func (p *Player) Close() {
	if !p.initDone {
		return
	}
	speaker.Close()
	p.initDone = false
}
