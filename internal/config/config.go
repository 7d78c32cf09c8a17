package config

import (
	"image/color"
	"time"
)

const (
	WindowWidth  = 480
	WindowHeight = 720

	// Chain parameters
	Nodes = 5
	Lines = 4

	// Animation parameters
	ScGap        = 0.05
	ScDiv        = 0.51
	TickInterval = 50 * time.Millisecond

	// Stroke geometry, as divisors of the surface size
	StrokeFactor = 90
	SizeFactor   = 2.9

	// Sound
	SampleRate    = 44100
	BlipBaseFreq  = 440.0
	BlipFreqStep  = 110.0
	BlipDuration  = 60 * time.Millisecond
	SpeakerBuffer = time.Second / 20

	// Terminal host
	TermFrameInterval = 16 * time.Millisecond
	TermCellAspect    = 2.0
)

var (
	ForeColor = color.RGBA{R: 0x67, G: 0x3A, B: 0xB7, A: 0xFF} // #673AB7
	BackColor = color.RGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xFF} // #212121
)

// BackHex is BackColor for renderers that take colour strings.
const BackHex = "#212121"
