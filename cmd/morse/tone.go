package morse

import (
	"encoding/binary"
	"math"
)

const (
	sampleRate      = 44100
	samplesPerBlock = 100
	bytesPerSample  = 2
	amplitude       = 30000

	wpm = 10

	// DefaultOctave selects the tone: octave n puts n sine periods in one
	// block, so 2 is 882 Hz.
	DefaultOctave = 2

	// DefaultUnit is the dit length in blocks. PARIS is 50 units long, so
	// 10 wpm is 120 ms per unit, 5292 samples, rounded to whole blocks.
	DefaultUnit = (sampleRate*60/(50*wpm) + samplesPerBlock/2) / samplesPerBlock
)

// Timing holds every Morse duration as a number of blocks.
type Timing struct {
	Unit int
}

// DefaultTiming is 10 wpm at the reference sink configuration.
var DefaultTiming = Timing{Unit: DefaultUnit}

const wordGapUnits = 7

func (t Timing) Dot() int        { return t.Unit }
func (t Timing) Dash() int       { return 3 * t.Unit }
func (t Timing) ElementGap() int { return t.Unit }
func (t Timing) LetterGap() int  { return 3 * t.Unit }
func (t Timing) WordGap() int    { return wordGapUnits * t.Unit }

// Waveform is one block of tone and one block of silence, both
// samplesPerBlock mono signed 16-bit little-endian samples.
type Waveform struct {
	Tone    []byte
	Silence []byte
}

// NewWaveform precomputes a block holding octave full sine periods.
func NewWaveform(octave int) Waveform {
	tone := make([]byte, samplesPerBlock*bytesPerSample)
	for i := 0; i < samplesPerBlock; i++ {
		v := int16(math.Sin(2*math.Pi*float64(i*octave)/samplesPerBlock) * amplitude)
		binary.LittleEndian.PutUint16(tone[i*bytesPerSample:], uint16(v))
	}
	return Waveform{
		Tone:    tone,
		Silence: make([]byte, len(tone)),
	}
}

// Frequency is the pitch of the tone block in Hz.
func Frequency(octave int) float64 {
	return float64(octave) * sampleRate / samplesPerBlock
}
