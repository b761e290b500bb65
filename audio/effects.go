package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/fxi/framepusher/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	step      float64 // phase advance per sample
	phase     float64 // [0, 1)
	remaining int
	wave      WaveType
}

// NewOscillator creates a finite oscillator stream
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		step:      freq / float64(rate),
		remaining: rate.N(duration),
		wave:      wave,
	}
}

func (o *oscillator) value() float64 {
	switch o.wave {
	case WaveSquare:
		if o.phase < 0.5 {
			return 1
		}
		return -1
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * o.phase)
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.remaining <= 0 {
		return 0, false
	}
	for n < len(samples) && o.remaining > 0 {
		v := o.value()
		samples[n][0], samples[n][1] = v, v

		o.phase += o.step
		o.phase -= math.Floor(o.phase)
		o.remaining--
		n++
	}
	return n, true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release ramps over a fixed total length
type envelope struct {
	streamer beep.Streamer
	pos      int
	total    int
	attack   int
	release  int
}

// NewEnvelope wraps s with attack/release shaping; output stops after duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		total:    rate.N(duration),
		attack:   rate.N(attack),
		release:  rate.N(release),
	}
}

func (e *envelope) gain() float64 {
	g := 1.0
	if e.attack > 0 && e.pos < e.attack {
		g = float64(e.pos) / float64(e.attack)
	}
	if left := e.total - e.pos; e.release > 0 && left < e.release {
		g = math.Min(g, float64(left)/float64(e.release))
	}
	return g
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if left := e.total - e.pos; left <= 0 {
		return 0, false
	} else if left < len(samples) {
		samples = samples[:left]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; vol <= 0 is silent (log2(0) is -Inf)
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Sound effect generators

// CreateBumpSound generates a short tick; deeper frames in the chain sound lower
func CreateBumpSound(rate beep.SampleRate, depth int, vol float64) beep.Streamer {
	freq := constants.BumpBaseFreq * math.Pow(2, -float64(depth)/12)

	osc := NewOscillator(freq, constants.BumpSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.BumpSoundDuration, constants.BumpSoundAttack, constants.BumpSoundRelease, rate)

	return newVolume(shaped, vol*0.4)
}

// CreateWhooshSound generates a soft noise swell for drag release
func CreateWhooshSound(rate beep.SampleRate, vol float64) beep.Streamer {
	noise := NewOscillator(0, constants.WhooshSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, constants.WhooshSoundDuration, constants.WhooshSoundAttack, constants.WhooshSoundRelease, rate)

	return newVolume(shaped, vol*0.3)
}

// CreateChimeSound generates a two-partial ding when the chain comes to rest
func CreateChimeSound(rate beep.SampleRate, vol float64) (beep.Streamer, error) {
	n := rate.N(constants.ChimeSoundDuration)

	fund, err := generators.SineTone(rate, 660)
	if err != nil {
		return nil, err
	}
	over, err := generators.SineTone(rate, 1320)
	if err != nil {
		return nil, err
	}

	mixed := beep.Mix(
		newVolume(beep.Take(n, fund), 0.7),
		newVolume(beep.Take(n, over), 0.3),
	)
	shaped := NewEnvelope(mixed, constants.ChimeSoundDuration, constants.ChimeSoundAttack, constants.ChimeSoundRelease, rate)

	return newVolume(shaped, vol), nil
}
