// Package audio plays synthesized sound effects for simulation events.
// Sounds are generated on the fly with beep; no asset files are needed.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a fixed-length tone, optionally sweeping in pitch.
type oscillator struct {
	from, to float64 // Start and end frequency in Hz
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a tone that sweeps linearly from one frequency to another.
func NewOscillator(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(from*1000 + to))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.from + (o.to-o.from)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with the given attack and release ramps.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if releaseStart := e.totalSamples - e.releaseSamples; e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; 0 or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is an enveloped oscillator.
func tone(from, to float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(from, to, d, wave, rate)
	return NewEnvelope(osc, d, 5*time.Millisecond, d/2, rate)
}

// CreateFlapSound is a short upward chirp.
func CreateFlapSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(tone(420, 780, 70*time.Millisecond, WaveSquare, rate), 0.25)
}

// CreateScoreSound is a two-note chime.
func CreateScoreSound(rate beep.SampleRate) beep.Streamer {
	n1 := tone(987.77, 987.77, 80*time.Millisecond, WaveSine, rate)
	n2 := tone(1318.51, 1318.51, 160*time.Millisecond, WaveSine, rate)
	return newVolume(beep.Seq(n1, n2), 0.4)
}

// CreateHitSound is a noise thump layered over a low tone.
func CreateHitSound(rate beep.SampleRate) beep.Streamer {
	noise := tone(0, 0, 90*time.Millisecond, WaveNoise, rate)
	thump := tone(140, 60, 90*time.Millisecond, WaveSine, rate)
	return newVolume(beep.Mix(newVolume(noise, 0.5), thump), 0.5)
}

// CreateDieSound is a falling whistle played after the hit.
func CreateDieSound(rate beep.SampleRate) beep.Streamer {
	gap := beep.Silence(rate.N(120 * time.Millisecond))
	fall := tone(880, 220, 450*time.Millisecond, WaveSine, rate)
	return newVolume(beep.Seq(gap, fall), 0.35)
}

// GetSoundEffect returns the streamer for a single event flag, or nil for
// events without a sound.
func GetSoundEffect(ev flappy.Event, rate beep.SampleRate) beep.Streamer {
	switch ev {
	case flappy.EventFlap:
		return CreateFlapSound(rate)
	case flappy.EventScore:
		return CreateScoreSound(rate)
	case flappy.EventHit:
		return CreateHitSound(rate)
	case flappy.EventDie:
		return CreateDieSound(rate)
	default:
		return nil
	}
}
