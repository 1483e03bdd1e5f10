package audio

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is shared by every synthesized sound and the output context
const SampleRate = beep.SampleRate(44100)

// waveType selects the oscillator shape
type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveNoise
)

// oscillator produces a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	position int
	duration int
	wave     waveType
	rng      *rand.Rand
}

func newOscillator(freq float64, d time.Duration, wave waveType) *oscillator {
	return &oscillator{
		freq:     freq,
		duration: SampleRate.N(d),
		wave:     wave,
		// Fixed seed so rendered sounds are identical between runs
		rng: rand.New(rand.NewSource(1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case waveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(SampleRate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over its last release
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   SampleRate.N(attack),
		release:  SampleRate.N(release),
		total:    SampleRate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, false
		}
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales a stream linearly; 0 silences it
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is one step of a melody; freq 0 is a rest
type note struct {
	freq float64
	beat float64
}

func melody(notes []note, beat time.Duration, wave waveType, vol float64) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		d := time.Duration(n.beat * float64(beat))
		if n.freq == 0 {
			parts = append(parts, beep.Silence(SampleRate.N(d)))
			continue
		}
		osc := newOscillator(n.freq, d, wave)
		parts = append(parts, newEnvelope(osc, d, 5*time.Millisecond, d/3))
	}
	return withVolume(beep.Seq(parts...), vol)
}

// drone is a sustained sine under a melody
func drone(freq float64, d time.Duration, vol float64) (beep.Streamer, error) {
	tone, err := generators.SineTone(SampleRate, freq)
	if err != nil {
		return nil, fmt.Errorf("failed to create tone: %w", err)
	}
	return withVolume(beep.Take(SampleRate.N(d), tone), vol), nil
}

// Render drains a finite stream into signed 16-bit little-endian stereo PCM
func Render(s beep.Streamer) ([]byte, error) {
	buf := make([][2]float64, 512)
	var out []byte
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v))
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to render sound: %w", err)
	}
	return out, nil
}
