package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Effect is a one-shot sound
type Effect int

const (
	EffectExplosion Effect = iota
	EffectMenuSelect
)

// Track is a looping background tune
type Track int

const (
	TrackNone Track = iota
	TrackMenu
	TrackGame
)

// String returns the track name used in logs
func (t Track) String() string {
	switch t {
	case TrackNone:
		return "none"
	case TrackMenu:
		return "menu"
	case TrackGame:
		return "game"
	default:
		return "unknown"
	}
}

// Note frequencies (Hz)
const (
	noteA2 = 110.00
	noteE3 = 164.81
	noteA3 = 220.00
	noteC4 = 261.63
	noteD4 = 293.66
	noteE4 = 329.63
	noteG4 = 392.00
	noteA4 = 440.00
	noteC5 = 523.25
	noteE5 = 659.25
)

func explosionSound() beep.Streamer {
	const d = 450 * time.Millisecond
	noise := newEnvelope(newOscillator(0, d, waveNoise), d, 2*time.Millisecond, 400*time.Millisecond)
	thump := newEnvelope(newOscillator(60, d, waveSine), d, 2*time.Millisecond, 300*time.Millisecond)
	return beep.Mix(withVolume(noise, 0.5), withVolume(thump, 0.6))
}

func menuSelectSound() beep.Streamer {
	return melody([]note{{noteE5, 1}, {noteA4, 1}}, 60*time.Millisecond, waveSquare, 0.25)
}

func effectSound(e Effect) beep.Streamer {
	switch e {
	case EffectExplosion:
		return explosionSound()
	case EffectMenuSelect:
		return menuSelectSound()
	}
	return nil
}

func menuMusic() (beep.Streamer, error) {
	const beat = 300 * time.Millisecond
	lead := melody([]note{
		{noteA4, 2}, {noteE4, 1}, {noteG4, 1}, {noteA4, 2}, {0, 2},
		{noteC5, 2}, {noteA4, 1}, {noteG4, 1}, {noteE4, 2}, {0, 2},
	}, beat, waveSine, 0.3)
	bass, err := drone(noteA2, 20*beat, 0.15)
	if err != nil {
		return nil, err
	}
	return beep.Mix(lead, bass), nil
}

func gameMusic() (beep.Streamer, error) {
	const beat = 150 * time.Millisecond
	phrase := []note{
		{noteA3, 1}, {noteA3, 1}, {noteC4, 1}, {noteA3, 1}, {noteD4, 1}, {noteA3, 1}, {noteE4, 2},
		{noteA3, 1}, {noteA3, 1}, {noteC4, 1}, {noteA3, 1}, {noteG4, 1}, {noteE4, 1}, {noteD4, 2},
	}
	lead := melody(append(phrase, phrase...), beat, waveSquare, 0.18)
	bass, err := drone(noteE3, 40*beat, 0.12)
	if err != nil {
		return nil, err
	}
	return beep.Mix(lead, bass), nil
}

func trackSound(t Track) (beep.Streamer, error) {
	switch t {
	case TrackMenu:
		return menuMusic()
	case TrackGame:
		return gameMusic()
	}
	return nil, nil
}
