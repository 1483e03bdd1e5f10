package audio

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Player plays synthesized music and effects through ebiten's audio
// context. A Player without a context is silent, which headless runs use.
type Player struct {
	ctx *audio.Context

	effects map[Effect][]byte
	tracks  map[Track][]byte

	music        *audio.Player
	current      Track
	musicVolume  float64
	effectVolume float64
}

// NewPlayer creates a Player on the process-wide audio context.
// ebiten allows a single context, so call it once.
func NewPlayer(musicVolume, effectVolume float64) *Player {
	p := NewSilentPlayer()
	p.ctx = audio.NewContext(int(SampleRate))
	p.musicVolume = musicVolume
	p.effectVolume = effectVolume
	return p
}

// NewSilentPlayer creates a Player that only tracks state
func NewSilentPlayer() *Player {
	return &Player{
		effects: make(map[Effect][]byte),
		tracks:  make(map[Track][]byte),
	}
}

// SetVolumes applies new volumes in [0, 1]
func (p *Player) SetVolumes(music, effect float64) {
	p.musicVolume = music
	p.effectVolume = effect
	if p.music != nil {
		p.music.SetVolume(music)
	}
}

// Current returns the track playing
func (p *Player) Current() Track {
	return p.current
}

// PlayMusic switches the looping background track. Asking for the track
// already playing keeps it going without restarting.
func (p *Player) PlayMusic(t Track) {
	if t == p.current {
		return
	}
	p.stopMusic()
	p.current = t
	if p.ctx == nil || t == TrackNone {
		return
	}

	pcm, err := p.trackPCM(t)
	if err != nil {
		log.Printf("Failed to render %s music: %v", t, err)
		return
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := p.ctx.NewPlayer(loop)
	if err != nil {
		log.Printf("Failed to start %s music: %v", t, err)
		return
	}
	player.SetVolume(p.musicVolume)
	player.Play()
	p.music = player
}

// PlayEffect starts a one-shot sound
func (p *Player) PlayEffect(e Effect) {
	if p.ctx == nil || p.effectVolume <= 0 {
		return
	}
	pcm, ok := p.effects[e]
	if !ok {
		s := effectSound(e)
		if s == nil {
			return
		}
		var err error
		if pcm, err = Render(s); err != nil {
			log.Printf("Failed to render effect %d: %v", e, err)
			return
		}
		p.effects[e] = pcm
	}
	player := p.ctx.NewPlayerFromBytes(pcm)
	player.SetVolume(p.effectVolume)
	player.Play()
}

// Close stops the music
func (p *Player) Close() {
	p.stopMusic()
	p.current = TrackNone
}

func (p *Player) stopMusic() {
	if p.music == nil {
		return
	}
	p.music.Pause()
	if err := p.music.Close(); err != nil {
		log.Printf("Failed to close music player: %v", err)
	}
	p.music = nil
}

func (p *Player) trackPCM(t Track) ([]byte, error) {
	if pcm, ok := p.tracks[t]; ok {
		return pcm, nil
	}
	s, err := trackSound(t)
	if err != nil {
		return nil, err
	}
	pcm, err := Render(s)
	if err != nil {
		return nil, err
	}
	p.tracks[t] = pcm
	return pcm, nil
}
