package system

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/gone/internal/domain/entity"
	"github.com/younwookim/gone/internal/infrastructure/config"
)

// KeySource reports key edges for the current frame
type KeySource interface {
	JustPressed(key ebiten.Key) bool
	JustReleased(key ebiten.Key) bool
}

// EbitenKeys reads key edges from ebiten's input state
type EbitenKeys struct{}

func (EbitenKeys) JustPressed(key ebiten.Key) bool  { return inpututil.IsKeyJustPressed(key) }
func (EbitenKeys) JustReleased(key ebiten.Key) bool { return inpututil.IsKeyJustReleased(key) }

type binding struct {
	player    int
	direction entity.Direction
	key       ebiten.Key
}

// InputSystem turns physical key edges into KeyIntents using the
// configured control bindings
type InputSystem struct {
	bindings []binding
}

// NewInputSystem resolves the key names in opts for the first players
// players. Unknown directions or key names are an error.
func NewInputSystem(opts *config.Options, players int) (*InputSystem, error) {
	if players > len(opts.Controls) {
		return nil, fmt.Errorf("no controls configured for player %d", len(opts.Controls)+1)
	}

	s := &InputSystem{}
	for player := 0; player < players; player++ {
		for name, keyName := range opts.Controls[player] {
			dir, ok := entity.ParseDirection(name)
			if !ok {
				return nil, fmt.Errorf("player %d: unknown control %q", player+1, name)
			}
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(keyName)); err != nil {
				return nil, fmt.Errorf("player %d: failed to parse key for %s: %w", player+1, name, err)
			}
			s.bindings = append(s.bindings, binding{player: player, direction: dir, key: key})
		}
	}
	// Map order is random; keep intents stable for replays
	slices.SortFunc(s.bindings, func(a, b binding) int {
		if c := cmp.Compare(a.player, b.player); c != 0 {
			return c
		}
		return cmp.Compare(a.direction, b.direction)
	})
	return s, nil
}

// Poll returns the key intents of this frame
func (s *InputSystem) Poll(keys KeySource) []Intent {
	var intents []Intent
	for _, b := range s.bindings {
		if keys.JustPressed(b.key) {
			intents = append(intents, KeyIntent{Player: b.player, Direction: b.direction, Pressed: true})
		}
		if keys.JustReleased(b.key) {
			intents = append(intents, KeyIntent{Player: b.player, Direction: b.direction, Pressed: false})
		}
	}
	return intents
}

// ReleaseAll returns a release intent for every bound control. Keys let go
// while the Stage was not polled would otherwise stay held.
func (s *InputSystem) ReleaseAll() []Intent {
	intents := make([]Intent, 0, len(s.bindings))
	for _, b := range s.bindings {
		intents = append(intents, KeyIntent{Player: b.player, Direction: b.direction, Pressed: false})
	}
	return intents
}
