package main

import (
	"cmp"
	"slices"

	"github.com/younwookim/gone/internal/application/system"
	"github.com/younwookim/gone/internal/domain/entity"
)

type latchKey struct {
	player    int
	direction entity.Direction
}

// keyLatch turns key presses into held controls. Terminals only report
// presses (and auto-repeat), so a control stays held for a number of
// ticks after its last press.
type keyLatch struct {
	hold  int
	now   int
	until map[latchKey]int
}

func newKeyLatch(hold int) *keyLatch {
	return &keyLatch{hold: hold, until: make(map[latchKey]int)}
}

// Press holds a control; only a newly held control yields an intent
func (l *keyLatch) Press(player int, dir entity.Direction) []system.Intent {
	k := latchKey{player, dir}
	_, held := l.until[k]
	l.until[k] = l.now + l.hold
	if held {
		return nil
	}
	return []system.Intent{system.KeyIntent{Player: player, Direction: dir, Pressed: true}}
}

// Advance moves one tick forward and releases expired controls
func (l *keyLatch) Advance() []system.Intent {
	l.now++
	var expired []latchKey
	for k, until := range l.until {
		if until <= l.now {
			expired = append(expired, k)
		}
	}
	slices.SortFunc(expired, func(a, b latchKey) int {
		if c := cmp.Compare(a.player, b.player); c != 0 {
			return c
		}
		return cmp.Compare(a.direction, b.direction)
	})

	intents := make([]system.Intent, 0, len(expired))
	for _, k := range expired {
		delete(l.until, k)
		intents = append(intents, system.KeyIntent{Player: k.player, Direction: k.direction, Pressed: false})
	}
	return intents
}

// ReleaseAll drops every held control
func (l *keyLatch) ReleaseAll() []system.Intent {
	l.now += l.hold
	return l.Advance()
}
