// Command gone-term plays G-One in a terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/gone/cmd/game/configs"
	"github.com/younwookim/gone/internal/application/state"
	"github.com/younwookim/gone/internal/application/system"
	"github.com/younwookim/gone/internal/domain/entity"
)

// latchTicks keeps a control held this many ticks after its last press.
// Longer than the typical key repeat delay.
const latchTicks = 30

type binding struct {
	player    int
	direction entity.Direction
}

// Player 1 uses the arrows and space, player 2 WASD and f
var (
	keyBindings = map[tcell.Key]binding{
		tcell.KeyUp:    {0, entity.DirUp},
		tcell.KeyDown:  {0, entity.DirDown},
		tcell.KeyLeft:  {0, entity.DirLeft},
		tcell.KeyRight: {0, entity.DirRight},
	}
	runeBindings = map[rune]binding{
		' ': {0, entity.DirFire},
		'w': {1, entity.DirUp},
		's': {1, entity.DirDown},
		'a': {1, entity.DirLeft},
		'd': {1, entity.DirRight},
		'f': {1, entity.DirFire},
	}
)

type termGame struct {
	screen tcell.Screen
	stage  *system.Stage
	latch  *keyLatch
	dt     float64

	pending []system.Intent
	status  string
	statusT float64
	quit    bool
}

func newTermGame(screen tcell.Screen, stage *system.Stage, dt, statusDuration float64) *termGame {
	g := &termGame{
		screen: screen,
		stage:  stage,
		latch:  newKeyLatch(latchTicks),
		dt:     dt,
	}
	stage.OnStatus = func(text string) {
		g.status = text
		g.statusT = statusDuration
	}
	return g
}

// handleKey maps one key event to intents
func (g *termGame) handleKey(ev *tcell.EventKey) {
	var b binding
	var ok bool
	switch ev.Key() {
	case tcell.KeyCtrlC:
		g.quit = true
		return
	case tcell.KeyEscape:
		g.togglePause()
		return
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			g.quit = true
			return
		case 'p':
			g.togglePause()
			return
		}
		b, ok = runeBindings[ev.Rune()]
	default:
		b, ok = keyBindings[ev.Key()]
	}
	if !ok || g.stage.State() != state.StateActive || b.player >= len(g.stage.Players()) {
		return
	}
	g.pending = append(g.pending, g.latch.Press(b.player, b.direction)...)
}

func (g *termGame) togglePause() {
	switch g.stage.State() {
	case state.StateActive:
		g.pending = append(g.pending, system.PauseIntent{Paused: true})
	case state.StatePaused:
		g.pending = append(g.pending, g.latch.ReleaseAll()...)
		g.pending = append(g.pending, system.PauseIntent{Paused: false})
	}
}

// tick applies queued input and advances the Stage one step
func (g *termGame) tick() {
	if g.stage.State() == state.StateActive {
		g.pending = append(g.pending, g.latch.Advance()...)
	}
	g.stage.Apply(g.pending)
	g.pending = g.pending[:0]
	g.stage.Tick(g.dt)

	if g.statusT > 0 {
		g.statusT -= g.dt
		if g.statusT <= 0 {
			g.status = ""
		}
	}
}

func (g *termGame) run() {
	ticker := time.NewTicker(time.Duration(g.dt * float64(time.Second)))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for !g.quit {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				g.handleKey(ev)
			case *tcell.EventResize:
				g.screen.Sync()
			}
		case <-ticker.C:
			g.tick()
			g.draw()
		}
	}
}

func main() {
	players := flag.Int("players", 1, "Number of players (1 or 2)")
	hard := flag.Bool("hard", false, "Play on Hard difficulty")
	aliens := flag.Bool("aliens", false, "Play as the Aliens")
	flag.Parse()

	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	setup := system.GameSetup{
		Difficulty: entity.DifficultyNormal,
		Faction:    entity.FactionEarth,
		Players:    *players,
	}
	if *hard {
		setup.Difficulty = entity.DifficultyHard
	}
	if *aliens {
		setup.Faction = entity.FactionAlien
	}
	if setup.Players < 1 || setup.Players > 2 {
		log.Fatalf("Players must be 1 or 2, got %d", setup.Players)
	}

	stage, err := system.NewStage(cfg, setup)
	if err != nil {
		log.Fatalf("Failed to create stage: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}

	g := newTermGame(screen, stage, cfg.Game.Display.TickDT(), cfg.Game.Rules.StatusDuration)
	g.run()
	screen.Fini()

	stage.Close()
	fmt.Fprintln(os.Stdout, resultText(stage.Result()))
}
