package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/gone/internal/application/state"
	"github.com/younwookim/gone/internal/application/system"
	"github.com/younwookim/gone/internal/domain/entity"
)

// hudRows is the number of text rows above the playfield
const hudRows = 1

var (
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleEarth    = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleAlien    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleTracker  = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleSplitter = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleBullet   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// cell maps a world position to a grid cell of the playfield. The world
// y axis points up, rows grow down.
func cell(x, y float64, cols, rows int) (col, row int, ok bool) {
	field := rows - hudRows
	if cols <= 0 || field <= 0 {
		return 0, 0, false
	}
	col = int(x / entity.ScreenWidth * float64(cols))
	row = int((entity.ScreenHeight-y)/entity.ScreenHeight*float64(field)) + hudRows
	if col < 0 || col >= cols || row < hudRows || row >= rows {
		return 0, 0, false
	}
	return col, row, true
}

func factionStyle(f entity.Faction) tcell.Style {
	if f == entity.FactionAlien {
		return styleAlien
	}
	return styleEarth
}

func enemyGlyph(e *entity.Enemy) (rune, tcell.Style) {
	switch e.Kind {
	case entity.EnemyTracker:
		return 'T', styleTracker
	case entity.EnemySplitter:
		return 'S', styleSplitter
	default:
		return 'W', factionStyle(e.Faction)
	}
}

func bulletGlyph(b *entity.Bullet) rune {
	switch {
	case b.Kind == entity.BulletBouncy:
		return 'o'
	case b.Kind == entity.BulletHoming:
		return '*'
	case b.OwnedByPlayer:
		return '|'
	default:
		return '!'
	}
}

func drawText(screen tcell.Screen, col, row int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(col+i, row, r, nil, style)
	}
}

// draw renders the Stage onto the terminal grid
func (g *termGame) draw() {
	g.screen.Clear()
	cols, rows := g.screen.Size()
	put := func(x, y float64, r rune, style tcell.Style) {
		if c, row, ok := cell(x, y, cols, rows); ok {
			g.screen.SetContent(c, row, r, nil, style)
		}
	}

	for _, e := range g.stage.Enemies() {
		r, style := enemyGlyph(e)
		put(e.X, e.Y, r, style)
	}
	for _, b := range g.stage.Bullets() {
		put(b.X, b.Y, bulletGlyph(b), styleBullet)
	}
	for _, p := range g.stage.Players() {
		put(p.X, p.Y, rune('1'+p.Number), factionStyle(p.Faction).Bold(true))
	}

	hud := fmt.Sprintf("Score %d  Lives %d  Level %d", g.stage.Score(), g.stage.Lives(), g.stage.Level())
	for _, p := range g.stage.Players() {
		hud += fmt.Sprintf("  P%d %d", p.Number+1, p.Health)
	}
	drawText(g.screen, 0, 0, hud, styleHUD)

	msg := g.status
	switch g.stage.State() {
	case state.StatePaused:
		msg = "PAUSED - p to resume, q to quit"
	case state.StateGameOver:
		msg = resultText(g.stage.Result()) + " - q to quit"
	}
	if msg != "" {
		drawText(g.screen, max((cols-len(msg))/2, 0), rows/2, msg, styleStatus)
	}
	g.screen.Show()
}

func resultText(r system.GameResult) string {
	if r.Won {
		return fmt.Sprintf("YOU WIN! Score %d", r.Score)
	}
	return fmt.Sprintf("GAME OVER. Score %d", r.Score)
}
