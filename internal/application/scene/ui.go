package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/younwookim/gone/internal/application/system"
	"golang.org/x/image/font/basicfont"
)

// Colors shared by the screens
var (
	ColorBG       = color.RGBA{10, 10, 30, 255}
	ColorText     = color.RGBA{220, 220, 220, 255}
	ColorSelected = color.RGBA{255, 215, 0, 255}
	ColorDim      = color.RGBA{120, 120, 140, 255}
	ColorOverlay  = color.RGBA{0, 0, 0, 160}
)

// LineHeight is the vertical spacing of text lines in pixels
const LineHeight = 18

// DrawText draws s with its baseline at (x, y)
func DrawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(screen, s, basicfont.Face7x13, x, y, clr)
}

// DrawCentered draws s horizontally centered on the screen
func DrawCentered(screen *ebiten.Image, s string, y int, clr color.Color) {
	w := text.BoundString(basicfont.Face7x13, s).Dx()
	DrawText(screen, s, (screen.Bounds().Dx()-w)/2, y, clr)
}

// MenuAction is what a key press did to a Menu
type MenuAction int

const (
	MenuNone MenuAction = iota
	MenuSelect
	MenuBack
	MenuLeft
	MenuRight
)

// Menu is a vertical list of items with a cursor
type Menu struct {
	Title  string
	Items  []string
	Cursor int
}

// NewMenu creates a menu with the cursor on the first item
func NewMenu(title string, items ...string) *Menu {
	return &Menu{Title: title, Items: items}
}

// Update moves the cursor and reports selection keys
func (m *Menu) Update(keys system.KeySource) MenuAction {
	switch {
	case keys.JustPressed(ebiten.KeyArrowUp):
		m.Move(-1)
	case keys.JustPressed(ebiten.KeyArrowDown):
		m.Move(1)
	case keys.JustPressed(ebiten.KeyEnter), keys.JustPressed(ebiten.KeySpace):
		return MenuSelect
	case keys.JustPressed(ebiten.KeyEscape):
		return MenuBack
	case keys.JustPressed(ebiten.KeyArrowLeft):
		return MenuLeft
	case keys.JustPressed(ebiten.KeyArrowRight):
		return MenuRight
	}
	return MenuNone
}

// Move moves the cursor by delta, wrapping around
func (m *Menu) Move(delta int) {
	if len(m.Items) == 0 {
		return
	}
	m.Cursor = (m.Cursor + delta + len(m.Items)) % len(m.Items)
}

// Draw renders the title and items centered from y down
func (m *Menu) Draw(screen *ebiten.Image, y int) {
	if m.Title != "" {
		DrawCentered(screen, m.Title, y, ColorText)
		y += 2 * LineHeight
	}
	for i, item := range m.Items {
		clr := color.Color(ColorText)
		if i == m.Cursor {
			clr = ColorSelected
			item = "> " + item + " <"
		}
		DrawCentered(screen, item, y, clr)
		y += LineHeight
	}
}
