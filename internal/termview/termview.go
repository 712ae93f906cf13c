// Package termview renders a game session on a terminal with tcell. Segments
// are drawn where their continuous positions round to, two columns per cell.
package termview

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"snake3d/internal/anim"
	"snake3d/internal/game"
)

// headGlyphs is indexed by game.HeadingQuadrant.
var headGlyphs = [4]rune{'▶', '▲', '◀', '▼'}

const (
	glyphBody     = '█'
	glyphTail     = '▓'
	glyphApple    = '●'
	glyphHedgehog = '✱'
	glyphBonus    = '★'
	glyphField    = '·'
)

type View struct {
	screen  tcell.Screen
	session *game.GameSession
}

func New(screen tcell.Screen, session *game.GameSession) *View {
	return &View{screen: screen, session: session}
}

// Run opens the terminal and plays until the user quits.
func Run(opts game.Options) error {
	opts = opts.WithDefaults()
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	if err := game.InitAudio(); err != nil {
		// Non-fatal, the game runs without sound
		log.Printf("audio init failed: %v", err)
	}
	game.SetMuted(opts.Mute)

	bus := game.NewEventBus()
	game.Effects(bus, nil, nil)
	v := New(screen, game.NewGameSession(opts, bus))

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(opts.FrameInterval())
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				quit, err := v.HandleKey(ev)
				if err != nil {
					return err
				}
				if quit {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			dt := min(now.Sub(last), game.MaxFrameDelta)
			last = now
			if _, err := v.session.Update(dt); err != nil {
				return err
			}
			v.Draw()
		}
	}
}

// HandleKey applies one key press and reports whether the user quit.
func (v *View) HandleKey(ev *tcell.EventKey) (bool, error) {
	s := v.session
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, nil
	case tcell.KeyUp:
		return false, s.Steer(anim.DirUp)
	case tcell.KeyDown:
		return false, s.Steer(anim.DirDown)
	case tcell.KeyLeft:
		return false, s.Steer(anim.DirLeft)
	case tcell.KeyRight:
		return false, s.Steer(anim.DirRight)
	case tcell.KeyRune:
	default:
		return false, nil
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return true, nil
	case 'w', 'W':
		return false, s.Steer(anim.DirUp)
	case 's', 'S':
		return false, s.Steer(anim.DirDown)
	case 'a', 'A':
		return false, s.Steer(anim.DirLeft)
	case 'd', 'D':
		return false, s.Steer(anim.DirRight)
	case 'p', 'P':
		s.TogglePause()
	case ' ':
		switch s.State {
		case game.StateMenu, game.StateLevelComplete, game.StateLevelFailed:
			game.PlaySound(game.SoundMenuSelect)
			return false, s.Advance()
		}
	}
	return false, nil
}

// layout maps board cells to screen cells. The board is centred below the
// status line with +Y pointing up.
type layout struct {
	ox, oy int // screen position of cell (-hw, hh)
	hw, hh int
}

func (l layout) cell(p anim.GridPoint) (int, int) {
	return l.ox + (p.X+l.hw)*2, l.oy + (l.hh - p.Y)
}

func (l layout) at(pos [3]float64) (int, int) {
	return l.cell(anim.GridPoint{X: int(math.Round(pos[0])), Y: int(math.Round(pos[1]))})
}

func newLayout(sw, sh int, cfg game.LevelConfig) layout {
	w := (2*cfg.HalfWidth+1)*2 + 2
	h := (2*cfg.HalfHeight+1) + 2
	ox := max((sw-w)/2, 0) + 1
	oy := max((sh-1-h)/2, 0) + 2
	return layout{ox: ox, oy: oy, hw: cfg.HalfWidth, hh: cfg.HalfHeight}
}

func style(c game.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func (v *View) put(x, y int, r rune, st tcell.Style) {
	v.screen.SetContent(x, y, r, nil, st)
}

func (v *View) text(x, y int, s string, st tcell.Style) {
	for _, r := range s {
		v.put(x, y, r, st)
		x++
	}
}

// Draw renders one frame.
func (v *View) Draw() {
	v.screen.Clear()
	s := v.session
	v.text(0, 0, game.HUDText(s), tcell.StyleDefault.Bold(true))
	if s.Board == nil || s.Animator == nil {
		v.screen.Show()
		return
	}

	sw, sh := v.screen.Size()
	cfg := s.Board.Config()
	l := newLayout(sw, sh, cfg)

	border := style(game.Palette.Border)
	x0, y0 := l.cell(anim.GridPoint{X: -cfg.HalfWidth, Y: cfg.HalfHeight})
	x1, y1 := l.cell(anim.GridPoint{X: cfg.HalfWidth, Y: -cfg.HalfHeight})
	for x := x0 - 1; x <= x1+2; x++ {
		v.put(x, y0-1, '─', border)
		v.put(x, y1+1, '─', border)
	}
	for y := y0; y <= y1; y++ {
		v.put(x0-1, y, '│', border)
		v.put(x1+2, y, '│', border)
	}
	v.put(x0-1, y0-1, '┌', border)
	v.put(x1+2, y0-1, '┐', border)
	v.put(x0-1, y1+1, '└', border)
	v.put(x1+2, y1+1, '┘', border)

	field := style(game.Palette.FieldAlt)
	for y := -cfg.HalfHeight; y <= cfg.HalfHeight; y++ {
		for x := -cfg.HalfWidth; x <= cfg.HalfWidth; x++ {
			cx, cy := l.cell(anim.GridPoint{X: x, Y: y})
			v.put(cx, cy, glyphField, field)
		}
	}

	cx, cy := l.cell(s.Board.Apple())
	v.put(cx, cy, glyphApple, style(game.Palette.Apple))
	if b := s.Board.Bonus(); b.Active() {
		kind, _ := b.Kind()
		cx, cy = l.cell(b.Cell())
		v.put(cx, cy, glyphBonus, style(kind.Col))
	}
	for _, h := range s.Board.Hedgehogs() {
		cx, cy = l.cell(h.Cell())
		v.put(cx, cy, glyphHedgehog, style(game.Palette.Hedgehog))
	}

	segs := s.Animator.Segments()
	for i := len(segs) - 1; i >= 0; i-- {
		seg := segs[i]
		cx, cy = l.at(seg.Position)
		col := game.SegmentColor(i, len(segs))
		if s.State == game.StateLevelFailed {
			col = col.Mul(120)
		}
		r := glyphBody
		switch {
		case i == 0:
			r = headGlyphs[game.HeadingQuadrant(seg.Yaw())]
		case i == len(segs)-1:
			r = glyphTail
		}
		v.put(cx, cy, r, style(col))
		if i > 0 {
			v.put(cx+1, cy, r, style(col))
		}
	}
	v.screen.Show()
}
