package ui

import (
	"fmt"

	"gridsnake/game"
	"gridsnake/game/types"

	"github.com/gdamore/tcell/v2"
)

var key2Key = map[tcell.Key]types.Key{
	tcell.KeyUp:    types.KeyUp,
	tcell.KeyDown:  types.KeyDown,
	tcell.KeyLeft:  types.KeyLeft,
	tcell.KeyRight: types.KeyRight,
}

var (
	defStyle   = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	boxStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	snakeStyle = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	foodStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)

// Terminal draws the board with tcell. One grid cell takes two columns so
// cells look roughly square.
type Terminal struct {
	screen  tcell.Screen
	eventCh chan tcell.Event
	quit    chan struct{}
	closing bool
}

// NewTerminal takes over the controlling terminal.
func NewTerminal() (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return newTerminalOn(s)
}

func newTerminalOn(s tcell.Screen) (*Terminal, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.DisableMouse()
	s.SetStyle(defStyle)
	s.Clear()

	t := &Terminal{
		screen:  s,
		eventCh: make(chan tcell.Event, 64),
		quit:    make(chan struct{}),
	}
	go t.pump()
	return t, nil
}

// pump forwards screen events until the screen is finalized.
func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.eventCh <- ev:
		case <-t.quit:
			return
		}
	}
}

func (t *Terminal) Poll() []types.InputEvent {
	var events []types.InputEvent
	for {
		select {
		case ev := <-t.eventCh:
			if in, ok := t.translate(ev); ok {
				events = append(events, in)
			}
		default:
			return events
		}
	}
}

// translate turns a tcell event into an engine event. Quit keys and resizes
// are handled here and produce nothing.
func (t *Terminal) translate(ev tcell.Event) (types.InputEvent, bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			t.closing = true
			return types.InputEvent{}, false
		}
		if k, ok := key2Key[ev.Key()]; ok {
			return types.Press(k), true
		}
		return types.Press(types.KeyOther), true
	}
	return types.InputEvent{}, false
}

// cellOrigin is the terminal coordinate of the left half of a board cell.
func cellOrigin(grid types.Grid, p types.Position) (col, row int) {
	return 1 + 2*(p.X/grid.CellSize), 1 + p.Y/grid.CellSize
}

func (t *Terminal) Draw(frame game.Frame) {
	s := t.screen
	s.Clear()

	cols, rows := frame.Grid.Columns(), frame.Grid.Rows()
	drawBox(s, 0, 0, 2*cols+1, rows+1, boxStyle)

	for _, p := range frame.Body {
		if !frame.Grid.Contains(p) {
			// the provisional head of a wall collision
			continue
		}
		col, row := cellOrigin(frame.Grid, p)
		s.SetContent(col, row, tcell.RuneBlock, nil, snakeStyle)
		s.SetContent(col+1, row, tcell.RuneBlock, nil, snakeStyle)
	}

	col, row := cellOrigin(frame.Grid, frame.Food)
	s.SetContent(col, row, tcell.RuneDiamond, nil, foodStyle)
	s.SetContent(col+1, row, ' ', nil, foodStyle)

	if frame.GameOver {
		msg := fmt.Sprintf(" Game over: %s ", frame.Outcome)
		drawText(s, (2*cols+2-len(msg))/2, (rows+2)/2, textStyle, msg)
	}
	s.Show()
}

func drawBox(s tcell.Screen, x1, y1, x2, y2 int, style tcell.Style) {
	for col := x1; col <= x2; col++ {
		s.SetContent(col, y1, tcell.RuneHLine, nil, style)
		s.SetContent(col, y2, tcell.RuneHLine, nil, style)
	}
	for row := y1 + 1; row < y2; row++ {
		s.SetContent(x1, row, tcell.RuneVLine, nil, style)
		s.SetContent(x2, row, tcell.RuneVLine, nil, style)
	}
	s.SetContent(x1, y1, tcell.RuneULCorner, nil, style)
	s.SetContent(x2, y1, tcell.RuneURCorner, nil, style)
	s.SetContent(x1, y2, tcell.RuneLLCorner, nil, style)
	s.SetContent(x2, y2, tcell.RuneLRCorner, nil, style)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func (t *Terminal) ShouldClose() bool {
	return t.closing
}

func (t *Terminal) Close() {
	close(t.quit)
	t.screen.Fini()
}
