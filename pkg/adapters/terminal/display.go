package terminal

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/aretw0/doro/pkg/domain"
	"github.com/aretw0/doro/pkg/ports"
)

// ErrClosed is returned by PlayAnimation once the display has been closed.
var ErrClosed = errors.New("terminal: display closed")

const (
	// DefaultCellWidth and DefaultCellHeight map terminal cells to pixels.
	DefaultCellWidth  = 8
	DefaultCellHeight = 16

	boxWidth  = 22
	boxHeight = 5
)

// Display renders the pet as a box on a tcell screen. It implements the
// animation, mover and info panel sinks, and hands out text sinks for
// info panel widgets.
type Display struct {
	mu     sync.Mutex
	screen tcell.Screen
	theme  domain.Theme
	cellW  int
	cellH  int
	closed bool

	x, y   int // pet position in pixels
	asset  string
	mirror bool
	state  domain.PetState

	infoVisible bool
	labels      map[string]string
}

// Option configures a Display.
type Option func(*Display)

// WithTheme sets the info panel palette.
func WithTheme(theme domain.Theme) Option {
	return func(d *Display) { d.theme = theme }
}

// WithCellSize sets how many pixels one terminal cell covers.
func WithCellSize(w, h int) Option {
	return func(d *Display) {
		if w > 0 && h > 0 {
			d.cellW, d.cellH = w, h
		}
	}
}

// WithPosition places the pet at x, y pixels.
func WithPosition(x, y int) Option {
	return func(d *Display) { d.x, d.y = x, y }
}

// New wraps an initialized screen.
func New(screen tcell.Screen, opts ...Option) *Display {
	d := &Display{
		screen: screen,
		theme:  domain.LookupTheme(domain.DefaultTheme),
		cellW:  DefaultCellWidth,
		cellH:  DefaultCellHeight,
		labels: make(map[string]string),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Open creates and initializes the terminal screen, enabling mouse reporting.
func Open(opts ...Option) (*Display, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	return New(screen, opts...), nil
}

// Close restores the terminal.
func (d *Display) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.closed = true
	d.screen.Fini()
}

// PlayAnimation shows asset in the pet box.
func (d *Display) PlayAnimation(asset string, mirror bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrClosed
	}
	d.asset = asset
	d.mirror = mirror
	d.draw()
	return nil
}

// RequestMove shifts the pet by dx, dy pixels, keeping it on screen.
func (d *Display) RequestMove(dx, dy int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	w, h := d.screen.Size()
	d.x = clamp(d.x+dx, 0, max((w-boxWidth)*d.cellW, 0))
	d.y = clamp(d.y+dy, 0, max((h-boxHeight)*d.cellH, 0))
	d.draw()
}

// SetInfoVisible shows or hides the info panel.
func (d *Display) SetInfoVisible(visible bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.infoVisible = visible
	d.draw()
}

// SetTheme switches the info panel palette. Setting the current theme again
// does not redraw.
func (d *Display) SetTheme(theme domain.Theme) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.theme == theme {
		return
	}
	d.theme = theme
	d.draw()
}

// Label returns a text sink for the info panel widget key.
func (d *Display) Label(key string) ports.TextSink {
	return label{d: d, key: key}
}

type label struct {
	d   *Display
	key string
}

func (l label) SetText(text string) {
	l.d.mu.Lock()
	defer l.d.mu.Unlock()
	l.d.labels[l.key] = text
	l.d.draw()
}

// Hooks returns lifecycle hooks that keep the state caption current.
func (d *Display) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStateEnter: func(ctx context.Context, e *domain.StateEvent) {
			d.mu.Lock()
			defer d.mu.Unlock()
			d.state = e.State
			d.draw()
		},
	}
}

// Position returns the pet position in pixels.
func (d *Display) Position() (x, y int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.x, d.y
}

// Redraw repaints the whole screen, e.g. after a resize.
func (d *Display) Redraw() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.screen.Sync()
	d.draw()
}

// draw must be called with mu held.
func (d *Display) draw() {
	if d.closed {
		return
	}
	d.screen.Clear()

	border := tcell.StyleDefault.Foreground(tcell.GetColor(d.theme.Border))
	text := tcell.StyleDefault.Foreground(tcell.GetColor(d.theme.Primary))

	cx, cy := d.x/d.cellW, d.y/d.cellH
	d.box(cx, cy, boxWidth, boxHeight, border)

	name := "(no animation)"
	if d.asset != "" {
		name = filepath.Base(d.asset)
	}
	facing := "→"
	if d.mirror {
		facing = "←"
	}
	d.text(cx+2, cy+1, truncate(name, boxWidth-4), text)
	d.text(cx+2, cy+2, d.state.String(), text.Bold(true))
	d.text(cx+2, cy+3, facing, text)

	if d.infoVisible {
		d.drawInfo(cx, cy+boxHeight)
	}
	d.screen.Show()
}

func (d *Display) drawInfo(cx, cy int) {
	keys := make([]string, 0, len(d.labels))
	for k := range d.labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	panel := tcell.StyleDefault.
		Background(tcell.GetColor(d.theme.Background)).
		Foreground(tcell.GetColor(d.theme.Text))
	edge := panel.Foreground(tcell.GetColor(d.theme.Secondary))

	if len(keys) == 0 {
		d.text(cx, cy, strings.Repeat(" ", boxWidth), panel)
		return
	}
	// Widgets are ordered by key
	for i, k := range keys {
		line := truncate(" "+d.labels[k], boxWidth-1)
		line += strings.Repeat(" ", boxWidth-1-len([]rune(line)))
		d.text(cx, cy+i, "▌", edge)
		d.text(cx+1, cy+i, line, panel)
	}
}

func (d *Display) box(x, y, w, h int, style tcell.Style) {
	for i := 1; i < w-1; i++ {
		d.screen.SetContent(x+i, y, tcell.RuneHLine, nil, style)
		d.screen.SetContent(x+i, y+h-1, tcell.RuneHLine, nil, style)
	}
	for j := 1; j < h-1; j++ {
		d.screen.SetContent(x, y+j, tcell.RuneVLine, nil, style)
		d.screen.SetContent(x+w-1, y+j, tcell.RuneVLine, nil, style)
	}
	d.screen.SetContent(x, y, tcell.RuneULCorner, nil, style)
	d.screen.SetContent(x+w-1, y, tcell.RuneURCorner, nil, style)
	d.screen.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, style)
	d.screen.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, style)
}

func (d *Display) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		d.screen.SetContent(x+i, y, r, nil, style)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
