package terminal

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/doro/pkg/domain"
)

func newSimDisplay(t *testing.T, opts ...Option) (*Display, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	d := New(screen, opts...)
	t.Cleanup(d.Close)
	return d, screen
}

func screenText(screen tcell.SimulationScreen) string {
	cells, w, _ := screen.GetContents()
	var sb strings.Builder
	for i, c := range cells {
		if len(c.Runes) > 0 {
			sb.WriteRune(c.Runes[0])
		} else {
			sb.WriteRune(' ')
		}
		if (i+1)%w == 0 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

func TestDisplay_RendersAnimationAndState(t *testing.T) {
	d, screen := newSimDisplay(t)

	require.NoError(t, d.PlayAnimation("/assets/Idle/blink.gif", false))
	d.Hooks().OnStateEnter(context.Background(), &domain.StateEvent{State: domain.StateClicked, Depth: 2})

	out := screenText(screen)
	assert.Contains(t, out, "blink.gif")
	assert.Contains(t, out, "CLICKED")
	assert.Contains(t, out, "→")

	require.NoError(t, d.PlayAnimation("walk.gif", true))
	assert.Contains(t, screenText(screen), "←")
}

func TestDisplay_MoveClampsToScreen(t *testing.T) {
	d, _ := newSimDisplay(t, WithCellSize(10, 10))

	d.RequestMove(50, 30)
	x, y := d.Position()
	assert.Equal(t, 50, x)
	assert.Equal(t, 30, y)

	d.RequestMove(-500, -500)
	x, y = d.Position()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	d.RequestMove(10000, 10000)
	x, y = d.Position()
	assert.Equal(t, (80-boxWidth)*10, x)
	assert.Equal(t, (24-boxHeight)*10, y)
}

func TestDisplay_InfoPanel(t *testing.T) {
	d, screen := newSimDisplay(t, WithTheme(domain.LookupTheme("blue")))

	d.Label(domain.LabelNetwork).SetText("lofi beats")
	d.Label(domain.LabelCPU).SetText("CPU: 3%")
	assert.NotContains(t, screenText(screen), "lofi beats")

	d.SetInfoVisible(true)
	out := screenText(screen)
	assert.Contains(t, out, "CPU: 3%")
	assert.Contains(t, out, "lofi beats")
	assert.Less(t, strings.Index(out, "CPU: 3%"), strings.Index(out, "lofi beats"))

	d.SetInfoVisible(false)
	assert.NotContains(t, screenText(screen), "lofi beats")
}

func TestDisplay_ClosedRejectsAnimation(t *testing.T) {
	d, _ := newSimDisplay(t)
	d.Close()
	assert.ErrorIs(t, d.PlayAnimation("a.gif", false), ErrClosed)
	d.Close()
}

type sent struct {
	mu     sync.Mutex
	events []domain.Event
}

func (s *sent) send(ctx context.Context, ev domain.Event) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return true, nil
}

func (s *sent) snapshot() []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Event(nil), s.events...)
}

func TestDisplay_PumpTranslatesMouse(t *testing.T) {
	d, screen := newSimDisplay(t, WithCellSize(8, 16))
	var got sent

	done := make(chan error, 1)
	go func() { done <- d.Pump(context.Background(), got.send) }()

	screen.InjectMouse(1, 1, tcell.Button1, tcell.ModNone)
	screen.InjectMouse(3, 2, tcell.Button1, tcell.ModNone)
	screen.InjectMouse(3, 2, tcell.ButtonNone, tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("pump did not stop on escape")
	}

	assert.Equal(t, []domain.Event{
		domain.Press(8, 16),
		domain.Move(24, 32),
		domain.Release(24, 32),
	}, got.snapshot())
}

func TestDisplay_PumpStopsOnCancel(t *testing.T) {
	d, _ := newSimDisplay(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- d.Pump(ctx, (&sent{}).send) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("pump did not stop on cancel")
	}
}

func TestTranslate_OtherButtons(t *testing.T) {
	d, _ := newSimDisplay(t)

	evs := d.translate(tcell.NewEventMouse(0, 0, tcell.Button2, tcell.ModNone), tcell.ButtonNone)
	assert.Equal(t, []domain.Event{{Type: domain.EventPress, Button: domain.ButtonRight}}, evs)

	evs = d.translate(tcell.NewEventMouse(2, 0, tcell.ButtonNone, tcell.ModNone), tcell.ButtonNone)
	assert.Equal(t, []domain.Event{{Type: domain.EventMove, Button: domain.ButtonNone, X: 16}}, evs)
}
