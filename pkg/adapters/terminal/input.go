package terminal

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/aretw0/doro/pkg/domain"
)

// SendFunc delivers a pointer event to the pet.
type SendFunc func(ctx context.Context, ev domain.Event) (bool, error)

// Pump reads terminal input until ctx is done or the user quits with
// Escape, Ctrl-C or q. Mouse input is converted to pixel coordinates and
// forwarded through send.
func (d *Display) Pump(ctx context.Context, send SendFunc) error {
	stop := context.AfterFunc(ctx, func() {
		d.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	var held tcell.ButtonMask
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return nil
			}
		case *tcell.EventResize:
			d.Redraw()
		case *tcell.EventMouse:
			for _, pe := range d.translate(ev, held) {
				if _, err := send(ctx, pe); err != nil {
					return err
				}
			}
			held = ev.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)
		}
	}
}

// translate turns a mouse report into domain events given the buttons held
// before it.
func (d *Display) translate(ev *tcell.EventMouse, held tcell.ButtonMask) []domain.Event {
	cx, cy := ev.Position()
	x, y := cx*d.cellW, cy*d.cellH
	now := ev.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)

	var out []domain.Event
	for _, b := range []struct {
		mask   tcell.ButtonMask
		button domain.Button
	}{
		{tcell.Button1, domain.ButtonLeft},
		{tcell.Button2, domain.ButtonRight},
		{tcell.Button3, domain.ButtonMiddle},
	} {
		switch {
		case now&b.mask != 0 && held&b.mask == 0:
			out = append(out, domain.Event{Type: domain.EventPress, Button: b.button, X: x, Y: y})
		case now&b.mask == 0 && held&b.mask != 0:
			out = append(out, domain.Event{Type: domain.EventRelease, Button: b.button, X: x, Y: y})
		}
	}
	if len(out) == 0 {
		button := domain.ButtonNone
		if now&tcell.Button1 != 0 {
			button = domain.ButtonLeft
		}
		out = append(out, domain.Event{Type: domain.EventMove, Button: button, X: x, Y: y})
	}
	return out
}
