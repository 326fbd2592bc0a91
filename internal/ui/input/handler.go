package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/fbrowse/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct{}

// NewInputHandler creates a new input handler
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Translate maps ev to an Action, or nil when the event is not bound.
func (ih *InputHandler) Translate(ev tcell.Event) statepkg.Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.translateKey(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return statepkg.ResizeAction{Width: w, Height: h}
	default:
		return nil
	}
}

// translateKey handles keyboard input
func (ih *InputHandler) translateKey(ev *tcell.EventKey) statepkg.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return statepkg.MoveSelectionAction{Delta: -1}
	case tcell.KeyDown:
		return statepkg.MoveSelectionAction{Delta: 1}
	case tcell.KeyEnter:
		return statepkg.ActivateAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return statepkg.AscendAction{}
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return nil
		}
		switch ev.Rune() {
		case 'h':
			return statepkg.ToggleHiddenAction{}
		case 'q':
			return statepkg.QuitAction{}
		}
	}
	return nil
}

// EventSource is the part of tcell.Screen the dispatcher reads from.
type EventSource interface {
	PollEvent() tcell.Event
}

// Dispatcher turns terminal events into Actions, one per call.
type Dispatcher struct {
	source  EventSource
	handler *InputHandler
}

// NewDispatcher creates a dispatcher reading from source.
func NewDispatcher(source EventSource) *Dispatcher {
	return &Dispatcher{
		source:  source,
		handler: NewInputHandler(),
	}
}

// Next blocks until an event arrives and returns its Action, or nil for an
// unbound event. A nil event means the screen was finalised and yields Quit.
func (d *Dispatcher) Next() statepkg.Action {
	ev := d.source.PollEvent()
	if ev == nil {
		return statepkg.QuitAction{}
	}
	return d.handler.Translate(ev)
}
