// Package input turns SDL events into viewer events and actions.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventMouseDrag
	EventMouseWheel
)

// Event is a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Action Action
	Width  int
	Height int
	DeltaX float32
	DeltaY float32
}

// Action is what a key press asks the viewer to do.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionSelectNull
	ActionSelectLove
	ActionSelectRayleigh
	ActionVelocityUp
	ActionVelocityDown
	ActionPeriodUp
	ActionPeriodDown
	ActionDissipationUp
	ActionDissipationDown
	ActionPause
	ActionReset
	ActionSnapshot
)

// DefaultBindings maps keys to actions.
var DefaultBindings = map[sdl.Scancode]Action{
	sdl.SCANCODE_ESCAPE: ActionQuit,
	sdl.SCANCODE_1:      ActionSelectNull,
	sdl.SCANCODE_2:      ActionSelectLove,
	sdl.SCANCODE_3:      ActionSelectRayleigh,
	sdl.SCANCODE_Q:      ActionVelocityUp,
	sdl.SCANCODE_A:      ActionVelocityDown,
	sdl.SCANCODE_W:      ActionPeriodUp,
	sdl.SCANCODE_S:      ActionPeriodDown,
	sdl.SCANCODE_E:      ActionDissipationUp,
	sdl.SCANCODE_D:      ActionDissipationDown,
	sdl.SCANCODE_SPACE:  ActionPause,
	sdl.SCANCODE_R:      ActionReset,
	sdl.SCANCODE_P:      ActionSnapshot,
}

// Input polls SDL once per frame.
type Input struct {
	bindings map[sdl.Scancode]Action
	events   []Event
	dragging bool
}

// New creates an input handler with the given key bindings.
func New(bindings map[sdl.Scancode]Action) *Input {
	return &Input{
		bindings: bindings,
		events:   make([]Event, 0, 16),
	}
}

// Update drains the SDL queue. It returns true once the user asked to quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			action := i.bindings[e.Keysym.Scancode]
			if action == ActionQuit {
				quit = true
			}
			i.events = append(i.events, Event{
				Type:   EventKeyDown,
				Key:    e.Keysym.Scancode,
				Action: action,
			})

		case *sdl.MouseButtonEvent:
			if e.Button == sdl.BUTTON_LEFT {
				i.dragging = e.Type == sdl.MOUSEBUTTONDOWN
			}

		case *sdl.MouseMotionEvent:
			if i.dragging {
				i.events = append(i.events, Event{
					Type:   EventMouseDrag,
					DeltaX: float32(e.XRel),
					DeltaY: float32(e.YRel),
				})
			}

		case *sdl.MouseWheelEvent:
			i.events = append(i.events, Event{
				Type:   EventMouseWheel,
				DeltaY: float32(e.Y),
			})
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
