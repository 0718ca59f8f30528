package stage

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/slidebutton"
)

const (
	maxPointers = 10 // pointer 0 = mouse, 1-9 = touch
	noPointer   = -1
)

type pointerState struct {
	down         bool
	lastX, lastY float64
}

// processInput is called from UpdateDT to route one frame of pointer input.
// The first pointer pressed inside the control captures the gesture; other
// pointers are ignored until it is released.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if !s.live {
		return
	}
	if !ebiten.IsFocused() {
		// The window lost focus mid-gesture: the release will never arrive.
		s.cancelCaptured()
		return
	}
	s.processMousePointer()
	s.processTouchPointers()
}

// processMousePointer handles the left mouse button (pointer 0).
func (s *Scene) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.processPointer(0, float64(mx), float64(my), pressed)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Scene) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(tx), float64(ty), true)
	}

	// A touch that vanished is a release at its last position.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.processPointer(i, ps.lastX, ps.lastY, false)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Scene) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the pointer state machine for a single pointer in
// screen coordinates.
func (s *Scene) processPointer(pointerID int, sx, sy float64, pressed bool) {
	ps := &s.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.lastX, ps.lastY = sx, sy
		if s.captured != noPointer || !s.view.Root.Bounds().Contains(sx, sy) {
			return
		}
		if s.handle(s.pointerEvent(slidebutton.PointerDown, pointerID, sx, sy)) {
			s.captured = pointerID
		}
	case pressed && ps.down:
		if sx == ps.lastX && sy == ps.lastY {
			return
		}
		ps.lastX, ps.lastY = sx, sy
		if s.captured == pointerID {
			s.handle(s.pointerEvent(slidebutton.PointerMove, pointerID, sx, sy))
		}
	case !pressed && ps.down:
		ps.down = false
		if s.captured == pointerID {
			s.captured = noPointer
			s.handle(s.pointerEvent(slidebutton.PointerUp, pointerID, sx, sy))
		}
	}
}

// cancelCaptured takes the gesture away from its pointer and forgets every
// pressed pointer.
func (s *Scene) cancelCaptured() {
	if s.captured != noPointer {
		ps := s.pointers[s.captured]
		id := s.captured
		s.captured = noPointer
		s.handle(s.pointerEvent(slidebutton.PointerCancel, id, ps.lastX, ps.lastY))
	}
	for i := range s.pointers {
		s.pointers[i].down = false
	}
}

// Captured returns the pointer that owns the gesture, or -1.
func (s *Scene) Captured() int {
	return s.captured
}

// pointerEvent converts screen coordinates to widget-local ones.
func (s *Scene) pointerEvent(action slidebutton.PointerAction, pointerID int, sx, sy float64) slidebutton.PointerEvent {
	rx, ry := s.view.Root.WorldPosition()
	return slidebutton.PointerEvent{Action: action, X: sx - rx, Y: sy - ry, PointerID: pointerID}
}
