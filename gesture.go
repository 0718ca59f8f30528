package slidebutton

// HandlePointer runs one pointer event through the gesture state machine.
//
// It reports whether the event was consumed. A disabled Button leaves events
// to the host's default handling; a locked Button consumes and ignores them.
// The error is the joined result of the slide listeners when the event
// confirmed a slide.
func (b *Button) HandlePointer(ev PointerEvent) (bool, error) {
	if !b.enabled {
		return false, nil
	}
	if b.coord.Locked() {
		return true, nil
	}
	b.captureGeometry()

	touchX := ev.X - b.layout.HandleWidth()/2

	switch ev.Action {
	case PointerDown:
		b.pressed = true
		// A second press never restarts a drag in progress.
		if b.state == StateIdle && b.onHandle(ev.X) {
			b.setState(StateArmed, ev)
		}
	case PointerMove:
		if b.state == StateArmed || b.state == StateDragging {
			b.setState(StateDragging, ev)
			b.drag(touchX)
		}
	case PointerUp:
		return true, b.release(touchX, ev)
	case PointerCancel:
		if b.state == StateArmed || b.state == StateDragging {
			b.dropGesture()
			b.logger.Debug("slide gesture cancelled")
			b.emit(SlideEvent{Type: EventCancelled, TouchX: touchX})
		}
		b.pressed = false
	}
	return true, nil
}

// captureGeometry measures the resting layout the first time input arrives.
// Transitions still in flight are settled first so the layout reports its
// resting positions.
func (b *Button) captureGeometry() {
	if b.geom.Captured() {
		return
	}
	b.engine.EndTransitions()
	b.geom.CaptureRestPosition(b.layout.HandleX())
	_, trailing := b.layout.HandleMargins()
	left, width := b.layout.TrackBounds()
	b.geom.CaptureBounds(left, width, b.layout.HandleWidth(), trailing)
	restX, _ := b.geom.RestX()
	maxX, _ := b.geom.MaxX()
	b.logger.Debug("slide geometry captured", "restX", restX, "maxX", maxX, "trackWidth", width)
}

func (b *Button) onHandle(x float64) bool {
	restX, _ := b.geom.RestX()
	return x >= restX && x <= restX+b.layout.HandleWidth()
}

// drag resizes the track so its left edge follows the handle.
func (b *Button) drag(touchX float64) {
	restX, _ := b.geom.RestX()
	width := b.clampedTrackWidth(touchX)
	b.setTrackWidth(width)
	if touchX > restX {
		if total := b.layout.Width(); total > 0 {
			b.layout.SetLabelAlpha(labelFadeCap * width / total)
		}
	}
}

// clampedTrackWidth maps a handle position to a track width. Positions left of
// the rest position give the resting width; positions past maxX give the width
// at maxX.
func (b *Button) clampedTrackWidth(touchX float64) float64 {
	restX, _ := b.geom.RestX()
	maxX, _ := b.geom.MaxX()
	resting, _ := b.geom.TrackWidth()
	leading, _ := b.layout.HandleMargins()
	switch {
	case touchX <= restX:
		return resting
	case touchX <= maxX:
		return b.geom.WidthForOffset(touchX, leading)
	default:
		return b.geom.WidthForOffset(maxX, leading)
	}
}

// setTrackWidth resizes the track and reveals the label only right of the
// handle.
func (b *Button) setTrackWidth(width float64) {
	b.layout.SetTrackWidth(width)
	end, _ := b.geom.TrackEnd()
	leading, _ := b.layout.HandleMargins()
	b.layout.SetLabelClip(end-width+b.layout.HandleWidth()+leading, end)
}

func (b *Button) release(touchX float64, ev PointerEvent) error {
	wasPressed := b.pressed
	b.pressed = false

	switch b.state {
	case StateDragging:
		b.setState(StateIdle, ev)
		return b.evaluate(touchX)
	case StateArmed:
		b.setState(StateIdle, ev)
		b.tease(touchX)
	default:
		if wasPressed {
			b.tease(touchX)
		}
	}
	return nil
}

func (b *Button) evaluate(touchX float64) error {
	restX, _ := b.geom.RestX()
	m := Measure(b.layout, restX)
	travel := m.AvailableTravel()
	progress := Progress(touchX, restX, travel)

	if Evaluate(touchX, restX, travel, b.ratio) == Aborted {
		b.coord.SnapBack()
		b.coord.ApplyEnabled(b.enabled)
		b.logger.Debug("slide aborted", "touchX", touchX, "progress", progress)
		b.emit(SlideEvent{Type: EventAborted, TouchX: touchX, Progress: progress})
		return nil
	}

	b.coord.ToLoadingScene()
	b.logger.Debug("slide confirmed", "touchX", touchX, "progress", progress, "listeners", b.listeners.Len())
	b.emit(SlideEvent{Type: EventConfirmed, TouchX: touchX, Progress: progress})
	return b.listeners.NotifyAll(b)
}

func (b *Button) tease(touchX float64) {
	b.coord.Tease(b.layout.Width())
	b.emit(SlideEvent{Type: EventTease, TouchX: touchX})
}

// dropGesture abandons an armed or dragging gesture without an outcome and
// puts the track back at its resting width.
func (b *Button) dropGesture() {
	if b.state == StateDragging {
		if resting, ok := b.geom.TrackWidth(); ok {
			b.setTrackWidth(resting)
		}
		b.coord.ApplyEnabled(b.enabled)
	}
	b.state = StateIdle
	b.pressed = false
}

func (b *Button) setState(next State, ev PointerEvent) {
	if b.state == next {
		return
	}
	b.logger.Debug("slide state", "from", b.state, "to", next, "action", ev.Action, "x", ev.X)
	b.state = next
}
