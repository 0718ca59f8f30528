package slidebutton

// measure is a lazily captured measurement. Zero is a legitimate value, so
// capture is tracked separately.
type measure struct {
	value float64
	ok    bool
}

func (m *measure) set(v float64) bool {
	if m.ok {
		return false
	}
	m.value = v
	m.ok = true
	return true
}

// Geometry caches the handle's resting position and the track bounds the
// first time a Button sees input. Values never change after capture.
type Geometry struct {
	restX      measure
	maxX       measure
	trackWidth measure
	trackEnd   measure
}

// CaptureRestPosition records the handle's leftmost resting x. Later calls are
// ignored. Reports whether this call captured the value.
func (g *Geometry) CaptureRestPosition(handleX float64) bool {
	return g.restX.set(handleX)
}

// CaptureBounds records the rightmost handle position, the track's right edge
// and the track's resting width. Later calls are ignored. Reports whether this
// call captured the values.
func (g *Geometry) CaptureBounds(trackLeft, trackWidth, handleWidth, trailing float64) bool {
	if g.maxX.ok {
		return false
	}
	g.maxX.set(trackLeft + trackWidth - handleWidth - trailing)
	g.trackEnd.set(trackLeft + trackWidth)
	g.trackWidth.set(trackWidth)
	return true
}

// RestX returns the handle's resting x and whether it has been captured.
func (g Geometry) RestX() (float64, bool) { return g.restX.value, g.restX.ok }

// MaxX returns the rightmost handle x and whether it has been captured.
func (g Geometry) MaxX() (float64, bool) { return g.maxX.value, g.maxX.ok }

// TrackWidth returns the track's resting width and whether it has been captured.
func (g Geometry) TrackWidth() (float64, bool) { return g.trackWidth.value, g.trackWidth.ok }

// TrackEnd returns the track's right edge and whether it has been captured.
func (g Geometry) TrackEnd() (float64, bool) { return g.trackEnd.value, g.trackEnd.ok }

// Captured reports whether both the rest position and the bounds are known.
func (g Geometry) Captured() bool {
	return g.restX.ok && g.maxX.ok
}

// WidthForOffset returns the track width that keeps the track's right edge
// fixed while its left edge follows a handle placed at touchX. No clamping.
func (g Geometry) WidthForOffset(touchX, leading float64) float64 {
	return g.trackEnd.value - (touchX - leading)
}
