package slidebutton

// Outcome is the verdict for a released drag.
type Outcome uint8

const (
	Aborted Outcome = iota
	Confirmed
)

func (o Outcome) String() string {
	if o == Confirmed {
		return "confirmed"
	}
	return "aborted"
}

// Measurements are the layout inputs of the threshold test.
type Measurements struct {
	RestX          float64
	HandleWidth    float64
	LeadingMargin  float64
	TrailingMargin float64
	TotalWidth     float64
}

// Measure reads the threshold inputs from l, using restX as the captured
// resting handle position.
func Measure(l Layout, restX float64) Measurements {
	leading, trailing := l.HandleMargins()
	return Measurements{
		RestX:          restX,
		HandleWidth:    l.HandleWidth(),
		LeadingMargin:  leading,
		TrailingMargin: trailing,
		TotalWidth:     l.Width(),
	}
}

// AvailableTravel is the distance the handle can move from its resting
// position before hitting the far end of the widget.
func (m Measurements) AvailableTravel() float64 {
	return AvailableTravel(m.TotalWidth, m.RestX, m.HandleWidth, m.LeadingMargin, m.TrailingMargin)
}

// AvailableTravel computes total - restX - handleWidth - leading - trailing.
func AvailableTravel(total, restX, handleWidth, leading, trailing float64) float64 {
	return total - restX - handleWidth - leading - trailing
}

// Evaluate reports Confirmed when the handle moved strictly further than
// ratio of the available travel.
func Evaluate(touchX, restX, travel, ratio float64) Outcome {
	if touchX-restX > travel*ratio {
		return Confirmed
	}
	return Aborted
}

// Progress returns the dragged share of the available travel. It is not
// clamped and is zero when there is no travel.
func Progress(touchX, restX, travel float64) float64 {
	if travel <= 0 {
		return 0
	}
	return (touchX - restX) / travel
}
