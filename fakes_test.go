package slidebutton

import "time"

// fakeLayout is a one-row view: the track starts at trackLeft and spans
// trackWidth; the handle sits at the track's left edge plus the leading margin.
type fakeLayout struct {
	width      float64
	trackLeft  float64
	trackWidth float64
	handleW    float64
	leading    float64
	trailing   float64

	handleX      float64
	widths       []float64
	clipL, clipR float64
	labelAlpha   float64
	handleAlpha  float64
	trackEnabled bool
	content      []Content
}

func newFakeLayout() *fakeLayout {
	return &fakeLayout{
		width:        300,
		trackWidth:   300,
		handleW:      50,
		labelAlpha:   1,
		handleAlpha:  1,
		trackEnabled: true,
	}
}

func (l *fakeLayout) HandleX() float64 { return l.handleX }
func (l *fakeLayout) HandleWidth() float64 { return l.handleW }
func (l *fakeLayout) HandleMargins() (float64, float64) { return l.leading, l.trailing }
func (l *fakeLayout) TrackBounds() (float64, float64) { return l.trackLeft, l.trackWidth }
func (l *fakeLayout) Width() float64 { return l.width }
func (l *fakeLayout) SetTrackWidth(w float64) { l.widths = append(l.widths, w) }
func (l *fakeLayout) SetLabelClip(left, right float64) { l.clipL, l.clipR = left, right }
func (l *fakeLayout) SetLabelAlpha(a float64) { l.labelAlpha = a }
func (l *fakeLayout) SetHandleAlpha(a float64) { l.handleAlpha = a }
func (l *fakeLayout) SetTrackEnabled(enabled bool) { l.trackEnabled = enabled }
func (l *fakeLayout) ApplyContent(c Content) { l.content = append(l.content, c) }

func (l *fakeLayout) lastWidth() float64 {
	if len(l.widths) == 0 {
		return -1
	}
	return l.widths[len(l.widths)-1]
}

type sceneRequest struct {
	scene      SceneID
	transition TransitionID
}

type translation struct {
	part    Part
	offsets [3]float64
	d       time.Duration
}

// fakeEngine records every request in order. calls interleaves scene requests
// and EndTransitions so ordering can be asserted. onEnd, when set, runs on
// every EndTransitions to settle a layout left mid-animation.
type fakeEngine struct {
	scenes       []sceneRequest
	translations []translation
	ends         int
	calls        []string
	onEnd        func()
}

func (e *fakeEngine) ApplyScene(scene SceneID, transition TransitionID) {
	e.scenes = append(e.scenes, sceneRequest{scene, transition})
	e.calls = append(e.calls, "scene:"+string(scene))
}

func (e *fakeEngine) EndTransitions() {
	e.ends++
	e.calls = append(e.calls, "end")
	if e.onEnd != nil {
		e.onEnd()
	}
}

func (e *fakeEngine) Translate(part Part, offsets [3]float64, d time.Duration) {
	e.translations = append(e.translations, translation{part, offsets, d})
	e.calls = append(e.calls, "translate")
}

func (e *fakeEngine) lastScene() sceneRequest {
	if len(e.scenes) == 0 {
		return sceneRequest{}
	}
	return e.scenes[len(e.scenes)-1]
}

type recordingStore struct {
	events []SlideEvent
}

func (s *recordingStore) EmitEvent(ev SlideEvent) { s.events = append(s.events, ev) }

func (s *recordingStore) types() []EventType {
	out := make([]EventType, len(s.events))
	for i, ev := range s.events {
		out[i] = ev.Type
	}
	return out
}
