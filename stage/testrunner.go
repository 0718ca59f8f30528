package stage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/phanxgames/slidebutton"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Text   string  `json:"text,omitempty"`

	// expect fields
	State  string `json:"state,omitempty"`
	Locked *bool  `json:"locked,omitempty"`
	Scene  string `json:"scene,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"press": true, "move": true, "release": true, "cancel": true,
	"tap": true, "drag": true, "wait": true,
	"reset": true, "loading": true, "enable": true, "disable": true,
	"text": true, "expect": true,
}

// TestRunner sequences injected input, button calls and expectations across
// frames. Attach to a Scene via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	failures  []error
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// LoadTestScriptFile reads and parses a JSON test script.
func LoadTestScriptFile(path string) (*TestRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load test script: %w", err)
	}
	return LoadTestScript(data)
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from UpdateDT before input is processed each frame.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Err returns every failed expectation, joined.
func (r *TestRunner) Err() error {
	return errors.Join(r.failures...)
}

// step advances the test runner by one frame. Called from UpdateDT.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	b := s.button
	switch st.Action {
	case "press":
		s.InjectPress(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "cancel":
		s.InjectCancel()
	case "tap":
		s.InjectTap(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "reset":
		b.Reset()
	case "loading":
		b.ShowLoadingButton()
	case "enable":
		b.SetEnabled(true)
	case "disable":
		b.SetEnabled(false)
	case "text":
		b.SetText(st.Text)
	case "expect":
		r.expect(s, st)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}

func (r *TestRunner) expect(s *Scene, st testStep) {
	b := s.button
	step := r.cursor - 1
	if st.State != "" && b.State().String() != st.State {
		r.failures = append(r.failures, fmt.Errorf("step %d: state = %s, want %s", step, b.State(), st.State))
	}
	if st.Locked != nil && b.Locked() != *st.Locked {
		r.failures = append(r.failures, fmt.Errorf("step %d: locked = %v, want %v", step, b.Locked(), *st.Locked))
	}
	if st.Scene != "" && s.engine.Scene() != slidebutton.SceneID(st.Scene) {
		r.failures = append(r.failures, fmt.Errorf("step %d: scene = %s, want %s", step, s.engine.Scene(), st.Scene))
	}
}

// RunScript drives the scene headlessly at 60 frames per second until the
// attached runner finishes, then returns its failures.
func (s *Scene) RunScript(maxFrames int) error {
	if s.testRunner == nil {
		return fmt.Errorf("run script: no test runner attached")
	}
	const dt = float32(1.0 / 60)
	for i := 0; i < maxFrames; i++ {
		if s.testRunner.Done() {
			return s.testRunner.Err()
		}
		s.UpdateDT(dt)
	}
	if !s.testRunner.Done() {
		return fmt.Errorf("run script: not finished after %d frames", maxFrames)
	}
	return s.testRunner.Err()
}
